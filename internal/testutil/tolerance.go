package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRelClose fails t if got deviates from want by more than rel times
// |want|.
func RequireRelClose(t *testing.T, what string, got, want, rel float64) {
	t.Helper()
	if math.Abs(got-want) > rel*math.Abs(want) {
		t.Fatalf("%s: got %.12g, want %.12g (rel err %.3g > %.3g)",
			what, got, want, math.Abs(got-want)/math.Abs(want), rel)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireDecays fails t unless every sample of the last tail samples of ir
// is below limit in magnitude.
func RequireDecays(t *testing.T, ir []float64, tail int, limit float64) {
	t.Helper()
	RequireFinite(t, ir)
	for i := max(len(ir)-tail, 0); i < len(ir); i++ {
		if math.Abs(ir[i]) > limit {
			t.Fatalf("impulse response not decayed: |ir[%d]| = %g > %g", i, math.Abs(ir[i]), limit)
		}
	}
}
