package generic

import (
	"math"
	"testing"

	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad/internal/arch/registry"
)

// Hand-traced impulse response of
// H(z) = (0.25 + 0.5z^-1 + 0.25z^-2) / (1 - 0.2z^-1 + 0.04z^-2).
var (
	traceCoeffs = registry.Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	traceWant   = []float64{0.25, 0.55, 0.35, 0.048, -0.0044, -0.0028}
)

func TestKernelsMatchHandTrace(t *testing.T) {
	kernels := map[string]registry.ProcessBlockFn{
		"DF-I":    processDF1,
		"DF-II":   processDF2,
		"DF-I-T":  processDF1T,
		"DF-II-T": processDF2T,
	}

	for name, fn := range kernels {
		t.Run(name, func(t *testing.T) {
			var s registry.State
			buf := make([]float64, len(traceWant))
			buf[0] = 1
			fn(traceCoeffs, &s, buf)
			for i := range buf {
				if math.Abs(buf[i]-traceWant[i]) > 1e-12 {
					t.Fatalf("sample %d: got %.15f, want %.15f", i, buf[i], traceWant[i])
				}
			}
		})
	}
}

func TestKernelsResumeAcrossBlocks(t *testing.T) {
	for topo := range registry.NumTopologies {
		var whole, split registry.State
		ref := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, -0.1}
		got := append([]float64(nil), ref...)

		entry := registry.Global.ListEntries()
		var fn registry.ProcessBlockFn
		for _, e := range entry {
			if e.Name == "generic" {
				fn = e.Kernels[topo]
			}
		}
		if fn == nil {
			t.Fatalf("topology %d: generic kernel not registered", topo)
		}

		fn(traceCoeffs, &whole, ref)
		fn(traceCoeffs, &split, got[:4])
		fn(traceCoeffs, &split, got[4:])

		if whole != split {
			t.Fatalf("topology %d: state mismatch %v vs %v", topo, whole, split)
		}
		for i := range ref {
			if got[i] != ref[i] {
				t.Fatalf("topology %d sample %d: got %v, want %v", topo, i, got[i], ref[i])
			}
		}
	}
}
