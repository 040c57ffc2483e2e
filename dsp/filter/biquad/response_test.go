package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	// MagnitudeSquared must match |Response|^2 across frequencies.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	sr := 48000.0

	for _, freq := range []float64{100, 500, 1000, 5000, 10000, 20000} {
		h := c.Response(freq, sr)
		fromResponse := real(h)*real(h) + imag(h)*imag(h)
		fromClosed := c.MagnitudeSquared(freq, sr)
		if !almostEqual(fromClosed, fromResponse, 1e-10) {
			t.Errorf("freq=%v: MagnitudeSquared=%.15f, |Response|²=%.15f", freq, fromClosed, fromResponse)
		}
	}
}

func TestResponse_IgnoresA0Scaling(t *testing.T) {
	c := resonant()
	scaled := Coefficients{
		B0: 4 * c.B0, B1: 4 * c.B1, B2: 4 * c.B2,
		A0: 4 * c.A0, A1: 4 * c.A1, A2: 4 * c.A2,
	}
	sr := 48000.0

	for _, freq := range []float64{50, 1000, 3000, 15000} {
		if !almostEqual(c.MagnitudeSquared(freq, sr), scaled.MagnitudeSquared(freq, sr), 1e-9) {
			t.Fatalf("freq=%v: magnitude depends on A0", freq)
		}
		if cmplx.Abs(c.Response(freq, sr)-scaled.Response(freq, sr)) > 1e-9 {
			t.Fatalf("freq=%v: response depends on A0", freq)
		}
	}
}

func TestMagnitudeDB_MatchesMagnitudeSquared(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	sr := 48000.0

	for _, freq := range []float64{100, 1000, 10000} {
		db := c.MagnitudeDB(freq, sr)
		fromSq := 10 * math.Log10(c.MagnitudeSquared(freq, sr))
		if !almostEqual(db, fromSq, 1e-12) {
			t.Errorf("freq=%v: MagnitudeDB=%.15f, 10*log10(MagSq)=%.15f", freq, db, fromSq)
		}
		if !almostEqual(c.Magnitude(freq, sr), math.Sqrt(c.MagnitudeSquared(freq, sr)), 1e-12) {
			t.Errorf("freq=%v: Magnitude disagrees with MagnitudeSquared", freq)
		}
	}
}

func TestPhase_MatchesResponse(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	sr := 48000.0

	for _, freq := range []float64{100, 500, 1000, 5000, 10000} {
		h := c.Response(freq, sr)
		fromResponse := cmplx.Phase(h)
		fromClosed := c.Phase(freq, sr)
		if !almostEqual(fromClosed, fromResponse, 1e-10) {
			t.Errorf("freq=%v: Phase=%.15f, arg(Response)=%.15f", freq, fromClosed, fromResponse)
		}
	}
}

func TestResponse_Passthrough(t *testing.T) {
	c := Identity()
	sr := 48000.0
	for _, freq := range []float64{0, 100, 1000, 10000, 24000} {
		h := c.Response(freq, sr)
		mag := cmplx.Abs(h)
		if !almostEqual(mag, 1, 1e-12) {
			t.Errorf("freq=%v: |H|=%v, want 1", freq, mag)
		}
	}
}

func TestImpulseResponse_MatchesDTFT(t *testing.T) {
	// The DTFT of a long, fully decayed impulse response equals H(e^jw).
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	for _, topo := range Topologies {
		e := NewEngine()
		e.SetTopology(topo)
		e.SetCoefficients(c)

		ir := e.ImpulseResponse(64)
		for _, w := range []float64{0.1, 0.7, 2.0} {
			var sum complex128
			for n, h := range ir {
				sum += complex(h, 0) * cmplx.Exp(complex(0, -w*float64(n)))
			}
			if cmplx.Abs(sum-c.ResponseAt(w)) > 1e-12 {
				t.Fatalf("%v w=%v: DTFT=%v, H=%v", topo, w, sum, c.ResponseAt(w))
			}
		}
	}
}

func TestImpulseResponse_PreservesStateAndBypass(t *testing.T) {
	e := NewEngine()
	e.SetTopology(DirectFormI)
	e.SetCoefficients(resonant())
	for _, x := range []float64{1, -0.5, 0.25} {
		e.ProcessSample(x)
	}
	e.SetBypassed(true)

	before := e.State()
	ir := e.ImpulseResponse(16)
	if len(ir) != 16 || ir[0] == 1 && ir[1] == 0 {
		t.Fatalf("impulse response computed through bypass: %v", ir[:2])
	}
	if e.State() != before {
		t.Fatalf("state changed: %v -> %v", before, e.State())
	}
	if !e.Bypassed() {
		t.Fatal("bypass flag not restored")
	}
	if e.ImpulseResponse(0) != nil {
		t.Fatal("expected nil for n <= 0")
	}
}
