package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// resonant returns a stable peaking-like section with poles at radius 0.98
// and zeros at radius 0.9, both at 1 kHz / 48 kHz. Coefficients are left
// unnormalized (A0 = 2) on purpose.
func resonant() Coefficients {
	theta := 2 * math.Pi * 1000 / 48000
	rp, rz := 0.98, 0.9
	return Coefficients{
		B0: 2,
		B1: 2 * -2 * rz * math.Cos(theta),
		B2: 2 * rz * rz,
		A0: 2,
		A1: 2 * -2 * rp * math.Cos(theta),
		A2: 2 * rp * rp,
	}
}

func testSignal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(0.05*float64(i)) + 0.3*math.Sin(1.3*float64(i)+0.2)
	}
	out[0] += 1
	return out
}

func TestNewEngine(t *testing.T) {
	e := NewEngine()
	if e.Topology() != DirectFormIITransposed {
		t.Fatalf("default topology = %v, want %v", e.Topology(), DirectFormIITransposed)
	}
	if e.State() != [4]float64{} {
		t.Fatalf("initial state not zero: %v", e.State())
	}
	if e.Coefficients() != Identity() {
		t.Fatalf("initial coefficients = %#v, want identity", e.Coefficients())
	}
	for i, x := range []float64{1, 0, -1, 0.5, 0.25} {
		if y := e.ProcessSample(x); y != x {
			t.Fatalf("sample %d: identity engine returned %v for %v", i, y, x)
		}
	}
}

func TestProcessSample_HandTrace(t *testing.T) {
	// y = 0.25, 0.55, 0.35, 0.048 for an impulse; see the generic kernel test.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	want := []float64{0.25, 0.55, 0.35, 0.048}

	for _, topo := range Topologies {
		t.Run(topo.String(), func(t *testing.T) {
			e := NewEngine()
			e.SetTopology(topo)
			e.SetCoefficients(c)
			for i, w := range want {
				var x float64
				if i == 0 {
					x = 1
				}
				if y := e.ProcessSample(x); !almostEqual(y, w, eps) {
					t.Fatalf("sample %d: got %.15f, want %.15f", i, y, w)
				}
			}
		})
	}
}

func TestTopologyEquivalence(t *testing.T) {
	input := testSignal(2048)

	ref := NewEngine()
	ref.SetTopology(DirectFormI)
	ref.SetCoefficients(resonant())
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	for _, topo := range Topologies[1:] {
		e := NewEngine()
		e.SetTopology(topo)
		e.SetCoefficients(resonant())
		for i, x := range input {
			if y := e.ProcessSample(x); !almostEqual(y, want[i], 1e-9) {
				t.Fatalf("%v sample %d: got %.15f, want %.15f", topo, i, y, want[i])
			}
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	input := testSignal(257)

	for _, topo := range Topologies {
		t.Run(topo.String(), func(t *testing.T) {
			s := NewEngine()
			s.SetTopology(topo)
			s.SetCoefficients(resonant())
			ref := make([]float64, len(input))
			for i, x := range input {
				ref[i] = s.ProcessSample(x)
			}

			b := NewEngine()
			b.SetTopology(topo)
			b.SetCoefficients(resonant())
			block := append([]float64(nil), input...)
			b.ProcessBlock(block[:100])
			b.ProcessBlock(block[100:])

			for i := range block {
				if !almostEqual(block[i], ref[i], eps) {
					t.Fatalf("sample %d: ProcessBlock=%.15f, ProcessSample=%.15f", i, block[i], ref[i])
				}
			}
		})
	}
}

func TestProcessBlockTo_MatchesSample(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}
	orig := append([]float64(nil), input...)

	s1 := NewEngine()
	s1.SetCoefficients(resonant())
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewEngine()
	s2.SetCoefficients(resonant())
	dst := make([]float64, len(input))
	s2.ProcessBlockTo(dst, input)

	for i := range dst {
		if !almostEqual(dst[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlockTo=%.15f, ProcessSample=%.15f", i, dst[i], ref[i])
		}
		if input[i] != orig[i] {
			t.Errorf("src modified at index %d", i)
		}
	}
}

func TestSetCoefficients_KeepsState(t *testing.T) {
	e := NewEngine()
	e.SetCoefficients(resonant())
	e.ProcessSample(1)
	e.ProcessSample(0.5)
	before := e.State()

	e.SetCoefficients(Coefficients{B0: 0.5, A0: 1, A1: -0.1})
	if e.State() != before {
		t.Fatalf("state changed by SetCoefficients: %v -> %v", before, e.State())
	}
}

func TestSetTopology_ResetsOnChange(t *testing.T) {
	e := NewEngine()
	e.SetCoefficients(resonant())
	e.ProcessSample(1)

	// Re-selecting the active topology keeps the registers.
	e.SetTopology(DirectFormIITransposed)
	if e.State() == [4]float64{} {
		t.Fatal("re-selecting the active topology cleared the state")
	}

	e.SetTopology(DirectFormI)
	if e.State() != [4]float64{} {
		t.Fatalf("state not cleared on topology change: %v", e.State())
	}
}

func TestSetTopology_InvalidDefaultsToDF2T(t *testing.T) {
	e := NewEngine()
	e.SetTopology(DirectFormI)
	e.SetTopology(Topology(42))
	if e.Topology() != DirectFormIITransposed {
		t.Fatalf("topology = %v, want %v", e.Topology(), DirectFormIITransposed)
	}
}

func TestBypass_Transparent(t *testing.T) {
	input := testSignal(64)

	for _, topo := range Topologies {
		e := NewEngine()
		e.SetTopology(topo)
		e.SetCoefficients(resonant())
		for _, x := range input[:10] {
			e.ProcessSample(x)
		}
		before := e.State()

		e.SetBypassed(true)
		for i, x := range input {
			if y := e.ProcessSample(x); y != x {
				t.Fatalf("%v: bypassed sample %d changed: %v -> %v", topo, i, x, y)
			}
		}
		block := append([]float64(nil), input...)
		e.ProcessBlock(block)
		for i := range block {
			if block[i] != input[i] {
				t.Fatalf("%v: bypassed block sample %d changed", topo, i)
			}
		}
		if e.State() != before {
			t.Fatalf("%v: registers advanced while bypassed", topo)
		}

		// Un-bypassing resumes exactly where the filter left off.
		e.SetBypassed(false)
		ref := NewEngine()
		ref.SetTopology(topo)
		ref.SetCoefficients(resonant())
		ref.SetState(before)
		for i, x := range input {
			if got, want := e.ProcessSample(x), ref.ProcessSample(x); got != want {
				t.Fatalf("%v: sample %d after un-bypass: got %v, want %v", topo, i, got, want)
			}
		}
	}
}

func TestReset_Idempotent(t *testing.T) {
	input := testSignal(128)

	run := func(resets int) []float64 {
		e := NewEngine()
		e.SetTopology(DirectFormII)
		e.SetCoefficients(resonant())
		for _, x := range input {
			e.ProcessSample(x)
		}
		for range resets {
			e.Reset()
		}
		if e.State() != [4]float64{} {
			t.Fatalf("state not zero after %d resets: %v", resets, e.State())
		}
		out := append([]float64(nil), input...)
		e.ProcessBlock(out)
		return out
	}

	once, twice := run(1), run(2)
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("sample %d: %v after one reset, %v after two", i, once[i], twice[i])
		}
	}
}

func TestProcessBlock_FlushesDenormals(t *testing.T) {
	e := NewEngine()
	e.SetCoefficients(Coefficients{B0: 1, A1: -0.5})
	e.SetState([4]float64{1e-310, 1e-312})

	buf := make([]float64, 4)
	e.ProcessBlock(buf)
	if e.State() != [4]float64{} {
		t.Fatalf("denormal registers not flushed: %v", e.State())
	}
}

func TestProcessBlock_ZeroAlloc(t *testing.T) {
	e := NewEngine()
	e.SetCoefficients(resonant())
	buf := testSignal(512)

	for _, topo := range Topologies {
		e.SetTopology(topo)
		allocs := testing.AllocsPerRun(100, func() {
			e.ProcessBlock(buf)
			e.ProcessSample(0.5)
		})
		if allocs != 0 {
			t.Fatalf("%v: %v allocations per run, want 0", topo, allocs)
		}
	}
}
