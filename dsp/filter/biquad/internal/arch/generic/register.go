package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Kernels: [registry.NumTopologies]registry.ProcessBlockFn{
			registry.DirectFormI:            processDF1,
			registry.DirectFormII:           processDF2,
			registry.DirectFormITransposed:  processDF1T,
			registry.DirectFormIITransposed: processDF2T,
		},
	})
}

func processDF1(c registry.Coefficients, s *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := s[0], s[1], s[2], s[3]

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	s[0], s[1], s[2], s[3] = x1, x2, y1, y2
}

func processDF2(c registry.Coefficients, s *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	w1, w2 := s[0], s[1]

	for i, x := range buf {
		w := x - a1*w1 - a2*w2
		buf[i] = b0*w + b1*w1 + b2*w2
		w2, w1 = w1, w
	}

	s[0], s[1] = w1, w2
}

func processDF1T(c registry.Coefficients, s *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	s0, s1, t0, t1 := s[0], s[1], s[2], s[3]

	for i, x := range buf {
		v := x + s0
		s0 = s1 - a1*v
		s1 = -a2 * v
		buf[i] = b0*v + t0
		t0 = b1*v + t1
		t1 = b2 * v
	}

	s[0], s[1], s[2], s[3] = s0, s1, t0, t1
}

func processDF2T(c registry.Coefficients, s *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	d0, d1 := s[0], s[1]

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s[0], s[1] = d0, d1
}
