//go:build arm64 && !purego

package neon

import "github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad/internal/arch/registry"

// processDF2T is a 2x-unrolled Direct Form II transposed kernel.
// TODO: replace with explicit NEON asm kernels.
func processDF2T(c registry.Coefficients, s *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	d0, d1 := s[0], s[1]

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0n
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s[0], s[1] = d0, d1
}

func processDF1T(c registry.Coefficients, s *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	s0, s1, t0, t1 := s[0], s[1], s[2], s[3]

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		va := buf[i] + s0
		ya := b0*va + t0
		s0a := s1 - a1*va
		t0a := b1*va + t1

		vb := buf[i+1] + s0a
		buf[i+1] = b0*vb + t0a
		buf[i] = ya

		s0 = -a2*va - a1*vb
		s1 = -a2 * vb
		t0 = b2*va + b1*vb
		t1 = b2 * vb
	}

	if i < n {
		v := buf[i] + s0
		s0 = s1 - a1*v
		s1 = -a2 * v
		buf[i] = b0*v + t0
		t0 = b1*v + t1
		t1 = b2 * v
	}

	s[0], s[1], s[2], s[3] = s0, s1, t0, t1
}
