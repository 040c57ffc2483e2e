//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Kernels: [registry.NumTopologies]registry.ProcessBlockFn{
			registry.DirectFormII:           processDF2,
			registry.DirectFormIITransposed: processDF2T,
		},
	})
}

// processDF2T is a 4x-unrolled Direct Form II transposed kernel selected for
// AVX2-capable CPUs.
// TODO: replace with explicit AVX2 asm kernel.
func processDF2T(c registry.Coefficients, s *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	d0, d1 := s[0], s[1]

	i := 0
	n := len(buf)
	for ; i+3 < n; i += 4 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0n0 := b1*x0 - a1*y0 + d1
		d1n0 := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0n0
		d0n1 := b1*x1 - a1*y1 + d1n0
		d1n1 := b2*x1 - a2*y1

		x2 := buf[i+2]
		y2 := b0*x2 + d0n1
		d0n2 := b1*x2 - a1*y2 + d1n1
		d1n2 := b2*x2 - a2*y2

		x3 := buf[i+3]
		y3 := b0*x3 + d0n2
		d0 = b1*x3 - a1*y3 + d1n2
		d1 = b2*x3 - a2*y3

		buf[i] = y0
		buf[i+1] = y1
		buf[i+2] = y2
		buf[i+3] = y3
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s[0], s[1] = d0, d1
}

// processDF2 is the canonical Direct Form II recursion, 4x unrolled with the
// delay line kept in locals.
func processDF2(c registry.Coefficients, s *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	w1, w2 := s[0], s[1]

	i := 0
	n := len(buf)
	for ; i+3 < n; i += 4 {
		wa := buf[i] - a1*w1 - a2*w2
		buf[i] = b0*wa + b1*w1 + b2*w2

		wb := buf[i+1] - a1*wa - a2*w1
		buf[i+1] = b0*wb + b1*wa + b2*w1

		wc := buf[i+2] - a1*wb - a2*wa
		buf[i+2] = b0*wc + b1*wb + b2*wa

		wd := buf[i+3] - a1*wc - a2*wb
		buf[i+3] = b0*wd + b1*wc + b2*wb

		w1, w2 = wd, wc
	}

	for ; i < n; i++ {
		w := buf[i] - a1*w1 - a2*w2
		buf[i] = b0*w + b1*w1 + b2*w2
		w2, w1 = w1, w
	}

	s[0], s[1] = w1, w2
}
