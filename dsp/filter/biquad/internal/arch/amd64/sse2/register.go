//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Kernels: [registry.NumTopologies]registry.ProcessBlockFn{
			registry.DirectFormI:            processDF1,
			registry.DirectFormIITransposed: processDF2T,
		},
	})
}

// processDF1 is a 2x-unrolled Direct Form I kernel. The remaining
// topologies fall back to the generic entry.
// TODO: replace with explicit SSE2 asm kernels.
func processDF1(c registry.Coefficients, s *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := s[0], s[1], s[2], s[3]

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		xa := buf[i]
		ya := b0*xa + b1*x1 + b2*x2 - a1*y1 - a2*y2

		xb := buf[i+1]
		yb := b0*xb + b1*xa + b2*x1 - a1*ya - a2*y1

		buf[i] = ya
		buf[i+1] = yb

		x1, x2 = xb, xa
		y1, y2 = yb, ya
	}

	if i < n {
		x := buf[i]
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	s[0], s[1], s[2], s[3] = x1, x2, y1, y2
}

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
