//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Kernels: [registry.NumTopologies]registry.ProcessBlockFn{
			registry.DirectFormITransposed:  processDF1T,
			registry.DirectFormIITransposed: processDF2T,
		},
	})
}
