package orfanidis

import (
	"math"

	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad"
)

// Calculator holds the coefficients of the most recent design.
type Calculator struct {
	coeffs biquad.Coefficients
}

// Calculate designs a peaking section from reference gain G0, center gain G,
// band-edge gain GB, pre-warped center W0 and pre-warped bandwidth DW:
//
//	c = (1-W0^2)/(1+W0^2)
//	beta = DW * sqrt(|GB^2-G0^2| / |G^2-GB^2|)
//	B0 = G0 + G*beta   B1 = -2*G0*c   B2 = G0 - G*beta
//	A0 = 1 + beta      A1 = -2*c      A2 = 1 - beta
//
// When the gain ratio is degenerate (flat section) beta falls back to DW,
// which yields the identity scaled by G0. The coefficients are returned
// unnormalized and kept for the accessors.
func (k *Calculator) Calculate(G0, G, GB, W0, DW float64) biquad.Coefficients {
	w2 := W0 * W0
	c := (1 - w2) / (1 + w2)

	beta := DW
	num := math.Abs(GB*GB - G0*G0)
	den := math.Abs(G*G - GB*GB)
	if num > 0 && den > 0 {
		beta = DW * math.Sqrt(num/den)
	}

	k.coeffs = biquad.Coefficients{
		B0: G0 + G*beta,
		B1: -2 * G0 * c,
		B2: G0 - G*beta,
		A0: 1 + beta,
		A1: -2 * c,
		A2: 1 - beta,
	}

	return k.coeffs
}

// Design is Calculate with G0 = ReferenceGain and the quantities taken from s.
func (k *Calculator) Design(s Scalars) biquad.Coefficients {
	return k.Calculate(ReferenceGain, s.G, s.GB, s.W0, s.DW)
}

// Coefficients returns the last designed coefficients.
func (k *Calculator) Coefficients() biquad.Coefficients { return k.coeffs }

func (k *Calculator) B0() float64 { return k.coeffs.B0 }
func (k *Calculator) B1() float64 { return k.coeffs.B1 }
func (k *Calculator) B2() float64 { return k.coeffs.B2 }
func (k *Calculator) A0() float64 { return k.coeffs.A0 }
func (k *Calculator) A1() float64 { return k.coeffs.A1 }
func (k *Calculator) A2() float64 { return k.coeffs.A2 }
