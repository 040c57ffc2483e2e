package biquad

// Coefficients holds the six transfer function coefficients of one
// second-order section:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (A0 + A1*z^-1 + A2*z^-2)
//
// A0 is the normalization reference. A zero A0 is treated as 1.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A0, A1, A2 float64 // feedback (denominator)
}

// Identity returns the coefficients of a unity-gain passthrough.
func Identity() Coefficients {
	return Coefficients{B0: 1, A0: 1}
}

// Normalized returns the coefficients scaled so that A0 == 1.
func (c Coefficients) Normalized() Coefficients {
	a0 := c.A0
	if a0 == 0 || a0 == 1 {
		c.A0 = 1
		return c
	}

	inv := 1 / a0
	return Coefficients{
		B0: c.B0 * inv,
		B1: c.B1 * inv,
		B2: c.B2 * inv,
		A0: 1,
		A1: c.A1 * inv,
		A2: c.A2 * inv,
	}
}
