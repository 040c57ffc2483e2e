package biquad

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of the section
// at the given frequency (Hz) and sample rate (Hz).
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.ResponseAt(2 * math.Pi * freqHz / sampleRate)
}

// ResponseAt computes H(e^jw) at the digital frequency w in rad/sample.
func (c Coefficients) ResponseAt(w float64) complex128 {
	n := c.Normalized()
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(n.B0, 0) + complex(n.B1, 0)*ejw + complex(n.B2, 0)*ej2w
	den := complex(1, 0) + complex(n.A1, 0)*ejw + complex(n.A2, 0)*ej2w
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 for f in Hz.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	return c.MagnitudeSquaredAt(2 * math.Pi * freqHz / sampleRate)
}

// MagnitudeSquaredAt returns |H(e^jw)|^2 for w in rad/sample. Numerator and
// denominator are evaluated from their real and imaginary parts, which stays
// accurate for narrow sections close to DC where the expanded cosine form
// cancels catastrophically.
func (c Coefficients) MagnitudeSquaredAt(w float64) float64 {
	n := c.Normalized()
	s1, c1 := math.Sincos(w)
	s2, c2 := math.Sincos(2 * w)

	nr := n.B0 + n.B1*c1 + n.B2*c2
	ni := n.B1*s1 + n.B2*s2
	dr := 1 + n.A1*c1 + n.A2*c2
	di := n.A1*s1 + n.A2*s2
	return (nr*nr + ni*ni) / (dr*dr + di*di)
}

// Magnitude returns |H(f)|.
func (c Coefficients) Magnitude(freqHz, sampleRate float64) float64 {
	return math.Sqrt(c.MagnitudeSquared(freqHz, sampleRate))
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians at the given frequency.
// The result is in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// ImpulseResponse computes n samples of the impulse response h[n] by feeding
// an impulse through the active topology. Registers and bypass are saved and
// restored, so this method does not disturb a running engine.
func (e *Engine) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := e.state
	bypassed := e.bypassed
	e.bypassed = false
	e.Reset()

	ir := make([]float64, n)
	ir[0] = e.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = e.ProcessSample(0)
	}

	e.state = saved
	e.bypassed = bypassed
	return ir
}
