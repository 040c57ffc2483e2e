package orfanidis

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad"
)

var ErrInvalidParams = errors.New("orfanidis: invalid parameters")

// PeakingFromFreqQGain designs a peaking section from audio-style parameters:
// sample rate and center frequency in Hz, resonance Q and gain in dB.
//
// Unlike Converter and Calculator it validates its inputs and returns an
// error wrapping ErrInvalidParams when the center is not strictly between
// 0 and Nyquist, Q is not positive, or any input is not finite.
func PeakingFromFreqQGain(sampleRate, f0Hz, Q, gainDB float64) (biquad.Coefficients, error) {
	if hasInvalidFloat(sampleRate, f0Hz, Q, gainDB) {
		return biquad.Coefficients{}, fmt.Errorf("%w: non-finite input", ErrInvalidParams)
	}
	if sampleRate <= 0 {
		return biquad.Coefficients{}, fmt.Errorf("%w: sample rate %g", ErrInvalidParams, sampleRate)
	}
	if f0Hz <= 0 || f0Hz >= sampleRate/2 {
		return biquad.Coefficients{}, fmt.Errorf("%w: frequency %g outside (0, %g)", ErrInvalidParams, f0Hz, sampleRate/2)
	}
	if Q <= 0 {
		return biquad.Coefficients{}, fmt.Errorf("%w: Q %g", ErrInvalidParams, Q)
	}

	var (
		conv Converter
		calc Calculator
	)
	conv.Prepare(sampleRate)

	return calc.Design(conv.Calculate(gainDB, f0Hz, Q)), nil
}

func hasInvalidFloat(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
