package response

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/orfanidis-biquad/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by the analyzer.
var (
	ErrEmptyIR           = errors.New("response: impulse response is empty")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidLength     = errors.New("response: length must be a power of two >= 8")
	ErrNoDecay           = errors.New("response: impulse response does not decay within the analysis length")
)

const (
	// tailFraction is the share of the impulse response checked for decay.
	tailFraction = 8
	// decayLimit is the largest tail-to-total energy ratio still counted as decayed.
	decayLimit = 1e-12
)

// ImpulseResponder is implemented by filters that can render their own
// impulse response without disturbing their running state.
type ImpulseResponder interface {
	ImpulseResponse(n int) []float64
}

// Result is a measured magnitude response.
type Result struct {
	SampleRate float64
	Length     int       // FFT length
	Magnitude  []float64 // |H| for bins 0..Length/2
	TailRatio  float64   // energy of the last eighth of the IR relative to the whole
}

// BinFrequency returns the center frequency of bin k in Hz.
func (r Result) BinFrequency(k int) float64 {
	return float64(k) * r.SampleRate / float64(r.Length)
}

// At returns |H| at freqHz, linearly interpolated between bins.
// Frequencies outside [0, Nyquist] are clamped.
func (r Result) At(freqHz float64) float64 {
	if len(r.Magnitude) == 0 {
		return 0
	}

	pos := core.Clamp(freqHz*float64(r.Length)/r.SampleRate, 0, float64(len(r.Magnitude)-1))
	k := int(pos)
	if k >= len(r.Magnitude)-1 {
		return r.Magnitude[len(r.Magnitude)-1]
	}

	frac := pos - float64(k)
	return r.Magnitude[k]*(1-frac) + r.Magnitude[k+1]*frac
}

// AtDB is At in dB.
func (r Result) AtDB(freqHz float64) float64 {
	return core.LinearToDB(r.At(freqHz))
}

// Peak returns the frequency and gain of the largest bin.
func (r Result) Peak() (freqHz, gain float64) {
	if len(r.Magnitude) == 0 {
		return 0, 0
	}
	k := floats.MaxIdx(r.Magnitude)
	return r.BinFrequency(k), r.Magnitude[k]
}

// Analyzer computes magnitude responses from impulse responses.
type Analyzer struct {
	SampleRate float64
	Length     int
}

// NewAnalyzer creates an analyzer for the given sample rate and FFT length.
func NewAnalyzer(sampleRate float64, length int) *Analyzer {
	return &Analyzer{SampleRate: sampleRate, Length: length}
}

func (a *Analyzer) validate() error {
	if !(a.SampleRate > 0) {
		return ErrInvalidSampleRate
	}
	if a.Length < 8 || bits.OnesCount(uint(a.Length)) != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, a.Length)
	}
	return nil
}

// Measure renders Length samples of f's impulse response and analyzes them.
func (a *Analyzer) Measure(f ImpulseResponder) (Result, error) {
	if err := a.validate(); err != nil {
		return Result{}, err
	}
	return a.Analyze(f.ImpulseResponse(a.Length))
}

// Analyze computes the magnitude response of ir. Shorter responses are
// zero-padded to Length; longer ones are an error.
func (a *Analyzer) Analyze(ir []float64) (Result, error) {
	if err := a.validate(); err != nil {
		return Result{}, err
	}
	if len(ir) == 0 {
		return Result{}, ErrEmptyIR
	}
	if len(ir) > a.Length {
		return Result{}, fmt.Errorf("%w: impulse response has %d samples, analyzer %d",
			ErrInvalidLength, len(ir), a.Length)
	}

	tail := TailRatio(ir)
	if math.IsNaN(tail) || tail > decayLimit {
		return Result{}, fmt.Errorf("%w: tail energy ratio %.3g", ErrNoDecay, tail)
	}

	plan, err := algofft.NewPlan64(a.Length)
	if err != nil {
		return Result{}, fmt.Errorf("response: fft plan: %w", err)
	}

	in := make([]complex128, a.Length)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, a.Length)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("response: fft: %w", err)
	}

	bins := a.Length/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return Result{
		SampleRate: a.SampleRate,
		Length:     a.Length,
		Magnitude:  mag,
		TailRatio:  tail,
	}, nil
}

// TailRatio returns the energy of the last eighth of ir relative to its
// total energy. A silent response has ratio 0, a non-finite one NaN.
func TailRatio(ir []float64) float64 {
	total := floats.Norm(ir, 2)
	switch {
	case math.IsNaN(total) || math.IsInf(total, 0):
		return math.NaN()
	case total == 0:
		return 0
	}

	tail := floats.Norm(ir[len(ir)-len(ir)/tailFraction:], 2)
	return (tail * tail) / (total * total)
}
