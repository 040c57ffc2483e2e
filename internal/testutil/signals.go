// Package testutil holds signal generators and tolerance checks shared by
// the filter tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Planar returns numChannels independent noise channels of the given length.
// Channel i uses seed base+i.
func Planar(base int64, numChannels, length int) [][]float64 {
	out := make([][]float64, numChannels)
	for ch := range out {
		out[ch] = DeterministicNoise(base+int64(ch), 0.5, length)
	}
	return out
}

// Clone deep-copies a planar buffer.
func Clone(buf [][]float64) [][]float64 {
	out := make([][]float64, len(buf))
	for ch := range buf {
		out[ch] = append([]float64(nil), buf[ch]...)
	}
	return out
}

// LogSpace returns n values spaced logarithmically from lo to hi inclusive.
// Both bounds must be positive.
func LogSpace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}
	out[n-1] = hi
	return out
}
