package orfanidis

import "math"

// ReferenceGain is the linear gain at DC and Nyquist (G0) of every section
// designed by this package.
const ReferenceGain = 1.0

// Scalars are the intermediate design quantities of one peaking section.
type Scalars struct {
	G  float64 // linear gain at the center frequency
	GB float64 // linear gain at the band edges
	W0 float64 // pre-warped center, tan(w0/2)
	DW float64 // pre-warped bandwidth, tan(dw/2)
}

// CenterRadians returns the digital center frequency in rad/sample.
func (s Scalars) CenterRadians() float64 {
	return 2 * math.Atan(s.W0)
}

// BandwidthRadians returns the digital bandwidth in rad/sample.
func (s Scalars) BandwidthRadians() float64 {
	return 2 * math.Atan(s.DW)
}

// BandEdges returns the lower and upper digital frequencies (rad/sample)
// at which the designed section has gain GB. Both lie strictly inside
// (0, pi) and are placed symmetrically around acos(cos w0 * cos(dw/2)).
func (s Scalars) BandEdges() (lower, upper float64) {
	half := math.Atan(s.DW)
	mid := math.Acos(math.Cos(s.CenterRadians()) * math.Cos(half))
	return mid - half, mid + half
}

// Converter maps gain, frequency and resonance to Scalars for the sample
// rate given to Prepare.
type Converter struct {
	sampleRate float64
	last       Scalars
}

// Prepare sets the sample rate used by subsequent calls to Calculate.
func (c *Converter) Prepare(sampleRate float64) {
	if !(sampleRate > 0) {
		panic("orfanidis: sample rate must be positive")
	}
	c.sampleRate = sampleRate
	c.Reset()
}

// SampleRate returns the prepared sample rate, or zero.
func (c *Converter) SampleRate() float64 {
	return c.sampleRate
}

// Reset forgets the last computed scalars.
func (c *Converter) Reset() {
	c.last = Scalars{}
}

// Calculate computes the design scalars:
//
//	G  = 10^(gainDB/20)
//	GB = sqrt(G0*G)
//	W0 = tan(pi*f/fs)
//	DW = W0 / (Q*(1+W0^2))
//
// The result is not clamped. Frequencies at or above Nyquist, or a
// non-positive resonance, yield meaningless scalars.
func (c *Converter) Calculate(gainDB, frequencyHz, resonance float64) Scalars {
	g := math.Pow(10, gainDB/20)
	w0 := math.Tan(math.Pi * frequencyHz / c.sampleRate)

	c.last = Scalars{
		G:  g,
		GB: math.Sqrt(ReferenceGain * g),
		W0: w0,
		DW: w0 / (resonance * (1 + w0*w0)),
	}

	return c.last
}

// Scalars returns the result of the last Calculate call.
func (c *Converter) Scalars() Scalars {
	return c.last
}
