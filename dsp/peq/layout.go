package peq

import (
	"math"

	"github.com/cwbudde/orfanidis-biquad/dsp/core"
	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad"
)

// Parameter IDs as exposed to hosts.
const (
	FrequencyID = "frequency"
	ResonanceID = "resonance"
	GainID      = "gain"
	TransformID = "transform"
	BypassID    = "bypass"
	OutputID    = "output"
	MixID       = "mix"
)

// nyquistGuard is the fraction of the sample rate Layout.Clamp keeps the
// center frequency below.
const nyquistGuard = 0.49

// Range declares a plain-valued parameter.
type Range struct {
	ID      string
	Name    string
	Unit    string
	Min     float64
	Max     float64
	Default float64
	Steps   int // number of discrete steps, 0 for continuous
}

// Clamp limits v to [Min, Max]. NaN maps to Default.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Default
	}
	v = core.Clamp(v, r.Min, r.Max)
	if r.Steps > 0 {
		step := (r.Max - r.Min) / float64(r.Steps)
		v = r.Min + math.Round((v-r.Min)/step)*step
	}
	return v
}

// Normalize maps a plain value to [0, 1].
func (r Range) Normalize(plain float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	return core.Clamp((r.Clamp(plain)-r.Min)/(r.Max-r.Min), 0, 1)
}

// Denormalize maps a normalized value in [0, 1] to the plain range.
func (r Range) Denormalize(normalized float64) float64 {
	return r.Clamp(r.Min + core.Clamp(normalized, 0, 1)*(r.Max-r.Min))
}

// Layout is the parameter declaration of the equalizer.
type Layout struct {
	Frequency Range
	Resonance Range
	Gain      Range
	Transform Range
	Output    Range
	Mix       Range
	Bypass    Range
}

// DefaultLayout returns the stock parameter ranges and defaults.
func DefaultLayout() Layout {
	return Layout{
		Frequency: Range{ID: FrequencyID, Name: "Frequency", Unit: "Hz", Min: 20, Max: 20000, Default: 632.455},
		Resonance: Range{ID: ResonanceID, Name: "Resonance", Min: 0.1, Max: 100, Default: 1},
		Gain:      Range{ID: GainID, Name: "Gain", Unit: "dB", Min: -30, Max: 30, Default: 0},
		Transform: Range{ID: TransformID, Name: "Transform", Min: 0, Max: 3, Default: float64(biquad.DirectFormIITransposed), Steps: 3},
		Output: Range{
			ID: OutputID, Name: "Output", Unit: "dB",
			Min: core.LinearToDB(math.Ldexp(1, -20)), Max: core.LinearToDB(16), Default: 0,
		},
		Mix:    Range{ID: MixID, Name: "Mix", Unit: "%", Min: 0, Max: 100, Default: 100},
		Bypass: Range{ID: BypassID, Name: "Bypass", Min: 0, Max: 1, Default: 0, Steps: 1},
	}
}

// Ranges lists every declared parameter in host order.
func (l Layout) Ranges() []Range {
	return []Range{l.Frequency, l.Resonance, l.Gain, l.Transform, l.Bypass, l.Output, l.Mix}
}

// Lookup returns the range with the given ID.
func (l Layout) Lookup(id string) (Range, bool) {
	for _, r := range l.Ranges() {
		if r.ID == id {
			return r, true
		}
	}
	return Range{}, false
}

// Defaults returns the snapshot made of every parameter's default value.
func (l Layout) Defaults() Snapshot {
	return Snapshot{
		Frequency: l.Frequency.Default,
		Resonance: l.Resonance.Default,
		GainDB:    l.Gain.Default,
		Transform: biquad.TopologyFromIndex(int(l.Transform.Default)),
		Bypassed:  l.Bypass.Default >= 0.5,
		OutputDB:  l.Output.Default,
		Mix:       l.Mix.Default,
	}
}

// Clamp returns s with every field inside its declared range. The center
// frequency is additionally kept below 0.49 times sampleRate; the processor
// itself does not guard against frequencies at or above Nyquist.
// A non-positive sampleRate skips the Nyquist guard.
func (l Layout) Clamp(s Snapshot, sampleRate float64) Snapshot {
	freq := l.Frequency
	if sampleRate > 0 {
		freq.Max = min(freq.Max, nyquistGuard*sampleRate)
		freq.Default = min(freq.Default, freq.Max)
	}

	s.Frequency = freq.Clamp(s.Frequency)
	s.Resonance = l.Resonance.Clamp(s.Resonance)
	s.GainDB = l.Gain.Clamp(s.GainDB)
	s.Transform = biquad.TopologyFromIndex(int(s.Transform))
	s.OutputDB = l.Output.Clamp(s.OutputDB)
	s.Mix = l.Mix.Clamp(s.Mix)
	return s
}
