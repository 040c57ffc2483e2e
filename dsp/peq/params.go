package peq

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad"
)

var ErrUnknownParameter = errors.New("peq: unknown parameter")

// Snapshot is the set of parameter values one block is processed with.
//
// The zero value is not a neutral setting: a zero Mix outputs the dry signal
// only. Start from DefaultSnapshot.
type Snapshot struct {
	Frequency float64 // center frequency in Hz
	Resonance float64 // Q
	GainDB    float64 // gain at the center frequency in dB
	Transform biquad.Topology
	Bypassed  bool
	OutputDB  float64 // post-filter gain in dB
	Mix       float64 // dry/wet in percent, 100 is fully wet
}

// DefaultSnapshot returns the defaults of DefaultLayout.
func DefaultSnapshot() Snapshot {
	return DefaultLayout().Defaults()
}

// cell stores a float64 as atomic bits so it can be written by one
// goroutine and read by another without locks.
type cell struct {
	bits atomic.Uint64
}

func (c *cell) load() float64 { return math.Float64frombits(c.bits.Load()) }
func (c *cell) store(v float64) { c.bits.Store(math.Float64bits(v)) }

// Parameters holds the current plain parameter values. Setters clamp to the
// layout and are safe to call concurrently with Snapshot.
type Parameters struct {
	layout Layout

	frequency cell
	resonance cell
	gain      cell
	output    cell
	mix       cell
	transform atomic.Int32
	bypassed  atomic.Bool
}

// NewParameters returns parameters initialized to the defaults of layout.
func NewParameters(layout Layout) *Parameters {
	p := &Parameters{layout: layout}
	p.Restore(layout.Defaults())
	return p
}

// Layout returns the declaration the parameters clamp against.
func (p *Parameters) Layout() Layout { return p.layout }

func (p *Parameters) SetFrequency(hz float64) { p.frequency.store(p.layout.Frequency.Clamp(hz)) }
func (p *Parameters) SetResonance(q float64) { p.resonance.store(p.layout.Resonance.Clamp(q)) }
func (p *Parameters) SetGainDB(db float64) { p.gain.store(p.layout.Gain.Clamp(db)) }
func (p *Parameters) SetOutputDB(db float64) { p.output.store(p.layout.Output.Clamp(db)) }
func (p *Parameters) SetMix(percent float64) { p.mix.store(p.layout.Mix.Clamp(percent)) }
func (p *Parameters) SetBypassed(bypassed bool) { p.bypassed.Store(bypassed) }
func (p *Parameters) SetTransform(t biquad.Topology) {
	p.transform.Store(int32(biquad.TopologyFromIndex(int(t))))
}

// Set assigns a plain value by parameter ID. Transform takes the topology
// index and bypass treats values >= 0.5 as on.
func (p *Parameters) Set(id string, plain float64) error {
	switch id {
	case FrequencyID:
		p.SetFrequency(plain)
	case ResonanceID:
		p.SetResonance(plain)
	case GainID:
		p.SetGainDB(plain)
	case TransformID:
		p.SetTransform(biquad.TopologyFromIndex(int(p.layout.Transform.Clamp(plain))))
	case BypassID:
		p.SetBypassed(plain >= 0.5)
	case OutputID:
		p.SetOutputDB(plain)
	case MixID:
		p.SetMix(plain)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}
	return nil
}

// SetNormalized assigns a value in [0, 1] by parameter ID.
func (p *Parameters) SetNormalized(id string, normalized float64) error {
	r, ok := p.layout.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}
	return p.Set(id, r.Denormalize(normalized))
}

// Get returns the plain value of a parameter by ID.
func (p *Parameters) Get(id string) (float64, error) {
	s := p.Snapshot()
	switch id {
	case FrequencyID:
		return s.Frequency, nil
	case ResonanceID:
		return s.Resonance, nil
	case GainID:
		return s.GainDB, nil
	case TransformID:
		return float64(s.Transform), nil
	case BypassID:
		if s.Bypassed {
			return 1, nil
		}
		return 0, nil
	case OutputID:
		return s.OutputDB, nil
	case MixID:
		return s.Mix, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, id)
	}
}

// Snapshot reads every cell once. Each field is read atomically; a
// concurrent writer may land between fields.
func (p *Parameters) Snapshot() Snapshot {
	return Snapshot{
		Frequency: p.frequency.load(),
		Resonance: p.resonance.load(),
		GainDB:    p.gain.load(),
		Transform: biquad.Topology(p.transform.Load()),
		Bypassed:  p.bypassed.Load(),
		OutputDB:  p.output.load(),
		Mix:       p.mix.load(),
	}
}

// Restore writes every field of s, clamped to the layout.
func (p *Parameters) Restore(s Snapshot) {
	p.SetFrequency(s.Frequency)
	p.SetResonance(s.Resonance)
	p.SetGainDB(s.GainDB)
	p.SetTransform(s.Transform)
	p.SetBypassed(s.Bypassed)
	p.SetOutputDB(s.OutputDB)
	p.SetMix(s.Mix)
}
