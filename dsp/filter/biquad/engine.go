//nolint:funcorder
package biquad

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/orfanidis-biquad/dsp/core"
	archregistry "github.com/cwbudde/orfanidis-biquad/dsp/filter/biquad/internal/arch/registry"
)

// Engine is the filter runtime of one audio channel: installed coefficients,
// the active topology and its registers.
//
// The zero value is not usable; create engines with NewEngine.
type Engine struct {
	coeffs   Coefficients
	norm     archregistry.Coefficients
	state    archregistry.State
	topology Topology
	step     stepFn
	block    archregistry.ProcessBlockFn
	bypassed bool
}

var (
	blockKernels         [numTopologies]archregistry.ProcessBlockFn
	blockKernelsInitOnce sync.Once
)

// NewEngine returns an identity-coefficient engine running
// DirectFormIITransposed with zero state.
func NewEngine() *Engine {
	blockKernelsInitOnce.Do(initBlockKernels)

	e := &Engine{}
	e.SetCoefficients(Identity())
	e.selectTopology(DirectFormIITransposed)

	return e
}

func initBlockKernels() {
	features := cpu.DetectFeatures()
	for t := range numTopologies {
		entry := archregistry.Global.Lookup(features, int(t))
		if entry == nil {
			panic("biquad: no ProcessBlock kernel registered for " + t.String() + " (missing generic fallback?)")
		}

		blockKernels[t] = entry.Kernels[t]
	}
}

// SetCoefficients installs a new coefficient set, normalized by A0. It takes
// effect on the next processed sample and leaves the registers untouched.
func (e *Engine) SetCoefficients(c Coefficients) {
	e.coeffs = c

	n := c.Normalized()
	e.norm = archregistry.Coefficients{
		B0: n.B0,
		B1: n.B1,
		B2: n.B2,
		A1: n.A1,
		A2: n.A2,
	}
}

// Coefficients returns the coefficient set as installed (not normalized).
func (e *Engine) Coefficients() Coefficients {
	return e.coeffs
}

// SetTopology switches the active recursion. Registers of one topology hold
// different quantities than those of another, so a change of topology also
// clears the state. Setting the active topology again is a no-op. Invalid
// values select DirectFormIITransposed.
func (e *Engine) SetTopology(t Topology) {
	if !t.Valid() {
		t = DirectFormIITransposed
	}

	if t == e.topology {
		return
	}

	e.selectTopology(t)
	e.Reset()
}

func (e *Engine) selectTopology(t Topology) {
	e.topology = t
	e.step = steps[t]
	e.block = blockKernels[t]
}

// Topology returns the active topology.
func (e *Engine) Topology() Topology {
	return e.topology
}

// SetBypassed enables or disables bypass. A bypassed engine returns its input
// and does not advance its registers.
func (e *Engine) SetBypassed(bypassed bool) {
	e.bypassed = bypassed
}

// Bypassed reports whether the engine is bypassed.
func (e *Engine) Bypassed() bool {
	return e.bypassed
}

// ProcessSample filters one input sample and returns the output.
func (e *Engine) ProcessSample(x float64) float64 {
	if e.bypassed {
		return x
	}

	return e.step(&e.norm, &e.state, x)
}

// ProcessBlock filters a block of samples in place. Zero-alloc.
//
// Registers are flushed to zero once they decay below the denormal range,
// so block output can differ from repeated ProcessSample calls by at most
// that amount.
func (e *Engine) ProcessBlock(buf []float64) {
	if e.bypassed || len(buf) == 0 {
		return
	}

	e.block(e.norm, &e.state, buf)

	for i := range e.state {
		e.state[i] = core.FlushDenormals(e.state[i])
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length. Zero-alloc.
func (e *Engine) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	copy(dst, src)
	e.ProcessBlock(dst[:len(src)])
}

// Reset clears all registers to zero.
func (e *Engine) Reset() {
	e.state = archregistry.State{}
}

// State returns a copy of the registers. See Topology for how many of the
// four values are in use.
func (e *Engine) State() [4]float64 {
	return e.state
}

// SetState restores previously saved registers.
func (e *Engine) SetState(state [4]float64) {
	e.state = state
}
