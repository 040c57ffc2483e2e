// Package registry holds the block kernels available to biquad engines,
// one kernel per filter topology, ranked by CPU feature level.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Topology indices. They mirror biquad.Topology; the registry cannot import
// the biquad package without a cycle.
const (
	DirectFormI = iota
	DirectFormII
	DirectFormITransposed
	DirectFormIITransposed

	NumTopologies
)

// Coefficients are biquad transfer coefficients (a0 normalized to 1).
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// State is the register file of one channel. Its meaning depends on the
// topology:
//
//	DirectFormI            x1, x2, y1, y2
//	DirectFormII           w1, w2, -, -
//	DirectFormITransposed  s0, s1, t0, t1
//	DirectFormIITransposed d0, d1, -, -
type State [4]float64

// ProcessBlockFn filters buf in place, advancing s.
type ProcessBlockFn func(c Coefficients, s *State, buf []float64)

// OpEntry is one registered kernel set. A nil kernel means the entry does
// not implement that topology and lookup falls through to the next entry.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Kernels   [NumTopologies]ProcessBlockFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default biquad kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry supported by features that
// implements the given topology.
func (r *OpRegistry) Lookup(features cpu.Features, topology int) *OpEntry {
	if topology < 0 || topology >= NumTopologies {
		return nil
	}

	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.Kernels[topology] == nil {
			continue
		}
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
