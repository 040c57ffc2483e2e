package biquad

import (
	"fmt"
	"strings"
)

// Topology selects the recursion an Engine runs.
type Topology int

const (
	// DirectFormI keeps two input and two output samples (four registers).
	// It tolerates coefficient changes well.
	DirectFormI Topology = iota

	// DirectFormII keeps two internal node values. At high resonance the
	// node can carry much more energy than the output.
	DirectFormII

	// DirectFormITransposed runs the poles before the zeros, four registers.
	DirectFormITransposed

	// DirectFormIITransposed keeps two registers and behaves best under
	// live coefficient modulation. It is the default.
	DirectFormIITransposed

	numTopologies
)

// Topologies lists all topologies in index order.
var Topologies = []Topology{
	DirectFormI,
	DirectFormII,
	DirectFormITransposed,
	DirectFormIITransposed,
}

// TopologyFromIndex maps a host choice index (0..3) to a Topology. Any other
// index yields DirectFormIITransposed.
func TopologyFromIndex(i int) Topology {
	t := Topology(i)
	if !t.Valid() {
		return DirectFormIITransposed
	}
	return t
}

// Valid reports whether t names one of the four topologies.
func (t Topology) Valid() bool {
	return t >= DirectFormI && t < numTopologies
}

// Registers returns the number of state registers the topology uses.
func (t Topology) Registers() int {
	switch t {
	case DirectFormI, DirectFormITransposed:
		return 4
	default:
		return 2
	}
}

func (t Topology) String() string {
	switch t {
	case DirectFormI:
		return "Direct Form I"
	case DirectFormII:
		return "Direct Form II"
	case DirectFormITransposed:
		return "Direct Form I (t)"
	case DirectFormIITransposed:
		return "Direct Form II (t)"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// ParseTopology accepts the names produced by String as well as the short
// forms df1, df2, df1t and df2t (case-insensitive).
func ParseTopology(s string) (Topology, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "-", "", "_", "", "(", "", ")", "").Replace(key)

	switch key {
	case "df1", "dfi", "directformi", "0":
		return DirectFormI, nil
	case "df2", "dfii", "directformii", "1":
		return DirectFormII, nil
	case "df1t", "dfit", "directformit", "2":
		return DirectFormITransposed, nil
	case "df2t", "dfiit", "directformiit", "3":
		return DirectFormIITransposed, nil
	default:
		return DirectFormIITransposed, fmt.Errorf("biquad: unknown topology %q", s)
	}
}
