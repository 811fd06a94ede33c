// Package gate defines the Pauli-rotation gate record used by the
// simulator's circuit (spec.md §4.2).
package gate

import "github.com/hydraresearch/psim/pkg/paulistring"

// Gate is the immutable pair (P, t) denoting the unitary exp(-i*t*P).
type Gate struct {
	ps   paulistring.PauliString
	time float64
}

// New constructs a Gate. No validation beyond what PauliString already
// enforces at construction (spec.md §4.2).
func New(ps paulistring.PauliString, time float64) Gate {
	return Gate{ps: ps, time: time}
}

func (g Gate) Time() float64 { return g.time }

func (g Gate) PauliString() paulistring.PauliString { return g.ps }
