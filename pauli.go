package psim

import "github.com/hydraresearch/psim/pkg/paulistring"

// Letter is a single-qubit Pauli operator, one of I, X, Y, Z.
type Letter = paulistring.Letter

const (
	I = paulistring.I
	X = paulistring.X
	Y = paulistring.Y
	Z = paulistring.Z
)

// PauliBuilder constructs a Pauli string by chaining Set calls, e.g.
// psim.NewPauliBuilder(2).Set(psim.X, 0).Set(psim.Y, 15).Build().
type PauliBuilder = paulistring.Builder

// NewPauliBuilder starts a builder for an n-chunk (64*n qubit) string.
func NewPauliBuilder(n int) *PauliBuilder {
	return paulistring.NewBuilder(n)
}
