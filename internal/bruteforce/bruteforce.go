// Package bruteforce cross-checks the Heisenberg-picture simulator
// against exact dense state-vector evolution for qubit counts small
// enough that 2^n amplitudes fit in memory. It is test-only scaffolding,
// adapted from the teacher's single-qubit tensor-product gate
// application (hadamard.go's stride/half loop) and its normalized
// QuantumStateVector representation (state_vector.go), generalized
// from the fixed Hadamard transform to an arbitrary multi-qubit Pauli
// rotation exp(-i*t*P).
package bruteforce

import (
	"errors"
	"math"
	"math/cmplx"
)

// Letter mirrors pkg/paulistring.Letter without importing it, so this
// package stays independent test scaffolding rather than part of the
// production API surface.
type Letter byte

const (
	I Letter = iota
	X
	Y
	Z
)

// InitialState returns the computational basis state |0...0> for
// numQubits qubits.
func InitialState(numQubits int) []complex128 {
	state := make([]complex128, 1<<uint(numQubits))
	state[0] = 1
	return state
}

// Term is a single-qubit letter at a qubit position, the dense-state
// analogue of pkg/paulistring's sparse (letter, position) pairs.
type Term struct {
	Letter Letter
	Pos    int
}

// pauliAction returns, for basis state index x, the flipped index and
// phase factor of applying a single-qubit Pauli letter at bit position
// q: X flips the bit with no phase, Z leaves the bit but negates on 1,
// Y flips and applies +-i depending on the source bit.
func pauliAction(l Letter, q int, x int) (int, complex128) {
	bit := (x >> uint(q)) & 1
	switch l {
	case X:
		return x ^ (1 << uint(q)), 1
	case Z:
		if bit == 1 {
			return x, -1
		}
		return x, 1
	case Y:
		flipped := x ^ (1 << uint(q))
		if bit == 0 {
			return flipped, 1i
		}
		return flipped, -1i
	default:
		return x, 1
	}
}

// ApplyRotation applies exp(-i*t*P) to state, where P is the
// multi-qubit Pauli string described by terms (positions not listed
// are implicitly I). Mirrors ApplyHadamard's dense-amplitude loop
// (hadamard.go), generalized from the fixed single-qubit Hadamard
// matrix to an arbitrary weighted Pauli string: exp(-i*t*P) = cos(t)I
// - i*sin(t)*P, with P's action on a basis state computed letter by
// letter per Term.
func ApplyRotation(state []complex128, terms []Term, t float64) ([]complex128, error) {
	n := len(state)
	if n == 0 || (n&(n-1)) != 0 {
		return nil, errors.New("state vector length must be a power of two")
	}
	numQubits := int(math.Log2(float64(n)))
	for _, term := range terms {
		if term.Pos < 0 || term.Pos >= numQubits {
			return nil, errors.New("qubit index out of range")
		}
	}

	cos := complex(math.Cos(t), 0)
	sin := complex(0, -math.Sin(t))
	result := make([]complex128, n)
	for x, amp := range state {
		result[x] += cos * amp
		if amp == 0 {
			continue
		}
		px, phase := x, complex128(1)
		for _, term := range terms {
			var stepPhase complex128
			px, stepPhase = pauliAction(term.Letter, term.Pos, px)
			phase *= stepPhase
		}
		result[px] += sin * phase * amp
	}
	return result, nil
}

// ZExpectation computes <psi| Z_q |psi> on the given normalized state.
func ZExpectation(state []complex128, q int) (float64, error) {
	n := len(state)
	if n == 0 || (n&(n-1)) != 0 {
		return 0, errors.New("state vector length must be a power of two")
	}
	var sum float64
	for idx, amp := range state {
		sign := 1.0
		if (idx>>uint(q))&1 == 1 {
			sign = -1.0
		}
		sum += sign * real(cmplx.Conj(amp)*amp)
	}
	return sum, nil
}
