// Package randcircuit generates reproducible random Pauli-rotation
// circuits for fuzz testing and pruning benchmarks. It is grounded on
// the teacher's QuantumSafeRandom (quantum_safe_random.go), which
// drives a go.dedis.ch/kyber/v3 BLAKE2XB extendable-output stream from
// a seed; here the same stream construction gives bit-for-bit
// reproducible circuits across runs for a given seed, which
// crypto/rand cannot offer.
package randcircuit

import (
	"io"
	"math"

	"go.dedis.ch/kyber/v3/xof/blake2xb"

	"github.com/hydraresearch/psim/pkg/gate"
	"github.com/hydraresearch/psim/pkg/paulistring"
)

// Source is a seeded, reproducible byte stream for sampling random
// circuits.
type Source struct {
	stream io.Reader
}

// NewSource builds a Source from an arbitrary-length seed. The same
// seed always yields the same sequence of draws.
func NewSource(seed []byte) *Source {
	return &Source{stream: blake2xb.New(seed)}
}

func (s *Source) readByte() byte {
	var b [1]byte
	if _, err := io.ReadFull(s.stream, b[:]); err != nil {
		panic(err) // blake2xb's XOF stream is inexhaustible; a read error here is a bug, not an input condition
	}
	return b[0]
}

func (s *Source) readUint64() uint64 {
	var b [8]byte
	if _, err := io.ReadFull(s.stream, b[:]); err != nil {
		panic(err)
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

// Float64 returns a pseudo-random value uniform on [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.readUint64()>>11) / (1 << 53)
}

// Intn returns a pseudo-random value uniform on [0, n).
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("randcircuit: Intn called with n <= 0")
	}
	return int(s.readUint64() % uint64(n))
}

// letters are the single-qubit rotation generators sampled for random
// gates; I is excluded since exp(-i*t*I) is a global phase, not a
// rotation the Heisenberg update distinguishes from the identity gate.
var letters = [3]paulistring.Letter{paulistring.X, paulistring.Y, paulistring.Z}

// Letter draws a uniformly random non-identity Pauli letter.
func (s *Source) Letter() paulistring.Letter {
	return letters[s.Intn(len(letters))]
}

// Circuit draws numGates single-qubit Pauli-rotation gates over the
// given qubit count (width chunks n, CHUNK_SIZE*n qubits total), with
// rotation angles uniform on [-pi, pi).
func Circuit(seed []byte, n, qubits, numGates int) ([]gate.Gate, error) {
	s := NewSource(seed)
	gates := make([]gate.Gate, 0, numGates)
	for i := 0; i < numGates; i++ {
		pos := s.Intn(qubits)
		l := s.Letter()
		ps, err := paulistring.NewBuilder(n).Set(l, pos).Build()
		if err != nil {
			return nil, err
		}
		theta := s.Float64()*2*math.Pi - math.Pi
		gates = append(gates, gate.New(ps, theta))
	}
	return gates, nil
}
