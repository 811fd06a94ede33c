// Package psim implements a Heisenberg-picture Pauli-path quantum
// circuit simulator: given a layered circuit of Pauli rotation gates
// and an initial Pauli observable, it evolves the observable backwards
// through the circuit and reports the expectation value on |0...0>
// after each layer, pruning low-weight terms to stay tractable beyond
// exact state-vector simulation.
package psim

import (
	"fmt"
	"io"
	"os"

	"github.com/hydraresearch/psim/internal/digest"
	"github.com/hydraresearch/psim/internal/evalcache"
	"github.com/hydraresearch/psim/pkg/gate"
	"github.com/hydraresearch/psim/pkg/observable"
	"github.com/hydraresearch/psim/pkg/paulistring"
)

// LetterAt pairs a textual Pauli code ('I','X','Y','Z') with a qubit
// position; PauliDescription is the wire shape of add_gate's
// pauli_desc and execute's observable_desc (spec.md §6).
type (
	LetterAt         = paulistring.LetterAt
	PauliDescription = []LetterAt
)

// Simulator holds an append-only ordered list of gates over a fixed
// qubit width and drives repeated Heisenberg evolution of an
// observable (spec.md §4.4).
type Simulator struct {
	n      int // chunk width N; QubitsNumber() = n * CHUNK_SIZE
	gates  []gate.Gate
	writer io.Writer
	cache  *evalcache.Cache
}

// Option configures optional Simulator behavior beyond spec.md's core
// external interface.
type Option func(*Simulator)

// WithProgressWriter redirects execute()'s per-layer progress lines
// (spec.md §6) away from the default of os.Stdout. This is the
// injectable-progress hook noted as an implementation freedom in
// spec.md §9 ("Progress printing... may make this injectable via a
// callback without altering observable semantics").
func WithProgressWriter(w io.Writer) Option {
	return func(s *Simulator) { s.writer = w }
}

// WithResultCache enables memoization of execute() results by circuit
// and run digest (internal/evalcache), so repeating an identical call
// skips re-simulating. Disabled by default: the cache holds full
// traces in memory and most callers run each circuit once.
func WithResultCache() Option {
	return func(s *Simulator) { s.cache = evalcache.New() }
}

// NewSimulator constructs a Simulator for the given qubit count,
// dispatching to the smallest supported chunk width that covers it
// (spec.md §4.5). Returns TooManyQubitsError if no supported width
// suffices.
func NewSimulator(qubits int, opts ...Option) (*Simulator, error) {
	n, err := paulistring.WidthForQubits(qubits)
	if err != nil {
		return nil, err
	}
	s := &Simulator{n: n, writer: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// QubitsNumber returns 64*N, the qubit capacity of the dispatched
// width (spec.md §4.4/§6) — this may exceed the qubits originally
// requested, rounded up to the chunk boundary.
func (s *Simulator) QubitsNumber() int {
	return s.n * paulistring.CHUNK_SIZE
}

// Width returns the dispatched chunk count N (spec.md §4.5).
func (s *Simulator) Width() int {
	return s.n
}

// AddGate appends a gate exp(-i*t*P) built from a Pauli description.
// On error (invalid letter or out-of-bounds position) the circuit is
// left unmodified: no partially-built gate is attached (spec.md §7).
func (s *Simulator) AddGate(desc PauliDescription, time float64) error {
	ps, err := paulistring.FromDescription(s.n, desc)
	if err != nil {
		return err
	}
	s.gates = append(s.gates, gate.New(ps, time))
	return nil
}

// Digest returns a stable fingerprint of the current gate sequence,
// used as the circuit-identity component of a cache/attestation key.
func (s *Simulator) Digest() string {
	return digest.Circuit(s.gates)
}

// Execute builds the initial observable from observableDesc, then
// evolves it over layersNumber layers, recording get_average before
// each layer and once more after the last (spec.md §4.4). Each layer
// applies every gate in reverse insertion order (§4.3's rationale:
// U = U_L...U_1, so Q <- U_k^dagger Q U_k must begin at k=L).
func (s *Simulator) Execute(observableDesc PauliDescription, layersNumber int, threshold, decay float64) ([]complex128, error) {
	ps, err := paulistring.FromDescription(s.n, observableDesc)
	if err != nil {
		return nil, err
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = digest.Run(s.Digest(), ps.String(), layersNumber, threshold, decay)
		if trace, ok := s.cache.Get(cacheKey); ok {
			return trace, nil
		}
	}

	obs := observable.New(ps)
	dynamics := make([]complex128, 0, layersNumber+1)
	for layer := 0; layer < layersNumber; layer++ {
		dynamics = append(dynamics, obs.Average())
		for i := len(s.gates) - 1; i >= 0; i-- {
			obs.ApplyGate(s.gates[i], threshold, decay)
		}
		if s.writer != nil {
			fmt.Fprintf(s.writer, "layer_number: %d, pauli_strings_number: %d\n", layer, obs.Size())
		}
	}
	dynamics = append(dynamics, obs.Average())

	if s.cache != nil {
		s.cache.Set(cacheKey, dynamics)
	}
	return dynamics, nil
}
