package psim

import (
	"math"
	"testing"

	"github.com/hydraresearch/psim/internal/bruteforce"
)

// TestHeisenbergMatchesBruteForce cross-checks the Heisenberg-picture
// trace against exact dense state-vector evolution for a small circuit,
// confirming the pruning-free (threshold=0) simulator agrees with
// <psi|Z_0|psi> for |psi> built by applying the same gates forward to
// |0...0>.
func TestHeisenbergMatchesBruteForce(t *testing.T) {
	qubits := 3
	steps := []struct {
		desc PauliDescription
		time float64
	}{
		{PauliDescription{{Code: 'X', Pos: 0}, {Code: 'Y', Pos: 1}}, 0.3},
		{PauliDescription{{Code: 'Z', Pos: 1}, {Code: 'X', Pos: 2}}, 0.7},
		{PauliDescription{{Code: 'Y', Pos: 0}, {Code: 'Z', Pos: 2}}, -0.2},
	}
	const layers = 3

	sim, err := NewSimulator(qubits)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	for _, s := range steps {
		if err := sim.AddGate(s.desc, s.time); err != nil {
			t.Fatalf("AddGate: %v", err)
		}
	}
	trace, err := sim.Execute(PauliDescription{{Code: 'Z', Pos: 0}}, layers, 0, 1.0)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	letterOf := func(code byte) bruteforce.Letter {
		switch code {
		case 'X':
			return bruteforce.X
		case 'Y':
			return bruteforce.Y
		case 'Z':
			return bruteforce.Z
		default:
			return bruteforce.I
		}
	}
	termsOf := func(desc PauliDescription) []bruteforce.Term {
		terms := make([]bruteforce.Term, len(desc))
		for i, la := range desc {
			terms[i] = bruteforce.Term{Letter: letterOf(la.Code), Pos: la.Pos}
		}
		return terms
	}

	state := bruteforce.InitialState(qubits)
	want := make([]float64, 0, layers+1)
	z0, err := bruteforce.ZExpectation(state, 0)
	if err != nil {
		t.Fatalf("ZExpectation: %v", err)
	}
	want = append(want, z0)
	for layer := 0; layer < layers; layer++ {
		for _, s := range steps {
			state, err = bruteforce.ApplyRotation(state, termsOf(s.desc), s.time)
			if err != nil {
				t.Fatalf("ApplyRotation: %v", err)
			}
		}
		zv, err := bruteforce.ZExpectation(state, 0)
		if err != nil {
			t.Fatalf("ZExpectation: %v", err)
		}
		want = append(want, zv)
	}

	if len(trace) != len(want) {
		t.Fatalf("trace length = %d, want %d", len(trace), len(want))
	}
	for i := range trace {
		got := real(trace[i])
		if math.Abs(imag(trace[i])) > 1e-9 {
			t.Errorf("layer %d: non-negligible imaginary part %v", i, trace[i])
		}
		if math.Abs(got-want[i]) > 1e-9 {
			t.Errorf("layer %d: got %v, want %v", i, got, want[i])
		}
	}
}
