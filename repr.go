package psim

import (
	"fmt"
	"strings"
)

// String renders the simulator's state the way the original Rust
// source's SPSimTrait::to_string does (spsim.rs): first line
// "qubits_number: Q", then "layer discription:" followed by one
// indented block per gate with its Pauli string and time. The wording
// "discription" is the wire format spec.md §6 pins, not a typo to fix.
func (s *Simulator) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "qubits_number: %d\n", s.QubitsNumber())
	b.WriteString("layer discription:")
	for _, g := range s.gates {
		b.WriteString("\n\t- gate:")
		fmt.Fprintf(&b, "\n\t\tpauli_string: %s", g.PauliString())
		fmt.Fprintf(&b, "\n\t\ttime: %v", g.Time())
	}
	return b.String()
}
