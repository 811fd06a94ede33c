package paulistring

// Builder constructs a PauliString via chained Set calls, mirroring
// the original Rust source's consuming `set_pauli(code, pos) -> Self`
// chain (pauli_string.rs). Once Build is called the result is treated
// as immutable, per spec.md §3's PauliString lifecycle.
type Builder struct {
	ps  PauliString
	err error
}

// NewBuilder starts a builder for an n-chunk (64*n qubit) Pauli string.
func NewBuilder(n int) *Builder {
	return &Builder{ps: New(n)}
}

// Set ORs letter into position pos and returns the builder for chaining.
// The first error encountered short-circuits subsequent Sets.
func (b *Builder) Set(l Letter, pos int) *Builder {
	if b.err != nil {
		return b
	}
	ps, err := b.ps.SetPauli(l, pos)
	if err != nil {
		b.err = err
		return b
	}
	b.ps = ps
	return b
}

// SetCode is Set taking a textual Pauli code ('I','X','Y','Z').
func (b *Builder) SetCode(code byte, pos int) *Builder {
	if b.err != nil {
		return b
	}
	l, err := ParseLetter(code)
	if err != nil {
		b.err = err
		return b
	}
	return b.Set(l, pos)
}

// Build returns the constructed PauliString, or the first error hit.
func (b *Builder) Build() (PauliString, error) {
	if b.err != nil {
		return PauliString{}, b.err
	}
	return b.ps, nil
}

// FromDescription builds a PauliString of width n from a list of
// (letter-code, position) pairs, as used by add_gate/execute's
// pauli_desc/observable_desc parameters (spec.md §6).
func FromDescription(n int, desc []LetterAt) (PauliString, error) {
	b := NewBuilder(n)
	for _, d := range desc {
		b.SetCode(d.Code, d.Pos)
	}
	return b.Build()
}

// LetterAt pairs a textual Pauli code with a qubit position, the wire
// shape of pauli_desc/observable_desc in the external API (spec.md §6).
type LetterAt struct {
	Code byte
	Pos  int
}
