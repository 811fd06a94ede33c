package paulistring

import "strings"

// PauliString is a fixed-width n-qubit Pauli operator, represented as
// an ordered array of PauliChunks (64 qubits per chunk). Per design
// note in spec.md §9, the width N is carried as len(chunks)
// rather than as a compile-time type parameter: Go has no const
// generics, so the uniform heap-allocated-array representation (design
// note (b)) is used instead of per-width generated types.
type PauliString struct {
	chunks []PauliChunk
}

// New returns the all-I Pauli string spanning n chunks (64*n qubits).
func New(n int) PauliString {
	return PauliString{chunks: make([]PauliChunk, n)}
}

// Width returns the number of chunks backing this string.
func (p PauliString) Width() int { return len(p.chunks) }

// Qubits returns the number of qubits spanned, 64*Width().
func (p PauliString) Qubits() int { return len(p.chunks) * CHUNK_SIZE }

// SetPauli ORs the given letter's bits into position pos, returning
// the mutated string. Per spec.md §4.1 and SPEC_FULL.md §11, this is
// OR-semantics, not clear-then-set: re-setting an already-set position
// combines the two letters' bit patterns (e.g. X then Z yields Z,
// since Z's bits are a superset of X's).
func (p PauliString) SetPauli(l Letter, pos int) (PauliString, error) {
	if pos < 0 || pos >= p.Qubits() {
		return p, &OutOfBoundsError{Size: len(p.chunks), Position: pos}
	}
	chunkIdx := pos / CHUNK_SIZE
	posInChunk := uint(pos % CHUNK_SIZE)
	p.chunks[chunkIdx].orLetter(l, posInChunk)
	return p, nil
}

// LetterAt returns the letter at the given qubit position.
func (p PauliString) LetterAt(pos int) Letter {
	return p.chunks[pos/CHUNK_SIZE].letterAt(uint(pos % CHUNK_SIZE))
}

// IsDiagonal reports whether every letter is I or Z (diagonal in the
// computational basis). Named distinctly from Observable.Average to
// avoid the original Rust source's overloaded "average" naming — see
// SPEC_FULL.md §10.
func (p PauliString) IsDiagonal() bool {
	for _, c := range p.chunks {
		if !c.isDiagonal() {
			return false
		}
	}
	return true
}

// Hamming returns the count of non-I letters.
func (p PauliString) Hamming() int {
	total := 0
	for _, c := range p.chunks {
		total += c.hamming()
	}
	return total
}

// Commute reports whether p and other commute, i.e. p*other = other*p.
func (p PauliString) Commute(other PauliString) bool {
	total := 0
	for i := range p.chunks {
		total += p.chunks[i].mulPhase(other.chunks[i])
	}
	return total%2 == 0
}

// Multiply returns (phase, product) such that p*other = i^phase * product.
func (p PauliString) Multiply(other PauliString) (int, PauliString) {
	out := New(len(p.chunks))
	phase := 0
	for i := range p.chunks {
		out.chunks[i] = p.chunks[i].mulAbs(other.chunks[i])
		phase += p.chunks[i].mulPhase(other.chunks[i])
	}
	return phase, out
}

// Equal reports structural equality over the raw words, suitable for
// use as a map key (PauliString is comparable when compared by value
// through its chunk contents via AsKey).
func (p PauliString) Equal(other PauliString) bool {
	if len(p.chunks) != len(other.chunks) {
		return false
	}
	for i := range p.chunks {
		if p.chunks[i] != other.chunks[i] {
			return false
		}
	}
	return true
}

// Key is a comparable, hashable representation of a PauliString
// suitable for use as a Go map key (PauliString itself holds a slice,
// which is not comparable). Observable keys its sparse map on Key.
type Key string

// AsKey packs the raw words into a comparable string key. This keeps
// the structural-equality/hashing contract of spec.md §3 ("Equality
// and hashing are structural over the raw words") while working within
// Go's requirement that map keys be comparable.
func (p PauliString) AsKey() Key {
	var b strings.Builder
	b.Grow(len(p.chunks) * 16)
	for _, c := range p.chunks {
		writeUint64(&b, c.bitchunk1)
		writeUint64(&b, c.bitchunk2)
	}
	return Key(b.String())
}

func writeUint64(b *strings.Builder, v uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	b.Write(buf[:])
}

// FromKey reconstructs a PauliString from a Key produced by AsKey, for
// the width n it was encoded with.
func FromKey(k Key, n int) PauliString {
	p := New(n)
	s := string(k)
	for i := 0; i < n; i++ {
		off := i * 16
		p.chunks[i].bitchunk1 = readUint64(s[off : off+8])
		p.chunks[i].bitchunk2 = readUint64(s[off+8 : off+16])
	}
	return p
}

func readUint64(s string) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(s[i]) << (8 * i)
	}
	return v
}

// String renders the Pauli string as 64*Width() letters, low-index
// first per chunk, chunks in array order — matching spec.md §6's
// pretty-print contract.
func (p PauliString) String() string {
	var b strings.Builder
	b.Grow(p.Qubits())
	for _, c := range p.chunks {
		for i := 0; i < CHUNK_SIZE; i++ {
			b.WriteString(c.letterAt(uint(i)).String())
		}
	}
	return b.String()
}
