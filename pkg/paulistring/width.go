package paulistring

import "fmt"

// MaxChunks is the largest supported chunk count N, matching the
// original Rust binding's enumerated dispatch table (pywrap.rs lists
// N=1..32 explicitly). Qubit counts requiring more chunks are rejected
// with TooManyQubitsError.
const MaxChunks = 32

// TooManyQubitsError is returned by WidthForQubits when the requested
// qubit count exceeds what any supported width can represent.
type TooManyQubitsError struct {
	Requested int
	Max       int
}

func (e *TooManyQubitsError) Error() string {
	return fmt.Sprintf("too many qubits: requested %d, maximum supported is %d", e.Requested, e.Max)
}

// WidthForQubits maps a runtime qubit count to the chunk count N that
// covers it (N = ceil(qubits/64)), erasing the width behind the
// uniform PauliString representation described on PauliString.
// Unused high positions in the last chunk remain I and never affect
// any computation, by construction (they are simply never addressed).
func WidthForQubits(qubits int) (int, error) {
	if qubits <= 0 {
		return 0, &TooManyQubitsError{Requested: qubits, Max: MaxChunks * CHUNK_SIZE}
	}
	n := (qubits + CHUNK_SIZE - 1) / CHUNK_SIZE
	if n > MaxChunks {
		return 0, &TooManyQubitsError{Requested: qubits, Max: MaxChunks * CHUNK_SIZE}
	}
	return n, nil
}
