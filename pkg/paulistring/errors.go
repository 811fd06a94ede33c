package paulistring

import "fmt"

// OutOfBoundsError is returned when a qubit position exceeds the width
// of the PauliString it is being set on.
type OutOfBoundsError struct {
	Size     int
	Position int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %d is out of bound of a Pauli string of size %d", e.Position, e.Size)
}

// InvalidLetterError is returned when a Pauli code is not one of I, X, Y, Z.
type InvalidLetterError struct {
	Code byte
}

func (e *InvalidLetterError) Error() string {
	return fmt.Sprintf("invalid character code %q of a Pauli matrix, code must be 'I', 'X', 'Y' or 'Z' only", e.Code)
}
