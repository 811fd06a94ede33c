package psim

import "github.com/hydraresearch/psim/pkg/paulistring"

// The three error kinds surfaced at the API boundary (spec.md §7),
// aliased here from pkg/paulistring for convenience at the top level.
type (
	OutOfBoundsError   = paulistring.OutOfBoundsError
	InvalidLetterError = paulistring.InvalidLetterError
	TooManyQubitsError = paulistring.TooManyQubitsError
)
