package iteratee

import "errors"

// Sentinel errors returned by shorthand resolution.
//
// Use [errors.Is] for comparisons:
//
//	pred, err := iteratee.Predicate[User](42)
//	if errors.Is(err, iteratee.ErrInvalidShorthand) {
//	    // 42 is not a recognised iteratee form
//	}
var (
	// ErrInvalidShorthand is returned when a value is none of the accepted
	// iteratee forms (function, string property key, pattern map, nil).
	ErrInvalidShorthand = errors.New("iteratee: value is not a function, property key, or pattern")

	// ErrNotCallable is returned by [Func] when the context requires an
	// actual function and the supplied value is not one.
	ErrNotCallable = errors.New("iteratee: expected a function")
)
