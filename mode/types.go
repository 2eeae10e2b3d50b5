package mode

import "errors"

// ErrInvalidK is returned by MostCommon when k is not positive.
var ErrInvalidK = errors.New("mode: k must be positive")

// Counted pairs a value with its number of occurrences.
type Counted[E comparable] struct {
	Value E
	Count int
}
