package pairsum

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pair is an unordered pair of values stored in canonical order (Lo ≤ Hi).
// Two Pairs built from the same values in either order compare equal.
type Pair[E constraints.Integer] struct {
	Lo, Hi E
}

// NewPair returns the canonical Pair holding a and b.
func NewPair[E constraints.Integer](a, b E) Pair[E] {
	return Pair[E]{Lo: min(a, b), Hi: max(a, b)}
}

// Sum returns Lo + Hi.
func (p Pair[E]) Sum() E {
	return p.Lo + p.Hi
}

// String renders the pair as "(Lo, Hi)".
func (p Pair[E]) String() string {
	return fmt.Sprintf("(%d, %d)", p.Lo, p.Hi)
}
