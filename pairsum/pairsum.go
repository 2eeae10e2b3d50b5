package pairsum

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// FindPairs returns all unordered pairs of distinct elements of s that
// sum to target, each reported once.
//
// Pairs come back in the order they were discovered; callers must treat
// that order as unspecified and use SortPairs when they need a stable one.
// An input without matches yields an empty, non-nil slice.
//
// s must not contain duplicate values.
func FindPairs[S ~[]E, E constraints.Integer](s S, target E) []Pair[E] {
	seen := make(map[E]struct{}, len(s))
	found := make(map[Pair[E]]struct{})
	out := make([]Pair[E], 0)
	for _, x := range s {
		complement := target - x
		if _, ok := seen[complement]; ok {
			p := NewPair(x, complement)
			if _, dup := found[p]; !dup {
				found[p] = struct{}{}
				out = append(out, p)
			}
		}
		seen[x] = struct{}{}
	}

	return out
}

// HasPair reports whether any two distinct elements of s sum to target.
// It stops at the first match.
func HasPair[S ~[]E, E constraints.Integer](s S, target E) bool {
	seen := make(map[E]struct{}, len(s))
	for _, x := range s {
		if _, ok := seen[target-x]; ok {
			return true
		}
		seen[x] = struct{}{}
	}

	return false
}

// SortPairs orders pairs in place by Lo, then Hi.
func SortPairs[E constraints.Integer](pairs []Pair[E]) {
	slices.SortFunc(pairs, func(a, b Pair[E]) int {
		if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
			return c
		}

		return cmp.Compare(a.Hi, b.Hi)
	})
}
