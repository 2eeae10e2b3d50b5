package prefixsum

import "fmt"

// RunningTotal returns a slice of the same length as s whose i-th element
// is the sum of s[0..i]. An empty s yields an empty, non-nil slice.
//
// Complexity: O(n) time, O(n) memory.
func RunningTotal[S ~[]E, E Number](s S) S {
	out := make(S, len(s))
	var acc E
	for i, v := range s {
		acc += v
		out[i] = acc
	}

	return out
}

// Differences is the inverse of RunningTotal: out[0] = p[0] and
// out[i] = p[i] - p[i-1]. For integer types
// Differences(RunningTotal(x)) == x holds exactly.
func Differences[S ~[]E, E Number](p S) S {
	out := make(S, len(p))
	var prev E
	for i, v := range p {
		out[i] = v - prev
		prev = v
	}

	return out
}

// RangeSum returns x[i] + … + x[j] given prefix = RunningTotal(x).
// Returns ErrIndexRange unless 0 ≤ i ≤ j < len(prefix).
func RangeSum[S ~[]E, E Number](prefix S, i, j int) (E, error) {
	if i < 0 || j >= len(prefix) || i > j {
		return 0, fmt.Errorf("%w: [%d, %d] with length %d", ErrIndexRange, i, j, len(prefix))
	}
	if i == 0 {
		return prefix[j], nil
	}

	return prefix[j] - prefix[i-1], nil
}
