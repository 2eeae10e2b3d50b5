package mode

import (
	"fmt"
	"slices"
)

// Mode returns a value with the highest occurrence count in s.
//
// Description:
//
//	Walks s once, counting every value and keeping a running best.
//	The best is replaced only when a count strictly exceeds the best
//	count seen so far, so among tied values the one whose count reached
//	the peak first is kept.
//
// Returns (zero, false) when s is empty.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(k), k distinct values
func Mode[S ~[]E, E comparable](s S) (E, bool) {
	v, _, ok := ModeCount(s)

	return v, ok
}

// ModeCount is Mode that also reports how many times the winner occurs.
// On empty input it returns (zero, 0, false).
func ModeCount[S ~[]E, E comparable](s S) (value E, count int, ok bool) {
	if len(s) == 0 {
		return value, 0, false
	}

	counts := make(map[E]int)
	best, bestCount := s[0], 0
	for _, v := range s {
		counts[v]++
		if c := counts[v]; c > bestCount {
			best, bestCount = v, c
		}
	}

	return best, bestCount, true
}

// Frequencies counts the occurrences of each value in s.
// The counts always sum to len(s); an empty s yields an empty map.
func Frequencies[S ~[]E, E comparable](s S) map[E]int {
	counts := make(map[E]int, len(s))
	for _, v := range s {
		counts[v]++
	}

	return counts
}

// MostCommon returns up to k values with the highest counts, ordered by
// count descending. Values with equal counts are ordered by the moment
// they reached that count, which keeps MostCommon(s, 1) consistent with Mode.
//
// Returns ErrInvalidK when k <= 0. Asking for more values than s holds
// returns every distinct value.
func MostCommon[S ~[]E, E comparable](s S, k int) ([]Counted[E], error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	counts := make(map[E]int)
	reached := make(map[E]int) // index where the value reached its current count
	order := make([]E, 0)
	for i, v := range s {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
		reached[v] = i
	}

	slices.SortStableFunc(order, func(a, b E) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}

		return reached[a] - reached[b]
	})

	if k > len(order) {
		k = len(order)
	}
	out := make([]Counted[E], k)
	for i := 0; i < k; i++ {
		out[i] = Counted[E]{Value: order[i], Count: counts[order[i]]}
	}

	return out, nil
}
