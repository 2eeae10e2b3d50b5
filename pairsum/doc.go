// Package pairsum finds every unordered pair of distinct elements of an
// integer sequence whose sum equals a target.
//
// 🚀 How it works
//
//	A single pass keeps the set of values seen so far. For each x the
//	complement target−x is looked up; when present, the pair {x, complement}
//	is stored in canonical (Lo ≤ Hi) form so no pair is reported twice.
//	x joins the seen set only after its own lookup, so a value never pairs
//	with itself.
//
// ⚠️ Precondition
//
//	The input must not contain duplicate values. Duplicates are not
//	detected and the pairs reported for them are unspecified.
//
// ⚙️ Usage:
//
//	pairs := pairsum.FindPairs([]int{1, 2, 3, 4}, 5)
//	pairsum.SortPairs(pairs) // [{1 4} {2 3}]
//
// Performance:
//
//   - Time:   O(n) average
//   - Memory: O(n)
package pairsum
