// Package dedup removes repeated values from a sequence while keeping the
// order in which values first appear (stable deduplication).
//
// ✨ Key features:
//   - Unique: one pass with a seen set, first occurrence wins
//   - UniqueFunc: same, keyed by a caller-supplied function
//   - Duplicates: the values that repeat, each reported once
//
// The input is never modified; every function returns a new slice.
//
//	dedup.Unique([]int{4, 5, 4, 6, 5, 7}) // [4 5 6 7]
//
// Complexity: O(n) time, O(n) memory.
package dedup
