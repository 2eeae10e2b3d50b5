// Package mode finds the most frequent value (the statistical mode) of a
// finite sequence in a single pass.
//
// 🚀 What is the mode?
//
//	The mode is the value that occurs most often. A sequence may have
//	several values tied at the maximum count; this package always picks
//	the one that reached that count first:
//	  • [1, 3, 2, 3, 4, 1, 3] → 3 (three occurrences)
//	  • [1, 2, 2, 1]          → 2 (2 hits count 2 before 1 does)
//
// ✨ Key features:
//   - one pass, frequency map and running best built together
//   - deterministic tie-break (earliest value to reach the peak)
//   - empty input reported as absence, never as a panic
//   - MostCommon for the k highest counts, Frequencies for the raw map
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqkit/mode"
//
//	v, ok := mode.Mode([]int{1, 3, 2, 3, 4, 1, 3})
//	if !ok {
//	  // empty input
//	}
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(k), k = number of distinct values
package mode
