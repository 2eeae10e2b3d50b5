// Package seqkit is a small collection of single-pass algorithms over
// in-memory sequences, each living in its own subpackage.
//
// 🚀 What is inside?
//
//	mode/      - most frequent value, frequency map, k most common
//	dedup/     - stable deduplication, keyed dedup, repeated values
//	pairsum/   - unordered pairs summing to a target
//	growth/    - amortized dynamic-array growth simulation with resize hooks
//	prefixsum/ - running totals, their inverse, O(1) range sums
//
// ✨ Shared guarantees:
//
//   - Generic over element types (comparable, integer or numeric)
//   - Inputs are never mutated; results never alias inputs
//   - O(n) time, one pass per call, no shared state between calls
//
// The seqkit command (cmd/seqkit) exposes every package on the command line:
//
//	seqkit demo
//	seqkit pairs --target 5 1 2 3 4
//
//	go get github.com/katalvlaran/seqkit
package seqkit
