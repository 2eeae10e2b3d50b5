// Package prefixsum computes running totals (prefix sums) and their inverse.
//
// For input x, RunningTotal returns p with p[i] = x[0] + … + x[i].
// Once p is built, the sum of any contiguous range x[i..j] is answered in
// O(1) by RangeSum, and Differences recovers x from p.
//
//	prefixsum.RunningTotal([]int{1, 2, 3, 4}) // [1 3 6 10]
//
// Integer overflow wraps according to Go's arithmetic rules; it is not
// detected.
package prefixsum
