package prefixsum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqkit/internal/seqgen"
	"github.com/katalvlaran/seqkit/prefixsum"
)

// TestRunningTotal covers fixed integer inputs.
func TestRunningTotal(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"Empty", []int{}, []int{}},
		{"Nil", nil, []int{}},
		{"Single", []int{7}, []int{7}},
		{"Canonical", []int{1, 2, 3, 4}, []int{1, 3, 6, 10}},
		{"Mixed", []int{5, -2, 0, -3}, []int{5, 3, 3, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := prefixsum.RunningTotal(tc.in)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestRunningTotal_Float checks a floating-point element type.
func TestRunningTotal_Float(t *testing.T) {
	got := prefixsum.RunningTotal([]float64{0.5, 0.25, 1})
	assert.InDeltaSlice(t, []float64{0.5, 0.75, 1.75}, got, 1e-12)
}

// TestRunningTotal_Properties checks on random input that each element is
// the sum of the prefix, the input is untouched and Differences inverts it.
func TestRunningTotal_Properties(t *testing.T) {
	rng := seqgen.FromSeed(17)
	for round := 0; round < 40; round++ {
		in, err := seqgen.Ints(rng, round, -50, 50)
		require.NoError(t, err)
		snapshot := append([]int(nil), in...)

		out := prefixsum.RunningTotal(in)
		require.Len(t, out, len(in))
		sum := 0
		for i, v := range in {
			sum += v
			assert.Equal(t, sum, out[i], "prefix %d of %v", i, in)
		}
		if len(in) > 0 {
			assert.Equal(t, in[0], out[0])
		}
		assert.Equal(t, snapshot, in, "input must not be mutated")
		assert.Equal(t, in, []int(prefixsum.Differences(out)), "Differences must invert RunningTotal")
	}
}

// TestRangeSum checks O(1) range queries against direct summation.
func TestRangeSum(t *testing.T) {
	in := []int{3, -1, 4, 1, -5, 9}
	p := prefixsum.RunningTotal(in)
	for i := range in {
		for j := i; j < len(in); j++ {
			want := 0
			for _, v := range in[i : j+1] {
				want += v
			}
			got, err := prefixsum.RangeSum(p, i, j)
			require.NoError(t, err)
			assert.Equal(t, want, got, "range [%d, %d]", i, j)
		}
	}

	for _, r := range [][2]int{{-1, 2}, {0, 6}, {3, 2}} {
		_, err := prefixsum.RangeSum(p, r[0], r[1])
		assert.ErrorIs(t, err, prefixsum.ErrIndexRange, "range %v", r)
	}
	_, err := prefixsum.RangeSum([]int{}, 0, 0)
	assert.ErrorIs(t, err, prefixsum.ErrIndexRange)
}
