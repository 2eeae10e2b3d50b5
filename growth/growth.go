package growth

import (
	"fmt"
	"math"
)

// array is the simulated dynamic array. capacity is the logical capacity;
// backing is allocated only up to limit slots because nothing past the
// last append is ever written.
type array struct {
	backing  []int
	size     int
	capacity int
	limit    int
	opts     Options
	res      *Result
}

// Simulate appends the values 1..n to a dynamic array that starts at
// opts.InitialCapacity and grows by opts.GrowthFactor whenever an append
// finds it full.
//
// State machine per append:
//  1. if size == capacity: emit ResizeEvent, allocate capacity·factor,
//     copy the size live elements.
//  2. store the value, size++.
//
// Returns ErrNegativeCount for n < 0, ErrOptionViolation for bad options
// and ErrCapacityOverflow when a resize would exceed math.MaxInt.
// n == 0 yields an empty Result with the initial capacity and no resizes.
//
// Complexity:
//
//	Time   = O(n) amortized (total copy cost < factor/(factor-1) · n)
//	Memory = O(n)
func Simulate(n int, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	a := &array{
		backing:  make([]int, min(o.InitialCapacity, n)),
		capacity: o.InitialCapacity,
		limit:    n,
		opts:     o,
		res:      &Result{Resizes: make([]ResizeEvent, 0)},
	}
	for v := 1; v <= n; v++ {
		if err := a.push(v); err != nil {
			return nil, err
		}
	}

	a.res.Items = a.backing[:a.size]
	a.res.Size = a.size
	a.res.Capacity = a.capacity

	return a.res, nil
}

// push appends v, growing the backing store first when it is full.
func (a *array) push(v int) error {
	if a.size == a.capacity {
		if err := a.grow(); err != nil {
			return err
		}
	}
	a.backing[a.size] = v
	a.size++
	a.opts.OnAppend(v, a.size, a.capacity)

	return nil
}

// grow reallocates the backing store at GrowthFactor times its capacity
// and copies the live elements over. No event is emitted when the new
// capacity does not fit in an int.
func (a *array) grow() error {
	oldCap := a.capacity
	newCap, err := scale(oldCap, a.opts.GrowthFactor)
	if err != nil {
		return err
	}
	ev := ResizeEvent{
		Size:        a.size,
		OldCapacity: oldCap,
		NewCapacity: newCap,
		CopyCost:    a.size,
	}
	a.opts.OnResize(ev)

	next := make([]int, min(newCap, a.limit))
	copy(next, a.backing[:a.size])
	a.backing = next
	a.capacity = newCap

	a.res.Resizes = append(a.res.Resizes, ev)
	a.res.CopyCost += ev.CopyCost

	return nil
}

// scale returns c·factor, or ErrCapacityOverflow when it exceeds math.MaxInt.
func scale(c, factor int) (int, error) {
	if c > math.MaxInt/factor {
		return 0, fmt.Errorf("%w: %d × %d", ErrCapacityOverflow, c, factor)
	}

	return c * factor, nil
}

// AddNItems runs Simulate with default options and returns the appended
// values. It returns nil when n is negative.
func AddNItems(n int) []int {
	res, err := Simulate(n)
	if err != nil {
		return nil
	}

	return res.Items
}

// CapacityFor returns the capacity Simulate(n, opts...) ends with, without
// allocating: the smallest InitialCapacity·GrowthFactor^k that is ≥ n.
// Returns ErrCapacityOverflow when that capacity exceeds math.MaxInt.
func CapacityFor(n int, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	c := o.InitialCapacity
	for c < n {
		if c, err = scale(c, o.GrowthFactor); err != nil {
			return 0, err
		}
	}

	return c, nil
}

// buildOptions applies opts over DefaultOptions and reports the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
