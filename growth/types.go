package growth

import (
	"errors"
	"fmt"
)

const (
	// DefaultInitialCapacity is the starting capacity when none is given.
	DefaultInitialCapacity = 2

	// DefaultGrowthFactor is the capacity multiplier applied on each resize.
	DefaultGrowthFactor = 2
)

// Sentinel errors for growth simulation.
var (
	// ErrNegativeCount is returned when asked to append a negative number of items.
	ErrNegativeCount = errors.New("growth: item count must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("growth: invalid option supplied")

	// ErrCapacityOverflow is returned when a resize would exceed math.MaxInt.
	ErrCapacityOverflow = errors.New("growth: capacity overflows int")
)

// ResizeEvent describes one capacity increase.
type ResizeEvent struct {
	// Size is the number of elements held when the resize happened.
	Size int
	// OldCapacity and NewCapacity bracket the resize.
	OldCapacity int
	NewCapacity int
	// CopyCost is the number of element copies the reallocation costs.
	CopyCost int
}

// String renders the event as a human-readable notification.
func (e ResizeEvent) String() string {
	return fmt.Sprintf("resize: capacity %d full, growing to %d (O(%d) copy cost)",
		e.OldCapacity, e.NewCapacity, e.CopyCost)
}

// Result is the outcome of a simulation.
type Result struct {
	// Items holds the appended values 1..n in append order.
	Items []int
	// Size is len(Items); Capacity is the final backing capacity.
	Size     int
	Capacity int
	// Resizes lists every resize in the order it happened.
	Resizes []ResizeEvent
	// CopyCost is the total number of element copies across all resizes.
	CopyCost int
}

// Option configures Simulate via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// Simulate runs.
type Option func(*Options)

// Options holds the parameters and hooks of a simulation.
type Options struct {
	// InitialCapacity is the capacity before the first append (≥ 1).
	InitialCapacity int

	// GrowthFactor multiplies the capacity on every resize (≥ 2).
	GrowthFactor int

	// OnResize is called for every resize, before the triggering append.
	OnResize func(ev ResizeEvent)

	// OnAppend is called after every append with the value and the new state.
	OnAppend func(value, size, capacity int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - InitialCapacity = DefaultInitialCapacity
//   - GrowthFactor = DefaultGrowthFactor
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		InitialCapacity: DefaultInitialCapacity,
		GrowthFactor:    DefaultGrowthFactor,
		OnResize:        func(ResizeEvent) {},
		OnAppend:        func(int, int, int) {},
	}
}

// WithInitialCapacity sets the starting capacity.
//
//	c ≥ 1: accepted
//	c < 1: invalid option → ErrOptionViolation
func WithInitialCapacity(c int) Option {
	return func(o *Options) {
		if c < 1 {
			o.err = fmt.Errorf("%w: InitialCapacity must be at least 1 (%d)", ErrOptionViolation, c)
			return
		}
		o.InitialCapacity = c
	}
}

// WithGrowthFactor sets the capacity multiplier.
//
//	f ≥ 2: accepted
//	f < 2: invalid option → ErrOptionViolation
func WithGrowthFactor(f int) Option {
	return func(o *Options) {
		if f < 2 {
			o.err = fmt.Errorf("%w: GrowthFactor must be at least 2 (%d)", ErrOptionViolation, f)
			return
		}
		o.GrowthFactor = f
	}
}

// WithOnResize registers a callback invoked on each resize.
func WithOnResize(fn func(ev ResizeEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnResize = fn
		}
	}
}

// WithOnAppend registers a callback invoked after each append.
func WithOnAppend(fn func(value, size, capacity int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAppend = fn
		}
	}
}
