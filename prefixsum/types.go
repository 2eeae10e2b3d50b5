package prefixsum

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrIndexRange indicates a range outside the prefix slice or with i > j.
var ErrIndexRange = errors.New("prefixsum: index out of range")

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}
