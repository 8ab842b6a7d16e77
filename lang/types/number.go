package types

import "strconv"

// Number is Lox's only numeric type, a double-precision floating point
// value.
type Number float64

var _ Value = Number(0)

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (n Number) Type() string { return "number" }
func (n Number) Truth() bool  { return true } // every number is truthy, including 0 and NaN
