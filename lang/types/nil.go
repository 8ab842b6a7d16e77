package types

// NilType is the type of the Lox "nil" value. Its only legal value is Nil.
// It is represented as a byte rather than an empty struct so that Nil can be
// a constant.
type NilType byte

// Nil is the sole value of type NilType.
const Nil = NilType(0)

var _ Value = Nil

func (NilType) String() string { return "nil" }
func (NilType) Type() string   { return "nil" }
func (NilType) Truth() bool    { return false }
