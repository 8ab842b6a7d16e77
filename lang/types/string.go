package types

// String is the type of a Lox text string, an immutable sequence of bytes.
type String string

var _ Value = String("")

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }
func (s String) Truth() bool    { return true } // every string is truthy, including ""
