package interp

import "github.com/loxscript/glox/lang/types"

// Callable is implemented by every value that can appear as the callee of a
// call expression: user-defined functions and methods, classes (calling a
// class constructs an instance), and native functions such as clock().
type Callable interface {
	types.Value
	Arity() int
	Call(in *Interpreter, args []types.Value) (types.Value, error)
}
