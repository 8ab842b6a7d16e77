package interp

import (
	"fmt"

	"github.com/loxscript/glox/lang/token"
	"github.com/loxscript/glox/lang/types"
)

// RuntimeError is the error produced when a Lox program does something
// type-incorrect at run time: adding a number to a string, calling a value
// that isn't callable, looking up an undefined property, and so on. Unlike
// parse and resolve errors, there is only ever one at a time: evaluation
// stops at the first one.
type RuntimeError struct {
	Pos token.Pos
	Msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Msg, e.Pos.Line())
}

func newRuntimeError(pos token.Pos, format string, args ...any) *RuntimeError {
	return &RuntimeError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// returnSignal unwinds the Go call stack back to the function call that
// invoked the currently-executing body, carrying the "return" statement's
// value. It is never presented to the user; Function.Call catches it, and
// execute passes it up unchanged until it gets there. Modeled as an error so it threads through the same
// error-returning execute/evaluate plumbing as a RuntimeError, rather than
// requiring a parallel panic/recover discipline.
type returnSignal struct {
	value types.Value
}

func (returnSignal) Error() string { return "return outside of function" }
