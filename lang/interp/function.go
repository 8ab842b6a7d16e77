package interp

import (
	"fmt"

	"github.com/loxscript/glox/lang/ast"
	"github.com/loxscript/glox/lang/types"
)

// Function is a user-defined Lox function or method: a syntax tree plus the
// environment that was live when the function was declared, which is what
// makes it a closure.
type Function struct {
	decl          *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

var _ Callable = (*Function)(nil)

func newFunction(decl *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{decl: decl, closure: closure, isInitializer: isInitializer}
}

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.decl.Name) }
func (f *Function) Type() string   { return "function" }
func (f *Function) Truth() bool    { return true }
func (f *Function) Arity() int     { return len(f.decl.Params) }

// Bind returns a copy of f whose closure additionally defines "this" as
// instance, so that method bodies can refer to the instance they were
// called on. Instance.Attr calls this on every lookup of a method name,
// matching the resolver's single additional scope for "this".
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return newFunction(f.decl, env, f.isInitializer)
}

// Call executes the function body in a fresh scope enclosed by the closure,
// binding each parameter to the matching argument.
func (f *Function) Call(in *Interpreter, args []types.Value) (types.Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.decl.Params {
		env.Define(param, args[i])
	}

	err := in.executeBlock(f.decl.Body, env)
	if ret, ok := err.(returnSignal); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return types.Nil, nil
}

// NativeFunction wraps a Go function as a Lox-callable value, for builtins
// like clock() that have no Lox source of their own.
type NativeFunction struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []types.Value) (types.Value, error)
}

var _ Callable = (*NativeFunction)(nil)

func newNativeFunction(name string, arity int, fn func(*Interpreter, []types.Value) (types.Value, error)) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) String() string { return fmt.Sprintf("<native fn %s>", n.name) }
func (n *NativeFunction) Type() string   { return "function" }
func (n *NativeFunction) Truth() bool    { return true }
func (n *NativeFunction) Arity() int     { return n.arity }
func (n *NativeFunction) Call(in *Interpreter, args []types.Value) (types.Value, error) {
	return n.fn(in, args)
}
