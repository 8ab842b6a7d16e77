// Package interp implements the tree-walking evaluator: given a resolved
// syntax tree, it executes statements and evaluates expressions directly,
// type-switching over the concrete ast.Stmt/ast.Expr and types.Value kinds
// rather than dispatching through a visitor.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/loxscript/glox/lang/ast"
	"github.com/loxscript/glox/lang/token"
	"github.com/loxscript/glox/lang/types"
)

// Interpreter holds the state needed to run a single Lox program or REPL
// session: the global scope, the scope chain currently in effect, and the
// lexical distances recorded by the resolver.
type Interpreter struct {
	Output io.Writer

	globals *Environment
	env     *Environment
	locals  map[ast.Expr]int

	// isREPL suppresses printing the value of bare expression statements
	// when false; in REPL mode an evaluated expression's result is echoed
	// (except assignments and calls, whose side effects are the point).
	isREPL bool
}

// New returns an Interpreter with the standard global environment
// (currently just clock()) installed.
func New(output io.Writer, isREPL bool) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", newNativeFunction("clock", 0, func(*Interpreter, []types.Value) (types.Value, error) {
		return types.Number(float64(time.Now().UnixNano()) / 1e9), nil
	}))

	return &Interpreter{
		Output:  output,
		globals: globals,
		env:     globals,
		locals:  make(map[ast.Expr]int),
		isREPL:  isREPL,
	}
}

// Resolve records that expr resolves to a variable distance enclosing
// scopes out. It has the resolver.RecordFunc signature and is meant to be
// passed directly as the record argument to resolver.Resolve.
func (in *Interpreter) Resolve(expr ast.Expr, distance int) {
	in.locals[expr] = distance
}

// Interpret executes every statement in chunk in order, stopping at the
// first runtime error.
func (in *Interpreter) Interpret(chunk *ast.Chunk) error {
	for _, stmt := range chunk.Stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		val, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		if in.isREPL {
			switch s.Expr.(type) {
			case *ast.AssignExpr, *ast.CallExpr:
				// side-effecting expressions don't echo their value
			default:
				fmt.Fprintln(in.Output, stringify(val))
			}
		}
		return nil

	case *ast.PrintStmt:
		val, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Output, stringify(val))
		return nil

	case *ast.VarStmt:
		val := types.Value(types.Nil)
		if s.Init != nil {
			var err error
			val, err = in.evaluate(s.Init)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name, val)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Stmts, NewEnvironment(in.env))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if cond.Truth() {
			return in.execute(s.Then)
		} else if s.HasEls {
			return in.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !cond.Truth() {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := newFunction(s, in.env, false)
		in.env.Define(s.Name, fn)
		return nil

	case *ast.ReturnStmt:
		val := types.Value(types.Nil)
		if s.Value != nil {
			var err error
			val, err = in.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		return returnSignal{value: val}

	case *ast.ClassStmt:
		in.env.Define(s.Name, nil)

		methods := make(map[string]*Function, len(s.Methods))
		for _, m := range s.Methods {
			methods[m.Name] = newFunction(m, in.env, m.Name == "init")
		}
		class := newClass(s.Name, methods)
		in.env.Assign(s.Name, class)
		return nil

	default:
		panic("interp: unhandled statement type")
	}
}

// executeBlock runs stmts with env as the current scope, restoring the
// previous scope afterward even if execution stops on an error.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	prev := in.env
	in.env = env
	defer func() { in.env = prev }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (types.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e), nil

	case *ast.VariableExpr:
		return in.lookUpVariable(e.Name, e)

	case *ast.AssignExpr:
		val, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.env.AssignAt(distance, e.Name, val)
		} else if !in.globals.Assign(e.Name, val) {
			return nil, in.errorf(e.Start, "Undefined variable '%s'.", e.Name)
		}
		return val, nil

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.LogicalExpr:
		return in.evalLogical(e)

	case *ast.GroupingExpr:
		return in.evaluate(e.Expr)

	case *ast.CallExpr:
		return in.evalCall(e)

	case *ast.GetExpr:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		holder, ok := obj.(types.HasAttrs)
		if !ok {
			return nil, in.errorf(e.Start, "Only instances have properties.")
		}
		val, err := holder.Attr(e.Name)
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, in.errorf(e.Start, "Undefined property '%s'.", e.Name)
		}
		return val, nil

	case *ast.SetExpr:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		holder, ok := obj.(types.HasSetField)
		if !ok {
			return nil, in.errorf(e.Start, "Only instances have fields.")
		}
		val, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := holder.SetField(e.Name, val); err != nil {
			return nil, err
		}
		return val, nil

	case *ast.ThisExpr:
		return in.lookUpVariable("this", e)

	default:
		panic("interp: unhandled expression type")
	}
}

func (in *Interpreter) lookUpVariable(name string, expr ast.Expr) (types.Value, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.env.GetAt(distance, name), nil
	}
	if val, ok := in.globals.Get(name); ok {
		return val, nil
	}
	return nil, in.errorf(startOf(expr), "Undefined variable '%s'.", name)
}

func startOf(expr ast.Expr) token.Pos {
	start, _ := expr.Span()
	return start
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (types.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case token.BANG:
		return types.Bool(!right.Truth()), nil
	case token.MINUS:
		n, ok := right.(types.Number)
		if !ok {
			return nil, in.errorf(e.OpStart, "Operand must be a number.")
		}
		return -n, nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (in *Interpreter) evalLogical(e *ast.LogicalExpr) (types.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case token.OR:
		if left.Truth() {
			return left, nil
		}
	case token.AND:
		if !left.Truth() {
			return left, nil
		}
	default:
		panic("interp: unhandled logical operator")
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (types.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case token.BANG_EQUAL:
		return types.Bool(!valuesEqual(left, right)), nil
	case token.EQUAL_EQUAL:
		return types.Bool(valuesEqual(left, right)), nil
	case token.PLUS:
		if ls, ok := left.(types.String); ok {
			if rs, ok := right.(types.String); ok {
				return ls + rs, nil
			}
		}
		if ln, ok := left.(types.Number); ok {
			if rn, ok := right.(types.Number); ok {
				return ln + rn, nil
			}
		}
		return nil, in.errorf(e.Start, "Operands must be two numbers or two strings.")
	}

	ln, lok := left.(types.Number)
	rn, rok := right.(types.Number)
	if !lok || !rok {
		return nil, in.errorf(e.Start, "Operands must be numbers.")
	}
	switch e.Op {
	case token.MINUS:
		return ln - rn, nil
	case token.SLASH:
		return ln / rn, nil
	case token.STAR:
		return ln * rn, nil
	case token.GREATER:
		return types.Bool(ln > rn), nil
	case token.GREATER_EQUAL:
		return types.Bool(ln >= rn), nil
	case token.LESS:
		return types.Bool(ln < rn), nil
	case token.LESS_EQUAL:
		return types.Bool(ln <= rn), nil
	default:
		panic("interp: unhandled binary operator")
	}
}

func (in *Interpreter) evalCall(e *ast.CallExpr) (types.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]types.Value, len(e.Args))
	for i, a := range e.Args {
		val, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, in.errorf(e.Lparen, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, in.errorf(e.Lparen, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) errorf(pos token.Pos, format string, args ...any) error {
	return newRuntimeError(pos, format, args...)
}

func literalValue(e *ast.LiteralExpr) types.Value {
	switch v := e.Value.(type) {
	case nil:
		return types.Nil
	case bool:
		return types.Bool(v)
	case float64:
		return types.Number(v)
	case string:
		return types.String(v)
	default:
		panic(fmt.Sprintf("interp: unexpected literal value type %T", v))
	}
}

func valuesEqual(a, b types.Value) bool {
	if _, aNil := a.(types.NilType); aNil {
		_, bNil := b.(types.NilType)
		return bNil
	}
	switch av := a.(type) {
	case types.Number:
		bv, ok := b.(types.Number)
		return ok && av == bv
	case types.String:
		bv, ok := b.(types.String)
		return ok && av == bv
	case types.Bool:
		bv, ok := b.(types.Bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders a value the way "print" and the REPL do. It returns
// types.Value.String() unchanged (Number.String already prints an integral
// number without a trailing ".0"); it is kept as a single call site for
// print and REPL output.
func stringify(v types.Value) string {
	return v.String()
}
