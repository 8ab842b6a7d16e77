// Package resolver implements the static analysis pass that runs between
// parsing and interpretation: for every expression that reads or assigns a
// named variable, it determines how many enclosing scopes separate the use
// from its declaration (its "lexical distance"), and reports the set of
// static errors that do not require running the program to detect (a
// variable reading itself in its own initializer, "return" outside a
// function, "this" outside a method, and similar scoping mistakes).
//
// The resolver does not depend on the interpreter package: reporting the
// resolved distance for a given expression is done through a caller-supplied
// callback rather than a direct call into the interpreter, so that the two
// packages can be compiled independently.
package resolver

import (
	gotoken "go/token"

	"github.com/loxscript/glox/lang/ast"
	"github.com/loxscript/glox/lang/scanner"
	"github.com/loxscript/glox/lang/token"
)

// RecordFunc is called once for every expression that resolves to a local
// (non-global) variable, with the number of scopes between the expression
// and the scope that declares the variable.
type RecordFunc func(expr ast.Expr, distance int)

// Resolve walks chunk's statements, reporting the lexical distance of every
// local variable reference through record, and returns any static errors
// found. The returned error, if non-nil, is guaranteed to be a
// scanner.ErrorList.
func Resolve(filename string, chunk *ast.Chunk, record RecordFunc) error {
	r := &resolver{filename: filename, record: record}
	r.resolveStmts(chunk.Stmts)
	r.errors.Sort()
	return r.errors.Err()
}

type functionKind int

const (
	kindNone functionKind = iota
	kindFunction
	kindMethod
	kindInitializer
)

type classKind int

const (
	classKindNone classKind = iota
	classKindClass
)

// binding tracks whether a declared name has finished initializing yet, so
// that "var x = x;" can be rejected: referencing a variable from inside its
// own initializer is always a mistake, never a valid forward reference.
type binding struct {
	defined bool
}

type resolver struct {
	filename string
	errors   scanner.ErrorList
	record   RecordFunc

	scopes          []map[string]*binding
	currentFunction functionKind
	currentClass    classKind
}

// errorAt reports a static error anchored to lexeme (the name or keyword use
// that triggered it), rendering the specification's " at '<lexeme>'" clause
// the same way the parser does for token-anchored errors. None of the
// resolver's errors are raised against end-of-file, so unlike the parser it
// never needs the " at end" form.
func (r *resolver) errorAt(pos token.Pos, lexeme, msg string) {
	r.errors.Add(gotoken.Position{Filename: r.filename, Line: pos.Line()}, " at '"+lexeme+"': "+msg)
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]*binding))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) declare(name string, pos token.Pos) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name]; ok {
		r.errorAt(pos, name, "Already a variable with this name in this scope.")
	}
	scope[name] = &binding{defined: false}
}

func (r *resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = &binding{defined: true}
}

func (r *resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.record(expr, len(r.scopes)-1-i)
			return
		}
	}
	// not found in any scope: treated as a global, resolved dynamically at
	// runtime by the interpreter's global environment.
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.VarStmt:
		r.declare(s.Name, s.Var)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name)

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.FunctionStmt:
		r.declare(s.Name, s.Fun)
		r.define(s.Name)
		r.resolveFunction(s, kindFunction)

	case *ast.ReturnStmt:
		if r.currentFunction == kindNone {
			r.errorAt(s.Return, "return", "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == kindInitializer {
				r.errorAt(s.Return, "return", "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.ClassStmt:
		enclosingClass := r.currentClass
		r.currentClass = classKindClass
		defer func() { r.currentClass = enclosingClass }()

		r.declare(s.Name, s.Class)
		r.define(s.Name)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["this"] = &binding{defined: true}

		for _, m := range s.Methods {
			kind := kindMethod
			if m.Name == "init" {
				kind = kindInitializer
			}
			r.resolveFunction(m, kind)
		}

		r.endScope()

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p, fn.Fun)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// no sub-expressions, no names to resolve

	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if b, ok := r.scopes[len(r.scopes)-1][e.Name]; ok && !b.defined {
				r.errorAt(e.Start, e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expr)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.currentClass == classKindNone {
			r.errorAt(e.Start, "this", "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")

	default:
		panic("resolver: unhandled expression type")
	}
}
