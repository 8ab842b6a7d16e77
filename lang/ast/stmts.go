package ast

import (
	"fmt"

	"github.com/loxscript/glox/lang/token"
)

type (
	// ExpressionStmt represents an expression used as a statement, e.g. a bare
	// function call.
	ExpressionStmt struct {
		Expr Expr
	}

	// PrintStmt represents a "print" statement.
	PrintStmt struct {
		Print token.Pos
		Expr  Expr
	}

	// VarStmt represents a "var" declaration, with an optional initializer.
	VarStmt struct {
		Var  token.Pos
		Name string
		// Init is nil if the declaration has no initializer, in which case the
		// variable starts out bound to nil.
		Init Expr
	}

	// BlockStmt represents a "{ ... }" block, introducing a new lexical
	// scope.
	BlockStmt struct {
		Lbrace token.Pos
		Stmts  []Stmt
		Rbrace token.Pos
	}

	// IfStmt represents an "if" statement, with an optional "else" branch.
	IfStmt struct {
		If     token.Pos
		Cond   Expr
		Then   Stmt
		Else   Stmt // nil if no else branch
		HasEls bool
	}

	// WhileStmt represents a "while" statement. The parser also desugars
	// "for" loops into a WhileStmt wrapped in a BlockStmt.
	WhileStmt struct {
		While token.Pos
		Cond  Expr
		Body  Stmt
	}

	// FunctionStmt represents a function (or method) declaration.
	FunctionStmt struct {
		Fun    token.Pos
		Name   string
		Params []string
		Body   []Stmt
	}

	// ReturnStmt represents a "return" statement, with an optional value.
	ReturnStmt struct {
		Return token.Pos
		Value  Expr // nil if no value given, defaults to nil at runtime
	}

	// ClassStmt represents a class declaration.
	ClassStmt struct {
		Class   token.Pos
		Name    string
		Methods []*FunctionStmt
	}
)

func (n *ExpressionStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "expr stmt", nil) }
func (n *ExpressionStmt) Span() (start, end token.Pos)  { return n.Expr.Span() }
func (n *ExpressionStmt) Walk(v Visitor)                { Walk(v, n.Expr) }
func (n *ExpressionStmt) stmt()                         {}

func (n *PrintStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "print", nil) }
func (n *PrintStmt) Span() (start, end token.Pos) {
	_, end = n.Expr.Span()
	return n.Print, end
}
func (n *PrintStmt) Walk(v Visitor) { Walk(v, n.Expr) }
func (n *PrintStmt) stmt()          {}

func (n *VarStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "var "+n.Name, nil) }
func (n *VarStmt) Span() (start, end token.Pos) {
	end = n.Var + token.Pos(len("var"))
	if n.Init != nil {
		_, end = n.Init.Span()
	}
	return n.Var, end
}
func (n *VarStmt) Walk(v Visitor) {
	if n.Init != nil {
		Walk(v, n.Init)
	}
}
func (n *VarStmt) stmt() {}

func (n *BlockStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "block", map[string]int{"stmts": len(n.Stmts)})
}
func (n *BlockStmt) Span() (start, end token.Pos) {
	return n.Lbrace, n.Rbrace + token.Pos(len(token.RIGHT_BRACE.String()))
}
func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
func (n *BlockStmt) stmt() {}

func (n *IfStmt) Format(f fmt.State, verb rune) {
	lbl := "if"
	if n.HasEls {
		lbl += " else"
	}
	format(f, verb, n, lbl, nil)
}
func (n *IfStmt) Span() (start, end token.Pos) {
	if n.HasEls {
		_, end = n.Else.Span()
	} else {
		_, end = n.Then.Span()
	}
	return n.If, end
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *IfStmt) stmt() {}

func (n *WhileStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "while", nil) }
func (n *WhileStmt) Span() (start, end token.Pos) {
	_, end = n.Body.Span()
	return n.While, end
}
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *WhileStmt) stmt() {}

func (n *FunctionStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "fn "+n.Name, map[string]int{"params": len(n.Params)})
}
func (n *FunctionStmt) Span() (start, end token.Pos) {
	end = n.Fun
	if len(n.Body) > 0 {
		_, end = n.Body[len(n.Body)-1].Span()
	}
	return n.Fun, end
}
func (n *FunctionStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}
func (n *FunctionStmt) stmt() {}

func (n *ReturnStmt) Format(f fmt.State, verb rune) {
	var count int
	if n.Value != nil {
		count = 1
	}
	format(f, verb, n, "return", map[string]int{"expr": count})
}
func (n *ReturnStmt) Span() (start, end token.Pos) {
	end = n.Return + token.Pos(len("return"))
	if n.Value != nil {
		_, end = n.Value.Span()
	}
	return n.Return, end
}
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *ReturnStmt) stmt() {}

func (n *ClassStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "class "+n.Name, map[string]int{"methods": len(n.Methods)})
}
func (n *ClassStmt) Span() (start, end token.Pos) {
	end = n.Class + token.Pos(len(n.Name))
	if len(n.Methods) > 0 {
		_, end = n.Methods[len(n.Methods)-1].Span()
	}
	return n.Class, end
}
func (n *ClassStmt) Walk(v Visitor) {
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
func (n *ClassStmt) stmt() {}
