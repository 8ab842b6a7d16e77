package ast

import (
	"fmt"

	"github.com/loxscript/glox/lang/token"
)

type (
	// LiteralExpr represents a literal number, string, "true", "false" or
	// "nil".
	LiteralExpr struct {
		Type  token.Token // NUMBER, STRING, TRUE, FALSE or NIL
		Start token.Pos
		Raw   string // uninterpreted text
		Value any    // = float64 | string | bool | nil
	}

	// VariableExpr represents a reference to a named variable.
	VariableExpr struct {
		Name  string
		Start token.Pos
	}

	// AssignExpr represents an assignment to a variable, e.g. x = 1.
	AssignExpr struct {
		Name  string
		Start token.Pos // position of Name
		Equal token.Pos
		Value Expr
	}

	// UnaryExpr represents a unary operator expression, e.g. -x or !x.
	UnaryExpr struct {
		Op      token.Token // MINUS or BANG
		OpStart token.Pos
		Right   Expr
	}

	// BinaryExpr represents a binary operator expression, e.g. x + y.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		Start token.Pos
		Right Expr
	}

	// LogicalExpr represents a short-circuiting "and"/"or" expression.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token // AND or OR
		Start token.Pos
		Right Expr
	}

	// GroupingExpr represents a parenthesized expression.
	GroupingExpr struct {
		Lparen token.Pos
		Expr   Expr
		Rparen token.Pos
	}

	// CallExpr represents a function or method call, e.g. f(a, b).
	CallExpr struct {
		Callee Expr
		Lparen token.Pos
		Args   []Expr
		Rparen token.Pos
	}

	// GetExpr represents a property access, e.g. obj.field.
	GetExpr struct {
		Object Expr
		Dot    token.Pos
		Name   string
		Start  token.Pos // position of Name
	}

	// SetExpr represents a property assignment, e.g. obj.field = value.
	SetExpr struct {
		Object Expr
		Dot    token.Pos
		Name   string
		Start  token.Pos // position of Name
		Equal  token.Pos
		Value  Expr
	}

	// ThisExpr represents a "this" expression inside a method body.
	ThisExpr struct {
		Start token.Pos
	}
)

func (n *LiteralExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, n.Type.String()+" "+n.Raw, nil)
}
func (n *LiteralExpr) Span() (start, end token.Pos) {
	return n.Start, n.Start + token.Pos(len(n.Raw))
}
func (n *LiteralExpr) Walk(v Visitor) {}
func (n *LiteralExpr) expr()          {}

func (n *VariableExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Name, nil) }
func (n *VariableExpr) Span() (start, end token.Pos) {
	return n.Start, n.Start + token.Pos(len(n.Name))
}
func (n *VariableExpr) Walk(v Visitor) {}
func (n *VariableExpr) expr()          {}

func (n *AssignExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Name+" = ...", nil) }
func (n *AssignExpr) Span() (start, end token.Pos) {
	_, end = n.Value.Span()
	return n.Start, end
}
func (n *AssignExpr) Walk(v Visitor) { Walk(v, n.Value) }
func (n *AssignExpr) expr()          {}

func (n *UnaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "unary "+n.Op.GoString(), nil)
}
func (n *UnaryExpr) Span() (start, end token.Pos) {
	_, end = n.Right.Span()
	return n.OpStart, end
}
func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Right) }
func (n *UnaryExpr) expr()          {}

func (n *BinaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "binary "+n.Op.GoString(), nil)
}
func (n *BinaryExpr) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *BinaryExpr) expr() {}

func (n *LogicalExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "logical "+n.Op.GoString(), nil)
}
func (n *LogicalExpr) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *LogicalExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *LogicalExpr) expr() {}

func (n *GroupingExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "(expr)", nil) }
func (n *GroupingExpr) Span() (start, end token.Pos) {
	return n.Lparen, n.Rparen + token.Pos(len(token.RIGHT_PAREN.String()))
}
func (n *GroupingExpr) Walk(v Visitor) { Walk(v, n.Expr) }
func (n *GroupingExpr) expr()          {}

func (n *CallExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}
func (n *CallExpr) Span() (start, end token.Pos) {
	start, _ = n.Callee.Span()
	return start, n.Rparen + token.Pos(len(token.RIGHT_PAREN.String()))
}
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *CallExpr) expr() {}

func (n *GetExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "expr."+n.Name, nil) }
func (n *GetExpr) Span() (start, end token.Pos) {
	start, _ = n.Object.Span()
	return start, n.Start + token.Pos(len(n.Name))
}
func (n *GetExpr) Walk(v Visitor) { Walk(v, n.Object) }
func (n *GetExpr) expr()          {}

func (n *SetExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "expr."+n.Name+" = ...", nil) }
func (n *SetExpr) Span() (start, end token.Pos) {
	start, _ = n.Object.Span()
	_, end = n.Value.Span()
	return start, end
}
func (n *SetExpr) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *SetExpr) expr() {}

func (n *ThisExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "this", nil) }
func (n *ThisExpr) Span() (start, end token.Pos) {
	return n.Start, n.Start + token.Pos(len("this"))
}
func (n *ThisExpr) Walk(v Visitor) {}
func (n *ThisExpr) expr()          {}
