package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loxscript/glox/lang/ast"
	"github.com/loxscript/glox/lang/token"
)

func TestPrinterWalksNestedNodes(t *testing.T) {
	chunk := &ast.Chunk{
		Stmts: []ast.Stmt{
			&ast.VarStmt{
				Name: "x",
				Init: &ast.LiteralExpr{Type: token.NUMBER, Raw: "1", Value: float64(1)},
			},
			&ast.PrintStmt{
				Expr: &ast.BinaryExpr{
					Left:  &ast.VariableExpr{Name: "x"},
					Op:    token.PLUS,
					Right: &ast.LiteralExpr{Type: token.NUMBER, Raw: "2", Value: float64(2)},
				},
			},
		},
	}

	var buf strings.Builder
	p := ast.Printer{Output: &buf}
	require.NoError(t, p.Print(chunk))

	out := buf.String()
	require.Contains(t, out, "chunk")
	require.Contains(t, out, "var x")
	require.Contains(t, out, "print")
	require.Contains(t, out, "binary '+'")
}

func TestWalkVisitsEveryChild(t *testing.T) {
	expr := &ast.BinaryExpr{
		Left:  &ast.VariableExpr{Name: "a"},
		Op:    token.STAR,
		Right: &ast.VariableExpr{Name: "b"},
	}

	var visited []ast.Node
	var v ast.VisitorFunc
	v = ast.VisitorFunc(func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir == ast.VisitEnter {
			visited = append(visited, n)
		}
		return v
	})
	ast.Walk(v, expr)

	require.Len(t, visited, 3)
}
