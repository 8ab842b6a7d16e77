package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loxscript/glox/lang/ast"
	"github.com/loxscript/glox/lang/parser"
	"github.com/loxscript/glox/lang/token"
)

func TestParseExpressionStmt(t *testing.T) {
	chunk, err := parser.ParseChunk("test.lox", []byte(`1 + 2 * 3;`))
	require.NoError(t, err)
	require.Len(t, chunk.Stmts, 1)

	exprStmt, ok := chunk.Stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)

	bin, ok := exprStmt.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.PLUS, bin.Op)

	right, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.STAR, right.Op)
}

func TestParseVarDecl(t *testing.T) {
	chunk, err := parser.ParseChunk("test.lox", []byte(`var x = 1;`))
	require.NoError(t, err)
	require.Len(t, chunk.Stmts, 1)

	v, ok := chunk.Stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	require.Equal(t, "x", v.Name)
	require.NotNil(t, v.Init)
}

func TestParseAssignment(t *testing.T) {
	chunk, err := parser.ParseChunk("test.lox", []byte(`x = 1;`))
	require.NoError(t, err)

	exprStmt := chunk.Stmts[0].(*ast.ExpressionStmt)
	assign, ok := exprStmt.Expr.(*ast.AssignExpr)
	require.True(t, ok)
	require.Equal(t, "x", assign.Name)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := parser.ParseChunk("test.lox", []byte(`1 = 2;`))
	require.Error(t, err)
}

func TestParseIfElse(t *testing.T) {
	chunk, err := parser.ParseChunk("test.lox", []byte(`if (true) print 1; else print 2;`))
	require.NoError(t, err)

	ifStmt, ok := chunk.Stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	require.True(t, ifStmt.HasEls)
	require.NotNil(t, ifStmt.Else)
}

func TestParseWhile(t *testing.T) {
	chunk, err := parser.ParseChunk("test.lox", []byte(`while (x < 10) x = x + 1;`))
	require.NoError(t, err)
	_, ok := chunk.Stmts[0].(*ast.WhileStmt)
	require.True(t, ok)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	chunk, err := parser.ParseChunk("test.lox", []byte(`for (var i = 0; i < 10; i = i + 1) print i;`))
	require.NoError(t, err)

	block, ok := chunk.Stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)

	_, ok = block.Stmts[0].(*ast.VarStmt)
	require.True(t, ok)

	whileStmt, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)

	body, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2)
}

func TestParseFunctionDecl(t *testing.T) {
	chunk, err := parser.ParseChunk("test.lox", []byte(`fun add(a, b) { return a + b; }`))
	require.NoError(t, err)

	fn, ok := chunk.Stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name)
	require.Equal(t, []string{"a", "b"}, fn.Params)
	require.Len(t, fn.Body, 1)
}

func TestParseClassDecl(t *testing.T) {
	chunk, err := parser.ParseChunk("test.lox", []byte(`class Greeter { greet() { print "hi"; } }`))
	require.NoError(t, err)

	cls, ok := chunk.Stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	require.Equal(t, "Greeter", cls.Name)
	require.Len(t, cls.Methods, 1)
	require.Equal(t, "greet", cls.Methods[0].Name)
}

func TestParseGetSetExpr(t *testing.T) {
	chunk, err := parser.ParseChunk("test.lox", []byte(`obj.field = obj.other;`))
	require.NoError(t, err)

	exprStmt := chunk.Stmts[0].(*ast.ExpressionStmt)
	set, ok := exprStmt.Expr.(*ast.SetExpr)
	require.True(t, ok)
	require.Equal(t, "field", set.Name)

	_, ok = set.Value.(*ast.GetExpr)
	require.True(t, ok)
}

func TestParseSuperIsRejected(t *testing.T) {
	_, err := parser.ParseChunk("test.lox", []byte(`print super.method();`))
	require.Error(t, err)
}

func TestParseCallWithTooManyArgsErrors(t *testing.T) {
	var args string
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ","
		}
		args += "1"
	}
	_, err := parser.ParseChunk("test.lox", []byte(`f(`+args+`);`))
	require.Error(t, err)
}

func TestParseSynchronizesAfterError(t *testing.T) {
	chunk, err := parser.ParseChunk("test.lox", []byte(`var = 1; var x = 2;`))
	require.Error(t, err)
	// the malformed declaration is dropped, but parsing continues and the
	// well-formed one is still collected.
	require.Len(t, chunk.Stmts, 1)
	v, ok := chunk.Stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	require.Equal(t, "x", v.Name)
}
