package parser

import (
	"github.com/loxscript/glox/lang/ast"
	"github.com/loxscript/glox/lang/token"
)

// parseDeclaration parses a declaration, which is a statement or one of the
// declaration forms (var, fun, class). Returns nil if a syntax error was
// recovered from by synchronizing (the erroring statement is dropped rather
// than represented as a bad-statement placeholder).
func (p *parser) parseDeclaration() (stmt ast.Stmt) {
	defer func() {
		if err := recover(); err != nil {
			if err == errPanicMode {
				p.synchronize()
				stmt = nil
				return
			}
			panic(err)
		}
	}()

	switch p.tok {
	case token.CLASS:
		return p.parseClassDecl()
	case token.FUN:
		return p.parseFunDecl("function")
	case token.VAR:
		return p.parseVarDecl()
	default:
		return p.parseStatement()
	}
}

func (p *parser) parseClassDecl() ast.Stmt {
	classPos := p.expect(token.CLASS)
	name := p.val.Raw
	p.expect(token.IDENT)
	p.expect(token.LEFT_BRACE)

	var methods []*ast.FunctionStmt
	for p.tok != token.RIGHT_BRACE && p.tok != token.EOF {
		// methods have no leading "fun" keyword
		methodPos := p.val.Pos
		methodName := p.val.Raw
		p.expect(token.IDENT)
		methods = append(methods, p.parseFunctionBody(methodPos, methodName, "method"))
	}
	p.expect(token.RIGHT_BRACE)

	return &ast.ClassStmt{Class: classPos, Name: name, Methods: methods}
}

func (p *parser) parseFunDecl(kind string) *ast.FunctionStmt {
	funPos := p.val.Pos
	p.expect(token.FUN)
	name := p.val.Raw
	p.expect(token.IDENT)
	return p.parseFunctionBody(funPos, name, kind)
}

func (p *parser) parseFunctionBody(funPos token.Pos, name, kind string) *ast.FunctionStmt {
	p.expect(token.LEFT_PAREN)
	var params []string
	if p.tok != token.RIGHT_PAREN {
		for {
			if len(params) >= 255 {
				p.error(p.val.Pos, tokenWhere(p.tok, p.val), "Can't have more than 255 parameters in "+kind+" "+name+".")
			}
			params = append(params, p.val.Raw)
			p.expect(token.IDENT)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RIGHT_PAREN)
	p.expect(token.LEFT_BRACE)
	body := p.parseBlockStmts()

	return &ast.FunctionStmt{Fun: funPos, Name: name, Params: params, Body: body}
}

func (p *parser) parseVarDecl() ast.Stmt {
	varPos := p.expect(token.VAR)
	name := p.val.Raw
	p.expect(token.IDENT)

	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	return &ast.VarStmt{Var: varPos, Name: name, Init: init}
}

func (p *parser) parseStatement() ast.Stmt {
	switch p.tok {
	case token.PRINT:
		return p.parsePrintStmt()
	case token.LEFT_BRACE:
		lbrace := p.expect(token.LEFT_BRACE)
		stmts := p.parseBlockStmts()
		return &ast.BlockStmt{Lbrace: lbrace, Stmts: stmts, Rbrace: p.pval.Pos}
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseExpressionStmt()
	}
}

func (p *parser) parseBlockStmts() []ast.Stmt {
	var stmts []ast.Stmt
	for p.tok != token.RIGHT_BRACE && p.tok != token.EOF {
		if stmt := p.parseDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expect(token.RIGHT_BRACE)
	return stmts
}

func (p *parser) parsePrintStmt() ast.Stmt {
	printPos := p.expect(token.PRINT)
	expr := p.parseExpression()
	p.expect(token.SEMICOLON)
	return &ast.PrintStmt{Print: printPos, Expr: expr}
}

func (p *parser) parseExpressionStmt() ast.Stmt {
	expr := p.parseExpression()
	p.expect(token.SEMICOLON)
	return &ast.ExpressionStmt{Expr: expr}
}

func (p *parser) parseIfStmt() ast.Stmt {
	ifPos := p.expect(token.IF)
	p.expect(token.LEFT_PAREN)
	cond := p.parseExpression()
	p.expect(token.RIGHT_PAREN)

	then := p.parseStatement()

	stmt := &ast.IfStmt{If: ifPos, Cond: cond, Then: then}
	if p.match(token.ELSE) {
		stmt.Else = p.parseStatement()
		stmt.HasEls = true
	}
	return stmt
}

func (p *parser) parseWhileStmt() ast.Stmt {
	whilePos := p.expect(token.WHILE)
	p.expect(token.LEFT_PAREN)
	cond := p.parseExpression()
	p.expect(token.RIGHT_PAREN)
	body := p.parseStatement()
	return &ast.WhileStmt{While: whilePos, Cond: cond, Body: body}
}

// parseForStmt desugars the C-style for loop into the equivalent block and
// while-loop nodes, so the interpreter and resolver need no separate
// for-loop case.
func (p *parser) parseForStmt() ast.Stmt {
	forPos := p.expect(token.FOR)
	p.expect(token.LEFT_PAREN)

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.tok == token.VAR:
		init = p.parseVarDecl()
	default:
		init = p.parseExpressionStmt()
	}

	var cond ast.Expr
	if p.tok != token.SEMICOLON {
		cond = p.parseExpression()
	}
	p.expect(token.SEMICOLON)

	var post ast.Expr
	if p.tok != token.RIGHT_PAREN {
		post = p.parseExpression()
	}
	p.expect(token.RIGHT_PAREN)

	body := p.parseStatement()

	if post != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{body, &ast.ExpressionStmt{Expr: post}}}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{Type: token.TRUE, Raw: "true", Value: true}
	}
	body = &ast.WhileStmt{While: forPos, Cond: cond, Body: body}
	if init != nil {
		body = &ast.BlockStmt{Stmts: []ast.Stmt{init, body}}
	}
	return body
}

func (p *parser) parseReturnStmt() ast.Stmt {
	returnPos := p.expect(token.RETURN)
	var value ast.Expr
	if p.tok != token.SEMICOLON {
		value = p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	return &ast.ReturnStmt{Return: returnPos, Value: value}
}
