package parser

import (
	"github.com/loxscript/glox/lang/ast"
	"github.com/loxscript/glox/lang/token"
)

func (p *parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment implements "assignment → ( call "." )? IDENTIFIER "="
// assignment | logic_or". Since the target can't be known to be assignable
// until after parsing the left-hand side, it is parsed as a normal
// expression and then checked/rewritten into an AssignExpr or SetExpr.
func (p *parser) parseAssignment() ast.Expr {
	expr := p.parseOr()

	if p.tok == token.EQUAL {
		equalPos := p.val.Pos
		equalWhere := tokenWhere(token.EQUAL, p.val)
		p.advance()
		value := p.parseAssignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Start: target.Start, Equal: equalPos, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Dot: target.Dot, Name: target.Name, Start: target.Start, Equal: equalPos, Value: value}
		default:
			p.error(equalPos, equalWhere, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *parser) parseOr() ast.Expr {
	expr := p.parseAnd()
	for p.tok == token.OR {
		opPos := p.val.Pos
		p.advance()
		right := p.parseAnd()
		expr = &ast.LogicalExpr{Left: expr, Op: token.OR, Start: opPos, Right: right}
	}
	return expr
}

func (p *parser) parseAnd() ast.Expr {
	expr := p.parseEquality()
	for p.tok == token.AND {
		opPos := p.val.Pos
		p.advance()
		right := p.parseEquality()
		expr = &ast.LogicalExpr{Left: expr, Op: token.AND, Start: opPos, Right: right}
	}
	return expr
}

func (p *parser) parseEquality() ast.Expr {
	expr := p.parseComparison()
	for p.tok == token.BANG_EQUAL || p.tok == token.EQUAL_EQUAL {
		op, opPos := p.tok, p.val.Pos
		p.advance()
		right := p.parseComparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Start: opPos, Right: right}
	}
	return expr
}

func (p *parser) parseComparison() ast.Expr {
	expr := p.parseTerm()
	for p.tok == token.GREATER || p.tok == token.GREATER_EQUAL || p.tok == token.LESS || p.tok == token.LESS_EQUAL {
		op, opPos := p.tok, p.val.Pos
		p.advance()
		right := p.parseTerm()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Start: opPos, Right: right}
	}
	return expr
}

func (p *parser) parseTerm() ast.Expr {
	expr := p.parseFactor()
	for p.tok == token.MINUS || p.tok == token.PLUS {
		op, opPos := p.tok, p.val.Pos
		p.advance()
		right := p.parseFactor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Start: opPos, Right: right}
	}
	return expr
}

func (p *parser) parseFactor() ast.Expr {
	expr := p.parseUnary()
	for p.tok == token.SLASH || p.tok == token.STAR {
		op, opPos := p.tok, p.val.Pos
		p.advance()
		right := p.parseUnary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Start: opPos, Right: right}
	}
	return expr
}

func (p *parser) parseUnary() ast.Expr {
	if p.tok == token.BANG || p.tok == token.MINUS {
		op, opPos := p.tok, p.val.Pos
		p.advance()
		right := p.parseUnary()
		return &ast.UnaryExpr{Op: op, OpStart: opPos, Right: right}
	}
	return p.parseCall()
}

func (p *parser) parseCall() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch p.tok {
		case token.LEFT_PAREN:
			expr = p.finishCall(expr)
		case token.DOT:
			dotPos := p.val.Pos
			p.advance()
			namePos := p.val.Pos
			name := p.val.Raw
			p.expect(token.IDENT)
			expr = &ast.GetExpr{Object: expr, Dot: dotPos, Name: name, Start: namePos}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	lparen := p.expect(token.LEFT_PAREN)
	var args []ast.Expr
	if p.tok != token.RIGHT_PAREN {
		for {
			if len(args) >= 255 {
				p.error(p.val.Pos, tokenWhere(p.tok, p.val), "Can't have more than 255 arguments.")
			}
			args = append(args, p.parseExpression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	rparen := p.expect(token.RIGHT_PAREN)
	return &ast.CallExpr{Callee: callee, Lparen: lparen, Args: args, Rparen: rparen}
}

func (p *parser) parsePrimary() ast.Expr {
	pos := p.val.Pos

	switch p.tok {
	case token.FALSE:
		p.advance()
		return &ast.LiteralExpr{Type: token.FALSE, Start: pos, Raw: "false", Value: false}
	case token.TRUE:
		p.advance()
		return &ast.LiteralExpr{Type: token.TRUE, Start: pos, Raw: "true", Value: true}
	case token.NIL:
		p.advance()
		return &ast.LiteralExpr{Type: token.NIL, Start: pos, Raw: "nil", Value: nil}
	case token.NUMBER:
		raw, val := p.val.Raw, p.val.Number
		p.advance()
		return &ast.LiteralExpr{Type: token.NUMBER, Start: pos, Raw: raw, Value: val}
	case token.STRING:
		raw, val := p.val.Raw, p.val.String
		p.advance()
		return &ast.LiteralExpr{Type: token.STRING, Start: pos, Raw: raw, Value: val}
	case token.THIS:
		p.advance()
		return &ast.ThisExpr{Start: pos}
	case token.IDENT:
		name := p.val.Raw
		p.advance()
		return &ast.VariableExpr{Name: name, Start: pos}
	case token.SUPER:
		superWhere := tokenWhere(token.SUPER, p.val)
		p.advance()
		p.error(pos, superWhere, "'super' expressions are not supported.")
		panic(errPanicMode)
	case token.LEFT_PAREN:
		p.advance()
		expr := p.parseExpression()
		rparen := p.expect(token.RIGHT_PAREN)
		return &ast.GroupingExpr{Lparen: pos, Expr: expr, Rparen: rparen}
	default:
		p.errorExpected(pos, "expression")
		panic(errPanicMode)
	}
}
