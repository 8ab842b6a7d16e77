// Package parser implements the recursive-descent parser that transforms a
// Lox token stream into an abstract syntax tree.
package parser

import (
	"errors"
	gotoken "go/token"

	"github.com/loxscript/glox/lang/ast"
	"github.com/loxscript/glox/lang/scanner"
	"github.com/loxscript/glox/lang/token"
)

// ParseChunk parses a complete Lox program (or REPL entry) from src and
// returns its AST along with any syntax errors encountered. The error, if
// non-nil, is guaranteed to be a scanner.ErrorList.
func ParseChunk(filename string, src []byte) (*ast.Chunk, error) {
	var p parser
	p.init(filename, src)
	chunk := p.parseChunk()
	p.errors.Sort()
	return chunk, p.errors.Err()
}

// parser holds the mutable state of a single parse.
type parser struct {
	scanner scanner.Scanner
	errors  scanner.ErrorList

	filename string

	// current and previously consumed token
	tok  token.Token
	val  token.Value
	ptok token.Token
	pval token.Value
}

func (p *parser) init(filename string, src []byte) {
	p.filename = filename
	p.scanner.Init(filename, src, p.errors.Add)
	p.advance()
}

func (p *parser) advance() {
	p.ptok, p.pval = p.tok, p.val
	p.tok = p.scanner.Scan(&p.val)
}

// check reports whether the current token is tok, without consuming it.
func (p *parser) check(tok token.Token) bool {
	return p.tok == tok
}

// match consumes and returns true if the current token is one of toks.
func (p *parser) match(toks ...token.Token) bool {
	for _, tok := range toks {
		if p.tok == tok {
			p.advance()
			return true
		}
	}
	return false
}

var errPanicMode = errors.New("panic mode")

// expect consumes and returns the position of the current token if it is
// tok, otherwise it records a syntax error and panics with errPanicMode,
// which is recovered at the statement level to resynchronize parsing.
func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.val.Pos
	if p.tok != tok {
		p.errorExpected(pos, tok.GoString())
		panic(errPanicMode)
	}
	p.advance()
	return pos
}

// tokenWhere renders the specification's "<where>" clause locating a static
// error on its offending token: " at end" for end-of-file, " at '<lexeme>'"
// otherwise, using the token's own lexeme for identifiers and literals and
// its fixed text for keywords and punctuation.
func tokenWhere(tok token.Token, val token.Value) string {
	switch tok {
	case token.EOF:
		return " at end"
	case token.IDENT, token.STRING, token.NUMBER, token.ILLEGAL:
		return " at '" + val.Raw + "'"
	default:
		return " at " + tok.GoString()
	}
}

func (p *parser) error(pos token.Pos, where, msg string) {
	p.errors.Add(gotoken.Position{Filename: p.filename, Line: pos.Line()}, where+": "+msg)
}

func (p *parser) errorExpected(pos token.Pos, msg string) {
	where := tokenWhere(p.tok, p.val)
	msg = "expected " + msg
	if lit := p.tok.Literal(); lit != "" {
		msg += ", found " + lit
	} else if p.tok == token.IDENT || p.tok == token.STRING || p.tok == token.NUMBER {
		msg += ", found " + p.val.Raw
	} else {
		msg += ", found " + p.tok.GoString()
	}
	p.error(pos, where, msg)
}

// synchronize discards tokens until it reaches a statement boundary,
// following a parse error, so that later errors in the same chunk can still
// be reported.
func (p *parser) synchronize() {
	p.advance()
	for p.tok != token.EOF {
		if p.ptok == token.SEMICOLON {
			return
		}
		switch p.tok {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

func (p *parser) parseChunk() *ast.Chunk {
	var chunk ast.Chunk
	for p.tok != token.EOF {
		if stmt := p.parseDeclaration(); stmt != nil {
			chunk.Stmts = append(chunk.Stmts, stmt)
		}
	}
	chunk.EOF = p.val.Pos
	return &chunk
}
