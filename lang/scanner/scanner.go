// Some of the scanner package is adapted from the Go source code:
// https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"fmt"
	"go/scanner"
	gotoken "go/token"
	"unicode/utf8"

	"github.com/loxscript/glox/lang/token"
)

type (
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)

var PrintError = scanner.PrintError

// TokenAndValue combines the token type with the token value type in the same
// struct.
type TokenAndValue struct {
	Token token.Token
	Value token.Value
}

// ScanAll is a helper function that tokenizes src in full, returning every
// token produced (terminated by a single token.EOF) and reporting lexical
// errors in errs.
func ScanAll(filename string, src []byte, errs *ErrorList) []TokenAndValue {
	var (
		s      Scanner
		tokVal token.Value
		out    []TokenAndValue
	)
	s.Init(filename, src, errs.Add)
	for {
		tok := s.Scan(&tokVal)
		out = append(out, TokenAndValue{Token: tok, Value: tokVal})
		if tok == token.EOF {
			return out
		}
	}
}

// Scanner tokenizes source text for the parser to consume. The zero value is
// not ready to use; call Init first.
type Scanner struct {
	// immutable state after Init
	filename string
	src      []byte
	err      func(pos gotoken.Position, msg string)

	// mutable scanning state
	cur  rune // current character, -1 at end of file
	off  int  // byte offset of cur
	roff int  // byte offset right after cur
	line int  // 1-based line of cur
}

// Init prepares s to scan src from the beginning, under the given filename
// (used only for error position reporting).
func (s *Scanner) Init(filename string, src []byte, errHandler func(gotoken.Position, string)) {
	s.filename = filename
	s.src = src
	s.err = errHandler

	s.cur = ' '
	s.off = 0
	s.roff = 0
	s.line = 1
	s.advance()
}

// peek returns the byte following the most recently read character without
// advancing the scanner. If the scanner is at EOF, peek returns 0.
func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

// advance reads the next Unicode char into s.cur; s.cur < 0 means
// end-of-file.
func (s *Scanner) advance() {
	if s.cur == '\n' {
		s.line++
	}
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		s.cur = -1
		return
	}

	s.off = s.roff
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.roff:])
		if r == utf8.RuneError && w == 1 {
			s.errorf("illegal UTF-8 encoding")
		}
	}
	s.roff += w
	s.cur = r
}

// errorf reports a lexical error that isn't anchored to any token (the
// scanner hasn't finished forming one yet), so unlike parser and resolver
// errors it carries no "<where>" clause of its own.
func (s *Scanner) errorf(format string, args ...any) {
	if s.err == nil {
		return
	}
	pos := gotoken.Position{Filename: s.filename, Line: s.line, Column: 1}
	s.err(pos, ": "+fmt.Sprintf(format, args...))
}

// advanceIf advances and returns true if the current char equals match.
func (s *Scanner) advanceIf(match byte) bool {
	if s.cur == rune(match) {
		s.advance()
		return true
	}
	return false
}

// Scan returns the next token, filling tokVal with its payload. A stream of
// Scan calls is always terminated by a single token.EOF; calling Scan again
// past end of file keeps returning token.EOF.
func (s *Scanner) Scan(tokVal *token.Value) (tok token.Token) {
	s.skipWhitespaceAndComments()

	pos := token.MakePos(s.line, 1)
	start := s.off

	switch {
	case isDigit(s.cur):
		lit, val := s.number()
		*tokVal = token.Value{Raw: lit, Pos: pos, Number: val}
		return token.NUMBER

	case isAlpha(s.cur):
		lit := s.identifier()
		tok = token.LookupKeyword(lit)
		*tokVal = token.Value{Raw: lit, Pos: pos}
		return tok

	case s.cur == '"':
		lit, val := s.string()
		*tokVal = token.Value{Raw: lit, Pos: pos, String: val}
		return token.STRING

	case s.cur == -1:
		*tokVal = token.Value{Raw: "", Pos: pos}
		return token.EOF
	}

	cur := s.cur
	s.advance() // always make progress

	switch cur {
	case '(':
		tok = token.LEFT_PAREN
	case ')':
		tok = token.RIGHT_PAREN
	case '{':
		tok = token.LEFT_BRACE
	case '}':
		tok = token.RIGHT_BRACE
	case ',':
		tok = token.COMMA
	case '.':
		tok = token.DOT
	case '-':
		tok = token.MINUS
	case '+':
		tok = token.PLUS
	case ';':
		tok = token.SEMICOLON
	case '*':
		tok = token.STAR
	case '/':
		tok = token.SLASH
	case '!':
		tok = token.BANG
		if s.advanceIf('=') {
			tok = token.BANG_EQUAL
		}
	case '=':
		tok = token.EQUAL
		if s.advanceIf('=') {
			tok = token.EQUAL_EQUAL
		}
	case '<':
		tok = token.LESS
		if s.advanceIf('=') {
			tok = token.LESS_EQUAL
		}
	case '>':
		tok = token.GREATER
		if s.advanceIf('=') {
			tok = token.GREATER_EQUAL
		}
	default:
		s.errorf("unexpected character: %q", cur)
		*tokVal = token.Value{Raw: string(s.src[start:s.off]), Pos: pos}
		return token.ILLEGAL
	}

	*tokVal = token.Value{Raw: string(s.src[start:s.off]), Pos: pos}
	return tok
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case isSpace(s.cur):
			s.advance()
		case s.cur == '/' && s.peek() == '/':
			for s.cur != '\n' && s.cur != -1 {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) identifier() string {
	start := s.off
	for isAlpha(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

func isSpace(rn rune) bool { return rn == ' ' || rn == '\t' || rn == '\n' || rn == '\r' }

func isDigit(rn rune) bool { return rn >= '0' && rn <= '9' }

func isAlpha(rn rune) bool {
	return rn == '_' || ('a' <= rn && rn <= 'z') || ('A' <= rn && rn <= 'Z')
}
