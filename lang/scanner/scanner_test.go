package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loxscript/glox/lang/scanner"
	"github.com/loxscript/glox/lang/token"
)

func scanAll(t *testing.T, src string) ([]scanner.TokenAndValue, *scanner.ErrorList) {
	t.Helper()
	var errs scanner.ErrorList
	toks := scanner.ScanAll("test.lox", []byte(src), &errs)
	errs.Sort()
	return toks, &errs
}

func tokenKinds(toks []scanner.TokenAndValue) []token.Token {
	kinds := make([]token.Token, len(toks))
	for i, tv := range toks {
		kinds[i] = tv.Token
	}
	return kinds
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, errs := scanAll(t, "(){},.-+;*!= == <= >= < > / !")
	require.Nil(t, errs.Err())
	require.Equal(t, []token.Token{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LESS, token.GREATER, token.SLASH, token.BANG, token.EOF,
	}, tokenKinds(toks))
}

func TestScanNumber(t *testing.T) {
	toks, errs := scanAll(t, "123 45.67 8.")
	require.Nil(t, errs.Err())
	require.Equal(t, token.NUMBER, toks[0].Token)
	require.Equal(t, float64(123), toks[0].Value.Number)
	require.Equal(t, token.NUMBER, toks[1].Token)
	require.Equal(t, 45.67, toks[1].Value.Number)
	// trailing dot with no following digit is NOT part of the number
	require.Equal(t, token.NUMBER, toks[2].Token)
	require.Equal(t, float64(8), toks[2].Value.Number)
	require.Equal(t, token.DOT, toks[3].Token)
}

func TestScanString(t *testing.T) {
	toks, errs := scanAll(t, `"hello, world"`)
	require.Nil(t, errs.Err())
	require.Equal(t, token.STRING, toks[0].Token)
	require.Equal(t, "hello, world", toks[0].Value.String)
}

func TestScanUnterminatedString(t *testing.T) {
	_, errs := scanAll(t, `"oops`)
	require.NotNil(t, errs.Err())
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, errs := scanAll(t, "andy formless fo _ or and class")
	require.Nil(t, errs.Err())
	require.Equal(t, []token.Token{
		token.IDENT, token.IDENT, token.IDENT, token.IDENT, token.OR, token.AND, token.CLASS, token.EOF,
	}, tokenKinds(toks))
}

func TestScanComments(t *testing.T) {
	toks, errs := scanAll(t, "// this is a comment\n(")
	require.Nil(t, errs.Err())
	require.Equal(t, []token.Token{token.LEFT_PAREN, token.EOF}, tokenKinds(toks))
}

func TestScanTracksLines(t *testing.T) {
	toks, errs := scanAll(t, "1\n2\n3")
	require.Nil(t, errs.Err())
	require.Equal(t, 1, toks[0].Value.Pos.Line())
	require.Equal(t, 2, toks[1].Value.Pos.Line())
	require.Equal(t, 3, toks[2].Value.Pos.Line())
}

func TestScanIllegalCharacter(t *testing.T) {
	_, errs := scanAll(t, "@")
	require.NotNil(t, errs.Err())
}
