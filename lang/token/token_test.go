package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		require.NotEmpty(t, tok.String(), "token %d missing a String() form", tok)
	}
}

func TestLookupKeyword(t *testing.T) {
	for tok := AND; tok < maxToken; tok++ {
		require.Equal(t, tok, LookupKeyword(tok.String()))
	}
	require.Equal(t, IDENT, LookupKeyword("notAKeyword"))
	require.Equal(t, IDENT, LookupKeyword(""))
}

func TestGoString(t *testing.T) {
	require.Equal(t, "';'", SEMICOLON.GoString())
	require.Equal(t, "'class'", CLASS.GoString())
	require.Equal(t, "identifier", IDENT.GoString())
	require.Equal(t, "end of file", EOF.GoString())
}

func TestLiteral(t *testing.T) {
	require.Equal(t, "", IDENT.Literal())
	require.Equal(t, "", STRING.Literal())
	require.Equal(t, "", NUMBER.Literal())
	require.Equal(t, ";", SEMICOLON.Literal())
	require.Equal(t, "class", CLASS.Literal())
}
