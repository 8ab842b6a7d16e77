package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loxscript/glox/lang/types"
)

func TestTruth(t *testing.T) {
	require.False(t, types.Nil.Truth())
	require.False(t, types.False.Truth())
	require.True(t, types.True.Truth())
	require.True(t, types.Number(0).Truth())
	require.True(t, types.String("").Truth())
}

func TestNumberString(t *testing.T) {
	require.Equal(t, "10", types.Number(10).String())
	require.Equal(t, "3.14", types.Number(3.14).String())
}
