package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loxscript/glox/lang/ast"
	"github.com/loxscript/glox/lang/parser"
	"github.com/loxscript/glox/lang/resolver"
)

func resolveSrc(t *testing.T, src string) (*ast.Chunk, map[ast.Expr]int, error) {
	t.Helper()
	chunk, err := parser.ParseChunk("test.lox", []byte(src))
	require.NoError(t, err)

	distances := make(map[ast.Expr]int)
	err = resolver.Resolve("test.lox", chunk, func(e ast.Expr, d int) {
		distances[e] = d
	})
	return chunk, distances, err
}

func TestResolveLocalDistance(t *testing.T) {
	_, distances, err := resolveSrc(t, `
		var a = 1;
		{
			var b = 2;
			print a + b;
		}
	`)
	require.NoError(t, err)
	// only b is local; the top-level a is a global and is not recorded
	require.Len(t, distances, 1)
	for _, d := range distances {
		require.Contains(t, []int{0, 1}, d)
	}
}

func TestResolveGlobalsAreNotRecorded(t *testing.T) {
	_, distances, err := resolveSrc(t, `
		var a = 1;
		print a;
	`)
	require.NoError(t, err)
	require.Empty(t, distances)
}

func TestResolveSelfReferenceInInitializerErrors(t *testing.T) {
	_, _, err := resolveSrc(t, `
		{
			var a = a;
		}
	`)
	require.Error(t, err)
}

func TestResolveDuplicateInSameScopeErrors(t *testing.T) {
	_, _, err := resolveSrc(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	require.Error(t, err)
}

func TestResolveReturnOutsideFunctionErrors(t *testing.T) {
	_, _, err := resolveSrc(t, `return 1;`)
	require.Error(t, err)
}

func TestResolveReturnValueFromInitializerErrors(t *testing.T) {
	_, _, err := resolveSrc(t, `
		class Foo {
			init() {
				return 1;
			}
		}
	`)
	require.Error(t, err)
}

func TestResolveThisOutsideClassErrors(t *testing.T) {
	_, _, err := resolveSrc(t, `print this;`)
	require.Error(t, err)
}

func TestResolveThisInsideMethodResolves(t *testing.T) {
	_, distances, err := resolveSrc(t, `
		class Foo {
			speak() {
				print this;
			}
		}
	`)
	require.NoError(t, err)
	require.Len(t, distances, 1)
}

func TestResolveFunctionParamsShadowOuterScope(t *testing.T) {
	_, _, err := resolveSrc(t, `
		var a = 1;
		fun f(a) {
			print a;
		}
	`)
	require.NoError(t, err)
}
