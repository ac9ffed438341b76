package executor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xjslang/regex/ast"
	"github.com/xjslang/regex/compiler"
)

func charLiteral(b byte) ast.Expression { return &ast.CharLiteral{Value: b} }

func concat(exprs ...ast.Expression) ast.Expression {
	out := exprs[0]
	for _, e := range exprs[1:] {
		out = &ast.Infix{Operator: ast.CONCAT, Left: out, Right: e}
	}
	return out
}

func star(e ast.Expression) ast.Expression {
	return &ast.Postfix{Left: e, Operator: ast.STAR}
}

func question(e ast.Expression) ast.Expression {
	return &ast.Infix{Operator: ast.ALTERNATE, Left: &ast.Epsilon{}, Right: e}
}

func TestExecuteDeadStateShortCircuits(t *testing.T) {
	m := compiler.Compile(charLiteral('a'))
	require.False(t, Execute(m, []byte("ba")))
}

func TestExecuteContextCancellationStopsEarly(t *testing.T) {
	// charLiteral('a') alone, unlike a*, does not accept the empty prefix, so the run
	// loop is actually entered and the cancellation check at i=0 gets a chance to fire.
	m := compiler.Compile(charLiteral('a'))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	matched, err := ExecuteContext(ctx, m, []byte(strings.Repeat("a", 10000)))
	require.Error(t, err)
	require.False(t, matched)
}

func TestExecuteContextUncancelledMatchesNormally(t *testing.T) {
	m := compiler.Compile(star(charLiteral('a')))
	matched, err := ExecuteContext(context.Background(), m, []byte("aaaa"))
	require.NoError(t, err)
	require.True(t, matched)
}

// TestExecutePathologicalPatternStaysLinear exercises the classic (a?){n}a{n} family
// against a string of n a's. A backtracking engine is exponential in n here; the
// two-set simulation never tracks more than NumStates live states regardless of input
// length, so this is expected to return promptly even for n in the hundreds.
func TestExecutePathologicalPatternStaysLinear(t *testing.T) {
	const n = 200
	var pattern ast.Expression = &ast.Epsilon{}
	for i := 0; i < n; i++ {
		pattern = concat(pattern, question(charLiteral('a')))
	}
	for i := 0; i < n; i++ {
		pattern = concat(pattern, charLiteral('a'))
	}
	m := compiler.Compile(pattern)
	require.True(t, Execute(m, []byte(strings.Repeat("a", n))))
	require.False(t, Execute(m, []byte(strings.Repeat("a", n-1))))
}
