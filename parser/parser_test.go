package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xjslang/regex/ast"
	"github.com/xjslang/regex/lexer"
)

func parse(t *testing.T, pattern string) ast.Expression {
	t.Helper()
	p := New(lexer.New(pattern))
	tree, err := p.ParseProgram()
	require.NoError(t, err, pattern)
	return tree
}

func TestParseEmptyPattern(t *testing.T) {
	tree := parse(t, "")
	_, ok := tree.(*ast.Epsilon)
	require.True(t, ok)
}

func TestParseConcatenation(t *testing.T) {
	tree := parse(t, "ab")
	in, ok := tree.(*ast.Infix)
	require.True(t, ok)
	require.Equal(t, ast.CONCAT, in.Operator)
	require.Equal(t, "ab", tree.String())
}

func TestParseAlternationIsLowestPrecedence(t *testing.T) {
	tree := parse(t, "ab|cd")
	in, ok := tree.(*ast.Infix)
	require.True(t, ok)
	require.Equal(t, ast.ALTERNATE, in.Operator)

	left, ok := in.Left.(*ast.Infix)
	require.True(t, ok)
	require.Equal(t, ast.CONCAT, left.Operator)
}

func TestParseStarBindsTighterThanConcat(t *testing.T) {
	tree := parse(t, "ab*")
	in, ok := tree.(*ast.Infix)
	require.True(t, ok)
	require.Equal(t, ast.CONCAT, in.Operator)

	right, ok := in.Right.(*ast.Postfix)
	require.True(t, ok)
	require.Equal(t, ast.STAR, right.Operator)
}

func TestParseQuestionDesugarsToAlternateWithEpsilon(t *testing.T) {
	tree := parse(t, "a?")
	in, ok := tree.(*ast.Infix)
	require.True(t, ok)
	require.Equal(t, ast.ALTERNATE, in.Operator)
	_, ok = in.Left.(*ast.Epsilon)
	require.True(t, ok)
	_, ok = in.Right.(*ast.CharLiteral)
	require.True(t, ok)
}

func TestParsePlusDesugarsToConcatWithStar(t *testing.T) {
	tree := parse(t, "a+")
	in, ok := tree.(*ast.Infix)
	require.True(t, ok)
	require.Equal(t, ast.CONCAT, in.Operator)
	_, ok = in.Left.(*ast.CharLiteral)
	require.True(t, ok)
	star, ok := in.Right.(*ast.Postfix)
	require.True(t, ok)
	require.Equal(t, ast.STAR, star.Operator)
}

func TestParseGrouping(t *testing.T) {
	tree := parse(t, "(ab)*")
	post, ok := tree.(*ast.Postfix)
	require.True(t, ok)
	require.Equal(t, ast.STAR, post.Operator)
	_, ok = post.Left.(*ast.Infix)
	require.True(t, ok)
	require.Equal(t, "(ab)*", tree.String())
}

func TestParseAnyChar(t *testing.T) {
	tree := parse(t, ".")
	_, ok := tree.(*ast.AnyChar)
	require.True(t, ok)
}

func TestParsePredefinedClassEscape(t *testing.T) {
	tree := parse(t, `\d+`)
	in := tree.(*ast.Infix)
	cc, ok := in.Left.(*ast.CharClass)
	require.True(t, ok)
	require.True(t, cc.Bitmap['5'])
	require.False(t, cc.Bitmap['a'])
}

func TestParseCharClassRange(t *testing.T) {
	tree := parse(t, "[a-d]")
	cc, ok := tree.(*ast.CharClass)
	require.True(t, ok)
	for b := byte('a'); b <= 'd'; b++ {
		require.True(t, cc.Bitmap[b], string(b))
	}
	require.False(t, cc.Bitmap['e'])
}

func TestParseCharClassLeadingHyphen(t *testing.T) {
	tree := parse(t, "[-a-d]")
	cc := tree.(*ast.CharClass)
	require.True(t, cc.Bitmap['-'])
	require.True(t, cc.Bitmap['a'])
	require.True(t, cc.Bitmap['d'])
}

func TestParseCharClassTrailingHyphen(t *testing.T) {
	tree := parse(t, "[a-d-]")
	cc := tree.(*ast.CharClass)
	require.True(t, cc.Bitmap['-'])
	require.True(t, cc.Bitmap['a'])
}

func TestParseCharClassNegated(t *testing.T) {
	tree := parse(t, "[^a-z]")
	cc := tree.(*ast.CharClass)
	require.True(t, cc.Negated)
	require.False(t, cc.Bitmap['m'])
	require.True(t, cc.Bitmap['M'])
}

func TestParseCharClassMultipleRangesResetAnchor(t *testing.T) {
	tree := parse(t, "[a-d0-3]")
	cc := tree.(*ast.CharClass)
	require.True(t, cc.Bitmap['b'])
	require.True(t, cc.Bitmap['2'])
	require.False(t, cc.Bitmap['5'])
}

// TestParseCharClassHyphenRangeAfterLiteralHyphen exercises the worked example "range
// `-`..`9` plus `a-d`": after the a-d range resets the anchor, the next "-" has no
// usable left-hand range partner yet and is absorbed as a literal '-'; that literal
// then becomes the low end of a second range, "-9", unioned with the a-d range.
func TestParseCharClassHyphenRangeAfterLiteralHyphen(t *testing.T) {
	tree := parse(t, "[a-d--9]")
	cc := tree.(*ast.CharClass)
	require.True(t, cc.Bitmap['a'])
	require.True(t, cc.Bitmap['b'])
	require.True(t, cc.Bitmap['c'])
	require.True(t, cc.Bitmap['d'])
	require.True(t, cc.Bitmap['-'])
	require.True(t, cc.Bitmap['7'])
	require.False(t, cc.Bitmap['e'])
	require.False(t, cc.Bitmap['A'])
}

func TestParseErrorUnmatchedParen(t *testing.T) {
	p := New(lexer.New("(ab"))
	_, err := p.ParseProgram()
	require.Error(t, err)
	pe := err.(ParserError)
	require.Equal(t, CodeUnmatchedParen, pe.Code)
}

func TestParseErrorUnmatchedBracket(t *testing.T) {
	p := New(lexer.New("[a-"))
	_, err := p.ParseProgram()
	require.Error(t, err)
}

func TestParseErrorBadRange(t *testing.T) {
	p := New(lexer.New("[z-a]"))
	_, err := p.ParseProgram()
	require.Error(t, err)
	pe := err.(ParserError)
	require.Equal(t, CodeBadRange, pe.Code)
}

func TestParseErrorStopsAtFirstFailure(t *testing.T) {
	p := New(lexer.New("(a"))
	_, err := p.ParseProgram()
	require.Error(t, err)
	require.Len(t, p.Errors(), 1)
}
