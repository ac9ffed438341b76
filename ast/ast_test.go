package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharLiteralStringEscapesMetacharacters(t *testing.T) {
	require.Equal(t, "a", (&CharLiteral{Value: 'a'}).String())
	require.Equal(t, `\*`, (&CharLiteral{Value: '*'}).String())
	require.Equal(t, `\x00`, (&CharLiteral{Value: 0}).String())
}

func TestInfixCloneIsIndependent(t *testing.T) {
	orig := &Infix{
		Operator: CONCAT,
		Left:     &CharLiteral{Value: 'a'},
		Right:    &CharLiteral{Value: 'b'},
	}
	clone := orig.Clone().(*Infix)
	clone.Left.(*CharLiteral).Value = 'z'

	require.Equal(t, byte('a'), orig.Left.(*CharLiteral).Value)
	require.Equal(t, byte('z'), clone.Left.(*CharLiteral).Value)
}

func TestPostfixString(t *testing.T) {
	star := &Postfix{Left: &CharLiteral{Value: 'a'}, Operator: STAR}
	require.Equal(t, "a*", star.String())
}

func TestPostfixStringParenthesizesConcatBody(t *testing.T) {
	star := &Postfix{
		Left: &Infix{
			Operator: CONCAT,
			Left:     &CharLiteral{Value: 'a'},
			Right:    &CharLiteral{Value: 'b'},
		},
		Operator: STAR,
	}
	require.Equal(t, "(ab)*", star.String())
}

func TestAlternateWithEpsilonLeftStringsAsQuestion(t *testing.T) {
	q := &Infix{Operator: ALTERNATE, Left: &Epsilon{}, Right: &CharLiteral{Value: 'a'}}
	require.Equal(t, "a?", q.String())

	q = &Infix{
		Operator: ALTERNATE,
		Left:     &Epsilon{},
		Right: &Infix{
			Operator: CONCAT,
			Left:     &CharLiteral{Value: 'a'},
			Right:    &CharLiteral{Value: 'b'},
		},
	}
	require.Equal(t, "(ab)?", q.String())
}

func TestCharClassStringRoundTripsAsEquivalentClass(t *testing.T) {
	// Bitmap is already complemented by the time parsing finishes (see parser's
	// parseCharClass): Negated=true with every byte except 'a' set means "every byte
	// except 'a'", i.e. the class written as [^a].
	cc := &CharClass{Negated: true}
	for b := 0; b < 256; b++ {
		cc.Bitmap[b] = true
	}
	cc.Bitmap['a'] = false
	s := cc.String()
	require.Equal(t, "[^a]", s)
}

func TestCharClassNamedEscapePrintsEscapeNotEnumeration(t *testing.T) {
	cc := &CharClass{Name: `\d`}
	require.Equal(t, `\d`, cc.String())
}
