// Package parser provides syntax analysis functionality for regex patterns.
// It builds an Abstract Syntax Tree (AST) from tokens provided by the lexer, using a
// Pratt parser (top-down operator precedence parser) to handle the regex operators'
// relative precedence correctly.
package parser

import (
	"fmt"

	"github.com/xjslang/regex/ast"
	"github.com/xjslang/regex/lexer"
	"github.com/xjslang/regex/token"
)

// Operator precedence levels, low to high.
const (
	_ int = iota
	LOWEST
	ALTERNATE // |
	CONCAT    // implicit, between adjacent atoms
	REPEAT    // * ? +
)

// Parser is the main structure responsible for syntactic analysis of a pattern string.
// It implements a Pratt parser that converts the lexer's token stream into a single
// ast.Expression (a pattern has no statement layer: it is one expression tree).
type Parser struct {
	lexer *lexer.Lexer

	// CurrentToken is the token currently being processed.
	CurrentToken token.Token
	// PeekToken is the next token in the stream (lookahead).
	PeekToken token.Token

	// errors accumulates parsing errors encountered during parsing. Only the first is
	// ever reported: once set, parsing stops advancing.
	errors []ParserError
}

// New creates a new Parser over the tokens produced by l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lexer: l, errors: []ParserError{}}
	// Read two tokens, so CurrentToken and PeekToken are both set.
	p.NextToken()
	p.NextToken()
	return p
}

// NextToken advances the parser to the next token in the stream.
func (p *Parser) NextToken() {
	p.CurrentToken = p.PeekToken
	p.PeekToken = p.lexer.NextToken()
}

// Errors returns all parsing errors encountered during parsing. Compile surfaces only
// the first.
func (p *Parser) Errors() []ParserError {
	return p.errors
}

// AddErrorAtToken records a parsing error at tok's position. Only the first call has any
// effect; later calls are no-ops so the ascending recursion's own error handling doesn't
// clobber the original failure.
func (p *Parser) AddErrorAtToken(code, message string, tok token.Token) {
	if len(p.errors) > 0 {
		return
	}
	p.errors = append(p.errors, ParserError{
		Message:  message,
		Position: Position{Line: tok.Line, Column: tok.Column},
		Code:     code,
	})
}

func (p *Parser) failed() bool {
	return len(p.errors) > 0
}

// ParseProgram parses the entire pattern and returns the resulting expression tree. An
// empty pattern parses to ast.Epsilon (matches the empty string everywhere).
func (p *Parser) ParseProgram() (ast.Expression, error) {
	if p.CurrentToken.Type == token.EOF {
		return &ast.Epsilon{Token: p.CurrentToken}, nil
	}

	expr := p.parseExpression(LOWEST)
	if !p.failed() && p.PeekToken.Type != token.EOF {
		p.AddErrorAtToken(CodeUnexpectedCharacter, "unexpected character", p.PeekToken)
	}

	if p.failed() {
		return nil, p.errors[0]
	}
	return expr, nil
}

// beginsAtom reports whether tt is a token kind that can start an atom (CHAR, `.`, `(`,
// `[`, a predefined class escape, or a byte that's only structural inside a character
// class). This is what lets `ab` parse as an implicit concatenation: the peek-precedence
// rule treats any such token as if it were preceded by a CONCAT operator.
func beginsAtom(tt token.Type) bool {
	switch tt {
	case token.CHAR, token.DOT, token.LPAREN, token.LBRACKET, token.HYPHEN, token.CARET:
		return true
	default:
		return token.IsClassEscape(tt)
	}
}

// peekPrecedence returns the operator precedence of the next token (PeekToken), per the
// peek-precedence rule above.
func (p *Parser) peekPrecedence() int {
	switch p.PeekToken.Type {
	case token.PIPE:
		return ALTERNATE
	case token.STAR, token.QUESTION, token.PLUS:
		return REPEAT
	}
	if beginsAtom(p.PeekToken.Type) {
		return CONCAT
	}
	return LOWEST
}

// parseExpression is the Pratt climb: it reads a prefix (atom) for the current token,
// then while the peek token's precedence exceeds floor, advances and folds in the
// appropriate infix or postfix operator.
func (p *Parser) parseExpression(floor int) ast.Expression {
	left := p.parsePrefix()
	if p.failed() {
		return left
	}

	for !p.failed() && floor < p.peekPrecedence() {
		switch p.PeekToken.Type {
		case token.PIPE:
			p.NextToken() // current = PIPE
			left = p.parseAlternate(left)
		case token.STAR, token.QUESTION, token.PLUS:
			p.NextToken() // current = postfix operator
			left = p.parsePostfix(left)
		default:
			// Implicit concatenation: PeekToken itself begins the next atom.
			p.NextToken() // current = start of right operand
			left = p.parseConcat(left)
		}
	}
	return left
}

// parsePrefix dispatches on the current token's kind to parse an atom, leaving
// CurrentToken on the atom's last token (the same convention as xjs's prefix parse
// functions). xjs maps this through a registered table of prefixParseFns; a regex
// grammar is fixed (there's no middleware extending it), so this is a direct switch
// instead.
func (p *Parser) parsePrefix() ast.Expression {
	tok := p.CurrentToken
	switch tok.Type {
	case token.CHAR:
		return &ast.CharLiteral{Token: tok, Value: tok.Literal[0]}
	case token.HYPHEN:
		return &ast.CharLiteral{Token: tok, Value: '-'}
	case token.CARET:
		return &ast.CharLiteral{Token: tok, Value: '^'}
	case token.DOT:
		return &ast.AnyChar{Token: tok}
	case token.LPAREN:
		return p.parseGroup()
	case token.LBRACKET:
		return p.parseCharClass()
	case token.CLASS_DIGIT, token.CLASS_NOT_DIGIT, token.CLASS_WORD, token.CLASS_NOT_WORD,
		token.CLASS_SPACE, token.CLASS_NOT_SPACE:
		return predefinedClass(tok)
	case token.ILLEGAL:
		p.AddErrorAtToken(CodeIllegalEscape, "illegal escape sequence", tok)
		return nil
	default:
		p.AddErrorAtToken(CodeUnexpectedCharacter, "unexpected character", tok)
		return nil
	}
}

// parseGroup parses `(...)`, re-entering the climb with precedence floor LOWEST.
func (p *Parser) parseGroup() ast.Expression {
	p.NextToken() // consume '(', current = first token of inner expression
	inner := p.parseExpression(LOWEST)
	if p.failed() {
		return inner
	}
	if p.PeekToken.Type != token.RPAREN {
		p.AddErrorAtToken(CodeUnmatchedParen, "missing matching `)`", p.PeekToken)
		return inner
	}
	p.NextToken() // current = ')', the atom's last token
	return inner
}

// parseAlternate folds in `|`. CurrentToken is PIPE on entry.
func (p *Parser) parseAlternate(left ast.Expression) ast.Expression {
	tok := p.CurrentToken
	p.NextToken() // current = start of right operand
	right := p.parseExpression(ALTERNATE)
	if p.failed() {
		return left
	}
	return &ast.Infix{Token: tok, Operator: ast.ALTERNATE, Left: left, Right: right}
}

// parseConcat folds in an implicit concatenation. CurrentToken is already the start of
// the right operand on entry (there is no operator token to consume).
func (p *Parser) parseConcat(left ast.Expression) ast.Expression {
	right := p.parseExpression(CONCAT)
	if p.failed() {
		return left
	}
	return &ast.Infix{Operator: ast.CONCAT, Left: left, Right: right}
}

// parsePostfix folds in `*`, `?`, or `+`, desugaring `?` and `+` immediately so that only
// STAR postfix nodes ever survive into a returned tree:
//
//	X?  ->  (Epsilon | X)
//	X+  ->  X . X*
//
// The desugaring is why the compiler only needs three recursive shapes (ALTERNATE,
// CONCAT, STAR) instead of five.
func (p *Parser) parsePostfix(left ast.Expression) ast.Expression {
	tok := p.CurrentToken
	switch tok.Type {
	case token.STAR:
		return &ast.Postfix{Token: tok, Left: left, Operator: ast.STAR}
	case token.QUESTION:
		return &ast.Infix{
			Token:    tok,
			Operator: ast.ALTERNATE,
			Left:     &ast.Epsilon{Token: tok},
			Right:    left,
		}
	case token.PLUS:
		star := &ast.Postfix{Token: tok, Left: left.Clone().(ast.Expression), Operator: ast.STAR}
		return &ast.Infix{Token: tok, Operator: ast.CONCAT, Left: left, Right: star}
	default:
		panic(fmt.Sprintf("parser: parsePostfix called with non-postfix token %s", tok.Type))
	}
}
