package parser

import (
	"github.com/xjslang/regex/ast"
	"github.com/xjslang/regex/token"
)

// literalByte returns the byte a token stands for when it appears inside a character
// class, where every structural regex token (other than the class's own `^` and `-`
// sentinels) is just a literal byte. ok is false for tokens that carry no single byte
// (EOF, ILLEGAL, CONCAT, a class escape).
func literalByte(tok token.Token) (b byte, ok bool) {
	switch tok.Type {
	case token.CHAR, token.HYPHEN, token.CARET, token.DOT, token.PLUS, token.STAR,
		token.QUESTION, token.PIPE, token.LPAREN, token.RPAREN, token.LBRACKET, token.RBRACKET:
		return tok.Literal[0], true
	default:
		return 0, false
	}
}

// parseCharClass builds a CharClass node from `[...]`. CurrentToken is LBRACKET on entry.
func (p *Parser) parseCharClass() ast.Expression {
	openTok := p.CurrentToken
	p.NextToken() // move past '[' into the class body

	negated := false
	if p.CurrentToken.Type == token.CARET {
		negated = true
		p.NextToken()
	}

	var bitmap [256]bool
	first := true
	havePrev := false
	var prevByte byte

	for {
		cur := p.CurrentToken
		if cur.Type == token.EOF {
			p.AddErrorAtToken(CodeUnmatchedBracket, "missing matching `]`", cur)
			return &ast.CharClass{Token: openTok, Bitmap: bitmap, Negated: negated}
		}
		if cur.Type == token.RBRACKET && !first {
			break
		}
		first = false

		if token.IsClassEscape(cur.Type) {
			applyClassEscape(&bitmap, cur.Type)
			havePrev = false
			p.NextToken()
			continue
		}

		if cur.Type == token.HYPHEN {
			peek := p.PeekToken
			isRangeOperator := havePrev && peek.Type != token.RBRACKET && peek.Type != token.EOF &&
				!token.IsClassEscape(peek.Type)
			if isRangeOperator {
				p.NextToken() // current = right bound candidate
				hi, ok := literalByte(p.CurrentToken)
				if !ok {
					p.AddErrorAtToken(CodeUnexpectedCharacter, "unexpected token inside character class", p.CurrentToken)
					return &ast.CharClass{Token: openTok, Bitmap: bitmap, Negated: negated}
				}
				if hi <= prevByte {
					p.AddErrorAtToken(CodeBadRange, "bad range", p.CurrentToken)
					return &ast.CharClass{Token: openTok, Bitmap: bitmap, Negated: negated}
				}
				for b := int(prevByte) + 1; b <= int(hi); b++ {
					bitmap[b] = true
				}
				havePrev = false
				p.NextToken()
				continue
			}
			// Hyphen with no usable right bound: a literal '-'.
			bitmap['-'] = true
			prevByte = '-'
			havePrev = true
			p.NextToken()
			continue
		}

		b, ok := literalByte(cur)
		if !ok {
			p.AddErrorAtToken(CodeUnexpectedCharacter, "unexpected token inside character class", cur)
			return &ast.CharClass{Token: openTok, Bitmap: bitmap, Negated: negated}
		}
		bitmap[b] = true
		prevByte = b
		havePrev = true
		p.NextToken()
	}

	// CurrentToken stays on ']', the atom's last token, per the parsePrefix convention.
	if negated {
		for b := 0; b < 256; b++ {
			bitmap[b] = !bitmap[b]
		}
	}
	return &ast.CharClass{Token: openTok, Bitmap: bitmap, Negated: negated}
}

// predefinedClass builds the CharClass for a \d \D \w \W \s \S token encountered outside
// of a `[...]` class (e.g. the whole pattern `\d+`).
func predefinedClass(tok token.Token) *ast.CharClass {
	var bitmap [256]bool
	applyClassEscape(&bitmap, tok.Type)
	return &ast.CharClass{Token: tok, Bitmap: bitmap, Name: tok.Literal}
}

// applyClassEscape ORs the bitmap for a predefined class escape into bitmap.
func applyClassEscape(bitmap *[256]bool, tt token.Type) {
	switch tt {
	case token.CLASS_DIGIT:
		setRange(bitmap, '0', '9')
	case token.CLASS_NOT_DIGIT:
		setAllExceptRange(bitmap, '0', '9')
	case token.CLASS_WORD:
		setWord(bitmap)
	case token.CLASS_NOT_WORD:
		var word [256]bool
		setWord(&word)
		for b := 0; b < 256; b++ {
			if !word[b] {
				bitmap[b] = true
			}
		}
	case token.CLASS_SPACE:
		for _, b := range []byte{' ', '\t', '\n', '\r', '\f', '\v'} {
			bitmap[b] = true
		}
	case token.CLASS_NOT_SPACE:
		space := map[byte]bool{' ': true, '\t': true, '\n': true, '\r': true, '\f': true, '\v': true}
		for b := 0; b < 256; b++ {
			if !space[byte(b)] {
				bitmap[b] = true
			}
		}
	}
}

func setRange(bitmap *[256]bool, lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		bitmap[b] = true
	}
}

func setAllExceptRange(bitmap *[256]bool, lo, hi byte) {
	for b := 0; b < 256; b++ {
		if b < int(lo) || b > int(hi) {
			bitmap[b] = true
		}
	}
}

func setWord(bitmap *[256]bool) {
	setRange(bitmap, '0', '9')
	setRange(bitmap, 'a', 'z')
	setRange(bitmap, 'A', 'Z')
	bitmap['_'] = true
}
