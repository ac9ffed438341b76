/*
Package lexer provides lexical analysis functionality for regex patterns.

The lexer tokenizes a pattern string into a sequence of tokens that can be consumed
by the parser. Unlike a programming-language lexer it does no whitespace skipping and
no identifier/keyword lookup: every byte of the pattern is meaningful.

Example:

	l := lexer.New(`a+b?`)
	for {
		tok := l.NextToken()
		fmt.Println(tok)
		if tok.Type == token.EOF {
			break
		}
	}

# Escapes

A backslash consumes the following byte. \d \D \w \W \s \S produce predefined
character-class tokens. \x consumes two further hex-digit bytes and produces a CHAR
token carrying the decoded byte (the counterpart to how a CharLiteral holding a
non-printable byte stringifies: see ast.CharLiteral.String). Escaping one of the
regex metacharacters (\+ \? \* \. \| \( \) \[ \] \- \^ \\) produces a CHAR token
carrying that byte literally, so \( means a literal open paren, not a group. Any other
escaped byte (\z, \5, \n, ...) is ILLEGAL — escapes are never silently accepted as a
literal outside that fixed set. A trailing backslash with nothing left to escape, or a
\x without two valid hex digits following, is also ILLEGAL.

# Position Tracking

The lexer tracks line and column for each token, used for error reporting when a
pattern spans more than one line in caller-supplied source (e.g. embedded in a config
file).
*/
package lexer
