/*
Package token defines the token types and structures used by the regex lexer and parser.

This package provides all the token types supported by the pattern language: a single
CHAR token standing in for every literal byte (escaped or not), the structural tokens
for the regex operators and grouping/class delimiters, and the predefined character
class escapes.

# Token Types

The following token types are supported:

  - Literals: CHAR
  - Operators: +, ?, *, ., |
  - Grouping and classes: (, ), [, ], -, ^
  - Class escapes: \d, \D, \w, \W, \s, \S

Example:

	tok := token.Token{
		Type:    token.CHAR,
		Literal: "a",
		Line:    1,
		Column:  1,
	}

	fmt.Println(tok.String())
	// Output: {Type: CHAR, Literal: "a", Line: 1, Col: 1}
*/
package token
