/*
Package ast defines the Abstract Syntax Tree nodes for the regex expression language.

This package provides interfaces and concrete types representing the regular-expression
algebra: literals, character classes, concatenation, alternation, and repetition. Every
node implements String(), so a parsed tree can be round-tripped back into an equivalent
pattern, and Clone(), which the parser uses to desugar X+ into X · X* without aliasing
the two halves.

Node Types

  - Leaves: CharLiteral, AnyChar, Epsilon, CharClass
  - Infix: CONCAT (implicit) and ALTERNATE (|)
  - Postfix: STAR (*); QUESTION (?) and PLUS (+) are desugared away before parsing
    finishes, so they never appear in a tree returned from Parser.ParseProgram

Example:

	tree := &ast.Infix{
		Operator: ast.CONCAT,
		Left:     &ast.CharLiteral{Value: 'a'},
		Right: &ast.Postfix{
			Operator: ast.STAR,
			Left:     &ast.CharLiteral{Value: 'b'},
		},
	}

	fmt.Println(tree.String()) // Output: ab*

String Representation

All AST nodes implement the String() method, providing a pattern-like representation
of the parsed tree that a fresh Parse/Compile round trip would accept.
*/
package ast
