/*
Package parser provides syntax analysis functionality for regex patterns.

The parser uses Pratt parsing (also known as "top-down operator precedence parsing")
to build an Abstract Syntax Tree (AST) from tokens provided by the lexer. It handles
operator precedence correctly and provides detailed error reporting with line and
column information.

Example:

	l := lexer.New(`((ab|cd)+)12`)
	p := parser.New(l)
	tree, err := p.ParseProgram()

	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(tree.String())

Error Handling

The parser reports only the first error it encounters, with line and column
information, and stops advancing; no partial tree is returned to the caller.

Operator Precedence

The parser handles operator precedence for all supported operators, low to high:

 1. Alternation (|)
 2. Concatenation (implicit, between adjacent atoms)
 3. Repetition (*, ?, +)

Supported Pattern Features

  - Literal bytes, including escaped metacharacters (\(, \., \\, ...) and \xHH hex escapes
  - `.` (any byte)
  - Grouping with `(...)`
  - Character classes `[...]`, including negation and ranges
  - Predefined class escapes: \d \D \w \W \s \S
  - Repetition: *, ?, +

`?` and `+` are desugared during parsing into alternation/concatenation shapes built
from `*`, so the returned tree only ever contains STAR as a postfix operator.
*/
package parser
