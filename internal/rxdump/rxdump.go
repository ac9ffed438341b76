// Package rxdump formats AST and NFA values for debugging, adapted from the xjs
// compiler's debug package: a shared go-spew ConfigState with method calls and pointer
// addresses suppressed, since printing a Node's own String() would just recurse and
// pointer addresses are never stable across runs.
package rxdump

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/xjslang/regex/ast"
	"github.com/xjslang/regex/nfa"
)

var cfg = &spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	ContinueOnMethod:        false,
}

// AST returns a source-like rendering of node (its String() form), for error messages
// and logs that want the pattern back, not its tree shape.
func AST(node ast.Node) string {
	return node.String()
}

// DumpAST prints the full recursive structure of node, for debugging parser output.
func DumpAST(node ast.Node) {
	cfg.Dump(node)
}

// DumpMachine prints every state in m in allocation order, so a reader can trace the
// epsilon closure of Entry by hand. Plain fmt here, not cfg: the whole point is the
// Handle.String() rendering ("#3", "accept") that DisableMethods would suppress.
func DumpMachine(m *nfa.Machine) {
	fmt.Printf("entry: %s\n", m.Entry)
	for i := 0; i < m.NumStates(); i++ {
		st := m.State(nfa.Handle(i))
		switch {
		case st.Epsilon:
			fmt.Printf("  #%d: epsilon out=%s out1=%s\n", i, st.Out, st.Out1)
		case st.AnyByte:
			fmt.Printf("  #%d: any out=%s\n", i, st.Out)
		default:
			fmt.Printf("  #%d: class out=%s\n", i, st.Out)
		}
	}
}
