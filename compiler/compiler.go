// Package compiler turns a parsed ast.Expression into an nfa.Machine via Thompson's
// construction: each AST shape becomes a small subgraph with exactly one entry handle
// and a patch list of dangling out-edges, and parent nodes splice children together by
// patching those dangling edges rather than rewriting state fields across the whole
// subgraph.
package compiler

import (
	"github.com/xjslang/regex/ast"
	"github.com/xjslang/regex/nfa"
)

// Compile builds a Machine matching exactly the language expr describes.
func Compile(expr ast.Expression) *nfa.Machine {
	b := nfa.NewBuilder()
	entry, patch := compileNode(b, expr)
	b.Patch(patch, nfa.Accept)
	return b.Machine(entry)
}

func compileNode(b *nfa.Builder, expr ast.Expression) (nfa.Handle, nfa.PatchList) {
	switch n := expr.(type) {
	case *ast.CharLiteral:
		return b.AllocChar(n.Value)
	case *ast.AnyChar:
		return b.AllocAny()
	case *ast.CharClass:
		return b.AllocClass(n.Bitmap)
	case *ast.Epsilon:
		return b.AllocEpsilon()
	case *ast.Infix:
		if n.Operator == ast.ALTERNATE {
			return compileAlternation(b, n)
		}
		return compileConcat(b, n)
	case *ast.Postfix:
		// Only STAR survives parsing; QUESTION and PLUS are desugared by the parser.
		return compileStar(b, n)
	default:
		panic("compiler: unexpected AST node type")
	}
}

// compileConcat: entry is the left subgraph's entry; the left's dangling ends are
// patched straight into the right subgraph's entry, so there is no extra state for
// concatenation itself.
func compileConcat(b *nfa.Builder, n *ast.Infix) (nfa.Handle, nfa.PatchList) {
	leftEntry, leftPatch := compileNode(b, n.Left)
	rightEntry, rightPatch := compileNode(b, n.Right)
	b.Patch(leftPatch, rightEntry)
	return leftEntry, rightPatch
}

// compileAlternation flattens a run of `|`-joined leaves and, when every leaf is a
// single-byte acceptor (a literal or a class), fuses them into one consuming state
// instead of a split-tree with one state per leaf. The fused form and the general form
// accept the same language; fusing just means the executor's epsilon-closure doesn't
// have to fan out through N-1 split states to reach N alternatives.
func compileAlternation(b *nfa.Builder, n *ast.Infix) (nfa.Handle, nfa.PatchList) {
	leaves := flattenAlternation(n)
	if bitmap, ok := fuseByteAcceptors(leaves); ok {
		return b.AllocClass(bitmap)
	}
	return compileAlternationTree(b, leaves)
}

func flattenAlternation(expr ast.Expression) []ast.Expression {
	in, ok := expr.(*ast.Infix)
	if !ok || in.Operator != ast.ALTERNATE {
		return []ast.Expression{expr}
	}
	return append(flattenAlternation(in.Left), flattenAlternation(in.Right)...)
}

// fuseByteAcceptors reports whether every leaf consumes exactly one byte with no
// further structure (a CharLiteral, a CharClass, or AnyChar), returning their union
// bitmap. An AnyChar leaf sets every bit, which is equivalent to AnyByte for matching
// purposes.
func fuseByteAcceptors(leaves []ast.Expression) (bitmap [256]bool, ok bool) {
	for _, leaf := range leaves {
		switch n := leaf.(type) {
		case *ast.CharLiteral:
			bitmap[n.Value] = true
		case *ast.CharClass:
			for i := 0; i < 256; i++ {
				if n.Bitmap[i] {
					bitmap[i] = true
				}
			}
		case *ast.AnyChar:
			for i := 0; i < 256; i++ {
				bitmap[i] = true
			}
		default:
			return bitmap, false
		}
	}
	return bitmap, true
}

// compileAlternationTree builds a right-leaning chain of split states over leaves,
// each splitting between one compiled leaf and the rest of the chain.
func compileAlternationTree(b *nfa.Builder, leaves []ast.Expression) (nfa.Handle, nfa.PatchList) {
	if len(leaves) == 1 {
		return compileNode(b, leaves[0])
	}
	headEntry, headPatch := compileNode(b, leaves[0])
	restEntry, restPatch := compileAlternationTree(b, leaves[1:])
	splitEntry, splitPatch := b.AllocSplit(headEntry, restEntry)
	return splitEntry, nfa.Append(headPatch, restPatch, splitPatch)
}

// compileStar builds the classic Thompson loop: a split state whose first out-edge
// enters the body and whose second is the construct's only dangling end (the exit).
// The body's own dangling ends are patched back into the split, not into a fresh copy
// of it, which is what makes `*` match zero-or-more in a single fixed-size subgraph
// rather than unrolling.
func compileStar(b *nfa.Builder, n *ast.Postfix) (nfa.Handle, nfa.PatchList) {
	bodyEntry, bodyPatch := compileNode(b, n.Left)
	splitEntry, splitPatch := b.AllocSplit(bodyEntry, nfa.None)
	b.Patch(bodyPatch, splitEntry)
	return splitEntry, splitPatch
}
