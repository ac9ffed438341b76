// Package nfa provides the state-graph primitives for a Thompson-constructed NFA: an
// arena of states addressed by integer handles (grounded in the coregex example's
// StateID-indexed arena rather than a pointer-linked graph), plus the patch-list
// bookkeeping that lets each compiler rule splice a subgraph's dangling edges in O(1)
// per edge instead of rescanning the subgraph.
package nfa

import "fmt"

// Handle addresses a state within a Machine's arena. The zero Handle is a valid state
// index (the first one allocated), so unset edges and the accepting sentinel use
// reserved out-of-range values instead of zero.
type Handle uint32

const (
	// None marks an edge as not set.
	None Handle = ^Handle(0)
	// Accept is the sentinel handle representing the unique accepting state. It never
	// indexes into a Machine's state slice; acceptance is a handle-equality check.
	Accept Handle = ^Handle(0) - 1
)

// State is a single NFA node. It is either a *consuming* state (Out set, Out1 unset,
// one of Bitmap/AnyByte selecting which bytes it matches) or an *epsilon* state
// (Epsilon set, Out and/or Out1 set, consumes no input).
type State struct {
	Bitmap  [256]bool
	AnyByte bool
	Epsilon bool
	Out     Handle
	Out1    Handle
}

// Edge identifies one dangling out-edge of a state awaiting redirection away from
// Accept.
type Edge struct {
	State Handle
	Out1  bool // false = State.Out, true = State.Out1
}

// PatchList is the set of dangling edges of a compiled subgraph. The empty list means
// the subgraph has no open ends (e.g. it already loops back on itself).
type PatchList []Edge

// Append concatenates patch lists without allocating more than necessary; it's the
// O(1)-per-dangling-end aggregation step that keeps compilation linear in |states|
// instead of quadratic.
func Append(lists ...PatchList) PatchList {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make(PatchList, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// Builder accumulates states for a machine under construction. Unlike the Machine it
// eventually produces, a Builder is mutable: compiler rules allocate states and patch
// dangling edges on it as they fold the AST.
type Builder struct {
	states []State
}

// NewBuilder returns an empty state arena.
func NewBuilder() *Builder {
	return &Builder{}
}

// AllocChar allocates a consuming state matching exactly byte c. Its single out-edge is
// left pointing at Accept; the returned patch list has that one dangling edge.
func (b *Builder) AllocChar(c byte) (entry Handle, patch PatchList) {
	var bitmap [256]bool
	bitmap[c] = true
	return b.allocConsuming(bitmap, false)
}

// AllocAny allocates a consuming state matching any byte (the `.` metacharacter).
func (b *Builder) AllocAny() (entry Handle, patch PatchList) {
	var bitmap [256]bool
	return b.allocConsuming(bitmap, true)
}

// AllocClass allocates a consuming state matching exactly the bytes set in bitmap.
func (b *Builder) AllocClass(bitmap [256]bool) (entry Handle, patch PatchList) {
	return b.allocConsuming(bitmap, false)
}

func (b *Builder) allocConsuming(bitmap [256]bool, anyByte bool) (Handle, PatchList) {
	h := b.alloc(State{Bitmap: bitmap, AnyByte: anyByte, Out: Accept, Out1: None})
	return h, PatchList{{State: h, Out1: false}}
}

// AllocEpsilon allocates a pass-through state that consumes no input and has a single
// out-edge, left dangling. It gives ast.Epsilon its own state rather than reusing
// AllocSplit's two-edge shape, so an epsilon subgraph only ever contributes one
// dangling end to its caller's patch list.
func (b *Builder) AllocEpsilon() (entry Handle, patch PatchList) {
	h := b.alloc(State{Epsilon: true, Out: Accept, Out1: None})
	return h, PatchList{{State: h, Out1: false}}
}

// AllocSplit allocates an epsilon state with Out and Out1 set to out and out1
// respectively. Pass None for an edge that should instead show up as a dangling entry
// in the returned patch list (used by ALTERNATE to merge two subgraphs' patch lists
// through a single new epsilon state, and by STAR to create the loop-and-exit split).
func (b *Builder) AllocSplit(out, out1 Handle) (entry Handle, patch PatchList) {
	s := State{Epsilon: true, Out: out, Out1: out1}
	var pending PatchList
	if out == None {
		s.Out = Accept
		pending = append(pending, Edge{})
	}
	if out1 == None {
		s.Out1 = Accept
		pending = append(pending, Edge{})
	}
	h := b.alloc(s)
	for i := range pending {
		if i == 0 && out == None {
			pending[i] = Edge{State: h, Out1: false}
		} else {
			pending[i] = Edge{State: h, Out1: true}
		}
	}
	return h, pending
}

func (b *Builder) alloc(s State) Handle {
	b.states = append(b.states, s)
	return Handle(len(b.states) - 1)
}

// Patch redirects every dangling edge in list to target. This is the splice-by-patching
// step: each call does O(len(list)) work, never rescans a subgraph to find its open
// ends.
func (b *Builder) Patch(list PatchList, target Handle) {
	for _, e := range list {
		s := &b.states[e.State]
		if e.Out1 {
			s.Out1 = target
		} else {
			s.Out = target
		}
	}
}

// Machine finalizes the builder into an immutable machine whose entry point is entry.
// Any edge still pointing at Accept at this point is, by construction, meant to point
// at Accept (the whole tree's own dangling ends are patched by the top-level compile
// step before calling Machine).
func (b *Builder) Machine(entry Handle) *Machine {
	states := make([]State, len(b.states))
	copy(states, b.states)
	return &Machine{states: states, Entry: entry}
}

// Machine is a compiled, immutable NFA: an entry handle plus the state arena. A Machine
// is safe for concurrent use by multiple callers of Execute, since it is never mutated
// after Builder.Machine returns it.
type Machine struct {
	states []State
	Entry  Handle
}

// NumStates returns the number of states in the machine's arena.
func (m *Machine) NumStates() int {
	return len(m.states)
}

// State returns the state addressed by h. h must not be Accept or None.
func (m *Machine) State(h Handle) *State {
	return &m.states[h]
}

// IsAccept reports whether h is the accepting sentinel.
func IsAccept(h Handle) bool {
	return h == Accept
}

func (h Handle) String() string {
	switch h {
	case None:
		return "none"
	case Accept:
		return "accept"
	default:
		return fmt.Sprintf("#%d", uint32(h))
	}
}
