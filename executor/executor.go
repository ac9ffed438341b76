// Package executor runs an nfa.Machine over a byte slice using Thompson's two-set
// simulation: at each input byte, every state reachable from the current set by
// consuming that byte (followed by its epsilon closure) is added to a next set, and the
// sets swap. Because at most NumStates states can ever be live at once, one pass over n
// input bytes costs O(n * NumStates) instead of the exponential blowup backtracking
// engines hit on patterns like (a?){n}a{n}.
//
// A match is anchored at the start of input but not at the end: Execute reports whether
// some prefix of input (including the empty prefix) is in the language the machine
// accepts, not whether the whole input is. "a*" therefore matches "bbb" via its empty
// prefix, and "a+" matches "aaba" via the prefix "a".
package executor

import (
	"context"

	"github.com/xjslang/regex/nfa"
)

// stateSet is a sparse set over state handles: marks[h] == gen means h is a member of
// the set for the current generation. Bumping gen instead of zeroing marks between
// steps is what makes clearing the set O(1) rather than O(NumStates).
type stateSet struct {
	marks []int32
	gen   int32
	list  []nfa.Handle
}

func newStateSet(n int) *stateSet {
	return &stateSet{marks: make([]int32, n)}
}

func (s *stateSet) reset() {
	s.gen++
	s.list = s.list[:0]
}

func (s *stateSet) add(h nfa.Handle) bool {
	if s.marks[h] == s.gen {
		return false
	}
	s.marks[h] = s.gen
	s.list = append(s.list, h)
	return true
}

// closure adds h, and everything reachable from it through epsilon transitions, to set.
// It sets *accepted if the closure reaches the accepting sentinel. Recursion depth is
// bounded by the machine's own state count, which the compiler keeps linear in pattern
// length.
func closure(m *nfa.Machine, set *stateSet, h nfa.Handle, accepted *bool) {
	if nfa.IsAccept(h) {
		*accepted = true
		return
	}
	if !set.add(h) {
		return
	}
	st := m.State(h)
	if !st.Epsilon {
		return
	}
	closure(m, set, st.Out, accepted)
	if st.Out1 != nfa.None {
		closure(m, set, st.Out1, accepted)
	}
}

// Execute reports whether some prefix of input is in the language m accepts.
func Execute(m *nfa.Machine, input []byte) bool {
	matched, _ := run(context.Background(), m, input, false)
	return matched
}

// ExecuteContext is Execute with periodic cancellation checks, for callers matching
// against attacker-controlled or otherwise very long input.
func ExecuteContext(ctx context.Context, m *nfa.Machine, input []byte) (bool, error) {
	return run(ctx, m, input, true)
}

func run(ctx context.Context, m *nfa.Machine, input []byte, checkCtx bool) (bool, error) {
	n := m.NumStates()
	cur := newStateSet(n)
	next := newStateSet(n)

	cur.reset()
	accepted := false
	closure(m, cur, m.Entry, &accepted)
	if accepted {
		// The empty prefix already matches; no need to consume any input.
		return true, nil
	}

	for i, c := range input {
		if checkCtx && i&4095 == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		if len(cur.list) == 0 {
			// Dead: no live state can ever produce a match on the remaining input.
			return false, nil
		}
		next.reset()
		stepAccepted := false
		for _, h := range cur.list {
			st := m.State(h)
			if st.AnyByte || st.Bitmap[c] {
				closure(m, next, st.Out, &stepAccepted)
			}
		}
		cur, next = next, cur
		if stepAccepted {
			return true, nil
		}
	}
	return false, nil
}
