// Package regex compiles byte-oriented regular expressions into Thompson NFAs and
// matches them against input, guaranteeing O(pattern * input) time regardless of
// pattern shape: patterns like (a?){n}a{n} that make a backtracking engine blow up
// exponentially cost the same here as any other pattern of that length.
//
// Supported syntax: literal bytes and escapes, `.`, grouping, alternation `|`,
// repetition `* ? +`, and character classes `[...]` (with `^` negation, `a-z` ranges,
// and the predefined escapes \d \D \w \W \s \S both inside and outside `[...]`).
//
// A match is anchored at the start of input but not at the end: Match reports whether
// some prefix of input (possibly the empty prefix) is in the language the pattern
// describes, not whether the whole input is. "a*" therefore matches "bbb" via its empty
// prefix, and "a+" matches "aaba" via the prefix "a".
package regex

import (
	"context"
	"fmt"
	"strings"

	"github.com/xjslang/regex/compiler"
	"github.com/xjslang/regex/executor"
	"github.com/xjslang/regex/internal/rxlog"
	"github.com/xjslang/regex/lexer"
	"github.com/xjslang/regex/nfa"
	"github.com/xjslang/regex/parser"
)

// Machine is a compiled pattern, safe for concurrent use by multiple goroutines: Match
// allocates its own per-call simulation buffers, so one Machine can be shared and
// matched against from as many callers as want it.
type Machine struct {
	pattern string
	nfa     *nfa.Machine
}

// CompileError reports why a pattern failed to compile, with the position of the first
// offending byte.
type CompileError struct {
	Pattern string
	Line    int
	Column  int
	Code    string
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("regex: %s at line %d, column %d in %q: %s",
		e.Code, e.Line, e.Column, e.Pattern, e.Message)
}

// Compile parses and compiles pattern into a Machine. Patterns may not contain an
// embedded NUL byte: the lexer uses 0x00 as its own end-of-input sentinel, so a literal
// NUL in the source would silently truncate the pattern rather than erroring, and
// Compile rejects it up front instead.
func Compile(pattern string) (*Machine, error) {
	rxlog.CompileStart(pattern)

	if idx := strings.IndexByte(pattern, 0); idx >= 0 {
		err := &CompileError{
			Pattern: pattern,
			Line:    1,
			Column:  idx + 1,
			Code:    parser.CodeEmbeddedNull,
			Message: "pattern may not contain an embedded NUL byte",
		}
		rxlog.CompileError(pattern, err)
		return nil, err
	}

	l := lexer.New(pattern)
	p := parser.New(l)
	tree, err := p.ParseProgram()
	if err != nil {
		pe := err.(parser.ParserError)
		cerr := &CompileError{
			Pattern: pattern,
			Line:    pe.Position.Line,
			Column:  pe.Position.Column,
			Code:    pe.Code,
			Message: pe.Message,
		}
		rxlog.CompileError(pattern, cerr)
		return nil, cerr
	}

	m := compiler.Compile(tree)
	rxlog.CompileOK(pattern, m.NumStates())
	return &Machine{pattern: pattern, nfa: m}, nil
}

// MustCompile is Compile but panics on error, for patterns fixed at program startup.
func MustCompile(pattern string) *Machine {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports whether some prefix of input is in the language m describes.
func (m *Machine) Match(input []byte) bool {
	matched := executor.Execute(m.nfa, input)
	rxlog.ExecuteResult(len(input), matched)
	return matched
}

// MatchString is Match over a string, without requiring the caller to convert it to
// []byte first.
func (m *Machine) MatchString(input string) bool {
	return m.Match([]byte(input))
}

// MatchContext is Match with cooperative cancellation: ctx is checked periodically
// while scanning input, for callers matching against untrusted or very large input
// where the caller wants to bound worst-case latency independently of input size.
func (m *Machine) MatchContext(ctx context.Context, input []byte) (bool, error) {
	matched, err := executor.ExecuteContext(ctx, m.nfa, input)
	if err != nil {
		rxlog.ExecuteCancelled(len(input), err)
		return false, err
	}
	rxlog.ExecuteResult(len(input), matched)
	return matched, nil
}

// Pattern returns the source pattern m was compiled from.
func (m *Machine) Pattern() string {
	return m.pattern
}

// NumStates returns the number of states in m's compiled NFA, mainly useful for
// benchmarking and tests asserting the alternation-fusion optimization fired.
func (m *Machine) NumStates() int {
	return m.nfa.NumStates()
}
