// Package parse is a small parser-combinator toolkit for line-oriented
// puzzle input.
//
// A Parser consumes a prefix of a State and returns the remaining State
// along with a value, or an *Error describing where and why it failed.
// Parsers are composed left to right; apart from SepBy1 giving back a
// separator that isn't followed by an element, nothing backtracks.
package parse

import (
	"errors"
	"fmt"
	"strings"
)

// A State is a line of input and a byte offset into it.
type State struct {
	src string
	pos int
}

// NewState returns a State positioned at the start of line.
func NewState(line string) State {
	return State{src: line}
}

// Rest returns the unparsed remainder of the input.
func (s State) Rest() string {
	return s.src[s.pos:]
}

// Pos returns the current byte offset.
func (s State) Pos() int {
	return s.pos
}

func (s State) advance(n int) State {
	s.pos += n
	return s
}

// A Parser consumes a prefix of s. On success it returns the remaining
// input and the parsed value. On failure the returned State is
// unspecified and err is an *Error.
type Parser[T any] func(s State) (rest State, v T, err error)

// Run applies p to line and requires that all of line be consumed,
// ignoring trailing spaces.
func Run[T any](p Parser[T], line string) (T, error) {
	_, v, err := All(p)(NewState(line))
	return v, err
}

// Kind classifies parse failures.
type Kind int

const (
	UnexpectedToken Kind = iota + 1
	EmptyGroup
	TrailingInput
	WrongGroupCount
	UnknownLabel
)

func (k Kind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case EmptyGroup:
		return "empty group"
	case TrailingInput:
		return "trailing input"
	case WrongGroupCount:
		return "wrong group count"
	case UnknownLabel:
		return "unknown label"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// An Error is a parse failure at a byte offset of the input line.
type Error struct {
	Kind Kind
	Pos  int

	// Expected describes what would have been accepted at Pos.
	Expected string
	// Context names the enclosing sub-grammar (see Label), if any.
	Context string

	cut bool
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "offset %d: ", e.Pos)
	if e.Context != "" {
		fmt.Fprintf(&b, "%s: ", e.Context)
	}
	b.WriteString(e.Kind.String())
	if e.Expected != "" {
		fmt.Fprintf(&b, " (expected %s)", e.Expected)
	}
	return b.String()
}

// Fail returns an *Error of the given kind.
func Fail(kind Kind, pos int, expected string) *Error {
	return &Error{Kind: kind, Pos: pos, Expected: expected}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}

func asError(err error, pos int) *Error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	return &Error{Kind: UnexpectedToken, Pos: pos, Expected: err.Error()}
}

// committed reports whether a failure must end an enclosing SepBy1 or
// Alt rather than letting it try something else at start.
func committed(err error, start int) bool {
	pe := asError(err, start)
	return pe.cut || pe.Pos > start
}
