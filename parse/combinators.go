package parse

import (
	"strconv"
	"strings"
)

// Literal matches lit exactly.
func Literal(lit string) Parser[string] {
	expected := strconv.Quote(lit)
	return func(s State) (State, string, error) {
		if !strings.HasPrefix(s.Rest(), lit) {
			return s, "", Fail(UnexpectedToken, s.pos, expected)
		}
		return s.advance(len(lit)), lit, nil
	}
}

// Int matches an unsigned decimal integer that fits in an int. A run of
// digits too large for an int is a committed failure: enclosing SepBy1
// and Alt parsers report it rather than trying something else.
func Int() Parser[int] {
	return func(s State) (State, int, error) {
		digits := span(s.Rest(), isDigit)
		if digits == 0 {
			return s, 0, Fail(UnexpectedToken, s.pos, "integer")
		}
		n, err := strconv.Atoi(s.Rest()[:digits])
		if err != nil {
			e := Fail(UnexpectedToken, s.pos, "integer in range")
			e.cut = true
			return s, 0, e
		}
		return s.advance(digits), n, nil
	}
}

// Digit matches a single decimal digit.
func Digit() Parser[int] {
	return func(s State) (State, int, error) {
		r := s.Rest()
		if r == "" || !isDigit(r[0]) {
			return s, 0, Fail(UnexpectedToken, s.pos, "digit")
		}
		return s.advance(1), int(r[0] - '0'), nil
	}
}

// Word matches one or more ASCII letters.
func Word() Parser[string] {
	return func(s State) (State, string, error) {
		n := span(s.Rest(), isLetter)
		if n == 0 {
			return s, "", Fail(UnexpectedToken, s.pos, "word")
		}
		return s.advance(n), s.Rest()[:n], nil
	}
}

// Spaces matches one or more spaces, returning how many.
func Spaces() Parser[int] {
	return func(s State) (State, int, error) {
		n := span(s.Rest(), isSpace)
		if n == 0 {
			return s, 0, Fail(UnexpectedToken, s.pos, "space")
		}
		return s.advance(n), n, nil
	}
}

// OptSpaces matches zero or more spaces. It never fails.
func OptSpaces() Parser[int] {
	return func(s State) (State, int, error) {
		n := span(s.Rest(), isSpace)
		return s.advance(n), n, nil
	}
}

// Offset consumes nothing and returns the current byte offset.
func Offset() Parser[int] {
	return func(s State) (State, int, error) {
		return s, s.pos, nil
	}
}

// EOF matches the end of input. Anything left over is a TrailingInput
// error.
func EOF() Parser[struct{}] {
	return func(s State) (State, struct{}, error) {
		if s.Rest() != "" {
			return s, struct{}{}, Fail(TrailingInput, s.pos, "end of line")
		}
		return s, struct{}{}, nil
	}
}

// All runs p and then requires that only spaces remain.
func All[T any](p Parser[T]) Parser[T] {
	return Terminated(p, Preceded(OptSpaces(), EOF()))
}

// Map transforms the value produced by p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(s State) (State, U, error) {
		rest, v, err := p(s)
		if err != nil {
			var zero U
			return s, zero, err
		}
		return rest, f(v), nil
	}
}

// MapErr is like Map but f may reject the value. An *Error returned by f
// has its Pos taken relative to where p started; any other error becomes
// an UnexpectedToken there.
func MapErr[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(s State) (State, U, error) {
		var zero U
		rest, v, err := p(s)
		if err != nil {
			return s, zero, err
		}
		u, err := f(v)
		if err != nil {
			e := *asError(err, 0)
			e.Pos += s.pos
			return s, zero, &e
		}
		return rest, u, nil
	}
}

// Tuple holds the results of Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Pair runs a then b, keeping both values.
func Pair[A, B any](a Parser[A], b Parser[B]) Parser[Tuple[A, B]] {
	return func(s State) (State, Tuple[A, B], error) {
		var t Tuple[A, B]
		s, va, err := a(s)
		if err != nil {
			return s, t, err
		}
		s, vb, err := b(s)
		if err != nil {
			return s, t, err
		}
		t.First, t.Second = va, vb
		return s, t, nil
	}
}

// Preceded runs a then b, keeping b's value.
func Preceded[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Pair(a, b), func(t Tuple[A, B]) B { return t.Second })
}

// Terminated runs a then b, keeping a's value.
func Terminated[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(Pair(a, b), func(t Tuple[A, B]) A { return t.First })
}

// Delimited runs open, p, and close, keeping p's value.
func Delimited[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return Preceded(open, Terminated(p, close))
}

// SepBy1 matches one or more elems separated by sep.
//
// A separator that isn't followed by an elem is left unconsumed and the
// list ends there, unless the elem failed after consuming input or
// failed under Cut, in which case that error is returned.
func SepBy1[T, S any](elem Parser[T], sep Parser[S]) Parser[[]T] {
	return func(s State) (State, []T, error) {
		s, v, err := elem(s)
		if err != nil {
			return s, nil, err
		}
		vs := []T{v}
		for {
			next, _, err := sep(s)
			if err != nil {
				return s, vs, nil
			}
			start := next.pos
			next, v, err = elem(next)
			if err != nil {
				if committed(err, start) {
					return s, nil, err
				}
				return s, vs, nil
			}
			vs = append(vs, v)
			s = next
		}
	}
}

// Alt tries each parser in order and returns the first success.
//
// A branch that fails after consuming input (or under Cut) ends the
// alternation with its error; later branches are not tried. If every
// branch fails without consuming input, the error lists what each
// branch expected.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(s State) (State, T, error) {
		var zero T
		var expected []string
		for _, p := range ps {
			rest, v, err := p(s)
			if err == nil {
				return rest, v, nil
			}
			if committed(err, s.pos) {
				return s, zero, err
			}
			if pe := asError(err, s.pos); pe.Expected != "" {
				expected = append(expected, pe.Expected)
			}
		}
		return s, zero, Fail(UnexpectedToken, s.pos, strings.Join(expected, " or "))
	}
}

// Cut marks p's failures as final: an enclosing SepBy1 or Alt returns
// them instead of backing off.
func Cut[T any](p Parser[T]) Parser[T] {
	return func(s State) (State, T, error) {
		rest, v, err := p(s)
		if err != nil {
			e := *asError(err, s.pos)
			e.cut = true
			return rest, v, &e
		}
		return rest, v, nil
	}
}

// Label names the sub-grammar p implements. The name is attached to
// p's errors unless a nested Label already named them.
func Label[T any](name string, p Parser[T]) Parser[T] {
	return func(s State) (State, T, error) {
		rest, v, err := p(s)
		if err != nil {
			e := *asError(err, s.pos)
			if e.Context == "" {
				e.Context = name
			}
			return rest, v, &e
		}
		return rest, v, nil
	}
}

// FindAll returns the value of p at every offset of line where p
// matches. Matches may overlap.
func FindAll[T any](p Parser[T], line string) []T {
	var vs []T
	s := NewState(line)
	for i := 0; i < len(line); i++ {
		if _, v, err := p(s.advance(i)); err == nil {
			vs = append(vs, v)
		}
	}
	return vs
}

func span(s string, ok func(byte) bool) int {
	i := 0
	for i < len(s) && ok(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isSpace(c byte) bool  { return c == ' ' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
