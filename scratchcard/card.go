// Package scratchcard scores scratchcards and computes how many cards
// you end up with once winning cards hand out copies of later cards.
package scratchcard

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/aoc2023/parse"
)

// A Set is a set of card numbers.
type Set map[int]struct{}

// NewSet returns a Set holding vs.
func NewSet(vs ...int) Set {
	s := make(Set, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is in s.
func (s Set) Has(v int) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members of s in ascending order.
func (s Set) Sorted() []int {
	vs := make([]int, 0, len(s))
	for v := range s {
		vs = append(vs, v)
	}
	slices.Sort(vs)
	return vs
}

// A Card is one parsed line of puzzle input.
type Card struct {
	ID int
	// Winning is the set of winning numbers.
	Winning Set
	// Held is the numbers you have, in input order, duplicates included.
	Held []int
}

// String formats c in canonical form, "Card N: a b c | d e f", with the
// winning numbers in ascending order. ParseCard(c.String()) equals c.
func (c Card) String() string {
	var b strings.Builder
	b.WriteString("Card ")
	b.WriteString(strconv.Itoa(c.ID))
	b.WriteString(":")
	for _, n := range c.Winning.Sorted() {
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteString(" |")
	for _, n := range c.Held {
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

var (
	cardLabel = parse.Label("card label", parse.Preceded(parse.OptSpaces(), parse.Literal("Card")))
	cardID    = parse.Label("card id", parse.Delimited(parse.Spaces(), parse.Int(), parse.Literal(":")))

	numbers    = parse.SepBy1(parse.Int(), parse.Spaces())
	groupDelim = parse.Delimited(parse.OptSpaces(), parse.Literal("|"), parse.OptSpaces())
	numGroups  = parse.SepBy1(parse.Cut(parse.Label("number group", parse.Parser[[]int](group))), groupDelim)

	cardLine = parse.Pair(
		parse.Preceded(cardLabel, cardID),
		parse.Preceded(parse.OptSpaces(), parse.Pair(parse.Offset(), numGroups)),
	)
)

func group(s parse.State) (parse.State, []int, error) {
	if r := s.Rest(); r == "" || r[0] == '|' {
		return s, nil, parse.Fail(parse.EmptyGroup, s.Pos(), "integer")
	}
	return numbers(s)
}

// ParseCard parses a line such as
//
//	Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
//
// Runs of spaces around numbers and the '|' are insignificant. Errors
// are *parse.Error values.
func ParseCard(line string) (Card, error) {
	v, err := parse.Run(cardLine, line)
	if err != nil {
		return Card{}, err
	}
	id, groupsAt, groups := v.First, v.Second.First, v.Second.Second
	if len(groups) != 2 {
		return Card{}, &parse.Error{
			Kind:     parse.WrongGroupCount,
			Pos:      groupsAt,
			Expected: fmt.Sprintf("2 number groups, found %d", len(groups)),
		}
	}
	return Card{
		ID:      id,
		Winning: NewSet(groups[0]...),
		Held:    groups[1],
	}, nil
}

// ParseCards parses one card per line. It stops at the first bad line;
// the returned error gives its 1-based line number and wraps the
// *parse.Error.
func ParseCards(lines []string) ([]Card, error) {
	cards := make([]Card, len(lines))
	for i, line := range lines {
		c, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards[i] = c
	}
	return cards, nil
}
