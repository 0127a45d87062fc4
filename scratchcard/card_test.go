package scratchcard

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cespare/aoc2023/parse"
	"github.com/kr/pretty"
)

var example = []string{
	"Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53",
	"Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19",
	"Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1",
	"Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83",
	"Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36",
	"Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11",
}

func TestParseCard(t *testing.T) {
	for _, tt := range []struct {
		line string
		want Card
	}{
		{
			example[0],
			Card{
				ID:      1,
				Winning: NewSet(41, 48, 83, 86, 17),
				Held:    []int{83, 86, 6, 31, 17, 9, 48, 53},
			},
		},
		{
			"Card   12:1 2|3 3 4",
			Card{ID: 12, Winning: NewSet(1, 2), Held: []int{3, 3, 4}},
		},
		{
			"  Card 3:  5 5 5  |  5  ",
			Card{ID: 3, Winning: NewSet(5), Held: []int{5}},
		},
	} {
		got, err := ParseCard(tt.line)
		if err != nil {
			t.Errorf("ParseCard(%q): %s", tt.line, err)
			continue
		}
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("ParseCard(%q): %v", tt.line, diff)
		}
	}
}

func TestParseCardErrors(t *testing.T) {
	for _, tt := range []struct {
		line    string
		kind    parse.Kind
		pos     int
		context string
	}{
		{"", parse.UnexpectedToken, 0, "card label"},
		{"Game 1: 1 | 2", parse.UnexpectedToken, 0, "card label"},
		{"Card: 1 | 2", parse.UnexpectedToken, 4, "card id"},
		{"Card x: 1 | 2", parse.UnexpectedToken, 5, "card id"},
		{"Card 1 1 | 2", parse.UnexpectedToken, 6, "card id"},
		{"Card 1: | 2", parse.EmptyGroup, 8, "number group"},
		{"Card 1: 1 2 |", parse.EmptyGroup, 13, "number group"},
		{"Card 1: 1 2 |  | 3", parse.EmptyGroup, 15, "number group"},
		{"Card 1: 1 2 | x", parse.UnexpectedToken, 14, "number group"},
		{"Card 1: 1 2 | 3 x", parse.TrailingInput, 16, ""},
		// Numbers too large for an int belong to their group, wherever
		// they sit in it.
		{"Card 1: 1 99999999999999999999 | 2", parse.UnexpectedToken, 10, "number group"},
		{"Card 1: 99999999999999999999 | 2", parse.UnexpectedToken, 8, "number group"},
		{"Card 1: 1 | 2 99999999999999999999", parse.UnexpectedToken, 14, "number group"},
		{"Card 99999999999999999999: 1 | 2", parse.UnexpectedToken, 5, "card id"},
		{"Card 1: 3 blue, 4 red;", parse.TrailingInput, 10, ""},
		{"Card 1: 1 2", parse.WrongGroupCount, 8, ""},
		{"Card 1: 1 | 2 | 3", parse.WrongGroupCount, 8, ""},
	} {
		_, err := ParseCard(tt.line)
		var pe *parse.Error
		if !errors.As(err, &pe) {
			t.Errorf("ParseCard(%q): got error %v; want *parse.Error", tt.line, err)
			continue
		}
		if pe.Kind != tt.kind || pe.Pos != tt.pos || pe.Context != tt.context {
			t.Errorf("ParseCard(%q): got %s at %d (%q); want %s at %d (%q)",
				tt.line, pe.Kind, pe.Pos, pe.Context, tt.kind, tt.pos, tt.context)
		}
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards(example)
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != len(example) {
		t.Fatalf("got %d cards; want %d", len(cards), len(example))
	}
	for i, c := range cards {
		if c.ID != i+1 {
			t.Errorf("card %d: got ID %d", i, c.ID)
		}
	}

	lines := append([]string{}, example[:3]...)
	lines = append(lines, "", example[3])
	_, err = ParseCards(lines)
	if err == nil {
		t.Fatal("blank line was accepted")
	}
	if got, want := err.Error(), "line 4: offset 0: card label: unexpected token (expected \"Card\")"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if !parse.IsKind(err, parse.UnexpectedToken) {
		t.Errorf("got %v; want an UnexpectedToken error", err)
	}
}

func TestCardRoundTrip(t *testing.T) {
	lines := append([]string{
		"Card 7: 3 3 1 | 9 9 1",
		"Card  100:   5   | 5 5 5 5",
	}, example...)
	for _, line := range lines {
		c, err := ParseCard(line)
		if err != nil {
			t.Fatalf("ParseCard(%q): %s", line, err)
		}
		c1, err := ParseCard(c.String())
		if err != nil {
			t.Fatalf("ParseCard(%q): %s", c.String(), err)
		}
		if diff := pretty.Diff(c1, c); len(diff) > 0 {
			t.Errorf("%q round trip: %v", line, diff)
		}
	}

	c := Card{ID: 2, Winning: NewSet(30, 4, 12), Held: []int{7, 4, 7}}
	if got, want := c.String(), "Card 2: 4 12 30 | 7 4 7"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		c := Card{ID: rng.Intn(1000), Winning: make(Set)}
		for j := rng.Intn(10); j >= 0; j-- {
			c.Winning[rng.Intn(100)] = struct{}{}
		}
		for j := rng.Intn(10); j >= 0; j-- {
			c.Held = append(c.Held, rng.Intn(100))
		}
		c1, err := ParseCard(c.String())
		if err != nil {
			t.Fatalf("ParseCard(%q): %s", c.String(), err)
		}
		if diff := pretty.Diff(c1, c); len(diff) > 0 {
			t.Fatalf("%q round trip: %v", c.String(), diff)
		}
	}
}
