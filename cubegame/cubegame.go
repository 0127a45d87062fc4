// Package cubegame checks cube-drawing games against a bag of colored
// cubes.
package cubegame

import (
	"fmt"

	"github.com/cespare/aoc2023/parse"
)

// A Color is one of the cube colors a game can reveal.
type Color int

const (
	Red Color = iota
	Green
	Blue

	numColors
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// ParseColor maps a label to its Color. Unknown labels are a
// *parse.Error of kind UnknownLabel at offset 0.
func ParseColor(label string) (Color, error) {
	switch label {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	}
	return 0, parse.Fail(parse.UnknownLabel, 0, "red|green|blue")
}

// A Bag holds a number of cubes of each color.
type Bag [numColors]int

// DefaultBag is the bag from the puzzle statement.
var DefaultBag = Bag{Red: 12, Green: 13, Blue: 14}

// Power is the product of the cube counts.
func (b Bag) Power() int {
	p := 1
	for _, n := range b {
		p *= n
	}
	return p
}

// A Draw is some number of cubes of one color.
type Draw struct {
	Count int
	Color Color
}

// A Hand is the set of cubes revealed at once.
type Hand []Draw

// A Game is one parsed line: its ID and the hands revealed, in order.
type Game struct {
	ID    int
	Hands []Hand
}

// Possible reports whether every hand of g could have been drawn from b.
func (g Game) Possible(b Bag) bool {
	for _, h := range g.Hands {
		for _, d := range h {
			if d.Count > b[d.Color] {
				return false
			}
		}
	}
	return true
}

// MinBag returns the smallest bag from which g is possible.
func (g Game) MinBag() Bag {
	var b Bag
	for _, h := range g.Hands {
		for _, d := range h {
			b[d.Color] = max(b[d.Color], d.Count)
		}
	}
	return b
}

var (
	gameLabel = parse.Label("game label", parse.Preceded(parse.OptSpaces(), parse.Literal("Game")))
	gameID    = parse.Label("game id", parse.Delimited(parse.Spaces(), parse.Int(), parse.Literal(":")))

	color = parse.Label("color", parse.MapErr(parse.Word(), ParseColor))

	draw = parse.Map(
		parse.Pair(parse.Terminated(parse.Int(), parse.Spaces()), color),
		func(t parse.Tuple[int, Color]) Draw { return Draw{Count: t.First, Color: t.Second} },
	)
	hand = parse.Map(
		parse.SepBy1(draw, delim(",")),
		func(ds []Draw) Hand { return Hand(ds) },
	)
	hands = parse.Label("hand", parse.SepBy1(hand, delim(";")))

	gameLine = parse.Map(
		parse.Pair(parse.Preceded(gameLabel, gameID), parse.Preceded(parse.OptSpaces(), hands)),
		func(t parse.Tuple[int, []Hand]) Game { return Game{ID: t.First, Hands: t.Second} },
	)
)

func delim(sep string) parse.Parser[string] {
	return parse.Delimited(parse.OptSpaces(), parse.Literal(sep), parse.OptSpaces())
}

// ParseGame parses a line such as
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
func ParseGame(line string) (Game, error) {
	return parse.Run(gameLine, line)
}

// ParseGames parses one game per line, stopping at the first bad line.
func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, len(lines))
	for i, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games[i] = g
	}
	return games, nil
}

// SumPossible sums the IDs of the games that are possible with b.
func SumPossible(games []Game, b Bag) int {
	var sum int
	for _, g := range games {
		if g.Possible(b) {
			sum += g.ID
		}
	}
	return sum
}

// SumPowers sums the powers of each game's minimum bag.
func SumPowers(games []Game) int {
	var sum int
	for _, g := range games {
		sum += g.MinBag().Power()
	}
	return sum
}
