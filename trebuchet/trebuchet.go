// Package trebuchet recovers calibration values from lines of text.
package trebuchet

import (
	"fmt"

	"github.com/cespare/aoc2023/parse"
)

var digitWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

var (
	digitsOnly = parse.Digit()
	withWords  = parse.Alt(append([]parse.Parser[int]{parse.Digit()}, wordParsers()...)...)
)

func wordParsers() []parse.Parser[int] {
	ps := make([]parse.Parser[int], len(digitWords))
	for i, w := range digitWords {
		n := i + 1
		ps[i] = parse.Map(parse.Literal(w), func(string) int { return n })
	}
	return ps
}

// Value returns the two-digit number made of the first and last digit in
// line. If words is set, spelled-out digits ("one" through "nine") count
// as well; they may overlap, as in "eightwo".
func Value(line string, words bool) (int, error) {
	p := digitsOnly
	if words {
		p = withWords
	}
	digits := parse.FindAll(p, line)
	if len(digits) == 0 {
		return 0, fmt.Errorf("no digits in %q", line)
	}
	return 10*digits[0] + digits[len(digits)-1], nil
}

// Sum adds up the calibration values of lines.
func Sum(lines []string, words bool) (int, error) {
	var sum int
	for i, line := range lines {
		v, err := Value(line, words)
		if err != nil {
			return 0, fmt.Errorf("line %d: %s", i+1, err)
		}
		sum += v
	}
	return sum, nil
}
