package main

import (
	"math/big"

	"github.com/cespare/aoc2023/trebuchet"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
}

func day1a(_ *session, lines []string) (*big.Int, error) {
	return intAnswer(trebuchet.Sum(lines, false))
}

func day1b(_ *session, lines []string) (*big.Int, error) {
	return intAnswer(trebuchet.Sum(lines, true))
}
