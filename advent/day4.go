package main

import (
	"math/big"

	"github.com/cespare/aoc2023/scratchcard"
)

func init() {
	register("4a", day4a)
	register("4b", day4b)
}

func (s *session) cards(lines []string) ([]scratchcard.Card, error) {
	cards, err := scratchcard.ParseCards(lines)
	if err != nil {
		return nil, err
	}
	for _, c := range cards {
		s.dump(c)
	}
	return cards, nil
}

func day4a(s *session, lines []string) (*big.Int, error) {
	cards, err := s.cards(lines)
	if err != nil {
		return nil, err
	}
	return scratchcard.TotalScore(cards), nil
}

func day4b(s *session, lines []string) (*big.Int, error) {
	cards, err := s.cards(lines)
	if err != nil {
		return nil, err
	}
	r := scratchcard.Evaluate(cards, s.cfg.workers)
	s.dump(r.Copies.String())
	return r.Instances, nil
}
