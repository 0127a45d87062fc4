package main

import (
	"math/big"

	"github.com/cespare/aoc2023/cubegame"
)

func init() {
	register("2a", day2a)
	register("2b", day2b)
}

func (s *session) games(lines []string) ([]cubegame.Game, error) {
	games, err := cubegame.ParseGames(lines)
	if err != nil {
		return nil, err
	}
	for _, g := range games {
		s.dump(g)
	}
	return games, nil
}

func day2a(s *session, lines []string) (*big.Int, error) {
	games, err := s.games(lines)
	if err != nil {
		return nil, err
	}
	return big.NewInt(int64(cubegame.SumPossible(games, s.cfg.bag))), nil
}

func day2b(s *session, lines []string) (*big.Int, error) {
	games, err := s.games(lines)
	if err != nil {
		return nil, err
	}
	return big.NewInt(int64(cubegame.SumPowers(games))), nil
}
