package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/aoc2023/parse"
	"github.com/cespare/aoc2023/scratchcard"
	"github.com/chzyer/readline"
)

// repl reads cards interactively and describes each one.
func repl(s *session) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "card> ",
		HistoryFile: filepath.Join(os.TempDir(), "advent-repl.txt"),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintln(s.out, describeCard(line))
	}
}

func describeCard(line string) string {
	c, err := scratchcard.ParseCard(line)
	if err != nil {
		return fmt.Sprintf("error: %s\n%s\n%s^", err, line, strings.Repeat(" ", errorOffset(err)))
	}
	m := scratchcard.MatchCount(c)
	return fmt.Sprintf("%s\nmatches: %d, score: %d", c, m, scratchcard.Score(m))
}

func errorOffset(err error) int {
	var pe *parse.Error
	if errors.As(err, &pe) {
		return pe.Pos
	}
	return 0
}
