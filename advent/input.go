package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/cp"
)

// readInput returns the lines of the puzzle input for day. The input is
// read from file if given, else from the configured inputs directory if
// it has the day's input, else from stdin.
func readInput(cfg *config, day int, file string) ([]string, error) {
	if file == "" && cfg.inputs != "" {
		name := inputPath(cfg, day)
		if _, err := os.Stat(name); err == nil {
			file = name
		}
	}
	if file == "" {
		return readLines(os.Stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}

func inputPath(cfg *config, day int) string {
	return filepath.Join(cfg.inputs, strconv.Itoa(day)+".txt")
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// importInput copies a downloaded puzzle input into the inputs directory.
func importInput(cfg *config, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: import [day] [file]")
	}
	day, err := strconv.Atoi(args[0])
	if err != nil || day < 1 || day > 25 {
		return fmt.Errorf("bad day %q", args[0])
	}
	if cfg.inputs == "" {
		return fmt.Errorf("no inputs directory configured")
	}
	if err := os.MkdirAll(cfg.inputs, 0o755); err != nil {
		return err
	}
	dst := inputPath(cfg, day)
	if err := cp.CopyFile(dst, args[1]); err != nil {
		return fmt.Errorf("error importing input: %s", err)
	}
	return nil
}
