package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/cespare/aoc2023/cubegame"
	"github.com/vaughan0/go-ini"
)

// config is loaded from an INI file:
//
//	[advent]
//	inputs = ~/aoc/2023
//	workers = 4
//
//	[cubes]
//	red = 12
//	green = 13
//	blue = 14
type config struct {
	inputs  string
	workers int
	bag     cubegame.Bag
}

func defaultConfig() *config {
	return &config{
		workers: runtime.NumCPU(),
		bag:     cubegame.DefaultBag,
	}
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "advent.ini")
}

// loadConfig reads the named config file. If name is empty, the default
// file is used if it exists.
func loadConfig(name string) (*config, error) {
	explicit := name != ""
	if !explicit {
		name = defaultConfigFile()
		if name == "" {
			return defaultConfig(), nil
		}
	}
	f, err := ini.LoadFile(name)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	cfg, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("bad config (%s): %s", name, err)
	}
	return cfg, nil
}

func parseConfig(f ini.File) (*config, error) {
	cfg := defaultConfig()
	if dir, ok := f.Get("advent", "inputs"); ok {
		cfg.inputs = expandHome(dir)
	}
	if s, ok := f.Get("advent", "workers"); ok {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid workers value %q", s)
		}
		cfg.workers = n
	}
	for label, s := range f.Section("cubes") {
		c, err := cubegame.ParseColor(label)
		if err != nil {
			return nil, fmt.Errorf("unknown cube color %q", label)
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid count %q for %s cubes", s, c)
		}
		cfg.bag[c] = n
	}
	return cfg, nil
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
