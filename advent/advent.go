package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
)

type options struct {
	configFile string
	verbose    bool
	comma      bool
	workers    int
	profile    string
}

func main() {
	log.SetFlags(0)
	var opts options
	flag.StringVar(&opts.configFile, "config", "", "INI config `file` (default ~/.config/advent.ini)")
	flag.BoolVar(&opts.verbose, "v", false, "Print parsed records")
	flag.BoolVar(&opts.comma, "comma", false, "Format answers with thousands separators")
	flag.IntVar(&opts.workers, "workers", 0, "Number of goroutines for computing card matches")
	flag.StringVar(&opts.profile, "fgprof", "", "Write a wall-clock profile to `file`")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	if err := run(flag.Args(), opts); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, opts options) (err error) {
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}
	if opts.workers > 0 {
		cfg.workers = opts.workers
	}

	if opts.profile != "" {
		stop, perr := startProfile(opts.profile)
		if perr != nil {
			return perr
		}
		defer func() {
			if err1 := stop(); err1 != nil && err == nil {
				err = fmt.Errorf("error writing profile: %s", err1)
			}
		}()
	}

	s := &session{cfg: cfg, out: os.Stdout}
	if opts.verbose {
		s.debug = os.Stderr
	}
	switch args[0] {
	case "repl":
		return repl(s)
	case "import":
		return importInput(cfg, args[1:])
	}
	return solve(s, args[0], args[1:], opts.comma)
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [input file]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [flags] repl\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [flags] import [day] [file]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// A session is the state shared by solutions for one run.
type session struct {
	cfg *config
	out io.Writer
	// debug receives parsed records when non-nil.
	debug io.Writer
}

func (s *session) dump(v any) {
	if s.debug != nil {
		pretty.Fprintf(s.debug, "%# v\n", v)
	}
}

type solution func(s *session, lines []string) (*big.Int, error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func solve(s *session, name string, args []string, comma bool) error {
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	if len(args) > 1 {
		return fmt.Errorf("too many arguments for %s", name)
	}
	var file string
	if len(args) == 1 {
		file = args[0]
	}
	day, _ := splitName(name)
	lines, err := readInput(s.cfg, day, file)
	if err != nil {
		return err
	}
	answer, err := fn(s, lines)
	if err != nil {
		return fmt.Errorf("%s: %s", name, err)
	}
	fmt.Fprintln(s.out, formatAnswer(answer, comma))
	return nil
}

func formatAnswer(n *big.Int, comma bool) string {
	if comma {
		return humanize.BigComma(n)
	}
	return n.String()
}

// intAnswer adapts a solution computed as an int.
func intAnswer(n int, err error) (*big.Int, error) {
	if err != nil {
		return nil, err
	}
	return big.NewInt(int64(n)), nil
}

func startProfile(name string) (stop func() error, err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
