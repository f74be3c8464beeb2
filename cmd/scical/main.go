// Command scical is the scientific calculator CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/afero"

	"nickandperla.net/scical/pkg/scical"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, afero.NewOsFs()))
}

// config is the parsed command line.
type config struct {
	keys        string
	file        string
	dbPath      string
	noTape      bool
	angle       string
	prelude     string
	savePrelude string
	tapeN       int
	errorFlash  bool
	debug       bool
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("scical", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.keys, "e", "", "Feed a key script")
	fs.StringVar(&cfg.file, "f", "", "Feed a key script file")
	fs.StringVar(&cfg.dbPath, "db", "scical.db", "SQLite tape database path")
	fs.BoolVar(&cfg.noTape, "no-tape", false, "Do not record evaluated operations")
	fs.StringVar(&cfg.angle, "angle", "deg", "Initial angle unit: deg, rad or gra")
	fs.StringVar(&cfg.prelude, "prelude", "", "Key script applied on startup")
	fs.StringVar(&cfg.savePrelude, "save-prelude", "", "Store a startup key script in the tape database and exit")
	fs.IntVar(&cfg.tapeN, "tape", 0, "Print the last N tape entries and exit")
	fs.BoolVar(&cfg.errorFlash, "error-flash", false, "Show Error instead of NaN or Infinity")
	fs.BoolVar(&cfg.debug, "debug", false, "Dump calculator state to stderr after each input")
	fs.BoolVar(&cfg.verbose, "v", false, "Log ignored keys and tape failures to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, fsys afero.Fs) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	if cfg.noTape && cfg.tapeN > 0 {
		fmt.Fprintln(stderr, "Error: -tape needs a tape database; drop -no-tape")
		return 2
	}

	angle, ok := scical.ParseAngleUnit(cfg.angle)
	if !ok {
		fmt.Fprintf(stderr, "Unknown angle unit: %s (use deg, rad or gra)\n", cfg.angle)
		return 2
	}

	// Build options
	opts := []scical.Option{
		scical.WithAngleUnit(angle),
		scical.WithFs(fsys),
	}
	if !cfg.noTape {
		opts = append(opts, scical.WithSQLiteTape(cfg.dbPath))
	}
	if cfg.prelude != "" {
		opts = append(opts, scical.WithPrelude(cfg.prelude))
	}
	if cfg.verbose {
		opts = append(opts, scical.WithLogger(log.New(stderr, "scical: ", 0)))
	}

	calc, err := scical.New(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer calc.Close()

	s := &session{
		calc:       calc,
		out:        stdout,
		errOut:     stderr,
		errorFlash: cfg.errorFlash,
		debug:      cfg.debug,
	}

	switch {
	case cfg.savePrelude != "":
		if err := calc.SavePrelude(cfg.savePrelude); err != nil {
			fmt.Fprintf(stderr, "Error saving prelude: %v\n", err)
			return 1
		}
		return 0

	case cfg.tapeN > 0:
		if err := s.printTape(stdout, cfg.tapeN); err != nil {
			fmt.Fprintf(stderr, "Error reading tape: %v\n", err)
			return 1
		}
		return 0

	case cfg.file != "" || cfg.keys != "":
		// File first, then -e, like a prelude followed by the actual input.
		if cfg.file != "" {
			if _, err := calc.FeedFile(cfg.file); err != nil {
				fmt.Fprintf(stderr, "Error loading file: %v\n", err)
				return 1
			}
		}
		if cfg.keys != "" {
			if _, err := calc.FeedString(cfg.keys); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 1
			}
		}
		s.dumpState()
		fmt.Fprintln(stdout, s.render())
		return 0
	}

	if f, ok := stdin.(*os.File); ok && isTerminal(f) {
		runREPL(s, f)
		return 0
	}
	runBasicREPL(s, stdin)
	return 0
}

// session carries the calculator and presentation settings shared by the
// one-shot and REPL modes.
type session struct {
	calc       *scical.Calculator
	out        io.Writer
	errOut     io.Writer
	errorFlash bool
	debug      bool
}

// render returns the display line for the current state.
func (s *session) render() string {
	if s.errorFlash && s.calc.Degenerate() {
		return "Error"
	}
	return s.calc.Display()
}

// indicators returns the mode line: shift, alpha and angle unit.
func (s *session) indicators() string {
	shift, alpha := " ", " "
	if s.calc.Shift() {
		shift = "S"
	}
	if s.calc.Alpha() {
		alpha = "A"
	}
	return fmt.Sprintf("[%s%s %s]", shift, alpha, s.calc.AngleUnit())
}

func (s *session) dumpState() {
	if s.debug {
		spew.Fdump(s.errOut, s.calc.Snapshot())
	}
}

func (s *session) stateString() string {
	return spew.Sdump(s.calc.Snapshot())
}

func (s *session) printTape(w io.Writer, n int) error {
	entries, err := s.calc.Tape(n)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "(tape is empty)")
		return nil
	}
	// Oldest first reads like a paper tape.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		mark := ""
		if !e.Verify() {
			mark = "  (digest mismatch)"
		}
		fmt.Fprintf(w, "%4d  %s%s\n", e.Seq, e.Expression(), mark)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
