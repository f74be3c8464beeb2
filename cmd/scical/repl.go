package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"nickandperla.net/scical/internal/scanner"
	"nickandperla.net/scical/internal/token"
)

func printBanner(w io.Writer, raw bool) {
	nl := "\n"
	if raw {
		nl = "\r\n"
	}
	fmt.Fprint(w, "scical keypad (Ctrl+D to exit)"+nl+nl)
	if raw {
		fmt.Fprint(w, strings.ReplaceAll(scanner.KeystrokeHelp, "\n", nl)+nl)
		fmt.Fprint(w, "  ?  state dump   T  tape"+nl+nl)
		return
	}
	fmt.Fprint(w, "Type key scripts, e.g. 2 + 3 x 4 =  or  30 sin"+nl)
	fmt.Fprint(w, "Commands: :state  :tape [n]  :quit"+nl+nl)
}

func runREPL(s *session, f *os.File) {
	// Check if stdin is a terminal
	if !term.IsTerminal(int(f.Fd())) {
		// Not a TTY, fall back to line mode
		runBasicREPL(s, f)
		return
	}
	runRawREPL(s, f)
}

// runBasicREPL reads one key script per line and prints the display after it.
func runBasicREPL(s *session, in io.Reader) {
	reader := bufio.NewReader(in)
	printBanner(s.out, false)

	for {
		fmt.Fprint(s.out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(s.out)
			return
		}
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, ":") {
			if quit := s.command(line); quit {
				return
			}
			continue
		}
		if line == "" {
			continue
		}

		if _, ferr := s.calc.FeedString(line); ferr != nil {
			fmt.Fprintf(s.out, "Error: %v\n", ferr)
			continue
		}
		s.dumpState()
		fmt.Fprintf(s.out, "%s %s\n", s.indicators(), s.render())

		if err != nil {
			return
		}
	}
}

// command runs a ':' command and reports whether the REPL should exit.
func (s *session) command(line string) bool {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "quit", "q", "exit":
		return true
	case "state":
		fmt.Fprint(s.out, s.stateString())
	case "tape":
		n := 10
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil && v > 0 {
				n = v
			}
		}
		if err := s.printTape(s.out, n); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	default:
		fmt.Fprintf(s.out, "Unknown command: %s\n", fields[0])
	}
	return false
}

// runRawREPL applies each keystroke as it is typed and redraws the display line.
func runRawREPL(s *session, f *os.File) {
	fd := int(f.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(s.errOut, "Failed to set raw mode: %v\n", err)
		runBasicREPL(s, f)
		return
	}
	defer term.Restore(fd, oldState)

	printBanner(s.out, true)
	redraw := func() {
		fmt.Fprintf(s.out, "\r\x1b[K%s %s_", s.indicators(), s.render())
	}
	// Raw mode needs \r\n; dumps go through this instead of Fprint.
	printRaw := func(text string) {
		fmt.Fprint(s.out, "\r\n"+strings.ReplaceAll(strings.TrimRight(text, "\n"), "\n", "\r\n")+"\r\n")
	}
	redraw()

	keys := newKeyReader(f)
	for {
		tok, cmd, eof := keys.next()
		if eof {
			fmt.Fprint(s.out, "\r\n")
			return
		}
		switch cmd {
		case '?':
			printRaw(s.stateString())
		case 'T':
			var sb strings.Builder
			if err := s.printTape(&sb, 10); err != nil {
				fmt.Fprintf(&sb, "Error: %v\n", err)
			}
			printRaw(sb.String())
		case 0:
			if _, err := s.calc.Apply(tok); err != nil {
				// Ignored keys are logged by the calculator.
				continue
			}
			if s.debug {
				printRaw(s.stateString())
			}
		}
		redraw()
	}
}

// keyReader decodes raw terminal bytes into calculator tokens. Bytes from
// one read are queued so that a lone ESC can be told apart from the start
// of an escape sequence without waiting for another key.
type keyReader struct {
	r       io.Reader
	buf     []byte
	pending []byte
}

func newKeyReader(r io.Reader) *keyReader {
	return &keyReader{r: r, buf: make([]byte, 16)}
}

func (k *keyReader) readByte() (byte, bool) {
	for len(k.pending) == 0 {
		n, err := k.r.Read(k.buf)
		if n > 0 {
			k.pending = k.buf[:n]
			break
		}
		if err != nil {
			return 0, false
		}
	}
	b := k.pending[0]
	k.pending = k.pending[1:]
	return b, true
}

// next returns the next token, or a REPL command byte ('?', 'T'), or eof.
func (k *keyReader) next() (tok token.Token, cmd byte, eof bool) {
	for {
		b, ok := k.readByte()
		if !ok {
			return tok, 0, true
		}

		switch b {
		case 0x04, 0x03: // Ctrl+D, Ctrl+C
			return tok, 0, true
		case '?', 'T':
			return tok, b, false
		case 0x1b: // ESC: arrow/delete sequence, or clear
			// A terminal sends a whole sequence in one read; ESC alone
			// in its read, or followed by anything but '[', is Esc.
			if len(k.pending) == 0 || k.pending[0] != '[' {
				return token.Clear(), 0, false
			}
			k.pending = k.pending[1:]
			code, ok := k.readByte()
			if !ok {
				return tok, 0, true
			}
			switch code {
			case 'A':
				return token.Nav("up"), 0, false
			case 'B':
				return token.Nav("down"), 0, false
			case 'C':
				return token.Nav("right"), 0, false
			case 'D':
				return token.Nav("left"), 0, false
			case '3': // Delete key: ESC [ 3 ~
				if tilde, ok := k.readByte(); ok && tilde == '~' {
					return token.Delete(), 0, false
				}
			}
			continue
		}

		if t, ok := scanner.Keystroke(b); ok {
			return t, 0, false
		}
		return token.Unknown(string(rune(b))), 0, false
	}
}
