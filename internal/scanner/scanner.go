// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner turns key scripts and single keystrokes into calculator
// tokens.
//
// A key script is whitespace separated words. A word is either a key name
// ("sin", "m+", "enter", "nav-up") or a run of single-character keys and
// letter names ("12.5+3=", "30sin"). '#' starts a comment that runs to the
// end of the line.
package scanner

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"nickandperla.net/scical/internal/token"
)

// Scanner tokenizes key scripts rune-by-rune.
type Scanner struct {
	reader  *bufio.Reader
	pending []*Item
	line    int // Current line number (1-based)
}

// Item represents a scanned token with the text it came from.
type Item struct {
	Token token.Token
	Value string
	Line  int // Line number where this token started
}

// New creates a new Scanner from an io.Reader.
func New(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
		line:   1,
	}
}

// NewFromString creates a new Scanner from a string.
func NewFromString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Line returns the current line number (1-based).
func (s *Scanner) Line() int {
	return s.line
}

// Next returns the next item. At end of input it returns io.EOF.
// Unknown words come back as UNKNOWN tokens, not errors.
func (s *Scanner) Next() (*Item, error) {
	for len(s.pending) == 0 {
		word, line, err := s.scanWord()
		if err != nil {
			return nil, err
		}
		s.pending = Split(word, line)
	}
	item := s.pending[0]
	s.pending = s.pending[1:]
	return item, nil
}

// All scans the rest of the input.
func (s *Scanner) All() ([]*Item, error) {
	var items []*Item
	for {
		item, err := s.Next()
		if err == io.EOF {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
}

// scanWord reads the next whitespace delimited word, skipping comments.
func (s *Scanner) scanWord() (string, int, error) {
	var buf strings.Builder
	startLine := s.line

	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			if buf.Len() > 0 {
				return buf.String(), startLine, nil
			}
			return "", s.line, io.EOF
		}
		if err != nil {
			return "", s.line, err
		}

		switch {
		case r == '#':
			if err := s.skipComment(); err != nil && err != io.EOF {
				return "", s.line, err
			}
			if buf.Len() > 0 {
				return buf.String(), startLine, nil
			}
			startLine = s.line
		case unicode.IsSpace(r):
			if buf.Len() > 0 {
				s.reader.UnreadRune()
				return buf.String(), startLine, nil
			}
			if r == '\n' {
				s.line++
			}
			startLine = s.line
		default:
			buf.WriteRune(r)
		}
	}
}

// skipComment consumes everything up to and including the next newline.
func (s *Scanner) skipComment() error {
	for {
		r, _, err := s.reader.ReadRune()
		if err != nil {
			return err
		}
		if r == '\n' {
			s.line++
			return nil
		}
	}
}

// Split tokenizes a single word.
func Split(word string, line int) []*Item {
	if tok, ok := Lookup(word); ok {
		return []*Item{{Token: tok, Value: word, Line: line}}
	}

	var items []*Item
	emit := func(tok token.Token, value string) {
		items = append(items, &Item{Token: tok, Value: value, Line: line})
	}

	runes := []rune(word)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r < 0x80 && token.IsDigit(byte(r)):
			emit(token.Digit(byte(r)), string(r))
			i++
		case unicode.IsLetter(r) && r != 'π':
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) && runes[j] != 'π' {
				j++
			}
			name := string(runes[i:j])
			// Letter names may carry a sign suffix: m+.
			if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
				if tok, ok := Lookup(name + string(runes[j])); ok {
					emit(tok, name+string(runes[j]))
					i = j + 1
					continue
				}
			}
			splitLetters(runes[i:j], emit)
			i = j
		default:
			if tok, ok := Lookup(string(r)); ok {
				emit(tok, string(r))
			} else {
				emit(token.Unknown(string(r)), string(r))
			}
			i++
		}
	}
	return items
}

// splitLetters emits a run of letters as key names. A run that is not a
// key itself is split greedily into the longest names that are ("xpi" is
// x, pi). Letters no name starts with are emitted together as UNKNOWN.
func splitLetters(run []rune, emit func(token.Token, string)) {
	if tok, ok := Lookup(string(run)); ok {
		emit(tok, string(run))
		return
	}
	unknown := -1
	flush := func(end int) {
		if unknown >= 0 {
			name := string(run[unknown:end])
			emit(token.Unknown(name), name)
			unknown = -1
		}
	}
	for pos := 0; pos < len(run); {
		k := len(run)
		for ; k > pos; k-- {
			if _, ok := Lookup(string(run[pos:k])); ok {
				break
			}
		}
		if k == pos {
			if unknown < 0 {
				unknown = pos
			}
			pos++
			continue
		}
		flush(pos)
		name := string(run[pos:k])
		tok, _ := Lookup(name)
		emit(tok, name)
		pos = k
	}
	flush(len(run))
}
