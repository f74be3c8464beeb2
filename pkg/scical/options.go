// Package scical provides the public API for the scientific calculator.
package scical

import (
	"log"

	"github.com/spf13/afero"

	"nickandperla.net/scical/internal/engine"
	"nickandperla.net/scical/internal/store"
	"nickandperla.net/scical/internal/token"
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithSQLiteTape records evaluated operations in a SQLite database at the given path.
func WithSQLiteTape(path string) Option {
	return func(c *Calculator) {
		s, err := store.NewSQLite(path)
		if err != nil {
			c.err = err
			return
		}
		c.setTape(s)
	}
}

// WithMemoryTape records evaluated operations in memory (for testing).
func WithMemoryTape() Option {
	return func(c *Calculator) {
		c.setTape(store.NewMemory())
	}
}

// WithTape sets a custom tape. The calculator closes it on Close.
func WithTape(t Tape) Option {
	return func(c *Calculator) {
		c.setTape(t)
	}
}

// setTape replaces the tape, closing the one set by an earlier option.
func (c *Calculator) setTape(t Tape) {
	if c.tape != nil {
		c.tape.Close()
	}
	c.tape = t
}

// WithLogger sets the logger for ignored keys and tape failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAngleUnit sets the initial angle unit.
func WithAngleUnit(u AngleUnit) Option {
	return func(c *Calculator) {
		c.angle = u
	}
}

// WithFs sets the filesystem FeedFile reads from.
func WithFs(fs afero.Fs) Option {
	return func(c *Calculator) {
		c.fs = fs
	}
}

// WithPrelude sets a key script applied on startup.
// If not set, DefaultPrelude is used.
func WithPrelude(keys string) Option {
	return func(c *Calculator) {
		c.prelude = keys
	}
}

// WithNoPrelude disables the startup key script.
func WithNoPrelude() Option {
	return func(c *Calculator) {
		c.noPrelude = true
	}
}

// Token is one unit of calculator input.
type Token = token.Token

// State is a copy of the calculator state.
type State = engine.State

// Tape interface for custom tapes.
type Tape = store.Tape

// Entry is one recorded operation.
type Entry = store.Entry

// MetadataStore is implemented by tapes that can keep settings.
type MetadataStore interface {
	GetMetadata(key string) (string, error)
	SetMetadata(key, value string) error
}

// AngleUnit is the unit trigonometric keys work in.
type AngleUnit = token.Unit

// Angle unit constants.
const (
	Degrees  = token.Degrees
	Radians  = token.Radians
	Gradians = token.Gradians
)

// ParseAngleUnit parses deg, rad or gra.
func ParseAngleUnit(s string) (AngleUnit, bool) {
	return token.ParseUnit(s)
}

// ErrUnrecognized is returned for keys the calculator does not know.
var ErrUnrecognized = engine.ErrUnrecognized
