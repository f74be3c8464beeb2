package scical

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/afero"

	"nickandperla.net/scical/internal/engine"
	"nickandperla.net/scical/internal/scanner"
	"nickandperla.net/scical/internal/store"
	"nickandperla.net/scical/internal/token"
)

// Calculator is a scientific calculator fed one key at a time.
// It is not safe for concurrent use; serialize input from several sources
// before handing it over.
type Calculator struct {
	engine    *engine.Engine
	tape      store.Tape
	logger    *log.Logger
	fs        afero.Fs
	angle     token.Unit
	prelude   string
	noPrelude bool
	err       error
}

// New creates a new calculator with the given options.
func New(opts ...Option) (*Calculator, error) {
	c := &Calculator{
		logger: log.New(io.Discard, "", 0),
		fs:     afero.NewOsFs(),
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.err != nil {
		c.Close()
		return nil, c.err
	}

	c.engine = engine.New(
		engine.WithLogger(c.logger),
		engine.WithAngleUnit(c.angle),
	)

	// Load prelude unless disabled. The tape is attached afterwards so
	// prelude arithmetic is not recorded.
	if !c.noPrelude {
		prelude := c.prelude
		if prelude == "" {
			prelude = DefaultPrelude
		}

		// Check for database override
		if ms, ok := c.tape.(MetadataStore); ok {
			if p, err := ms.GetMetadata(PreludeKey); err == nil && p != "" {
				prelude = p
			}
		}

		if _, err := c.FeedString(prelude); err != nil {
			c.Close()
			return nil, fmt.Errorf("prelude: %w", err)
		}
	}
	if c.tape != nil {
		c.engine.SetTape(c.tape)
	}

	return c, nil
}

// Press applies a single named key ("7", "sin", "m+", "enter").
func (c *Calculator) Press(key string) (string, error) {
	tok, ok := scanner.Lookup(key)
	if !ok {
		tok = token.Unknown(key)
	}
	return c.engine.Apply(tok)
}

// Apply applies a single token.
func (c *Calculator) Apply(tok Token) (string, error) {
	return c.engine.Apply(tok)
}

// Feed applies every key of a key script and returns the final display.
// Unrecognized keys are logged and skipped; only read errors stop the feed.
func (c *Calculator) Feed(r io.Reader) (string, error) {
	sc := scanner.New(r)
	for {
		item, err := sc.Next()
		if err == io.EOF {
			return c.engine.Display(), nil
		}
		if err != nil {
			return c.engine.Display(), fmt.Errorf("line %d: %w", sc.Line(), err)
		}
		if _, err := c.engine.Apply(item.Token); err != nil && !errors.Is(err, engine.ErrUnrecognized) {
			return c.engine.Display(), fmt.Errorf("line %d: %w", item.Line, err)
		}
	}
}

// FeedString applies a key script held in a string.
func (c *Calculator) FeedString(keys string) (string, error) {
	return c.Feed(strings.NewReader(keys))
}

// FeedFile applies a key script file.
func (c *Calculator) FeedFile(path string) (string, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	display, err := c.Feed(f)
	if err != nil {
		return display, fmt.Errorf("%s: %w", path, err)
	}
	return display, nil
}

// Display returns the current display string.
func (c *Calculator) Display() string { return c.engine.Display() }

// Degenerate reports whether the display shows NaN or an infinity.
func (c *Calculator) Degenerate() bool { return c.engine.Degenerate() }

// Shift reports whether the shift modifier is active.
func (c *Calculator) Shift() bool { return c.engine.Shift() }

// Alpha reports whether the alpha modifier is active.
func (c *Calculator) Alpha() bool { return c.engine.Alpha() }

// AngleUnit returns the current angle unit.
func (c *Calculator) AngleUnit() AngleUnit { return c.engine.AngleUnit() }

// Memory returns the memory register.
func (c *Calculator) Memory() float64 { return c.engine.Memory() }

// Snapshot returns a copy of the calculator state.
func (c *Calculator) Snapshot() State { return c.engine.Snapshot() }

// Tape returns the most recent evaluated operations, newest first.
// Without a tape it returns nil.
func (c *Calculator) Tape(limit int) ([]Entry, error) {
	if c.tape == nil {
		return nil, nil
	}
	return c.tape.Entries(limit)
}

// ClearTape deletes the tape history.
func (c *Calculator) ClearTape() error {
	if c.tape == nil {
		return nil
	}
	return c.tape.Reset()
}

// SavePrelude stores a prelude in the tape database, overriding the
// configured prelude on the next start.
func (c *Calculator) SavePrelude(keys string) error {
	ms, ok := c.tape.(MetadataStore)
	if !ok {
		return errors.New("tape does not support metadata")
	}
	return ms.SetMetadata(PreludeKey, keys)
}

// Close releases resources.
func (c *Calculator) Close() error {
	if c.tape != nil {
		return c.tape.Close()
	}
	return nil
}
