package scical

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"nickandperla.net/scical/internal/store"
)

func newCalc(t *testing.T, opts ...Option) *Calculator {
	t.Helper()
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestFeedString(t *testing.T) {
	tests := []struct {
		keys string
		want string
	}{
		{"1 2 3", "123"},
		{"0 0 5", "5"},
		{"1.2.3", "1.23"},
		{"2 + 3 * 4 =", "20"},
		{"5 / 0 =", "0"},
		{"7 = =", "7"},
		{"123 del", "12"},
		{"9 sqrt", "3"},
		{"2 ^ 8 enter", "256"},
		{"5 ncr 2 =", "10"},
	}
	for _, tt := range tests {
		c := newCalc(t)
		got, err := c.FeedString(tt.keys)
		if err != nil {
			t.Fatalf("FeedString(%q) failed: %v", tt.keys, err)
		}
		if got != tt.want {
			t.Errorf("FeedString(%q) = '%s', want '%s'", tt.keys, got, tt.want)
		}
	}
}

func TestPress(t *testing.T) {
	c := newCalc(t)
	for _, k := range []string{"3", "0", "sin"} {
		if _, err := c.Press(k); err != nil {
			t.Fatalf("Press(%q) failed: %v", k, err)
		}
	}
	if got := c.Display(); !strings.HasPrefix(got, "0.49999") && got != "0.5" {
		t.Errorf("expected sin 30 ≈ 0.5, got '%s'", got)
	}

	got, err := c.Press("bogus")
	if !errors.Is(err, ErrUnrecognized) {
		t.Errorf("expected ErrUnrecognized, got %v", err)
	}
	if got != c.Display() {
		t.Errorf("expected unchanged display, got '%s'", got)
	}
}

func TestFeedSkipsUnknownKeys(t *testing.T) {
	var buf bytes.Buffer
	c := newCalc(t, WithLogger(log.New(&buf, "", 0)))

	got, err := c.FeedString("2 + wat 3 =")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "5" {
		t.Errorf("expected '5', got '%s'", got)
	}
	if !strings.Contains(buf.String(), "wat") {
		t.Errorf("expected unknown key to be logged, got '%s'", buf.String())
	}
}

func TestFeedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	script := "# monthly total\n12.5 + 7.5 =\nm+\nac\n"
	if err := afero.WriteFile(fs, "total.keys", []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newCalc(t, WithFs(fs))
	got, err := c.FeedFile("total.keys")
	if err != nil {
		t.Fatalf("FeedFile failed: %v", err)
	}
	if got != "" {
		t.Errorf("expected cleared display, got '%s'", got)
	}
	if c.Memory() != 20 {
		t.Errorf("expected memory 20, got %v", c.Memory())
	}

	if _, err := c.FeedFile("missing.keys"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMemoryTapeRecordsOperations(t *testing.T) {
	c := newCalc(t, WithMemoryTape())
	c.FeedString("2 + 3 x 4 =")

	entries, err := c.Tape(0)
	if err != nil {
		t.Fatalf("Tape failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Expression() != "5 × 4 = 20" {
		t.Errorf("unexpected newest entry '%s'", entries[0].Expression())
	}

	if err := c.ClearTape(); err != nil {
		t.Fatalf("ClearTape failed: %v", err)
	}
	entries, _ = c.Tape(0)
	if len(entries) != 0 {
		t.Errorf("expected empty tape, got %d", len(entries))
	}
}

func TestSQLiteTapeSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tape.db")

	c, err := New(WithSQLiteTape(path))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c.FeedString("6 / 4 =")
	c.Close()

	c = newCalc(t, WithSQLiteTape(path))
	if c.Display() != "" {
		t.Errorf("calculator state must not be restored, got '%s'", c.Display())
	}
	entries, err := c.Tape(1)
	if err != nil {
		t.Fatalf("Tape failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Expression() != "6 ÷ 4 = 1.5" || !entries[0].Verify() {
		t.Errorf("unexpected tape after restart: %+v", entries)
	}
}

func TestNoTape(t *testing.T) {
	c := newCalc(t)
	c.FeedString("1 + 1 =")
	entries, err := c.Tape(0)
	if err != nil || entries != nil {
		t.Errorf("expected no tape, got %v %v", entries, err)
	}
	if err := c.ClearTape(); err != nil {
		t.Errorf("ClearTape without tape: %v", err)
	}
}

func TestAngleUnitOption(t *testing.T) {
	c := newCalc(t, WithAngleUnit(Radians))
	if got, _ := c.FeedString("0 cos"); got != "1" {
		t.Errorf("expected '1', got '%s'", got)
	}
	if u, ok := ParseAngleUnit("gra"); !ok || u != Gradians {
		t.Errorf("ParseAngleUnit(gra) = %v, %v", u, ok)
	}
}

func TestDegenerateAndSnapshot(t *testing.T) {
	c := newCalc(t)
	c.FeedString("ln")
	if !c.Degenerate() || c.Display() != "NaN" {
		t.Errorf("expected degenerate NaN display, got '%s'", c.Display())
	}
	c.FeedString("ac 4 +")
	s := c.Snapshot()
	if s.PreviousInput != "4" || !s.AwaitingFresh {
		t.Errorf("unexpected snapshot %+v", s)
	}
}

type closeCounter struct {
	*store.Memory
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return c.Memory.Close()
}

func TestReplacedTapeIsClosed(t *testing.T) {
	first := &closeCounter{Memory: store.NewMemory()}
	second := &closeCounter{Memory: store.NewMemory()}

	c := newCalc(t, WithTape(first), WithTape(second))
	if first.closed != 1 {
		t.Errorf("expected replaced tape closed once, got %d", first.closed)
	}
	c.FeedString("1 + 2 =")
	if entries, _ := first.Entries(0); len(entries) != 0 {
		t.Errorf("expected nothing on the replaced tape, got %d entries", len(entries))
	}
	if entries, _ := second.Entries(0); len(entries) != 1 {
		t.Errorf("expected the last tape to record, got %d entries", len(entries))
	}

	path := filepath.Join(t.TempDir(), "tape.db")
	c = newCalc(t, WithSQLiteTape(path), WithMemoryTape())
	if _, ok := c.tape.(*store.Memory); !ok {
		t.Errorf("expected the memory tape to win, got %T", c.tape)
	}
}
