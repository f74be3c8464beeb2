package scical

import (
	"path/filepath"
	"testing"
)

func TestPreludeNotRecorded(t *testing.T) {
	c, err := New(WithMemoryTape(), WithPrelude("2 + 3 ="))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if c.Display() != "5" {
		t.Errorf("expected prelude to run, got '%s'", c.Display())
	}
	entries, _ := c.Tape(0)
	if len(entries) != 0 {
		t.Fatalf("expected prelude arithmetic off the tape, got %d entries", len(entries))
	}

	c.FeedString("x 2 =")
	entries, _ = c.Tape(0)
	if len(entries) != 1 || entries[0].Expression() != "5 × 2 = 10" {
		t.Errorf("expected one recorded entry after the prelude, got %+v", entries)
	}
}

func TestDefaultPreludeLeavesDefaults(t *testing.T) {
	c, err := New(WithMemoryTape())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if c.AngleUnit() != Degrees {
		t.Errorf("expected DEG, got %v", c.AngleUnit())
	}
	if c.Display() != "" {
		t.Errorf("expected empty display, got '%s'", c.Display())
	}
}

func TestCustomPrelude(t *testing.T) {
	c, err := New(WithPrelude("rad shift"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if c.AngleUnit() != Radians || !c.Shift() {
		t.Errorf("expected prelude to set RAD and shift, got %v shift=%v", c.AngleUnit(), c.Shift())
	}
}

func TestNoPreludeOption(t *testing.T) {
	c, err := New(WithPrelude("rad"), WithNoPrelude())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if c.AngleUnit() != Degrees {
		t.Errorf("expected prelude to be skipped, got %v", c.AngleUnit())
	}
}

func TestStoredPreludeOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tape.db")

	c, err := New(WithSQLiteTape(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SavePrelude("gra alpha"); err != nil {
		t.Fatalf("SavePrelude failed: %v", err)
	}
	c.Close()

	c, err = New(WithSQLiteTape(path), WithPrelude("rad"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if c.AngleUnit() != Gradians || !c.Alpha() {
		t.Errorf("expected stored prelude to win, got %v alpha=%v", c.AngleUnit(), c.Alpha())
	}
}

func TestSavePreludeWithoutMetadata(t *testing.T) {
	c, err := New(WithMemoryTape())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if err := c.SavePrelude("rad"); err == nil {
		t.Error("expected error saving prelude to a memory tape")
	}
}
