// Package store provides the calculation tape: a record of every binary
// evaluation the engine performs.
package store

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Tape is the interface for calculation history persistence.
type Tape interface {
	// Record appends an entry. Seq, Digest and Ts are filled in by the tape.
	Record(e Entry) (Entry, error)
	// Entries returns the most recent entries, newest first. limit <= 0 means all.
	Entries(limit int) ([]Entry, error)
	// Reset deletes every entry.
	Reset() error
	// Close releases resources.
	Close() error
}

// Entry is one evaluated operation, written as operand text.
type Entry struct {
	Seq      int64
	Left     string
	Operator string // operator symbol, e.g. "+"
	Right    string
	Result   string
	Digest   uint64
	Ts       time.Time
}

// Expression returns the operation as a single line, e.g. "2 + 3 = 5".
func (e Entry) Expression() string {
	return e.Left + " " + e.Operator + " " + e.Right + " = " + e.Result
}

// Sum computes the digest of the entry's operation text.
func (e Entry) Sum() uint64 {
	h := xxhash.New()
	h.WriteString(strconv.FormatInt(e.Seq, 10))
	h.WriteString("\x00")
	h.WriteString(e.Expression())
	return h.Sum64()
}

// Verify reports whether the stored digest matches the entry.
func (e Entry) Verify() bool {
	return e.Digest == e.Sum()
}

// seal fills in the digest for an entry whose Seq is already assigned.
func seal(e Entry) Entry {
	e.Digest = e.Sum()
	return e
}
