// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package engine implements the calculator input state machine.
//
// Tokens are folded into the state one at a time. Binary operators are
// evaluated immediately against the stored left operand, strictly left to
// right: 2 + 3 × 4 is (2+3)×4.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log"

	"nickandperla.net/scical/internal/operand"
	"nickandperla.net/scical/internal/store"
	"nickandperla.net/scical/internal/token"
)

// ErrUnrecognized is returned by Apply for tokens the engine does not know.
// The state is left unchanged.
var ErrUnrecognized = errors.New("unrecognized input")

// Recorder receives every binary evaluation the engine performs.
type Recorder interface {
	Record(e store.Entry) (store.Entry, error)
}

// State is the complete calculator state.
type State struct {
	CurrentInput  operand.Literal
	PreviousInput operand.Literal
	Pending       token.Operator
	AwaitingFresh bool
	Shift         bool
	Alpha         bool
	Angle         token.Unit
	Memory        float64
}

// Engine owns the calculator state.
type Engine struct {
	state  State
	logger *log.Logger
	tape   Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for unrecognized input and tape failures.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTape records every evaluated operation.
func WithTape(r Recorder) Option {
	return func(e *Engine) { e.tape = r }
}

// WithAngleUnit sets the initial angle unit (default Degrees).
func WithAngleUnit(u token.Unit) Option {
	return func(e *Engine) { e.state.Angle = u }
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetTape starts recording evaluated operations to r; nil stops recording.
func (e *Engine) SetTape(r Recorder) { e.tape = r }

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State { return e.state }

// Shift reports whether the shift modifier is active.
func (e *Engine) Shift() bool { return e.state.Shift }

// Alpha reports whether the alpha modifier is active.
func (e *Engine) Alpha() bool { return e.state.Alpha }

// AngleUnit returns the current angle unit.
func (e *Engine) AngleUnit() token.Unit { return e.state.Angle }

// Memory returns the memory register.
func (e *Engine) Memory() float64 { return e.state.Memory }

// Apply folds one token into the state and returns the display string.
// Unrecognized tokens are logged and reported with ErrUnrecognized; the
// returned display is then the unchanged current display.
func (e *Engine) Apply(tok token.Token) (string, error) {
	if err := e.apply(tok); err != nil {
		e.logger.Printf("ignored: %v", err)
		return e.Display(), err
	}
	return e.Display(), nil
}

func (e *Engine) apply(tok token.Token) error {
	switch tok.Kind {
	case token.DIGIT:
		if !token.IsDigit(tok.Digit) {
			return unrecognized(tok)
		}
		e.ApplyDigit(tok.Digit)
	case token.DECIMAL:
		e.ApplyDecimalPoint()
	case token.OPERATOR:
		if !tok.Op.Valid() {
			return unrecognized(tok)
		}
		e.ApplyBinaryOperator(tok.Op)
	case token.EQUALS:
		e.ApplyEquals()
	case token.CLEAR:
		e.ClearAll()
	case token.DELETE:
		e.DeleteLastChar()
	case token.TOGGLE_SHIFT:
		e.ToggleShift()
	case token.TOGGLE_ALPHA:
		e.ToggleAlpha()
	case token.ANGLE_UNIT:
		if !tok.Unit.Valid() {
			return unrecognized(tok)
		}
		e.SetAngleUnit(tok.Unit)
	case token.TRIG:
		return e.ApplyTrigFunction(tok.Name, e.state.Shift)
	case token.FUNCTION:
		return e.ApplyUnaryFunction(tok.Name)
	case token.MEMORY:
		return e.ApplyMemory(tok.Name)
	case token.RECALL_ANSWER:
		e.RecallAnswer()
	case token.CONSTANT:
		return e.InsertConstant(tok.Name)
	case token.PAREN_OPEN:
		e.AppendParen('(')
	case token.PAREN_CLOSE:
		e.AppendParen(')')
	case token.NAV:
		e.logger.Printf("navigation %s", tok.Name)
	default:
		return unrecognized(tok)
	}
	return nil
}

func unrecognized(tok token.Token) error {
	return fmt.Errorf("%w: %s %q", ErrUnrecognized, tok.Kind, tok.String())
}

// evaluate computes op on the two operands and records the operation.
func (e *Engine) evaluate(op token.Operator, left, right operand.Literal) operand.Literal {
	result := operand.FromFloat(Compute(op, left.Value(), right.Value()))
	if e.tape != nil {
		_, err := e.tape.Record(store.Entry{
			Left:     left.String(),
			Operator: op.Symbol(),
			Right:    right.String(),
			Result:   result.String(),
		})
		if err != nil {
			e.logger.Printf("tape: %v", err)
		}
	}
	return result
}
