package engine

import (
	"fmt"
	"math"

	"nickandperla.net/scical/internal/operand"
	"nickandperla.net/scical/internal/token"
)

// ApplyDigit appends d to the current operand, or starts a new operand if
// an operator or equals was just applied. A lone "0" is replaced rather
// than extended.
func (e *Engine) ApplyDigit(d byte) {
	s := &e.state
	digit := operand.Literal(string(d))
	switch {
	case s.AwaitingFresh:
		s.CurrentInput = digit
		s.AwaitingFresh = false
	case s.CurrentInput == "0" || s.CurrentInput.IsEmpty():
		s.CurrentInput = digit
	default:
		s.CurrentInput += digit
	}
}

// ApplyDecimalPoint appends "." unless the operand already has one. On an
// empty operand this yields a bare leading ".".
func (e *Engine) ApplyDecimalPoint() {
	if e.state.CurrentInput.HasDecimalPoint() {
		return
	}
	e.state.CurrentInput += "."
}

// ApplyBinaryOperator stores the current operand as the left operand, or,
// if an operator is already pending, evaluates it first and chains on the
// result.
//
// With no left operand at all (both operands empty) the operator is not
// recorded, so a pending operator always has a left operand.
func (e *Engine) ApplyBinaryOperator(op token.Operator) {
	s := &e.state
	switch {
	case s.PreviousInput.IsEmpty():
		s.PreviousInput = s.CurrentInput
	case s.Pending != token.None:
		result := e.evaluate(s.Pending, s.PreviousInput, s.CurrentInput)
		s.CurrentInput = result
		s.PreviousInput = result
	}
	s.AwaitingFresh = true
	if s.PreviousInput.IsEmpty() {
		s.Pending = token.None
		return
	}
	s.Pending = op
}

// ApplyEquals evaluates the pending operator, if any. The fresh-operand
// flag is always set.
func (e *Engine) ApplyEquals() {
	s := &e.state
	if !s.PreviousInput.IsEmpty() && s.Pending != token.None {
		result := e.evaluate(s.Pending, s.PreviousInput, s.CurrentInput)
		s.CurrentInput = result
		s.PreviousInput = result
	}
	s.AwaitingFresh = true
	s.Pending = token.None
}

// ApplyUnaryFunction replaces the current operand with f(operand). The
// fresh-operand flag is left as it was.
func (e *Engine) ApplyUnaryFunction(name string) error {
	x := e.state.CurrentInput.Value()
	var result operand.Literal
	switch name {
	case token.FuncLn:
		result = operand.FromFloat(math.Log(x))
	case token.FuncSqrt:
		result = operand.FromFloat(math.Sqrt(x))
	case token.FuncSquare:
		result = operand.FromFloat(math.Pow(x, 2))
	case token.FuncNegate:
		result = operand.FromFloat(x * -1)
	case token.FuncExp:
		result = operand.Exponential(x, -1)
	case token.FuncFactorial:
		result = operand.FromFloat(Factorial(x))
	default:
		return fmt.Errorf("%w: function %q", ErrUnrecognized, name)
	}
	e.state.CurrentInput = result
	return nil
}

// ApplyTrigFunction applies sin, cos or tan to the current operand, or
// their inverses when inverse is set. Only Degrees converts: forward
// arguments are taken as degrees and inverse results are returned in
// degrees. Radians and Gradians both use raw radians.
func (e *Engine) ApplyTrigFunction(name string, inverse bool) error {
	x := e.state.CurrentInput.Value()
	degrees := e.state.Angle == token.Degrees

	var result float64
	if inverse {
		switch name {
		case token.TrigSin:
			result = math.Asin(x)
		case token.TrigCos:
			result = math.Acos(x)
		case token.TrigTan:
			result = math.Atan(x)
		default:
			return fmt.Errorf("%w: trig function %q", ErrUnrecognized, name)
		}
		if degrees {
			result = ToDegrees(result)
		}
	} else {
		if degrees {
			x = ToRadians(x)
		}
		switch name {
		case token.TrigSin:
			result = math.Sin(x)
		case token.TrigCos:
			result = math.Cos(x)
		case token.TrigTan:
			result = math.Tan(x)
		default:
			return fmt.Errorf("%w: trig function %q", ErrUnrecognized, name)
		}
	}
	e.state.CurrentInput = operand.FromFloat(result)
	return nil
}

// ToggleShift flips the shift modifier.
func (e *Engine) ToggleShift() { e.state.Shift = !e.state.Shift }

// ToggleAlpha flips the alpha modifier.
func (e *Engine) ToggleAlpha() { e.state.Alpha = !e.state.Alpha }

// SetAngleUnit changes the angle unit.
func (e *Engine) SetAngleUnit(u token.Unit) { e.state.Angle = u }

// ClearAll resets both operands, the pending operator and the fresh-operand
// flag. Modifiers, angle unit and memory survive.
func (e *Engine) ClearAll() {
	s := &e.state
	s.CurrentInput = ""
	s.PreviousInput = ""
	s.Pending = token.None
	s.AwaitingFresh = false
}

// DeleteLastChar drops the last character of the current operand.
func (e *Engine) DeleteLastChar() {
	s := &e.state
	if len(s.CurrentInput) > 1 {
		s.CurrentInput = s.CurrentInput[:len(s.CurrentInput)-1]
		return
	}
	s.CurrentInput = ""
}

// ApplyMemory dispatches a memory key: m+, mr or mc.
func (e *Engine) ApplyMemory(kind string) error {
	switch kind {
	case token.MemoryAdd:
		e.MemoryAdd()
	case token.MemoryRecall:
		e.MemoryRecall()
	case token.MemoryClear:
		e.state.Memory = 0
	default:
		return fmt.Errorf("%w: memory key %q", ErrUnrecognized, kind)
	}
	return nil
}

// MemoryAdd adds the current operand to memory. An unparseable operand
// poisons memory with NaN.
func (e *Engine) MemoryAdd() {
	e.state.Memory += e.state.CurrentInput.Value()
}

// MemoryRecall replaces the current operand with the memory register.
func (e *Engine) MemoryRecall() {
	e.state.CurrentInput = operand.FromFloat(e.state.Memory)
}

// RecallAnswer replaces the current operand with the previous operand,
// which holds the last result after equals.
func (e *Engine) RecallAnswer() {
	e.state.CurrentInput = e.state.PreviousInput
}

// InsertConstant replaces the current operand with a named constant. Like
// a result, the next digit starts a new operand.
func (e *Engine) InsertConstant(name string) error {
	v, ok := Constants[name]
	if !ok {
		return fmt.Errorf("%w: constant %q", ErrUnrecognized, name)
	}
	e.state.CurrentInput = operand.FromFloat(v)
	e.state.AwaitingFresh = true
	return nil
}

// AppendParen appends a literal parenthesis. Parentheses are never
// evaluated; they only make the operand text unparseable past that point.
func (e *Engine) AppendParen(p byte) {
	e.state.CurrentInput += operand.Literal(string(p))
}
