// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines calculator input tokens.
package token

import "strings"

// Kind is the kind of a calculator input token.
type Kind int

const (
	UNKNOWN Kind = iota
	DIGIT
	DECIMAL
	OPERATOR
	EQUALS
	CLEAR
	DELETE
	TOGGLE_SHIFT
	TOGGLE_ALPHA
	ANGLE_UNIT
	TRIG
	FUNCTION
	MEMORY
	RECALL_ANSWER
	CONSTANT
	PAREN_OPEN
	PAREN_CLOSE
	NAV
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case UNKNOWN:
		return "UNKNOWN"
	case DIGIT:
		return "DIGIT"
	case DECIMAL:
		return "DECIMAL"
	case OPERATOR:
		return "OPERATOR"
	case EQUALS:
		return "EQUALS"
	case CLEAR:
		return "CLEAR"
	case DELETE:
		return "DELETE"
	case TOGGLE_SHIFT:
		return "TOGGLE_SHIFT"
	case TOGGLE_ALPHA:
		return "TOGGLE_ALPHA"
	case ANGLE_UNIT:
		return "ANGLE_UNIT"
	case TRIG:
		return "TRIG"
	case FUNCTION:
		return "FUNCTION"
	case MEMORY:
		return "MEMORY"
	case RECALL_ANSWER:
		return "RECALL_ANSWER"
	case CONSTANT:
		return "CONSTANT"
	case PAREN_OPEN:
		return "PAREN_OPEN"
	case PAREN_CLOSE:
		return "PAREN_CLOSE"
	case NAV:
		return "NAV"
	}
	return "INVALID"
}

// Operator is a binary operator tag. None means no operator is pending.
type Operator int

const (
	None Operator = iota
	Add
	Subtract
	Multiply
	Divide
	Power
	Combination
	Permutation
)

var operatorNames = [...]string{
	None:        "none",
	Add:         "add",
	Subtract:    "subtract",
	Multiply:    "multiply",
	Divide:      "divide",
	Power:       "power",
	Combination: "ncr",
	Permutation: "npr",
}

var operatorSymbols = [...]string{
	None:        "",
	Add:         "+",
	Subtract:    "-",
	Multiply:    "×",
	Divide:      "÷",
	Power:       "^",
	Combination: "C",
	Permutation: "P",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return "invalid"
	}
	return operatorNames[o]
}

// Valid reports whether o is a real binary operator (not None).
func (o Operator) Valid() bool {
	return o > None && int(o) < len(operatorNames)
}

// Symbol returns the infix symbol used when an operation is written out.
func (o Operator) Symbol() string {
	if o < 0 || int(o) >= len(operatorSymbols) {
		return "?"
	}
	return operatorSymbols[o]
}

// ParseOperator parses an operator name (add, subtract, ...).
func ParseOperator(s string) (Operator, bool) {
	s = strings.ToLower(s)
	for i, name := range operatorNames {
		if i != int(None) && name == s {
			return Operator(i), true
		}
	}
	return None, false
}

// Unit is an angle unit.
type Unit int

const (
	Degrees Unit = iota
	Radians
	Gradians
)

func (u Unit) String() string {
	switch u {
	case Degrees:
		return "DEG"
	case Radians:
		return "RAD"
	case Gradians:
		return "GRA"
	}
	return "INVALID"
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	return u >= Degrees && u <= Gradians
}

// ParseUnit accepts deg/rad/gra and their long forms, case-insensitively.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(s) {
	case "deg", "degrees":
		return Degrees, true
	case "rad", "radians":
		return Radians, true
	case "gra", "grad", "gradians":
		return Gradians, true
	}
	return Degrees, false
}

// Function names accepted by FUNCTION tokens.
const (
	FuncLn        = "ln"
	FuncSqrt      = "sqrt"
	FuncSquare    = "square"
	FuncNegate    = "negate"
	FuncExp       = "exp"
	FuncFactorial = "fact"
)

// Trig names accepted by TRIG tokens.
const (
	TrigSin = "sin"
	TrigCos = "cos"
	TrigTan = "tan"
)

// Memory kinds accepted by MEMORY tokens.
const (
	MemoryAdd    = "m+"
	MemoryRecall = "mr"
	MemoryClear  = "mc"
)

// Constant names accepted by CONSTANT tokens.
const (
	ConstPi         = "pi"
	ConstE          = "e"
	ConstPhi        = "phi"
	ConstEulerGamma = "gamma"
)

// Token is one discrete unit of calculator input.
type Token struct {
	Kind  Kind
	Digit byte     // DIGIT: '0'..'9'
	Op    Operator // OPERATOR
	Unit  Unit     // ANGLE_UNIT
	Name  string   // TRIG, FUNCTION, MEMORY, CONSTANT, NAV; raw text for UNKNOWN
}

// Constructors for each token kind.
func Digit(d byte) Token        { return Token{Kind: DIGIT, Digit: d} }
func Decimal() Token            { return Token{Kind: DECIMAL} }
func Op(op Operator) Token      { return Token{Kind: OPERATOR, Op: op} }
func Equals() Token             { return Token{Kind: EQUALS} }
func Clear() Token              { return Token{Kind: CLEAR} }
func Delete() Token             { return Token{Kind: DELETE} }
func ToggleShift() Token        { return Token{Kind: TOGGLE_SHIFT} }
func ToggleAlpha() Token        { return Token{Kind: TOGGLE_ALPHA} }
func SetAngleUnit(u Unit) Token { return Token{Kind: ANGLE_UNIT, Unit: u} }
func Trig(name string) Token    { return Token{Kind: TRIG, Name: name} }
func Func(name string) Token    { return Token{Kind: FUNCTION, Name: name} }
func Memory(kind string) Token  { return Token{Kind: MEMORY, Name: kind} }
func RecallAnswer() Token       { return Token{Kind: RECALL_ANSWER} }
func Const(name string) Token   { return Token{Kind: CONSTANT, Name: name} }
func ParenOpen() Token          { return Token{Kind: PAREN_OPEN} }
func ParenClose() Token         { return Token{Kind: PAREN_CLOSE} }
func Nav(dir string) Token      { return Token{Kind: NAV, Name: dir} }
func Unknown(raw string) Token  { return Token{Kind: UNKNOWN, Name: raw} }

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// String returns the key name of the token, as accepted by the scanner.
func (t Token) String() string {
	switch t.Kind {
	case DIGIT:
		return string(t.Digit)
	case DECIMAL:
		return "."
	case OPERATOR:
		return t.Op.String()
	case EQUALS:
		return "="
	case CLEAR:
		return "ac"
	case DELETE:
		return "del"
	case TOGGLE_SHIFT:
		return "shift"
	case TOGGLE_ALPHA:
		return "alpha"
	case ANGLE_UNIT:
		return strings.ToLower(t.Unit.String())
	case RECALL_ANSWER:
		return "ans"
	case PAREN_OPEN:
		return "("
	case PAREN_CLOSE:
		return ")"
	case NAV:
		return "nav-" + t.Name
	}
	return t.Name
}
