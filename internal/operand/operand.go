// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package operand defines the literal text form of calculator operands and
// its conversions to and from float64.
//
// A Literal holds exactly what was typed ("1.20", "007", "3("), so the
// display never renormalises in-progress input. Numbers only exist while an
// operation is being evaluated.
package operand

import (
	"math"
	"strconv"
	"strings"
)

// Literal is operand text as accumulated from keystrokes or produced by
// an evaluation. The empty Literal means "no operand".
type Literal string

// IsEmpty returns true if no characters have been entered.
func (l Literal) IsEmpty() bool { return l == "" }

// HasDecimalPoint returns true if the literal already contains a '.'.
func (l Literal) HasDecimalPoint() bool { return strings.IndexByte(string(l), '.') >= 0 }

// Value parses the literal. See Parse.
func (l Literal) Value() float64 { return Parse(string(l)) }

func (l Literal) String() string { return string(l) }

// Parse returns the value of the longest numeric prefix of s, ignoring
// leading whitespace. A prefix may be a signed decimal with optional
// fraction and exponent, or a signed "Infinity". If no prefix parses,
// Parse returns NaN; it never fails.
func Parse(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	n := numericPrefix(s)
	if n == 0 {
		return math.NaN()
	}
	prefix := s[:n]
	switch strings.TrimLeft(prefix, "+-") {
	case "Infinity":
		if prefix[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// Out of range values come back as ±Inf or ±0 along with ErrRange,
	// which is the value we want.
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}

// numericPrefix returns the length of the longest prefix of s that is a
// decimal literal, or 0.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return i + len("Infinity")
	}

	intDigits := countDigits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	// Exponent only counts if at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if d := countDigits(s[j:]); d > 0 {
			i = j + d
		}
	}
	return i
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// FromFloat returns the shortest text that parses back to v. Magnitudes in
// [1e-6, 1e21) are written in plain decimal, everything else in exponent
// form ("1e+21", "1.5e-7"). NaN and infinities are "NaN", "Infinity" and
// "-Infinity"; negative zero is "0".
func FromFloat(v float64) Literal {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits, exp := shortestDigits(v)
	k := len(digits)
	n := exp + 1 // position of the decimal point relative to digits

	var sb strings.Builder
	sb.WriteString(sign)
	switch {
	case k <= n && n <= 21:
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		sb.WriteString(digits[:n])
		sb.WriteByte('.')
		sb.WriteString(digits[n:])
	case -6 < n && n <= 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -n))
		sb.WriteString(digits)
	default:
		sb.WriteByte(digits[0])
		if k > 1 {
			sb.WriteByte('.')
			sb.WriteString(digits[1:])
		}
		sb.WriteString(exponentSuffix(n - 1))
	}
	return Literal(sb.String())
}

// shortestDigits returns the shortest round-trip significant digits of a
// positive finite v and the decimal exponent of the first digit.
func shortestDigits(v float64) (string, int) {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, expStr, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expStr)
	return strings.Replace(mant, ".", "", 1), exp
}

func exponentSuffix(e int) string {
	if e < 0 {
		return "e-" + strconv.Itoa(-e)
	}
	return "e+" + strconv.Itoa(e)
}

// Exponential formats v in exponent notation with the given number of
// fractional digits in the mantissa. A negative digits value uses as many
// digits as needed to represent v exactly. The exponent is written without
// zero padding ("1.500000e+0").
func Exponential(v float64, digits int) Literal {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	if digits > 100 {
		digits = 100
	}
	s := strconv.FormatFloat(v, 'e', digits, 64)
	mant, expStr, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expStr)
	return Literal(mant + exponentSuffix(exp))
}
