package engine

import (
	"math"
	"strings"

	"nickandperla.net/scical/internal/operand"
)

// MaxDisplayLen is the widest display in characters.
const MaxDisplayLen = 99

// Display returns the display string for the current operand.
func (e *Engine) Display() string {
	return FormatForDisplay(e.state.CurrentInput)
}

// Degenerate reports whether the display shows NaN or an infinity.
func (e *Engine) Degenerate() bool {
	s := string(e.state.CurrentInput)
	return strings.Contains(s, "NaN") || strings.Contains(s, "Infinity")
}

// FormatForDisplay renders operand text. The empty operand renders as ""
// and is left to the renderer (a cursor). Magnitudes of 1e99 and above,
// and nonzero magnitudes below 1e-99 whose text is too wide, switch to
// exponent form with six fractional digits; anything else is shown as
// typed, cut to MaxDisplayLen.
func FormatForDisplay(lit operand.Literal) string {
	if lit.IsEmpty() {
		return ""
	}
	v := lit.Value()
	abs := math.Abs(v)
	if abs >= 1e99 || (abs < 1e-99 && v != 0 && len(lit) > MaxDisplayLen) {
		return string(operand.Exponential(v, 6))
	}
	s := string(lit)
	if len(s) > MaxDisplayLen {
		s = s[:MaxDisplayLen]
	}
	return s
}
