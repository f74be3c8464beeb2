package scanner

import (
	"strings"

	"nickandperla.net/scical/internal/token"
)

// keyNames maps key names to tokens. Names are matched case-insensitively.
// The long hyphenated names are the button names of the keypad layout.
var keyNames = map[string]token.Token{
	".":       token.Decimal(),
	"decimal": token.Decimal(),

	"+":        token.Op(token.Add),
	"add":      token.Op(token.Add),
	"-":        token.Op(token.Subtract),
	"subtract": token.Op(token.Subtract),
	"*":        token.Op(token.Multiply),
	"x":        token.Op(token.Multiply),
	"×":        token.Op(token.Multiply),
	"multiply": token.Op(token.Multiply),
	"/":        token.Op(token.Divide),
	"÷":        token.Op(token.Divide),
	"divide":   token.Op(token.Divide),
	"^":        token.Op(token.Power),
	"power":    token.Op(token.Power),
	"ncr":      token.Op(token.Combination),
	"npr":      token.Op(token.Permutation),

	"=":      token.Equals(),
	"equals": token.Equals(),
	"enter":  token.Equals(),

	"ac":     token.Clear(),
	"clear":  token.Clear(),
	"escape": token.Clear(),
	"esc":    token.Clear(),

	"del":       token.Delete(),
	"delete":    token.Delete(),
	"backspace": token.Delete(),

	"shift": token.ToggleShift(),
	"alpha": token.ToggleAlpha(),

	"deg":      token.SetAngleUnit(token.Degrees),
	"degrees":  token.SetAngleUnit(token.Degrees),
	"rad":      token.SetAngleUnit(token.Radians),
	"radians":  token.SetAngleUnit(token.Radians),
	"gra":      token.SetAngleUnit(token.Gradians),
	"grad":     token.SetAngleUnit(token.Gradians),
	"gradians": token.SetAngleUnit(token.Gradians),

	"sin": token.Trig(token.TrigSin),
	"cos": token.Trig(token.TrigCos),
	"tan": token.Trig(token.TrigTan),

	"ln":        token.Func(token.FuncLn),
	"sqrt":      token.Func(token.FuncSqrt),
	"√":         token.Func(token.FuncSqrt),
	"square":    token.Func(token.FuncSquare),
	"sq":        token.Func(token.FuncSquare),
	"x-power-y": token.Func(token.FuncSquare),
	"neg":       token.Func(token.FuncNegate),
	"negate":    token.Func(token.FuncNegate),
	"exp":       token.Func(token.FuncExp),
	"fact":      token.Func(token.FuncFactorial),
	"!":         token.Func(token.FuncFactorial),

	"m+":    token.Memory(token.MemoryAdd),
	"s-sum": token.Memory(token.MemoryAdd),
	"mr":    token.Memory(token.MemoryRecall),
	"mc":    token.Memory(token.MemoryClear),

	"ans": token.RecallAnswer(),

	"pi":    token.Const(token.ConstPi),
	"π":     token.Const(token.ConstPi),
	"e":     token.Const(token.ConstE),
	"phi":   token.Const(token.ConstPhi),
	"gamma": token.Const(token.ConstEulerGamma),

	"(":                 token.ParenOpen(),
	"parenthesis-open":  token.ParenOpen(),
	")":                 token.ParenClose(),
	"parenthesis-close": token.ParenClose(),

	"nav-up":    token.Nav("up"),
	"nav-down":  token.Nav("down"),
	"nav-left":  token.Nav("left"),
	"nav-right": token.Nav("right"),
}

// Lookup returns the token for a key name. Single digits are keys too.
func Lookup(name string) (token.Token, bool) {
	if len(name) == 1 && token.IsDigit(name[0]) {
		return token.Digit(name[0]), true
	}
	tok, ok := keyNames[strings.ToLower(name)]
	return tok, ok
}

// keystrokes maps single bytes typed on the keypad REPL to tokens.
// Escape sequences (arrows, bare ESC) are decoded by the terminal reader.
var keystrokes = map[byte]token.Token{
	'.':  token.Decimal(),
	'+':  token.Op(token.Add),
	'-':  token.Op(token.Subtract),
	'*':  token.Op(token.Multiply),
	'x':  token.Op(token.Multiply),
	'/':  token.Op(token.Divide),
	'^':  token.Op(token.Power),
	'=':  token.Equals(),
	'\r': token.Equals(),
	'\n': token.Equals(),
	0x7f: token.Delete(),
	0x08: token.Delete(),
	'(':  token.ParenOpen(),
	')':  token.ParenClose(),
	'!':  token.Func(token.FuncFactorial),

	'S': token.ToggleShift(),
	'A': token.ToggleAlpha(),
	'C': token.Clear(),
	's': token.Trig(token.TrigSin),
	'c': token.Trig(token.TrigCos),
	't': token.Trig(token.TrigTan),
	'l': token.Func(token.FuncLn),
	'q': token.Func(token.FuncSqrt),
	'w': token.Func(token.FuncSquare),
	'n': token.Func(token.FuncNegate),
	'E': token.Func(token.FuncExp),
	'M': token.Memory(token.MemoryAdd),
	'R': token.Memory(token.MemoryRecall),
	'a': token.RecallAnswer(),
	'p': token.Const(token.ConstPi),
	'e': token.Const(token.ConstE),
	'D': token.SetAngleUnit(token.Degrees),
	'r': token.SetAngleUnit(token.Radians),
	'g': token.SetAngleUnit(token.Gradians),
}

// Keystroke returns the token for a single keypad byte.
func Keystroke(b byte) (token.Token, bool) {
	if token.IsDigit(b) {
		return token.Digit(b), true
	}
	tok, ok := keystrokes[b]
	return tok, ok
}

// KeystrokeHelp lists the keypad bindings for the REPL banner.
const KeystrokeHelp = `  0-9 .  digits      + - * x / ^  operators   = Enter  equals
  Backspace  delete   Esc C  clear            S shift   A alpha
  s c t  sin cos tan  l ln  q sqrt  w x²  n ±  E exp  ! n!
  M m+  R mr  a ans   p π  e e                D r g  deg rad gra
  ( )  literal parens   arrows  navigation    Ctrl+D quit`
