package scanner

import (
	"strings"
	"testing"

	"nickandperla.net/scical/internal/token"
)

func scanAll(t *testing.T, src string) []*Item {
	t.Helper()
	items, err := NewFromString(src).All()
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	return items
}

func names(items []*Item) string {
	var parts []string
	for _, it := range items {
		parts = append(parts, it.Token.String())
	}
	return strings.Join(parts, " ")
}

func TestScanWords(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 2 3", "1 2 3"},
		{"123", "1 2 3"},
		{"12.5+3=", "1 2 . 5 add 3 ="},
		{"2 + 3 x 4 enter", "2 add 3 multiply 4 ="},
		{"2×3÷4", "2 multiply 3 divide 4"},
		{"30sin", "3 0 sin"},
		{"shift 0.5 sin", "shift 0 . 5 sin"},
		{"rad π cos", "rad pi cos"},
		{"4 m+ mr mc", "4 m+ mr mc"},
		{"4m+", "4 m+"},
		{"s-sum x-power-y", "m+ square"},
		{"(5) ans", "( 5 ) ans"},
		{"5 ncr 2 =", "5 ncr 2 ="},
		{"ESC Backspace Delete", "ac del del"},
		{"nav-up nav-left", "nav-up nav-left"},
		{"5!", "5 fact"},
		{"gra deg", "gra deg"},
		{"2xpi=", "2 multiply pi ="},
		{"pix2", "pi multiply 2"},
		{"3xe=", "3 multiply e ="},
		{"exp", "exp"},
	}
	for _, tt := range tests {
		if got := names(scanAll(t, tt.src)); got != tt.want {
			t.Errorf("scan(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestScanUnknown(t *testing.T) {
	items := scanAll(t, "2 foo 3 @")
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if items[1].Token.Kind != token.UNKNOWN || items[1].Value != "foo" {
		t.Errorf("expected unknown 'foo', got %+v", items[1])
	}
	if items[3].Token.Kind != token.UNKNOWN || items[3].Value != "@" {
		t.Errorf("expected unknown '@', got %+v", items[3])
	}
}

func TestScanSplitsUnknownLetters(t *testing.T) {
	items := Split("2hex", 1)
	if got := names(items); got != "2 h e multiply" {
		t.Fatalf("expected '2 h e multiply', got %q", got)
	}
	if items[1].Token.Kind != token.UNKNOWN || items[1].Value != "h" {
		t.Errorf("expected unknown 'h', got %+v", items[1])
	}

	items = Split("plus", 1)
	if len(items) != 1 || items[0].Token.Kind != token.UNKNOWN || items[0].Value != "plus" {
		t.Errorf("expected one unknown 'plus', got %+v", items)
	}
}

func TestScanCommentsAndLines(t *testing.T) {
	src := "# header\n2 + # inline\n3\n\n=# trailing"
	items := scanAll(t, src)
	if got := names(items); got != "2 add 3 =" {
		t.Fatalf("expected '2 add 3 =', got %q", got)
	}
	wantLines := []int{2, 2, 3, 5}
	for i, it := range items {
		if it.Line != wantLines[i] {
			t.Errorf("item %d (%s): expected line %d, got %d", i, it.Value, wantLines[i], it.Line)
		}
	}
}

func TestScanEmpty(t *testing.T) {
	if items := scanAll(t, "  \n # nothing\n"); len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestLookup(t *testing.T) {
	if tok, ok := Lookup("SIN"); !ok || tok.Kind != token.TRIG {
		t.Errorf("expected case-insensitive trig lookup, got %+v %v", tok, ok)
	}
	if tok, ok := Lookup("7"); !ok || tok.Digit != '7' {
		t.Errorf("expected digit lookup, got %+v %v", tok, ok)
	}
	if _, ok := Lookup("77"); ok {
		t.Error("multi-digit words are not keys")
	}
}

func TestKeystroke(t *testing.T) {
	tests := []struct {
		b    byte
		want string
	}{
		{'5', "5"},
		{'.', "."},
		{'x', "multiply"},
		{'\r', "="},
		{0x7f, "del"},
		{'s', "sin"},
		{'S', "shift"},
		{'p', "pi"},
		{'g', "gra"},
	}
	for _, tt := range tests {
		tok, ok := Keystroke(tt.b)
		if !ok || tok.String() != tt.want {
			t.Errorf("Keystroke(%q) = %s, %v; want %s", tt.b, tok, ok, tt.want)
		}
	}
	if _, ok := Keystroke('z'); ok {
		t.Error("expected 'z' to be unbound")
	}
}
