package operand

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"123", 123},
		{"1.20", 1.2},
		{"007", 7},
		{".5", 0.5},
		{"5.", 5},
		{"-3.25", -3.25},
		{"  42", 42},
		{"1e3", 1000},
		{"1e", 1},
		{"2e-2x", 0.02},
		{"12(", 12},
		{"3)", 3},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseNaN(t *testing.T) {
	for _, in := range []string{"", ".", "-", "(5", "NaN", "abc", "Inf", "e5"} {
		if got := Parse(in); !math.IsNaN(got) {
			t.Errorf("Parse(%q) = %v, want NaN", in, got)
		}
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want Literal
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{5, "5"},
		{-5, "-5"},
		{20, "20"},
		{0.5, "0.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1.2, "1.2"},
		{123456789, "123456789"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e21, "1.5e+21"},
		{0.000001, "0.000001"},
		{0.0000015, "0.0000015"},
		{1e-7, "1e-7"},
		{-1.5e-7, "-1.5e-7"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		if got := FromFloat(tt.in); got != tt.want {
			t.Errorf("FromFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromFloatRoundTrip(t *testing.T) {
	for _, v := range []float64{1.0 / 3, math.Pi, -2.5e-300, 6.02214076e23, 1e99} {
		if got := Parse(string(FromFloat(v))); got != v {
			t.Errorf("round trip of %v gave %v", v, got)
		}
	}
}

func TestExponential(t *testing.T) {
	tests := []struct {
		in     float64
		digits int
		want   Literal
	}{
		{1e99, 6, "1.000000e+99"},
		{-2.5e-120, 6, "-2.500000e-120"},
		{12345, -1, "1.2345e+4"},
		{5, -1, "5e+0"},
		{0, -1, "0e+0"},
		{math.Copysign(0, -1), 6, "0.000000e+0"},
		{0.00015, -1, "1.5e-4"},
		{math.Inf(1), 6, "Infinity"},
		{math.NaN(), -1, "NaN"},
	}
	for _, tt := range tests {
		if got := Exponential(tt.in, tt.digits); got != tt.want {
			t.Errorf("Exponential(%v, %d) = %q, want %q", tt.in, tt.digits, got, tt.want)
		}
	}
}

func TestLiteral(t *testing.T) {
	var l Literal
	if !l.IsEmpty() || l.HasDecimalPoint() {
		t.Fatal("zero literal should be empty without a decimal point")
	}
	l = "1.20"
	if !l.HasDecimalPoint() || l.Value() != 1.2 || l.String() != "1.20" {
		t.Errorf("unexpected literal behaviour for %q", l)
	}
}
