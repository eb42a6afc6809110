package textmetrics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < epsilon }

func TestMeasure(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fontSize float64
		bold     bool
		want     float64
	}{
		{"empty", "", 16, false, 0},
		{"empty bold", "", 16, true, 0},
		{"calibration size", "x", 80, false, 50},
		{"bold calibration size", "x", 75, true, 50},
		{"space", " ", 16, false, 5},
		{"mixed", "Ab", 16, false, (72.21875 + 50) * 16 / 80},
		{"bold mixed", "Ab", 16, true, (72.21875 + 55.6171875) * 16 / 75},
		{"unknown rune uses x", "€", 80, false, 50},
		{"control characters skipped", "a\tb\x01", 80, false, 44.390625 + 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Measure(tt.text, tt.fontSize, tt.bold)
			if !almostEqual(got, tt.want) {
				t.Errorf("Measure(%q, %v, %v) = %v, want %v", tt.text, tt.fontSize, tt.bold, got, tt.want)
			}
		})
	}
}

func TestMeasureDeterministic(t *testing.T) {
	inputs := []string{"Martin", "Elisa Müller", "- One more thing…", "日本語"}
	for _, in := range inputs {
		a := Measure(in, 16, true)
		b := Measure(in, 16, true)
		if a != b {
			t.Errorf("Measure(%q) not deterministic: %v != %v", in, a, b)
		}
	}
}

func TestMeasureDiacritics(t *testing.T) {
	tests := []struct {
		accented string
		base     string
	}{
		{"é", "e"},
		{"Müller", "Muller"},
		{"Ångström", "Angstrom"},
		{"façade", "facade"},
	}

	for _, tt := range tests {
		t.Run(tt.accented, func(t *testing.T) {
			got := Measure(tt.accented, 16, false)
			want := Measure(tt.base, 16, false)
			if !almostEqual(got, want) {
				t.Errorf("Measure(%q) = %v, want %v (same as %q)", tt.accented, got, want, tt.base)
			}
		})
	}
}

func TestMeasureBoldIsWider(t *testing.T) {
	text := "Customer"
	if Measure(text, 16, true) <= Measure(text, 16, false) {
		t.Error("bold text should measure wider than regular text")
	}
}

func TestMeasureScalesLinearly(t *testing.T) {
	small := Measure("Agenda", 10, false)
	large := Measure("Agenda", 20, false)
	if !almostEqual(large, 2*small) {
		t.Errorf("Measure at 20px = %v, want twice %v", large, small)
	}
}
