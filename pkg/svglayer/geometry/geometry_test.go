package geometry

import (
	"testing"

	"github.com/matzehuels/svglayer/pkg/errors"
)

func TestParsePadding(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Padding
	}{
		{"none", nil, Padding{}},
		{"one", []float64{10}, Padding{10, 10, 10, 10}},
		{"two", []float64{10, 20}, Padding{10, 20, 10, 20}},
		{"three", []float64{1, 2, 3}, Padding{1, 2, 3, 2}},
		{"four", []float64{1, 2, 3, 4}, Padding{1, 2, 3, 4}},
		{"extra values ignored", []float64{1, 2, 3, 4, 5, 6}, Padding{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePadding(tt.values...); got != tt.want {
				t.Errorf("ParsePadding(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}
}

func TestUniform(t *testing.T) {
	if got := Uniform(7); got != ParsePadding(7) {
		t.Errorf("Uniform(7) = %+v, want %+v", got, ParsePadding(7))
	}
}

func TestParsePaddingString(t *testing.T) {
	tests := []struct {
		input   string
		want    Padding
		wantErr bool
	}{
		{"10", Padding{10, 10, 10, 10}, false},
		{"7 10", Padding{7, 10, 7, 10}, false},
		{"  1   2 3  ", Padding{1, 2, 3, 2}, false},
		{"1 2 3 4", Padding{1, 2, 3, 4}, false},
		{"", Padding{}, false},
		{"1 x", Padding{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePaddingString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePaddingString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("expected INVALID_INPUT, got %v", errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePaddingString(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPaddingSums(t *testing.T) {
	p := ParsePadding(1, 2, 3, 4)
	if p.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", p.Horizontal())
	}
	if p.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", p.Vertical())
	}
}

func TestResolveOrigin(t *testing.T) {
	const (
		x, y = 100.0, 200.0
		w, h = 40.0, 20.0
	)
	pad := ParsePadding(2, 3)

	tests := []struct {
		origin       Origin
		wantX, wantY float64
	}{
		{"", 100, 200},
		{TopLeft, 100, 200},
		{TopCenter, 80, 200},
		{TopRight, 60, 200},
		{CenterLeft, 100, 190},
		{Center, 80, 190},
		{CenterRight, 60, 190},
		{BottomLeft, 100, 180},
		{BottomCenter, 80, 180},
		{BottomRight, 60, 180},
		{" bottom right ", 60, 180},
	}

	for _, tt := range tests {
		t.Run(string(tt.origin), func(t *testing.T) {
			b := ResolveOrigin(tt.origin, x, y, pad, w, h)
			if b.X != tt.wantX || b.Y != tt.wantY {
				t.Errorf("box = (%v, %v), want (%v, %v)", b.X, b.Y, tt.wantX, tt.wantY)
			}
			if b.TextX != b.X+pad.Left || b.TextY != b.Y+pad.Top {
				t.Errorf("text = (%v, %v), want box offset by padding (%v, %v)", b.TextX, b.TextY, b.X+pad.Left, b.Y+pad.Top)
			}
			if b.Width != w || b.Height != h {
				t.Errorf("size = %vx%v, want %vx%v", b.Width, b.Height, w, h)
			}
		})
	}
}

func TestAlignX(t *testing.T) {
	tests := []struct {
		anchor TextAnchor
		want   float64
	}{
		{"", 10},
		{AnchorStart, 10},
		{AnchorMiddle, 60},
		{"center", 60},
		{AnchorEnd, 110},
		{"right", 110},
	}

	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			if got := AlignX(tt.anchor, 10, 100); got != tt.want {
				t.Errorf("AlignX(%q) = %v, want %v", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestTextAnchorNormalize(t *testing.T) {
	tests := map[TextAnchor]TextAnchor{
		"":       AnchorStart,
		"left":   AnchorStart,
		"start":  AnchorStart,
		"center": AnchorMiddle,
		"middle": AnchorMiddle,
		"right":  AnchorEnd,
		"end":    AnchorEnd,
	}
	for in, want := range tests {
		if got := in.Normalize(); got != want {
			t.Errorf("%q.Normalize() = %q, want %q", in, got, want)
		}
	}
}
