package geometry

import (
	"strconv"
	"strings"

	"github.com/matzehuels/svglayer/pkg/errors"
)

// Padding is the inner spacing of a box, in pixels.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns a Padding with v on all four sides.
func Uniform(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// ParsePadding expands CSS shorthand notation:
//
//	1 value:  all sides
//	2 values: vertical, horizontal
//	3 values: top, horizontal, bottom
//	4 values: top, right, bottom, left (extra values are ignored)
//
// No values yields zero padding.
func ParsePadding(values ...float64) Padding {
	switch n := len(values); {
	case n == 0:
		return Padding{}
	case n == 1:
		return Uniform(values[0])
	case n == 2:
		return Padding{Top: values[0], Right: values[1], Bottom: values[0], Left: values[1]}
	case n == 3:
		return Padding{Top: values[0], Right: values[1], Bottom: values[2], Left: values[1]}
	default:
		return Padding{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}
	}
}

// ParsePaddingString parses a space-delimited shorthand such as "7 10".
func ParsePaddingString(s string) (Padding, error) {
	fields := strings.Fields(s)
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Padding{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid padding value %q", f)
		}
		values = append(values, v)
	}
	return ParsePadding(values...), nil
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }
