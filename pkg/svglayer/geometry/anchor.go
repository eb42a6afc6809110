package geometry

// TextAnchor is the horizontal alignment of text relative to its x coordinate.
type TextAnchor string

const (
	AnchorStart  TextAnchor = "start"
	AnchorMiddle TextAnchor = "middle"
	AnchorEnd    TextAnchor = "end"
)

// Normalize maps the CSS-style aliases "center" and "right" onto their SVG
// equivalents and the empty anchor onto AnchorStart.
func (a TextAnchor) Normalize() TextAnchor {
	switch a {
	case "", "left":
		return AnchorStart
	case "center":
		return AnchorMiddle
	case "right":
		return AnchorEnd
	}
	return a
}

// AlignX returns the x coordinate at which text anchored with a must start
// so that it aligns within [x, x+width].
func AlignX(a TextAnchor, x, width float64) float64 {
	switch a.Normalize() {
	case AnchorEnd:
		return x + width
	case AnchorMiddle:
		return x + width/2
	}
	return x
}
