package geometry

import "strings"

// Origin names the point of a box that is placed at the reference coordinate.
type Origin string

// The nine box anchors.
const (
	TopLeft      Origin = "top left"
	TopCenter    Origin = "top center"
	TopRight     Origin = "top right"
	CenterLeft   Origin = "center left"
	Center       Origin = "center"
	CenterRight  Origin = "center right"
	BottomLeft   Origin = "bottom left"
	BottomCenter Origin = "bottom center"
	BottomRight  Origin = "bottom right"
)

// Box is a resolved box position together with the origin of its text.
type Box struct {
	X, Y          float64 // top-left corner of the box
	Width, Height float64
	TextX, TextY  float64 // top-left corner of the text area
}

// ResolveOrigin computes the top-left corner of a width×height box whose
// origin anchor coincides with (x, y). The text origin is the box corner
// offset by the left and top padding. An empty origin means TopLeft.
func ResolveOrigin(origin Origin, x, y float64, pad Padding, width, height float64) Box {
	o := strings.TrimSpace(string(origin))
	b := Box{X: x, Y: y, Width: width, Height: height}

	if strings.Contains(o, "right") {
		b.X = x - width
	}
	if strings.HasSuffix(o, "center") {
		b.X = x - width/2
	}
	if strings.Contains(o, "bottom") {
		b.Y = y - height
	}
	if strings.HasPrefix(o, "center") {
		b.Y = y - height/2
	}

	b.TextX = b.X + pad.Left
	b.TextY = b.Y + pad.Top
	return b
}
