package svglayer

import (
	"fmt"
	"slices"

	"github.com/matzehuels/svglayer/pkg/errors"
	"github.com/matzehuels/svglayer/pkg/svglayer/geometry"
	"github.com/matzehuels/svglayer/pkg/svglayer/textmetrics"
)

// Canvas dimensions.
const (
	CanvasWidth          = 1280
	CanvasHeight         = 720
	CanvasHeightStandard = 960
)

const (
	defaultIDSize    = 6
	maxIDAttempts    = 8
	defaultLineWidth = 1.0
	fallbackIDBase   = "d"
)

// Layer accumulates definitions and drawables and serializes them into one
// SVG document. A Layer is not safe for concurrent use.
type Layer struct {
	width, height int

	ids     IDGenerator
	usedIDs map[string]struct{}

	defs      []Definition
	drawables []Drawable
}

// Option configures a Layer.
type Option func(*Layer)

// WithWidescreen selects a 16:9 (true, the default) or 4:3 canvas.
func WithWidescreen(widescreen bool) Option {
	return func(l *Layer) {
		l.height = CanvasHeightStandard
		if widescreen {
			l.height = CanvasHeight
		}
	}
}

// WithIDGenerator sets the generator for gradient and filter ids.
// The default is RandomIDs(6).
func WithIDGenerator(g IDGenerator) Option {
	return func(l *Layer) {
		if g != nil {
			l.ids = g
		}
	}
}

// New creates an empty layer.
func New(opts ...Option) *Layer {
	l := &Layer{
		width:   CanvasWidth,
		height:  CanvasHeight,
		ids:     RandomIDs(defaultIDSize),
		usedIDs: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Width returns the canvas width in pixels.
func (l *Layer) Width() int { return l.width }

// Height returns the canvas height in pixels.
func (l *Layer) Height() int { return l.height }

// Definitions returns the registered gradients and filters in order.
func (l *Layer) Definitions() []Definition { return slices.Clone(l.defs) }

// Drawables returns the drawables in paint order.
func (l *Layer) Drawables() []Drawable { return slices.Clone(l.drawables) }

// MeasureText returns the approximate width of text in pixels.
func (l *Layer) MeasureText(text string, fontSize float64, bold bool) float64 {
	return textmetrics.Measure(text, fontSize, bold)
}

// Clear discards all definitions and drawables. Canvas size is unchanged.
func (l *Layer) Clear() {
	l.defs = nil
	l.drawables = nil
	l.usedIDs = make(map[string]struct{})
	if r, ok := l.ids.(resetter); ok {
		r.Reset()
	}
}

func (l *Layer) nextID() string {
	var candidate string
	for i := 0; i < maxIDAttempts; i++ {
		candidate = l.ids.NextID()
		if l.claimID(candidate) {
			return candidate
		}
	}
	if candidate == "" {
		candidate = fallbackIDBase
	}
	for i := 1; ; i++ {
		id := fmt.Sprintf("%s-%d", candidate, i)
		if l.claimID(id) {
			return id
		}
	}
}

func (l *Layer) claimID(id string) bool {
	if id == "" {
		return false
	}
	if _, taken := l.usedIDs[id]; taken {
		return false
	}
	l.usedIDs[id] = struct{}{}
	return true
}

func (l *Layer) add(d Drawable) {
	l.drawables = append(l.drawables, d)
}

func orLineWidth(v float64) float64 {
	if v == 0 {
		return defaultLineWidth
	}
	return v
}

func orOrigin(o geometry.Origin) geometry.Origin {
	if o == "" {
		return geometry.TopLeft
	}
	return o
}

func orAnchor(a geometry.TextAnchor) geometry.TextAnchor {
	if a == "" {
		return geometry.AnchorStart
	}
	return a
}

func checkLineHeight(lineHeight float64) error {
	if lineHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "line height must be positive, got %v", lineHeight)
	}
	return nil
}

// AddText adds a single line of text.
func (l *Layer) AddText(t Text) *Text {
	d := &t
	d.TextAnchor = orAnchor(d.TextAnchor)
	l.add(d)
	return d
}

// AddMultilineText adds text wrapped at Width and at line breaks.
// LineHeight must be positive.
func (l *Layer) AddMultilineText(t MultilineText) (*MultilineText, error) {
	if err := checkLineHeight(t.LineHeight); err != nil {
		return nil, err
	}
	d := &t
	d.TextAnchor = orAnchor(d.TextAnchor)
	l.add(d)
	return d, nil
}

// AddRect adds a filled rectangle.
func (l *Layer) AddRect(r Rect) *Rect {
	d := &r
	l.add(d)
	return d
}

// AddRectOutline adds a stroked rectangle.
func (l *Layer) AddRectOutline(r RectOutline) *RectOutline {
	d := &r
	d.LineWidth = orLineWidth(d.LineWidth)
	l.add(d)
	return d
}

// AddCircle adds a filled circle.
func (l *Layer) AddCircle(c Circle) *Circle {
	d := &c
	l.add(d)
	return d
}

// AddCircleOutline adds a stroked circle.
func (l *Layer) AddCircleOutline(c CircleOutline) *CircleOutline {
	d := &c
	d.LineWidth = orLineWidth(d.LineWidth)
	l.add(d)
	return d
}

// AddLine adds a line.
func (l *Layer) AddLine(ln Line) *Line {
	d := &ln
	d.LineWidth = orLineWidth(d.LineWidth)
	l.add(d)
	return d
}

// AddPolygon adds a filled polygon from a flat x,y sequence of at least
// three points.
func (l *Layer) AddPolygon(color Paint, points ...float64) (*Polygon, error) {
	if err := errors.ValidatePolygonPoints(points); err != nil {
		return nil, err
	}
	d := &Polygon{Points: slices.Clone(points), Color: color}
	l.add(d)
	return d, nil
}

// AddPolygonOutline adds a stroked polygon. A zero lineWidth means 1.
func (l *Layer) AddPolygonOutline(color Paint, lineWidth float64, points ...float64) (*PolygonOutline, error) {
	if err := errors.ValidatePolygonPoints(points); err != nil {
		return nil, err
	}
	d := &PolygonOutline{
		Polygon:   Polygon{Points: slices.Clone(points), Color: color},
		LineWidth: orLineWidth(lineWidth),
	}
	l.add(d)
	return d, nil
}

// AddImage adds an image given as a data:image/... URI.
func (l *Layer) AddImage(img Image) (*Image, error) {
	if err := errors.ValidateImageDataURI(img.DataURL); err != nil {
		return nil, err
	}
	d := &img
	l.add(d)
	return d, nil
}

// AddTextBox adds a line of text on a filled box sized to fit it.
func (l *Layer) AddTextBox(t TextBox) *TextBox {
	d := &t
	d.Origin = orOrigin(d.Origin)
	l.add(d)
	return d
}

// AddTextBoxOutline adds a line of text on a stroked box.
func (l *Layer) AddTextBoxOutline(t TextBoxOutline) *TextBoxOutline {
	d := &t
	d.Origin = orOrigin(d.Origin)
	d.LineWidth = orLineWidth(d.LineWidth)
	l.add(d)
	return d
}

// AddMultilineTextBox adds wrapped text on a filled box. LineHeight must be
// positive.
func (l *Layer) AddMultilineTextBox(t MultilineTextBox) (*MultilineTextBox, error) {
	if err := checkLineHeight(t.LineHeight); err != nil {
		return nil, err
	}
	d := &t
	d.TextAnchor = orAnchor(d.TextAnchor)
	l.add(d)
	return d, nil
}

// AddMultilineTextBoxOutline adds wrapped text on a stroked box.
func (l *Layer) AddMultilineTextBoxOutline(t MultilineTextBoxOutline) (*MultilineTextBoxOutline, error) {
	if err := checkLineHeight(t.LineHeight); err != nil {
		return nil, err
	}
	d := &t
	d.TextAnchor = orAnchor(d.TextAnchor)
	d.LineWidth = orLineWidth(d.LineWidth)
	l.add(d)
	return d, nil
}
