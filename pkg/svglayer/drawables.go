package svglayer

import (
	"github.com/matzehuels/svglayer/pkg/errors"
	"github.com/matzehuels/svglayer/pkg/svglayer/geometry"
)

// FilterSlot selects which part of a drawable a filter applies to.
type FilterSlot int

const (
	// SlotAll applies the filter to the whole drawable. On composite boxes it
	// is the fallback for parts without their own filter.
	SlotAll FilterSlot = iota
	// SlotBox applies the filter to the background box of a composite drawable.
	SlotBox
	// SlotText applies the filter to the text of a composite drawable.
	SlotText
)

// Drawable is one visual primitive in paint order. The set of drawables is
// closed: *Text, *MultilineText, *Rect, *RectOutline, *Circle, *CircleOutline,
// *Line, *Polygon, *PolygonOutline, *Image, *TextBox, *TextBoxOutline,
// *MultilineTextBox and *MultilineTextBoxOutline.
type Drawable interface {
	// SetFilter attaches f to the drawable. Slots other than SlotAll only
	// matter for composite box drawables; plain shapes treat every slot as
	// SlotAll.
	SetFilter(f *Filter, slot FilterSlot) error
	render(w *svgWriter)
}

func checkFilter(f *Filter, slot FilterSlot) error {
	if f == nil {
		return errors.New(errors.ErrCodeInvalidFilter, "invalid filter")
	}
	if slot < SlotAll || slot > SlotText {
		return errors.New(errors.ErrCodeInvalidFilter, "unknown filter slot %d", slot)
	}
	return nil
}

// filtered holds the filter of a single-part drawable.
type filtered struct {
	filter *Filter
}

func (d *filtered) SetFilter(f *Filter, slot FilterSlot) error {
	if err := checkFilter(f, slot); err != nil {
		return err
	}
	d.filter = f
	return nil
}

// Filter returns the attached filter, or nil.
func (d *filtered) Filter() *Filter { return d.filter }

// boxFiltered holds the filters of a box+text drawable.
type boxFiltered struct {
	filter *Filter
	box    *Filter
	text   *Filter
}

func (d *boxFiltered) SetFilter(f *Filter, slot FilterSlot) error {
	if err := checkFilter(f, slot); err != nil {
		return err
	}
	switch slot {
	case SlotBox:
		d.box = f
	case SlotText:
		d.text = f
	default:
		d.filter = f
	}
	return nil
}

// Filter returns the filter shared by box and text, or nil.
func (d *boxFiltered) Filter() *Filter { return d.filter }

// BoxFilter returns the filter applied to the box.
func (d *boxFiltered) BoxFilter() *Filter {
	if d.box != nil {
		return d.box
	}
	return d.filter
}

// TextFilter returns the filter applied to the text.
func (d *boxFiltered) TextFilter() *Filter {
	if d.text != nil {
		return d.text
	}
	return d.filter
}

// Text is a single line of text. Y is the top of the text.
type Text struct {
	Text       string
	FontSize   float64
	Bold       bool
	Color      Paint
	X, Y       float64
	TextAnchor geometry.TextAnchor // default start
	MaxWidth   float64             // forces textLength when > 0

	filtered
}

// MultilineText is text wrapped to Width, breaking on words and line breaks.
type MultilineText struct {
	Text       string
	FontSize   float64
	Bold       bool
	Color      Paint
	X, Y       float64
	Width      float64
	MaxHeight  float64 // 0 means auto height
	LineHeight float64 // required
	TextAnchor geometry.TextAnchor

	filtered
}

// Rect is a filled rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Radius        float64 // corner radius, default 0
	Color         Paint

	filtered
}

// RectOutline is a stroked rectangle.
type RectOutline struct {
	Rect
	LineWidth float64 // default 1
}

// Circle is a filled circle centered on (X, Y).
type Circle struct {
	X, Y   float64
	Radius float64
	Color  Paint

	filtered
}

// CircleOutline is a stroked circle.
type CircleOutline struct {
	Circle
	LineWidth float64 // default 1
}

// Line is a straight stroked line.
type Line struct {
	X1, Y1, X2, Y2 float64
	LineWidth      float64 // default 1
	Color          Paint

	filtered
}

// Polygon is a filled polygon. Points is a flat x,y sequence.
type Polygon struct {
	Points []float64
	Color  Paint

	filtered
}

// PolygonOutline is a stroked polygon.
type PolygonOutline struct {
	Polygon
	LineWidth float64
}

// Image is an embedded data URI image. Zero Width, Height or Opacity are
// omitted from the markup.
type Image struct {
	DataURL       string
	X, Y          float64
	Width, Height float64
	Opacity       float64

	filtered
}

// TextBox is a single line of text on a filled box sized to the text.
type TextBox struct {
	Text      string
	FontSize  float64
	Bold      bool
	FontColor Paint
	X, Y      float64
	Origin    geometry.Origin  // default "top left"
	Padding   geometry.Padding // default 0
	MaxWidth  float64          // caps the box width when > 0
	Radius    float64
	Color     Paint

	boxFiltered
}

// TextBoxOutline is a single line of text on a stroked box.
type TextBoxOutline struct {
	TextBox
	LineWidth float64 // default 1
}

// MultilineTextBox is wrapped text on a filled box of fixed width. The box
// grows with the text unless MaxHeight is set, in which case lines that do
// not fit are dropped.
type MultilineTextBox struct {
	Text       string
	FontSize   float64
	Bold       bool
	FontColor  Paint
	X, Y       float64
	Width      float64
	MaxHeight  float64 // 0 means auto height
	Padding    geometry.Padding
	LineHeight float64 // required
	Radius     float64
	Color      Paint
	TextAnchor geometry.TextAnchor

	boxFiltered
}

// MultilineTextBoxOutline is wrapped text on a stroked box.
type MultilineTextBoxOutline struct {
	MultilineTextBox
	LineWidth float64 // default 1
}
