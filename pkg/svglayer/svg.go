package svglayer

import (
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/svglayer/pkg/svglayer/geometry"
	"github.com/matzehuels/svglayer/pkg/svglayer/textmetrics"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	fontFamily   = "DejaVu Sans,sans-serif"
)

// SVG serializes the layer. Definitions are written first, then drawables in
// insertion order. The output only depends on the layer's contents.
func (l *Layer) SVG() string {
	w := &svgWriter{}
	l.render(w)
	return w.String()
}

// WriteTo writes the serialized layer to dst.
func (l *Layer) WriteTo(dst io.Writer) (int64, error) {
	w := &svgWriter{}
	l.render(w)
	return w.buf.WriteTo(dst)
}

func (l *Layer) render(w *svgWriter) {
	w.open("svg")
	w.attr("xmlns", svgNamespace)
	w.attr("width", strconv.Itoa(l.width))
	w.attr("height", strconv.Itoa(l.height))
	w.attr("font-family", fontFamily)
	w.closeStart()

	if len(l.defs) > 0 {
		w.open("defs")
		w.closeStart()
		for _, d := range l.defs {
			d.writeDef(w)
		}
		w.end("defs")
	}
	for _, d := range l.drawables {
		d.render(w)
	}
	w.end("svg")
}

func writeFontAttrs(w *svgWriter, fontSize float64, bold bool) {
	w.num("font-size", fontSize)
	if bold {
		w.attr("font-weight", "bold")
	}
}

func writeAnchor(w *svgWriter, a geometry.TextAnchor) {
	if a = a.Normalize(); a != geometry.AnchorStart {
		w.attr("text-anchor", string(a))
	}
}

func writeRadius(w *svgWriter, r float64) {
	if r != 0 {
		w.num("rx", r)
	}
}

func (d *Text) render(w *svgWriter) {
	w.open("text")
	w.num("x", d.X)
	w.num("y", d.Y)
	writeFontAttrs(w, d.FontSize, d.Bold)
	writePaint(w, "fill", d.Color)
	if d.MaxWidth > 0 {
		w.num("textLength", d.MaxWidth)
	}
	w.attr("dominant-baseline", "hanging")
	writeAnchor(w, d.TextAnchor)
	w.filter(d.filter)
	w.closeStart()
	w.text(d.Text)
	w.end("text")
}

// multilineText is a block of pre-wrapped lines positioned at (x, y).
type multilineText struct {
	lines      []string
	x, y       float64
	fontSize   float64
	bold       bool
	color      Paint
	anchor     geometry.TextAnchor
	lineHeight float64
	filter     *Filter
}

// render writes one tspan per non-blank line. Blank lines emit nothing; the
// following tspan advances by the skipped lines as well.
func (t multilineText) render(w *svgWriter) {
	w.open("text")
	w.num("x", t.x)
	w.num("y", t.y)
	writeFontAttrs(w, t.fontSize, t.bold)
	writePaint(w, "fill", t.color)
	w.attr("dominant-baseline", "hanging")
	writeAnchor(w, t.anchor)
	w.filter(t.filter)
	w.closeStart()

	prev := 0
	for i, line := range t.lines {
		if line == "" {
			continue
		}
		w.open("tspan")
		w.num("x", t.x)
		w.num("dy", float64(i-prev)*t.lineHeight)
		w.closeStart()
		w.text(line)
		w.end("tspan")
		prev = i
	}
	w.end("text")
}

func (d *MultilineText) render(w *svgWriter) {
	lines := textmetrics.Wrap(d.Text, d.Width, d.FontSize, d.Bold)
	if d.MaxHeight > 0 {
		lines = textmetrics.Truncate(lines, d.MaxHeight, d.LineHeight)
	}
	multilineText{
		lines:      lines,
		x:          geometry.AlignX(d.TextAnchor, d.X, d.Width),
		y:          d.Y,
		fontSize:   d.FontSize,
		bold:       d.Bold,
		color:      d.Color,
		anchor:     d.TextAnchor,
		lineHeight: d.LineHeight,
		filter:     d.filter,
	}.render(w)
}

func (d *Rect) renderWith(w *svgWriter, p shapePaint) {
	writeRect(w, d.X, d.Y, d.Width, d.Height, d.Radius, p, d.filter)
}

func writeRect(w *svgWriter, x, y, width, height, radius float64, p shapePaint, f *Filter) {
	w.open("rect")
	w.num("x", x)
	w.num("y", y)
	w.num("width", width)
	w.num("height", height)
	writeRadius(w, radius)
	p.write(w)
	w.filter(f)
	w.closeEmpty()
}

func (d *Rect) render(w *svgWriter)        { d.renderWith(w, fill(d.Color)) }
func (d *RectOutline) render(w *svgWriter) { d.renderWith(w, stroke(d.Color, d.LineWidth)) }

func (d *Circle) renderWith(w *svgWriter, p shapePaint) {
	w.open("circle")
	w.num("cx", d.X)
	w.num("cy", d.Y)
	w.num("r", d.Radius)
	p.write(w)
	w.filter(d.filter)
	w.closeEmpty()
}

func (d *Circle) render(w *svgWriter)        { d.renderWith(w, fill(d.Color)) }
func (d *CircleOutline) render(w *svgWriter) { d.renderWith(w, stroke(d.Color, d.LineWidth)) }

func (d *Line) render(w *svgWriter) {
	w.open("line")
	w.num("x1", d.X1)
	w.num("y1", d.Y1)
	w.num("x2", d.X2)
	w.num("y2", d.Y2)
	writePaint(w, "stroke", d.Color)
	w.num("stroke-width", d.LineWidth)
	w.filter(d.filter)
	w.closeEmpty()
}

// pointList formats a flat coordinate list as "x1,y1 x2,y2 ...".
func pointList(points []float64) string {
	var sb strings.Builder
	for i := 0; i+1 < len(points); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatNumber(points[i]))
		sb.WriteByte(',')
		sb.WriteString(formatNumber(points[i+1]))
	}
	return sb.String()
}

func (d *Polygon) renderWith(w *svgWriter, p shapePaint) {
	w.open("polygon")
	w.attr("points", pointList(d.Points))
	p.write(w)
	w.filter(d.filter)
	w.closeEmpty()
}

func (d *Polygon) render(w *svgWriter)        { d.renderWith(w, fill(d.Color)) }
func (d *PolygonOutline) render(w *svgWriter) { d.renderWith(w, stroke(d.Color, d.LineWidth)) }

func (d *Image) render(w *svgWriter) {
	w.open("image")
	w.num("x", d.X)
	w.num("y", d.Y)
	if d.Width != 0 {
		w.num("width", d.Width)
	}
	if d.Height != 0 {
		w.num("height", d.Height)
	}
	if d.Opacity != 0 {
		w.num("opacity", d.Opacity)
	}
	w.attr("href", d.DataURL)
	w.filter(d.filter)
	w.closeEmpty()
}

// Bounds returns the box and text placement the text box renders with.
func (d *TextBox) Bounds() geometry.Box {
	width := textmetrics.Measure(d.Text, d.FontSize, d.Bold) + d.Padding.Horizontal()
	if d.MaxWidth > 0 && width > d.MaxWidth {
		width = d.MaxWidth
	}
	height := d.FontSize + d.Padding.Vertical()
	return geometry.ResolveOrigin(d.Origin, d.X, d.Y, d.Padding, width, height)
}

func (d *TextBox) renderWith(w *svgWriter, p shapePaint) {
	b := d.Bounds()
	writeRect(w, b.X, b.Y, b.Width, b.Height, d.Radius, p, d.BoxFilter())

	w.open("text")
	w.num("x", b.TextX)
	w.num("y", b.TextY+1)
	writeFontAttrs(w, d.FontSize, d.Bold)
	writePaint(w, "fill", d.FontColor)
	w.num("textLength", b.Width-d.Padding.Horizontal())
	w.attr("dominant-baseline", "hanging")
	w.filter(d.TextFilter())
	w.closeStart()
	w.text(d.Text)
	w.end("text")
}

func (d *TextBox) render(w *svgWriter)        { d.renderWith(w, fill(d.Color)) }
func (d *TextBoxOutline) render(w *svgWriter) { d.renderWith(w, stroke(d.Color, d.LineWidth)) }

// Lines returns the wrapped lines that fit into the box.
func (d *MultilineTextBox) Lines() []string {
	lines := textmetrics.Wrap(d.Text, d.Width-d.Padding.Horizontal(), d.FontSize, d.Bold)
	if d.MaxHeight > 0 {
		lines = textmetrics.Truncate(lines, d.MaxHeight-d.Padding.Vertical(), d.LineHeight)
	}
	return lines
}

// BoxHeight returns the rendered box height for the given number of lines.
func (d *MultilineTextBox) BoxHeight(lines int) float64 {
	if d.MaxHeight > 0 {
		return d.MaxHeight
	}
	return float64(lines)*d.LineHeight + d.Padding.Vertical() - (d.LineHeight - d.FontSize)
}

func (d *MultilineTextBox) renderWith(w *svgWriter, p shapePaint) {
	lines := d.Lines()
	writeRect(w, d.X, d.Y, d.Width, d.BoxHeight(len(lines)), d.Radius, p, d.BoxFilter())

	textWidth := d.Width - d.Padding.Horizontal()
	multilineText{
		lines:      lines,
		x:          geometry.AlignX(d.TextAnchor, d.X, textWidth) + d.Padding.Left,
		y:          d.Y + d.Padding.Top + 1,
		fontSize:   d.FontSize,
		bold:       d.Bold,
		color:      d.FontColor,
		anchor:     d.TextAnchor,
		lineHeight: d.LineHeight,
		filter:     d.TextFilter(),
	}.render(w)
}

func (d *MultilineTextBox) render(w *svgWriter) { d.renderWith(w, fill(d.Color)) }
func (d *MultilineTextBoxOutline) render(w *svgWriter) {
	d.renderWith(w, stroke(d.Color, d.LineWidth))
}
