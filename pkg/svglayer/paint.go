package svglayer

import "strings"

// Paint is a fill or stroke: either a Color or a *Gradient.
type Paint interface {
	paint()
}

// Color is a literal SVG color such as "#fff" or "black". An opacity may
// follow after a space, as a number or a percentage: "black 0.5", "#000 50%".
type Color string

func (Color) paint()     {}
func (*Gradient) paint() {}

// writePaint emits attr (and attr-opacity) for p. A nil paint emits nothing.
func writePaint(w *svgWriter, attr string, p Paint) {
	switch v := p.(type) {
	case *Gradient:
		if v != nil {
			w.attr(attr, "url(#"+v.id+")")
		}
	case Color:
		fields := strings.Fields(string(v))
		switch len(fields) {
		case 0:
		case 1:
			w.attr(attr, fields[0])
		default:
			w.attr(attr, fields[0])
			w.attr(attr+"-opacity", fields[1])
		}
	}
}

// shapePaint describes how a shape is painted: filled, or stroked with no fill.
type shapePaint struct {
	color     Paint
	outline   bool
	lineWidth float64
}

func fill(c Paint) shapePaint { return shapePaint{color: c} }

func stroke(c Paint, lineWidth float64) shapePaint {
	return shapePaint{color: c, outline: true, lineWidth: lineWidth}
}

func (p shapePaint) write(w *svgWriter) {
	if !p.outline {
		writePaint(w, "fill", p.color)
		return
	}
	writePaint(w, "stroke", p.color)
	w.num("stroke-width", p.lineWidth)
	w.attr("fill", "none")
}
