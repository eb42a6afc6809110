package svglayer

import (
	"bytes"
	"encoding/xml"
	"strconv"
)

// svgWriter accumulates markup. Attribute values and text content are
// escaped so the document stays well-formed whatever the input strings.
type svgWriter struct {
	buf bytes.Buffer
}

func (w *svgWriter) open(tag string) {
	w.buf.WriteByte('<')
	w.buf.WriteString(tag)
}

func (w *svgWriter) attr(name, value string) {
	w.buf.WriteByte(' ')
	w.buf.WriteString(name)
	w.buf.WriteString(`="`)
	_ = xml.EscapeText(&w.buf, []byte(value))
	w.buf.WriteByte('"')
}

func (w *svgWriter) num(name string, v float64) {
	w.attr(name, formatNumber(v))
}

func (w *svgWriter) filter(f *Filter) {
	if f != nil {
		w.attr("filter", "url(#"+f.id+")")
	}
}

func (w *svgWriter) closeStart() { w.buf.WriteByte('>') }
func (w *svgWriter) closeEmpty() { w.buf.WriteString(" />") }

func (w *svgWriter) end(tag string) {
	w.buf.WriteString("</")
	w.buf.WriteString(tag)
	w.buf.WriteByte('>')
}

func (w *svgWriter) text(s string) {
	_ = xml.EscapeText(&w.buf, []byte(s))
}

func (w *svgWriter) String() string { return w.buf.String() }

// formatNumber prints v in its shortest exact decimal form: 10, 12.5, 0.25.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
