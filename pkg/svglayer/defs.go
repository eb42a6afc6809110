package svglayer

import (
	"strconv"
	"strings"

	"github.com/matzehuels/svglayer/pkg/errors"
)

// Definition is a reusable resource declared once in <defs> and referenced
// by id. It is either a *Gradient or a *Filter.
type Definition interface {
	ID() string
	writeDef(w *svgWriter)
}

// GradientKind distinguishes linear from radial gradients.
type GradientKind int

const (
	LinearGradient GradientKind = iota
	RadialGradient
)

// Gradient is a color gradient usable anywhere a Paint is accepted.
//
// Stops are written verbatim as "<offset> <color> [opacity]", for example
// "20% grey" or "100% #ccc 0.8".
type Gradient struct {
	id    string
	Kind  GradientKind
	Angle float64 // rotation in degrees, linear gradients only
	Stops []string
}

// ID returns the gradient's document-unique identifier.
func (g *Gradient) ID() string { return g.id }

// FilterKind distinguishes the supported filter primitives.
type FilterKind int

const (
	BlurFilter FilterKind = iota
	DropShadowFilter
)

// Filter is a filter effect attached to drawables with SetFilter.
type Filter struct {
	id   string
	Kind FilterKind

	StdDeviation float64
	Input        string // blur only; empty means the default source graphic

	DX, DY  float64 // drop shadow only
	Color   string  // drop shadow only, default "black"
	Opacity float64 // drop shadow only, default 1
}

// ID returns the filter's document-unique identifier.
func (f *Filter) ID() string { return f.id }

const (
	defaultShadowColor   = "black"
	defaultShadowOpacity = 1.0
)

// CreateLinearGradient registers a linear gradient rotated by angle degrees.
// At least one color stop is required.
func (l *Layer) CreateLinearGradient(angle float64, stops ...string) (*Gradient, error) {
	if len(stops) < 1 {
		return nil, errors.New(errors.ErrCodeInvalidGradient, "gradient must have at least 1 color stop")
	}
	g := &Gradient{id: l.nextID(), Kind: LinearGradient, Angle: angle, Stops: append([]string(nil), stops...)}
	l.defs = append(l.defs, g)
	return g, nil
}

// CreateRadialGradient registers a radial gradient.
// At least one color stop is required.
func (l *Layer) CreateRadialGradient(stops ...string) (*Gradient, error) {
	if len(stops) < 1 {
		return nil, errors.New(errors.ErrCodeInvalidGradient, "gradient must have at least 1 color stop")
	}
	g := &Gradient{id: l.nextID(), Kind: RadialGradient, Stops: append([]string(nil), stops...)}
	l.defs = append(l.defs, g)
	return g, nil
}

// CreateBlurFilter registers a Gaussian blur. input selects the filter input
// (e.g. "SourceAlpha"); empty uses the default.
func (l *Layer) CreateBlurFilter(stdDeviation float64, input string) *Filter {
	f := &Filter{id: l.nextID(), Kind: BlurFilter, StdDeviation: stdDeviation, Input: input}
	l.defs = append(l.defs, f)
	return f
}

// CreateDropShadowFilter registers a drop shadow. color accepts the same
// "color opacity" and "color NN%" forms as drawable colors; empty means black.
func (l *Layer) CreateDropShadowFilter(dx, dy, stdDeviation float64, color string) *Filter {
	c, opacity := parseColorOpacity(color)
	f := &Filter{
		id:           l.nextID(),
		Kind:         DropShadowFilter,
		DX:           dx,
		DY:           dy,
		StdDeviation: stdDeviation,
		Color:        c,
		Opacity:      opacity,
	}
	l.defs = append(l.defs, f)
	return f
}

// parseColorOpacity splits "color opacity" into a color and a numeric opacity.
// A "%" suffix divides the opacity by 100. Unparsable opacities count as 1.
func parseColorOpacity(s string) (string, float64) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return defaultShadowColor, defaultShadowOpacity
	}
	if len(fields) == 1 {
		return fields[0], defaultShadowOpacity
	}

	raw, percent := strings.CutSuffix(fields[1], "%")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fields[0], defaultShadowOpacity
	}
	if percent {
		v /= 100
	}
	return fields[0], v
}

func (g *Gradient) writeDef(w *svgWriter) {
	tag := "linearGradient"
	if g.Kind == RadialGradient {
		tag = "radialGradient"
	}
	w.open(tag)
	w.attr("id", g.id)
	if g.Kind == LinearGradient && g.Angle > 0 {
		w.attr("gradientTransform", "rotate("+formatNumber(g.Angle)+")")
	}
	w.closeStart()
	for _, stop := range g.Stops {
		writeColorStop(w, stop)
	}
	w.end(tag)
}

func writeColorStop(w *svgWriter, stop string) {
	parts := strings.Fields(stop)
	w.open("stop")
	if len(parts) > 0 {
		w.attr("offset", parts[0])
	}
	if len(parts) > 1 {
		w.attr("stop-color", parts[1])
	}
	if len(parts) > 2 {
		w.attr("stop-opacity", parts[2])
	}
	w.closeEmpty()
}

func (f *Filter) writeDef(w *svgWriter) {
	w.open("filter")
	w.attr("id", f.id)
	w.closeStart()

	if f.Kind == DropShadowFilter {
		w.open("feDropShadow")
		w.num("dx", f.DX)
		w.num("dy", f.DY)
		w.num("stdDeviation", f.StdDeviation)
		if f.Opacity != defaultShadowOpacity {
			w.num("flood-opacity", f.Opacity)
		}
		if f.Color != defaultShadowColor {
			w.attr("flood-color", f.Color)
		}
	} else {
		w.open("feGaussianBlur")
		w.num("stdDeviation", f.StdDeviation)
		if f.Input != "" {
			w.attr("in", f.Input)
		}
	}
	w.closeEmpty()
	w.end("filter")
}
