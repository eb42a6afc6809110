package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matzehuels/svglayer/pkg/errors"
	svgio "github.com/matzehuels/svglayer/pkg/io"
	"github.com/matzehuels/svglayer/pkg/svglayer"
	"github.com/matzehuels/svglayer/pkg/svglayer/geometry"
)

// Item types.
const (
	TypeText                = "text"
	TypeMultilineText       = "multiline-text"
	TypeRect                = "rect"
	TypeRectOutline         = "rect-outline"
	TypeCircle              = "circle"
	TypeCircleOutline       = "circle-outline"
	TypeLine                = "line"
	TypePolygon             = "polygon"
	TypePolygonOutline      = "polygon-outline"
	TypeImage               = "image"
	TypeTextBox             = "text-box"
	TypeTextBoxOutline      = "text-box-outline"
	TypeMultilineBox        = "multiline-box"
	TypeMultilineBoxOutline = "multiline-box-outline"
)

// builder resolves names while a scene is turned into a layer.
type builder struct {
	layer     *svglayer.Layer
	gradients map[string]*svglayer.Gradient
	filters   map[string]*svglayer.Filter
	dir       string
}

// ID generation modes for the scene-level "ids" key.
const (
	IDsCounter = "counter"
	IDsRandom  = "random"
	IDsUUID    = "uuid"
)

// Build creates a layer from the scene. opts are applied after the scene's
// own canvas and id settings, so callers can override either.
func (s *Scene) Build(opts ...svglayer.Option) (*svglayer.Layer, error) {
	ids, err := idGenerator(s.IDs)
	if err != nil {
		return nil, err
	}
	all := []svglayer.Option{svglayer.WithIDGenerator(ids)}
	if s.Widescreen != nil {
		all = append(all, svglayer.WithWidescreen(*s.Widescreen))
	}
	layer := svglayer.New(append(all, opts...)...)
	if err := s.BuildInto(layer); err != nil {
		return nil, err
	}
	return layer, nil
}

// idGenerator maps an "ids" value to a generator. Counter ids are the default
// so that rebuilding an unchanged scene produces identical SVG.
func idGenerator(mode string) (svglayer.IDGenerator, error) {
	switch strings.ToLower(mode) {
	case "", IDsCounter:
		return svglayer.CounterIDs(""), nil
	case IDsRandom:
		return svglayer.RandomIDs(6), nil
	case IDsUUID:
		return svglayer.UUIDIDs(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown ids mode %q (want counter, random or uuid)", mode)
	}
}

// BuildInto clears layer and draws the scene onto it.
func (s *Scene) BuildInto(layer *svglayer.Layer) error {
	layer.Clear()
	b := &builder{
		layer:     layer,
		gradients: make(map[string]*svglayer.Gradient, len(s.Gradients)),
		filters:   make(map[string]*svglayer.Filter, len(s.Filters)),
		dir:       s.Dir,
	}

	for i, g := range s.Gradients {
		if err := b.addGradient(g); err != nil {
			return errors.Within(err, errors.ErrCodeInvalidScene, "gradients[%d] (%s)", i, g.Name)
		}
	}
	for i, f := range s.Filters {
		if err := b.addFilter(f); err != nil {
			return errors.Within(err, errors.ErrCodeInvalidScene, "filters[%d] (%s)", i, f.Name)
		}
	}
	for i, it := range s.Items {
		if err := b.addItem(it); err != nil {
			return errors.Within(err, errors.ErrCodeInvalidScene, "items[%d] (%s)", i, it.Type)
		}
	}
	return nil
}

func (b *builder) checkName(name string) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidScene, "name is required")
	}
	_, isGradient := b.gradients[name]
	_, isFilter := b.filters[name]
	if isGradient || isFilter {
		return errors.New(errors.ErrCodeInvalidScene, "duplicate name %q", name)
	}
	return nil
}

func (b *builder) addGradient(g Gradient) error {
	if err := b.checkName(g.Name); err != nil {
		return err
	}
	var (
		grad *svglayer.Gradient
		err  error
	)
	switch g.Type {
	case "", "linear":
		grad, err = b.layer.CreateLinearGradient(g.Angle, g.Stops...)
	case "radial":
		grad, err = b.layer.CreateRadialGradient(g.Stops...)
	default:
		return errors.New(errors.ErrCodeInvalidGradient, "unknown gradient type %q", g.Type)
	}
	if err != nil {
		return err
	}
	b.gradients[g.Name] = grad
	return nil
}

func (b *builder) addFilter(f Filter) error {
	if err := b.checkName(f.Name); err != nil {
		return err
	}
	switch f.Type {
	case "blur":
		b.filters[f.Name] = b.layer.CreateBlurFilter(f.StdDeviation, f.Input)
	case "drop-shadow":
		b.filters[f.Name] = b.layer.CreateDropShadowFilter(f.DX, f.DY, f.StdDeviation, f.Color)
	default:
		return errors.New(errors.ErrCodeInvalidFilter, "unknown filter type %q", f.Type)
	}
	return nil
}

// paint resolves a gradient name or returns the value as a color literal.
// An empty value is no paint.
func (b *builder) paint(v string) svglayer.Paint {
	if v == "" {
		return nil
	}
	if g, ok := b.gradients[v]; ok {
		return g
	}
	return svglayer.Color(v)
}

func (b *builder) filter(name string) (*svglayer.Filter, error) {
	f, ok := b.filters[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFilter, "unknown filter %q", name)
	}
	return f, nil
}

func (b *builder) applyFilters(d svglayer.Drawable, it Item) error {
	for _, ref := range []struct {
		name string
		slot svglayer.FilterSlot
	}{
		{it.Filter, svglayer.SlotAll},
		{it.BoxFilter, svglayer.SlotBox},
		{it.TextFilter, svglayer.SlotText},
	} {
		if ref.name == "" {
			continue
		}
		f, err := b.filter(ref.name)
		if err != nil {
			return err
		}
		if err := d.SetFilter(f, ref.slot); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) imageURI(v string) (string, error) {
	if v == "" {
		return "", errors.New(errors.ErrCodeInvalidImage, "image is required")
	}
	if strings.HasPrefix(v, "data:") {
		return v, nil
	}
	path := v
	if !filepath.IsAbs(path) && b.dir != "" {
		path = filepath.Join(b.dir, path)
	}
	return svgio.ImageToDataURI(path, "")
}

func (b *builder) addItem(it Item) error {
	padding, err := geometry.ParsePaddingString(it.Padding)
	if err != nil {
		return err
	}
	anchor := geometry.TextAnchor(it.TextAnchor)
	origin := geometry.Origin(it.Origin)

	var d svglayer.Drawable
	switch it.Type {
	case TypeText:
		d = b.layer.AddText(svglayer.Text{
			Text: it.Text, FontSize: it.FontSize, Bold: it.Bold, Color: b.paint(it.Color),
			X: it.X, Y: it.Y, TextAnchor: anchor, MaxWidth: it.MaxWidth,
		})
	case TypeMultilineText:
		d, err = b.layer.AddMultilineText(svglayer.MultilineText{
			Text: it.Text, FontSize: it.FontSize, Bold: it.Bold, Color: b.paint(it.Color),
			X: it.X, Y: it.Y, Width: it.Width, MaxHeight: it.MaxHeight,
			LineHeight: it.LineHeight, TextAnchor: anchor,
		})
	case TypeRect:
		d = b.layer.AddRect(b.rect(it))
	case TypeRectOutline:
		d = b.layer.AddRectOutline(svglayer.RectOutline{Rect: b.rect(it), LineWidth: it.LineWidth})
	case TypeCircle:
		d = b.layer.AddCircle(b.circle(it))
	case TypeCircleOutline:
		d = b.layer.AddCircleOutline(svglayer.CircleOutline{Circle: b.circle(it), LineWidth: it.LineWidth})
	case TypeLine:
		d = b.layer.AddLine(svglayer.Line{
			X1: it.X1, Y1: it.Y1, X2: it.X2, Y2: it.Y2,
			LineWidth: it.LineWidth, Color: b.paint(it.Color),
		})
	case TypePolygon:
		d, err = b.layer.AddPolygon(b.paint(it.Color), it.Points...)
	case TypePolygonOutline:
		d, err = b.layer.AddPolygonOutline(b.paint(it.Color), it.LineWidth, it.Points...)
	case TypeImage:
		var uri string
		if uri, err = b.imageURI(it.Image); err == nil {
			d, err = b.layer.AddImage(svglayer.Image{
				DataURL: uri, X: it.X, Y: it.Y,
				Width: it.Width, Height: it.Height, Opacity: it.Opacity,
			})
		}
	case TypeTextBox:
		d = b.layer.AddTextBox(b.textBox(it, origin, padding))
	case TypeTextBoxOutline:
		d = b.layer.AddTextBoxOutline(svglayer.TextBoxOutline{TextBox: b.textBox(it, origin, padding), LineWidth: it.LineWidth})
	case TypeMultilineBox:
		d, err = b.layer.AddMultilineTextBox(b.multilineBox(it, anchor, padding))
	case TypeMultilineBoxOutline:
		d, err = b.layer.AddMultilineTextBoxOutline(svglayer.MultilineTextBoxOutline{
			MultilineTextBox: b.multilineBox(it, anchor, padding),
			LineWidth:        it.LineWidth,
		})
	default:
		return errors.New(errors.ErrCodeInvalidScene, "unknown item type %q", it.Type)
	}
	if err != nil {
		return err
	}
	return b.applyFilters(d, it)
}

func (b *builder) rect(it Item) svglayer.Rect {
	return svglayer.Rect{X: it.X, Y: it.Y, Width: it.Width, Height: it.Height, Radius: it.Radius, Color: b.paint(it.Color)}
}

func (b *builder) circle(it Item) svglayer.Circle {
	return svglayer.Circle{X: it.X, Y: it.Y, Radius: it.Radius, Color: b.paint(it.Color)}
}

func (b *builder) textBox(it Item, origin geometry.Origin, padding geometry.Padding) svglayer.TextBox {
	return svglayer.TextBox{
		Text: it.Text, FontSize: it.FontSize, Bold: it.Bold, FontColor: b.paint(it.FontColor),
		X: it.X, Y: it.Y, Origin: origin, Padding: padding,
		MaxWidth: it.MaxWidth, Radius: it.Radius, Color: b.paint(it.Color),
	}
}

func (b *builder) multilineBox(it Item, anchor geometry.TextAnchor, padding geometry.Padding) svglayer.MultilineTextBox {
	return svglayer.MultilineTextBox{
		Text: it.Text, FontSize: it.FontSize, Bold: it.Bold, FontColor: b.paint(it.FontColor),
		X: it.X, Y: it.Y, Width: it.Width, MaxHeight: it.MaxHeight, Padding: padding,
		LineHeight: it.LineHeight, Radius: it.Radius, Color: b.paint(it.Color), TextAnchor: anchor,
	}
}

// String summarizes the scene for logs.
func (s *Scene) String() string {
	return fmt.Sprintf("scene(%d gradients, %d filters, %d items)", len(s.Gradients), len(s.Filters), len(s.Items))
}
