// Package raster renders overlay SVGs to PNG for local previews.
//
// Shapes, strokes and gradients are rasterized with oksvg. Raster images
// embedded as data URIs (PNG, JPEG, GIF, WebP and nested SVG) are decoded and
// composited on top of the shapes. Text and filters are not rendered: the
// preview shows layout, not typography.
package raster

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/xml"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/svglayer/pkg/errors"
	"github.com/matzehuels/svglayer/pkg/observability"
)

// Options control rasterization.
type Options struct {
	// Scale multiplies the canvas size. Zero or negative means 1.
	Scale float64
	// Background fills the canvas before drawing. Nil leaves it transparent.
	Background color.Color
}

// ToPNG rasterizes svg at the given scale and encodes it as PNG.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return Encode(ctx, svg, Options{Scale: scale})
}

// Encode rasterizes svg with opts and encodes it as PNG.
func Encode(ctx context.Context, svg []byte, opts Options) ([]byte, error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, "png", 0)

	img, err := Render(svg, opts)
	var out []byte
	if err == nil {
		var buf bytes.Buffer
		if err = png.Encode(&buf, img); err != nil {
			err = errors.Wrap(errors.ErrCodeInternal, err, "encode png")
		}
		out = buf.Bytes()
	}

	observability.Render().OnRenderComplete(ctx, "png", len(out), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Render rasterizes svg into a new RGBA image.
func Render(svg []byte, opts Options) (*image.RGBA, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse svg")
	}
	width := int(icon.ViewBox.W * scale)
	height := int(icon.ViewBox.H * scale)
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "svg has no size")
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if opts.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	images, err := embeddedImages(svg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "scan svg images")
	}
	for _, im := range images {
		im.composite(dst, scale)
	}
	return dst, nil
}

// embeddedImage is an <image> element with a decodable data URI.
type embeddedImage struct {
	x, y, width, height float64
	opacity             float64
	src                 image.Image
}

func (im embeddedImage) composite(dst *image.RGBA, scale float64) {
	b := im.src.Bounds()
	w, h := im.width, im.height
	switch {
	case w == 0 && h == 0:
		w, h = float64(b.Dx()), float64(b.Dy())
	case w == 0:
		w = h * float64(b.Dx()) / float64(b.Dy())
	case h == 0:
		h = w * float64(b.Dy()) / float64(b.Dx())
	}

	r := image.Rect(
		int(im.x*scale), int(im.y*scale),
		int((im.x+w)*scale), int((im.y+h)*scale),
	)
	if r.Empty() {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), im.src, b, draw.Src, nil)
	mask := image.NewUniform(color.Alpha{A: uint8(im.opacity * 255)})
	draw.DrawMask(dst, r, scaled, image.Point{}, mask, image.Point{}, draw.Over)
}

// embeddedImages collects the <image> elements of svg whose href decodes.
// Elements with undecodable payloads are skipped.
func embeddedImages(svg []byte) ([]embeddedImage, error) {
	var out []embeddedImage
	dec := xml.NewDecoder(bytes.NewReader(svg))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "image" {
			continue
		}

		im := embeddedImage{opacity: 1}
		var href string
		for _, a := range el.Attr {
			switch a.Name.Local {
			case "x":
				im.x = parseFloat(a.Value)
			case "y":
				im.y = parseFloat(a.Value)
			case "width":
				im.width = parseFloat(a.Value)
			case "height":
				im.height = parseFloat(a.Value)
			case "opacity":
				im.opacity = parseFloat(a.Value)
			case "href":
				href = a.Value
			}
		}
		if src, ok := decodeDataURI(href, im.width, im.height); ok {
			im.src = src
			out = append(out, im)
		}
	}
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	return v
}

// decodeDataURI decodes a data:image URI. Nested SVG documents are
// rasterized at the requested size, or their own when none is given.
func decodeDataURI(uri string, width, height float64) (image.Image, bool) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok || !strings.HasPrefix(uri, "data:image/") {
		return nil, false
	}

	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, false
		}
		data = b
	} else {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return nil, false
		}
		data = []byte(s)
	}

	if strings.HasPrefix(meta, "image/svg+xml") {
		return decodeSVG(data, width, height)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	return img, true
}

func decodeSVG(data []byte, width, height float64) (image.Image, bool) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, false
	}
	if width == 0 {
		width = icon.ViewBox.W
	}
	if height == 0 {
		height = icon.ViewBox.H
	}
	w, h := int(width), int(height)
	if w <= 0 || h <= 0 {
		return nil, false
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.SetTarget(0, 0, width, height)
	icon.Draw(rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())), 1.0)
	return img, true
}
