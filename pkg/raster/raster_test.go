package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/matzehuels/svglayer/pkg/errors"
	"github.com/matzehuels/svglayer/pkg/io"
	"github.com/matzehuels/svglayer/pkg/svglayer"
)

func bluePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestRenderShapes(t *testing.T) {
	l := svglayer.New()
	l.AddRect(svglayer.Rect{Width: 100, Height: 100, Color: svglayer.Color("red")})
	l.AddText(svglayer.Text{Text: "ignored", FontSize: 20, X: 500, Y: 500})

	img, err := Render([]byte(l.SVG()), Options{Scale: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 72 {
		t.Fatalf("size = %v, want 128x72", b)
	}
	if c := img.RGBAAt(5, 5); c.R < 200 || c.A != 255 {
		t.Errorf("pixel inside rect = %v, want opaque red", c)
	}
	if c := img.RGBAAt(100, 60); c.A != 0 {
		t.Errorf("pixel outside rect = %v, want transparent", c)
	}
}

func TestRenderBackground(t *testing.T) {
	img, err := Render([]byte(svglayer.New(svglayer.WithWidescreen(false)).SVG()), Options{Scale: 0.05, Background: color.White})
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("size = %v, want 64x48", b)
	}
	if c := img.RGBAAt(10, 10); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background pixel = %v, want white", c)
	}
}

func TestRenderEmbeddedImage(t *testing.T) {
	l := svglayer.New()
	_, err := l.AddImage(svglayer.Image{
		DataURL: io.EncodeDataURI("image/png", bluePNG(t)),
		X:       200,
		Y:       200,
		Width:   100,
		Height:  100,
	})
	if err != nil {
		t.Fatal(err)
	}

	img, err := Render([]byte(l.SVG()), Options{Scale: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(25, 25); c.B < 200 || c.A != 255 {
		t.Errorf("pixel inside image = %v, want opaque blue", c)
	}
	if c := img.RGBAAt(5, 5); c.A != 0 {
		t.Errorf("pixel outside image = %v, want transparent", c)
	}
}

func TestToPNG(t *testing.T) {
	l := svglayer.New()
	l.AddCircle(svglayer.Circle{X: 640, Y: 360, Radius: 100, Color: svglayer.Color("#0f0")})

	data, err := ToPNG(context.Background(), []byte(l.SVG()), 0.25)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 180 {
		t.Errorf("size = %v, want 320x180", b)
	}
}

func TestRenderInvalid(t *testing.T) {
	_, err := Render([]byte("<svg"), Options{})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestDecodeDataURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		ok   bool
	}{
		{"png", io.EncodeDataURI("image/png", bluePNG(t)), true},
		{"inline svg", `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" width="4" height="4"%3E%3C/svg%3E`, true},
		{"bad base64", "data:image/png;base64,!!!", false},
		{"not an image", "data:text/plain,hi", false},
		{"garbage png", "data:image/png;base64,AAAA", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := decodeDataURI(tt.uri, 0, 0); ok != tt.ok {
				t.Errorf("decodeDataURI ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}
