// Package pkg provides the libraries behind svglayer, a builder for SVG
// overlay layers composited over live video.
//
// # Overview
//
// A layer is a fixed-size canvas (1280x720 or 1280x960) holding shared
// definitions (gradients and filters) and an ordered list of drawables
// (text, shapes, images and text boxes). Serializing a layer yields one
// standalone SVG document. The pkg directory is organized as:
//
//  1. [svglayer] - Canvas, definitions, drawables and the SVG serializer
//  2. [svglayer/textmetrics] - Glyph-width text measurement and wrapping
//  3. [svglayer/geometry] - Padding, alignment and origin math
//  4. [scene] - TOML/YAML scene files that build layers
//  5. [io], [raster], [upload] - File export, PNG previews and room uploads
//  6. [cache], [httputil], [errors], [observability] - Infrastructure
//
// # Architecture
//
//	scene file (TOML/YAML)
//	         ↓
//	    [scene] package (decode + build)
//	         ↓
//	    [svglayer] package (definitions + drawables)
//	         ↓
//	    SVG document → file, PNG preview or room upload
//
// # Quick Start
//
//	layer := svglayer.New(svglayer.WithWidescreen(true))
//	g, _ := layer.CreateLinearGradient(90, "0% #1e3c72", "100% #2a5298")
//	layer.AddTextBox(svglayer.TextBox{
//	    Text:      "Jane Doe",
//	    FontSize:  24,
//	    FontColor: svglayer.Color("#fff"),
//	    Color:     g,
//	    X:         40,
//	    Y:         680,
//	    Origin:    geometry.BottomLeft,
//	    Padding:   geometry.Padding{Top: 8, Right: 16, Bottom: 8, Left: 16},
//	})
//	svg := layer.SVG()
//
// # Errors
//
// Builder methods validate their input and return [errors.Error] values with
// machine-readable codes; serialization never fails.
package pkg
