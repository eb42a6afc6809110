// Package io writes overlays to files and streams and turns image files
// into data URIs that can be embedded in an overlay.
//
// # Export
//
// [WriteSVG] serializes a layer to any writer; [ExportSVG] writes it to a
// file:
//
//	if err := io.ExportSVG(layer, "overlay.svg"); err != nil {
//	    return err
//	}
//
// # Images
//
// Overlays are uploaded as a single self-contained file, so images must be
// inlined. [ImageToDataURI] reads a file and base64-encodes it into a
// "data:image/...;base64,..." URI accepted by [svglayer.Layer.AddImage]:
//
//	uri, err := io.ImageToDataURI("logo.png", "")
//	if err != nil {
//	    return err
//	}
//	_, err = layer.AddImage(svglayer.Image{DataURL: uri, X: 20, Y: 20, Width: 120})
//
// The MIME type is inferred from the file extension when not given.
// Supported extensions are .png, .jpg, .jpeg, .gif, .webp and .svg.
package io
