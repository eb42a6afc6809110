package io

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matzehuels/svglayer/pkg/observability"
	"github.com/matzehuels/svglayer/pkg/svglayer"
)

// WriteSVG serializes layer and writes it to w.
func WriteSVG(ctx context.Context, w io.Writer, layer *svglayer.Layer) error {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, "svg", len(layer.Drawables()))

	var buf bytes.Buffer
	_, _ = layer.WriteTo(&buf)
	size := buf.Len()
	_, err := buf.WriteTo(w)
	if err != nil {
		err = fmt.Errorf("write svg: %w", err)
	}

	observability.Render().OnRenderComplete(ctx, "svg", size, time.Since(start), err)
	return err
}

// ExportSVG writes layer to an SVG file at path, replacing any existing file.
func ExportSVG(ctx context.Context, layer *svglayer.Layer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteSVG(ctx, f, layer); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteFile writes raw bytes (such as a PNG preview) to path.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
