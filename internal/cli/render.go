package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svglayer/pkg/errors"
	svgio "github.com/matzehuels/svglayer/pkg/io"
	"github.com/matzehuels/svglayer/pkg/raster"
	"github.com/matzehuels/svglayer/pkg/scene"
)

const defaultScale = 1.0

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string  // SVG output path, defaults to <scene>.svg
	png    bool    // also write a PNG preview next to the SVG
	scale  float64 // PNG scale factor
}

// renderCommand creates the render command that turns a scene file into SVG.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: defaultScale}

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a scene file to SVG (and optionally PNG)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.scale <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", opts.scale)
			}
			return c.runRender(cmd.Context(), newPrinter(cmd), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output SVG file (default: scene name with .svg)")
	cmd.Flags().BoolVar(&opts.png, "png", false, "also write a PNG preview")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, out printer, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sc, err := scene.Load(path)
	if err != nil {
		return err
	}
	layer, err := sc.Build()
	if err != nil {
		return err
	}
	logger.Debug("scene built", "scene", sc)
	svg := layer.SVG()

	svgPath := opts.output
	if svgPath == "" {
		svgPath = swapExt(path, ".svg")
	}
	if err := svgio.ExportSVG(ctx, layer, svgPath); err != nil {
		return err
	}
	files := []string{svgPath}

	if opts.png {
		data, err := raster.ToPNG(ctx, []byte(svg), opts.scale)
		if err != nil {
			return err
		}
		pngPath := swapExt(svgPath, ".png")
		if err := svgio.WriteFile(pngPath, data); err != nil {
			return err
		}
		files = append(files, pngPath)
	}

	prog.done("rendered", "scene", filepath.Base(path))
	out.success("Rendered %s", filepath.Base(path))
	out.layerStats(len(layer.Drawables()), len(layer.Definitions()), len(svg))
	for _, f := range files {
		out.file(f)
	}
	return nil
}

// swapExt replaces the extension of path with ext.
func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
