package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svglayer/pkg/errors"
	"github.com/matzehuels/svglayer/pkg/scene"
	"github.com/matzehuels/svglayer/pkg/upload"
)

// uploadOpts holds the command-line flags for the upload command.
type uploadOpts struct {
	room    string // room access key
	zIndex  int    // layer slot
	api     string // API base URL
	force   bool   // upload even if unchanged
	clear   bool   // remove the layer instead of uploading
	noCache bool   // disable the dedupe cache entirely
}

// uploadCommand creates the upload command that sends a rendered scene to a
// live room as an overlay layer.
func (c *CLI) uploadCommand() *cobra.Command {
	opts := uploadOpts{
		zIndex: upload.DefaultZIndex,
		api:    os.Getenv(envAPI),
	}
	if opts.api == "" {
		opts.api = upload.DefaultBaseURL
	}

	cmd := &cobra.Command{
		Use:   "upload [scene]",
		Short: "Render a scene and send it to a room as a layer",
		Long: `Render a scene and send it to a room as a layer.

Unchanged layers are not sent again; use --force to upload anyway.
The API origin defaults to $SVGLAYER_API, the dedupe cache lives in the
user cache directory unless $SVGLAYER_REDIS_URL points at a Redis server.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.clear {
				return cobra.MaximumNArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateAccessKey(opts.room); err != nil {
				return err
			}
			if err := errors.ValidateURL(opts.api); err != nil {
				return err
			}
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return c.runUpload(cmd.Context(), newPrinter(cmd), path, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.room, "room", "", "room access key (required)")
	cmd.Flags().IntVar(&opts.zIndex, "z-index", opts.zIndex, "layer slot")
	cmd.Flags().StringVar(&opts.api, "api", opts.api, "API base URL")
	cmd.Flags().BoolVar(&opts.force, "force", false, "upload even if the layer is unchanged")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "remove the layer from the room")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the dedupe cache")
	_ = cmd.MarkFlagRequired("room")

	return cmd
}

func (c *CLI) runUpload(ctx context.Context, out printer, path string, opts *uploadOpts) error {
	logger := loggerFromContext(ctx)

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	client := upload.NewClient(upload.WithBaseURL(opts.api), upload.WithLogger(logger))
	deduper := upload.NewDeduper(client, store, upload.WithDedupeLogger(logger))

	if opts.clear {
		if err := deduper.Clear(ctx, opts.room, opts.zIndex); err != nil {
			return err
		}
		out.success("Cleared layer %d", opts.zIndex)
		return nil
	}

	sc, err := scene.Load(path)
	if err != nil {
		return err
	}
	layer, err := sc.Build()
	if err != nil {
		return err
	}

	if opts.force {
		if err := deduper.Forget(ctx, opts.room, opts.zIndex); err != nil {
			logger.Warn("could not reset dedupe cache", "err", err)
		}
	}

	svg := layer.SVG()
	prog := newProgress(logger)
	sent, err := deduper.Send(ctx, opts.room, []byte(svg), opts.zIndex)
	if err != nil {
		return err
	}
	if !sent {
		out.info("Layer %d unchanged, nothing sent", opts.zIndex)
		out.hint("Upload anyway", appName+" upload --force --room <key> "+path)
		return nil
	}
	prog.done("uploaded", "z-index", opts.zIndex, "bytes", len(svg))
	out.success("Sent layer %d", opts.zIndex)
	out.layerStats(len(layer.Drawables()), len(layer.Definitions()), len(svg))
	out.field("API", StyleLink.Render(client.BaseURL()))
	return nil
}
