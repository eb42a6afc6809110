package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/svglayer/internal/server"
)

const defaultAddr = "127.0.0.1:8080"

// serveCommand creates the serve command that previews a scene over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	addr := defaultAddr

	cmd := &cobra.Command{
		Use:   "serve [scene]",
		Short: "Serve a live preview of a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := newPrinter(cmd)
			out.info("Serving %s", args[0])
			out.field("SVG", StyleLink.Render("http://"+addr+"/overlay.svg"))
			out.field("PNG", StyleLink.Render("http://"+addr+"/overlay.png"))
			return server.New(args[0], server.WithLogger(loggerFromContext(ctx))).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")

	return cmd
}
