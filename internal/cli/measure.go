package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svglayer/pkg/errors"
	"github.com/matzehuels/svglayer/pkg/svglayer/textmetrics"
)

const defaultFontSize = 16.0

// measureOpts holds the command-line flags for the measure command.
type measureOpts struct {
	size  float64
	bold  bool
	width float64 // wrap width, 0 to only measure
}

// measureCommand creates the measure command that prints the estimated
// width of a text, and optionally how it wraps.
func (c *CLI) measureCommand() *cobra.Command {
	opts := measureOpts{size: defaultFontSize}

	cmd := &cobra.Command{
		Use:   "measure [text]",
		Short: "Estimate the rendered width of a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.size <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "font size must be positive, got %g", opts.size)
			}
			out := cmd.OutOrStdout()
			text := args[0]

			fmt.Fprintln(out, formatWidth(textmetrics.Measure(text, opts.size, opts.bold)))
			if opts.width <= 0 {
				return nil
			}
			for _, line := range textmetrics.Wrap(text, opts.width, opts.size, opts.bold) {
				fmt.Fprintf(out, "%s\t%s\n", formatWidth(textmetrics.Measure(line, opts.size, opts.bold)), line)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.size, "size", opts.size, "font size in pixels")
	cmd.Flags().BoolVar(&opts.bold, "bold", false, "use bold glyph widths")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "also wrap the text to this width")

	return cmd
}

func formatWidth(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
