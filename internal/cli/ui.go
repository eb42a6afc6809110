package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for paths and values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleOK    = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarn  = lipgloss.NewStyle().Foreground(colorYellow)
	styleInfo  = lipgloss.NewStyle().Foreground(colorGray)
	styleKey   = lipgloss.NewStyle().Foreground(colorGray).Width(8)
	styleShell = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Printer
// =============================================================================

// printer writes human-oriented status lines to a command's output. Logs go
// to the logger on stderr; this is the result a user reads.
type printer struct {
	w io.Writer
}

func newPrinter(cmd *cobra.Command) printer {
	return printer{w: cmd.OutOrStdout()}
}

func (p printer) line(icon lipgloss.Style, mark, format string, args ...any) {
	fmt.Fprintln(p.w, icon.Render(mark)+" "+fmt.Sprintf(format, args...))
}

func (p printer) success(format string, args ...any) { p.line(styleOK, "✓", format, args...) }
func (p printer) info(format string, args ...any)    { p.line(styleInfo, "›", format, args...) }

func (p printer) warn(format string, args ...any) {
	fmt.Fprintln(p.w, styleWarn.Render("! "+fmt.Sprintf(format, args...)))
}

// detail prints an indented, dimmed line.
func (p printer) detail(format string, args ...any) {
	fmt.Fprintln(p.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// file prints a written output path.
func (p printer) file(path string) {
	fmt.Fprintln(p.w, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

// field prints a labeled value.
func (p printer) field(key, value string) {
	fmt.Fprintln(p.w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// hint suggests a follow-up command.
func (p printer) hint(description, command string) {
	fmt.Fprintln(p.w, StyleDim.Render(description+":")+" "+styleShell.Render(command))
}

// layerStats prints what a rendered layer contains on one line.
func (p printer) layerStats(drawables, definitions, bytes int) {
	parts := []string{
		plural(drawables, "drawable"),
		plural(definitions, "definition"),
		formatBytes(bytes),
	}
	fmt.Fprintln(p.w, "  "+StyleDim.Render(strings.Join(parts, " · ")))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func formatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f kB", float64(n)/1024)
}
