// Package textmetrics estimates text widths and wraps text into lines without
// a font rasterizer.
//
// # Measuring
//
// [Measure] sums per-glyph advances from a static table calibrated against
// DejaVu Sans, the font family every overlay declares on its root element.
// Accented characters are decomposed (NFD) and their combining marks dropped,
// so "é" measures like "e". Runes outside the table measure like "x" and C0
// control characters measure zero. The sum is scaled by fontSize/80 for
// regular text and fontSize/75 for bold text.
//
// The result is an approximation: there is no kerning and no shaping. It is
// good enough to size name banners and text boxes on a video overlay, and it
// is fully deterministic.
//
// # Wrapping
//
// [Wrap] splits text into paragraphs on line breaks and greedily fills lines
// word by word, keeping each line at most [SafetyMargin] pixels narrower than
// the available width. Words longer than a line are never split. Every
// paragraph yields at least one line, so blank lines in the input survive as
// empty strings in the output.
//
//	lines := textmetrics.Wrap("Agenda:\n\n- Test overlay", 240, 16, true)
//	lines = textmetrics.Truncate(lines, 60, 22) // at most 2 lines
package textmetrics
