package textmetrics

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	regularScale = 80.0
	boldScale    = 75.0
	fallbackRune = 'x'
)

// Measure returns the approximate rendered width of text in pixels.
func Measure(text string, fontSize float64, bold bool) float64 {
	if text == "" {
		return 0
	}
	idx := 0
	if bold {
		idx = 1
	}

	var total float64
	for _, r := range deburr(text) {
		if r < 0x20 {
			continue
		}
		w, ok := glyphWidths[r]
		if !ok {
			w = glyphWidths[fallbackRune]
		}
		total += w[idx]
	}

	if bold {
		return total * (fontSize / boldScale)
	}
	return total * (fontSize / regularScale)
}

// deburr decomposes text and strips combining marks so accented letters
// fall back to their base letter.
func deburr(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
