package textmetrics

import (
	"math"
	"regexp"
	"strings"
)

// SafetyMargin is subtracted from the available width before wrap decisions
// to absorb measurement inaccuracy.
const SafetyMargin = 10.0

var lineBreak = regexp.MustCompile(`\r?\n`)

// Wrap breaks text into lines no wider than maxWidth-SafetyMargin.
//
// Paragraphs are split on "\n" or "\r\n" and wrapped independently. Words are
// separated by single spaces; a word that alone exceeds the limit is kept on
// its own line. Each paragraph produces at least one (possibly empty) line.
// The result is recomputed on every call.
func Wrap(text string, maxWidth, fontSize float64, bold bool) []string {
	paragraphs := lineBreak.Split(text, -1)
	limit := maxWidth - SafetyMargin
	lines := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Split(strings.TrimSpace(p), " ")
		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if current != "" && Measure(candidate, fontSize, bold) > limit {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// MaxLines returns how many lines of lineHeight fit into maxHeight.
// A non-positive lineHeight yields 0.
func MaxLines(maxHeight, lineHeight float64) int {
	if lineHeight <= 0 || maxHeight <= 0 {
		return 0
	}
	return int(math.Floor(maxHeight / lineHeight))
}

// Truncate drops trailing lines that do not fit into maxHeight.
// Excess lines are removed silently; no ellipsis is added.
func Truncate(lines []string, maxHeight, lineHeight float64) []string {
	if n := MaxLines(maxHeight, lineHeight); len(lines) > n {
		return lines[:n]
	}
	return lines
}
