// Package geometry resolves box and text positions for overlay drawables.
//
// It expands CSS-like padding shorthand ([ParsePadding]), places boxes by one
// of nine named anchors ([ResolveOrigin]) and offsets multiline text for its
// alignment ([AlignX]). All functions are pure.
package geometry
