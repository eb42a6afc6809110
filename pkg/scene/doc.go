// Package scene loads overlay descriptions from TOML or YAML files and
// builds them into layers.
//
// A scene declares named gradients and filters and a list of items drawn in
// order. Items refer to definitions by name; any paint that is not a gradient
// name is used as a color literal.
//
//	widescreen = true
//
//	[[gradients]]
//	name  = "banner"
//	type  = "linear"
//	angle = 90
//	stops = ["0% #1e3c72", "100% #2a5298 0.8"]
//
//	[[filters]]
//	name          = "shadow"
//	type          = "drop-shadow"
//	dy            = 2
//	std_deviation = 3
//	color         = "black 50%"
//
//	[[items]]
//	type       = "text-box"
//	text       = "Jane Doe"
//	font_size  = 24
//	font_color = "#fff"
//	color      = "banner"
//	x          = 40
//	y          = 680
//	origin     = "bottom left"
//	padding    = "8 16"
//	box_filter = "shadow"
//
// Image items take either a data URI or a file path relative to the scene
// file. Unknown keys are rejected so typos do not silently change a layout.
package scene
