// Package svglayer builds SVG overlays for video conferences.
//
// A [Layer] is a fixed-size canvas (1280×720, or 1280×960 when not
// widescreen) that accumulates reusable definitions (gradients and filters)
// and drawables (text, shapes, images and text boxes) and serializes them
// into a single SVG document:
//
//	layer := svglayer.New()
//	shadow := layer.CreateDropShadowFilter(0, 2, 3, "black 50%")
//	box := layer.AddTextBox(svglayer.TextBox{
//		Text:      "Jane Doe",
//		FontSize:  24,
//		FontColor: svglayer.Color("#fff"),
//		Color:     svglayer.Color("#0009"),
//		X:         40,
//		Y:         680,
//		Origin:    geometry.BottomLeft,
//		Padding:   geometry.ParsePadding(8, 16),
//	})
//	_ = box.SetFilter(shadow, svglayer.SlotBox)
//	svg := layer.SVG()
//
// # Text
//
// Text sizes are estimated with [textmetrics.Measure], so the layout does not
// depend on installed fonts. Text is drawn with dominant-baseline "hanging":
// y is the top of the text, not its baseline. Multiline drawables wrap their
// text on every serialization.
//
// # Identifiers
//
// Gradient and filter ids come from an [IDGenerator]. They are unique within
// a layer. Use [CounterIDs] for reproducible output.
//
// # Serialization
//
// [Layer.SVG] never fails. All text and attribute values are XML-escaped and
// numbers are printed in their shortest decimal form.
package svglayer
