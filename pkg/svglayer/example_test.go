package svglayer_test

import (
	"fmt"

	"github.com/matzehuels/svglayer/pkg/svglayer"
)

func ExampleLayer_SVG() {
	layer := svglayer.New(svglayer.WithIDGenerator(svglayer.CounterIDs("")))
	g, _ := layer.CreateLinearGradient(90, "0% red", "100% blue")
	layer.AddRect(svglayer.Rect{Width: 10, Height: 10, Color: g})
	fmt.Println(layer.SVG())
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" width="1280" height="720" font-family="DejaVu Sans,sans-serif"><defs><linearGradient id="def1" gradientTransform="rotate(90)"><stop offset="0%" stop-color="red" /><stop offset="100%" stop-color="blue" /></linearGradient></defs><rect x="0" y="0" width="10" height="10" fill="url(#def1)" /></svg>
}

func ExampleLayer_MeasureText() {
	layer := svglayer.New()
	fmt.Println(layer.MeasureText("x", 80, false))
	// Output: 50
}
