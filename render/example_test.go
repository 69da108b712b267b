// File: render/example_test.go
package render_test

import (
	"fmt"

	"github.com/katalvlaran/pixelcal/render"
)

// ExampleRender draws a short word onto a narrow grid.
func ExampleRender() {
	g := render.Render("HI", render.WithMaxWidth(8))
	fmt.Println(g)

	// Output:
	// #.#.###.
	// #.#..#..
	// ###..#..
	// #.#..#..
	// #.#.###.
	// ........
	// ........
}

// ExampleMeasureWidth shows width accounting for glyphs, spaces and icons.
func ExampleMeasureWidth() {
	fmt.Println(render.MeasureWidth("HELLO WORLD"))
	fmt.Println(render.MeasureWidth(":PY:"))

	// Output:
	// 41
	// 5
}
