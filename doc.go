// Package pixelcal draws short messages as pixel art on a contribution
// calendar: 52–53 week columns by 7 day rows.
//
// What is in the box?
//
//   - glyph     3×5 pixel font (pixel, slim, bold) plus :NODE: / :PY: icons
//   - grid      fixed-size intensity matrix, column-major, clipping writes
//   - render    message → grid, and MeasureWidth
//   - schedule  grid → dated intensity events, JSON / YAML / CBOR encoders
//   - compose   grid → animated SVG, with scrolling for wide messages
//   - validate  length and character-set checks before anything renders
//   - palette   GitHub light/dark colours
//   - preview   terminal blocks and PNG images of a grid
//   - recency   bounded history to avoid repeating a message
//   - config    YAML / JSONC settings mapped onto all of the above
//
// This package is the short path through them:
//
//	res := pixelcal.ValidateMessage("HELLO WORLD")
//	if !res.Valid { ... }
//	g := pixelcal.RenderGrid("HELLO WORLD")
//	events, _ := pixelcal.GridToSchedule(g)
//	doc, _ := pixelcal.ComposeGraphic(g)
//
// Rendering never fails: unknown characters become gaps and anything past the
// grid width is dropped. Validate first if that matters.
//
// Nothing here touches the network, the clock (except the schedule default
// window) or global state other than the opt-in logger (SetLogger).
//
//	go get github.com/katalvlaran/pixelcal
package pixelcal
