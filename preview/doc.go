// Package preview shows a grid without an SVG viewer: as coloured blocks in a
// terminal, or as a PNG image.
//
// Both use the palettes from package palette, so a preview matches what the
// composer draws. Terminal output goes through lipgloss with an explicit
// termenv profile, never through auto-detection, so it is stable in tests
// and pipes. Images are drawn with golang.org/x/image: cells as filled
// rectangles, the caption in basicfont.Face7x13, and an optional integer
// upscale with nearest-neighbour sampling to keep cell edges crisp.
package preview
