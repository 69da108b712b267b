package render

import (
	"unicode/utf8"

	"github.com/katalvlaran/pixelcal/grid"
	"github.com/katalvlaran/pixelcal/internal/logging"
)

// Result is a rendered grid plus diagnostics about the walk.
type Result struct {
	Grid *grid.Grid
	// Cursor is the column position after the last processed token. It can
	// exceed the grid width by the trailing spacing.
	Cursor int
	// FullyRendered is false when input runes or glyph columns were dropped
	// because the cursor ran past the grid width.
	FullyRendered bool
}

// Render returns the grid for message. It never fails: unknown runes become
// gaps and overflow is truncated.
func Render(message string, opts ...Option) *grid.Grid {
	return Layout(message, opts...).Grid
}

// Layout renders message and reports where the cursor ended and whether
// anything was truncated.
// Complexity: O(len(message) + W×H).
func Layout(message string, opts ...Option) Result {
	cfg := newConfig(opts...)
	g, _ := grid.New(cfg.maxWidth, cfg.maxHeight) // dimensions validated by options

	col, pos := 0, 0
	full := true
	for pos < len(message) {
		if col >= cfg.maxWidth {
			full = false
			break
		}
		tok := cfg.next(message[pos:])
		pos += tok.size

		switch tok.kind {
		case tokIcon, tokGlyph:
			var clipped bool
			col, clipped = emit(g, tok, col, cfg)
			if clipped {
				full = false
			}
			col += cfg.charSpacing
		default:
			col += cfg.advance(tok)
		}
	}

	if !full {
		logging.Logger().Debug("render: message truncated",
			"maxWidth", cfg.maxWidth,
			"droppedRunes", utf8.RuneCountInString(message[pos:]))
	}

	return Result{Grid: g, Cursor: col, FullyRendered: full}
}

// emit writes tok's bitmap starting at column col and returns the cursor
// after the bitmap. Rows at or beyond maxHeight are dropped; columns at or
// beyond maxWidth stop the emission and report clipped.
func emit(g *grid.Grid, tok token, col int, cfg config) (int, bool) {
	b := tok.bitmap
	for x := 0; x < b.Width(); x++ {
		if col >= cfg.maxWidth {
			return col, true
		}
		for y := 0; y < b.Height() && y < cfg.maxHeight; y++ {
			v := grid.Empty
			if b.On(y, x) {
				v = grid.On
			}
			g.Set(col, y, v)
		}
		col++
	}

	return col, false
}

// MeasureWidth returns the column width of message with unbounded grid width:
// glyph and icon widths plus spacing, 2 per space, 1 per unknown rune, minus
// one trailing spacing unit. Never negative.
func MeasureWidth(message string, opts ...Option) int {
	cfg := newConfig(opts...)
	width := 0
	for pos := 0; pos < len(message); {
		tok := cfg.next(message[pos:])
		pos += tok.size
		width += cfg.advance(tok)
	}
	width -= cfg.charSpacing
	if width < 0 {
		return 0
	}

	return width
}
