// Package render turns a message into a contribution-calendar grid using the
// glyph atlas, and measures how wide a message would be.
//
// What:
//
//   - Render / Layout: left-to-right scan with a column cursor. At each read
//     position, in priority order: icon token, glyph, space (advance 2),
//     unknown rune (advance 1). Glyphs and icons are followed by
//     charSpacing blank columns.
//   - MeasureWidth: the same walk without a grid, unbounded width, minus one
//     trailing spacing unit.
//
// Truncation:
//
//	Rendering stops as soon as the cursor reaches the grid width; the rest of
//	the message is dropped silently. Layout exposes Result.FullyRendered for
//	callers and tests that want to notice.
//
// Options (functional, validated at construction; nonsense values panic):
//
//   - WithFont(glyph.Font)      default glyph.Pixel
//   - WithMaxWidth(n)           default 52 columns
//   - WithMaxHeight(n)          default 7 rows
//   - WithCharSpacing(n)        default 1 column
//   - WithIconScale(k)          default 1, icons only
//   - WithIcons(bool)           default true
//
// Every call owns its grid; Render is safe for concurrent use.
package render
