// SPDX-License-Identifier: MIT
// Package: pixelcal/glyph
//
// bitmap.go: immutable binary bitmap shared by glyphs and icons.
//
// Contract:
//   - A Bitmap is rectangular: every row has Width() cells.
//   - Bitmaps are never mutated after construction; every transforming method
//     (Scale, dilate) returns a fresh value and accessors copy.
//   - Row 0 is the top row, column 0 the leftmost column.

package glyph

import "strings"

// Cell markers used by the data tables and by String.
const (
	markOn  = '#'
	markOff = '.'
)

// Bitmap is a fixed-size grid of on/off pixels.
type Bitmap struct {
	rows  [][]bool
	width int
}

// mustBitmap parses rows written with '#' (on) and '.' (off).
// It panics on ragged or empty input; it is only fed from the static tables
// in this package, so a panic means a typo in the data.
func mustBitmap(rows ...string) Bitmap {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("glyph: empty bitmap literal")
	}
	w := len(rows[0])
	out := make([][]bool, len(rows))
	for r, line := range rows {
		if len(line) != w {
			panic("glyph: ragged bitmap literal " + strings.Join(rows, "/"))
		}
		out[r] = make([]bool, w)
		for c := 0; c < w; c++ {
			switch line[c] {
			case markOn:
				out[r][c] = true
			case markOff:
			default:
				panic("glyph: bad bitmap marker in " + line)
			}
		}
	}

	return Bitmap{rows: out, width: w}
}

// Width returns the number of columns.
func (b Bitmap) Width() int { return b.width }

// Height returns the number of rows.
func (b Bitmap) Height() int { return len(b.rows) }

// IsZero reports whether b is the zero Bitmap (no rows).
func (b Bitmap) IsZero() bool { return len(b.rows) == 0 }

// On reports whether the pixel at (row, col) is set.
// Coordinates outside the bitmap read as off.
func (b Bitmap) On(row, col int) bool {
	if row < 0 || row >= len(b.rows) || col < 0 || col >= b.width {
		return false
	}
	return b.rows[row][col]
}

// Rows returns a deep copy of the pixel rows, top to bottom.
func (b Bitmap) Rows() [][]bool {
	out := make([][]bool, len(b.rows))
	for r, row := range b.rows {
		out[r] = append([]bool(nil), row...)
	}
	return out
}

// Scale repeats every pixel k times horizontally and vertically.
// k <= 1 returns b unchanged.
func (b Bitmap) Scale(k int) Bitmap {
	if k <= 1 || b.IsZero() {
		return b
	}
	out := make([][]bool, 0, len(b.rows)*k)
	for _, row := range b.rows {
		wide := make([]bool, 0, b.width*k)
		for _, on := range row {
			for i := 0; i < k; i++ {
				wide = append(wide, on)
			}
		}
		for i := 0; i < k; i++ {
			out = append(out, append([]bool(nil), wide...))
		}
	}

	return Bitmap{rows: out, width: b.width * k}
}

// dilate grows the bitmap by one column, OR-ing each pixel into its right
// neighbour. Used to derive the Bold atlas.
func (b Bitmap) dilate() Bitmap {
	w := b.width + 1
	out := make([][]bool, len(b.rows))
	for r := range b.rows {
		out[r] = make([]bool, w)
		for c := 0; c < w; c++ {
			out[r][c] = b.On(r, c) || b.On(r, c-1)
		}
	}

	return Bitmap{rows: out, width: w}
}

// String renders the bitmap with '#' and '.', one line per row.
func (b Bitmap) String() string {
	var sb strings.Builder
	for r, row := range b.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, on := range row {
			if on {
				sb.WriteByte(markOn)
			} else {
				sb.WriteByte(markOff)
			}
		}
	}
	return sb.String()
}
