// SPDX-License-Identifier: MIT
// Package: pixelcal/glyph
//
// atlas_pixel.go: canonical glyph tables (data-only).
//
// Purpose:
//   - Single source of truth for glyph geometry. Rows are written top to
//     bottom with '#' for a lit pixel and '.' for an empty one.
//   - Every glyph in pixelGlyphs is exactly glyphHeight rows tall.
//
// Notes:
//   - Keep changes append-only: renaming or reshaping an existing glyph
//     changes every rendered calendar that contains it.
//   - Space intentionally has no entry; see Lookup.

package glyph

// glyphHeight is the row count shared by every font glyph.
const glyphHeight = 5

// pixelGlyphs is the Pixel font: 3 columns × 5 rows per character.
var pixelGlyphs = map[rune]Bitmap{
	// ===== LETTERS =====
	'A': mustBitmap(".#.", "#.#", "###", "#.#", "#.#"),
	'B': mustBitmap("##.", "#.#", "##.", "#.#", "##."),
	'C': mustBitmap(".##", "#..", "#..", "#..", ".##"),
	'D': mustBitmap("##.", "#.#", "#.#", "#.#", "##."),
	'E': mustBitmap("###", "#..", "##.", "#..", "###"),
	'F': mustBitmap("###", "#..", "##.", "#..", "#.."),
	'G': mustBitmap(".##", "#..", "#.#", "#.#", ".##"),
	'H': mustBitmap("#.#", "#.#", "###", "#.#", "#.#"),
	'I': mustBitmap("###", ".#.", ".#.", ".#.", "###"),
	'J': mustBitmap("###", "..#", "..#", "#.#", ".#."),
	'K': mustBitmap("#.#", "##.", "#..", "##.", "#.#"),
	'L': mustBitmap("#..", "#..", "#..", "#..", "###"),
	'M': mustBitmap("#.#", "###", "###", "#.#", "#.#"),
	'N': mustBitmap("##.", "#.#", "#.#", "#.#", "#.#"),
	'O': mustBitmap(".#.", "#.#", "#.#", "#.#", ".#."),
	'P': mustBitmap("##.", "#.#", "##.", "#..", "#.."),
	'Q': mustBitmap(".#.", "#.#", "#.#", "###", ".##"),
	'R': mustBitmap("##.", "#.#", "##.", "#.#", "#.#"),
	'S': mustBitmap(".##", "#..", ".#.", "..#", "##."),
	'T': mustBitmap("###", ".#.", ".#.", ".#.", ".#."),
	'U': mustBitmap("#.#", "#.#", "#.#", "#.#", ".#."),
	'V': mustBitmap("#.#", "#.#", "#.#", ".#.", ".#."),
	'W': mustBitmap("#.#", "#.#", "###", "###", "#.#"),
	'X': mustBitmap("#.#", "#.#", ".#.", "#.#", "#.#"),
	'Y': mustBitmap("#.#", "#.#", ".#.", ".#.", ".#."),
	'Z': mustBitmap("###", "..#", ".#.", "#..", "###"),

	// ===== DIGITS =====
	'0': mustBitmap(".#.", "#.#", "#.#", "#.#", ".#."),
	'1': mustBitmap(".#.", "##.", ".#.", ".#.", "###"),
	'2': mustBitmap("##.", "..#", ".#.", "#..", "###"),
	'3': mustBitmap("##.", "..#", ".#.", "..#", "##."),
	'4': mustBitmap("#.#", "#.#", "###", "..#", "..#"),
	'5': mustBitmap("###", "#..", "##.", "..#", "##."),
	'6': mustBitmap(".##", "#..", "##.", "#.#", ".#."),
	'7': mustBitmap("###", "..#", ".#.", ".#.", ".#."),
	'8': mustBitmap(".#.", "#.#", ".#.", "#.#", ".#."),
	'9': mustBitmap(".#.", "#.#", ".##", "..#", "##."),

	// ===== PUNCTUATION =====
	'!': mustBitmap(".#.", ".#.", ".#.", "...", ".#."),
	'?': mustBitmap(".#.", "#.#", "..#", ".#.", ".#."),
	'.': mustBitmap("...", "...", "...", "...", ".#."),
	',': mustBitmap("...", "...", "...", ".#.", "#.."),
	':': mustBitmap("...", ".#.", "...", ".#.", "..."),
	'-': mustBitmap("...", "...", "###", "...", "..."),
	'+': mustBitmap("...", ".#.", "###", ".#.", "..."),
	'=': mustBitmap("...", "###", "...", "###", "..."),
	'(': mustBitmap("..#", ".#.", ".#.", ".#.", "..#"),
	')': mustBitmap("#..", ".#.", ".#.", ".#.", "#.."),
}

// slimGlyphs overrides naturally thin characters with 1–2 column glyphs.
// Characters missing here resolve through pixelGlyphs.
var slimGlyphs = map[rune]Bitmap{
	'I': mustBitmap("#", "#", "#", "#", "#"),
	'1': mustBitmap(".#", "##", ".#", ".#", ".#"),
	'!': mustBitmap("#", "#", "#", ".", "#"),
	'.': mustBitmap(".", ".", ".", ".", "#"),
	',': mustBitmap("..", "..", "..", ".#", "#."),
	':': mustBitmap(".", "#", ".", "#", "."),
	'-': mustBitmap("..", "..", "##", "..", ".."),
	'(': mustBitmap(".#", "#.", "#.", "#.", ".#"),
	')': mustBitmap("#.", ".#", ".#", ".#", "#."),
}
