// SPDX-License-Identifier: MIT
// Package: pixelcal/glyph
//
// atlas.go: character lookup across font variants.
//
// Contract:
//   - Input runes are upper-cased before lookup (case-insensitive atlas).
//   - Lookup never judges validity: unsupported runes are simply absent.
//   - Space is Supported but has no Bitmap; renderers advance past it.

package glyph

import "unicode"

// boldGlyphs is derived once from pixelGlyphs.
var boldGlyphs = deriveBold(pixelGlyphs)

func deriveBold(src map[rune]Bitmap) map[rune]Bitmap {
	out := make(map[rune]Bitmap, len(src))
	for r, b := range src {
		out[r] = b.dilate()
	}
	return out
}

// Lookup returns the glyph for r in the given font.
// The second result is false for space, unsupported runes and unknown fonts.
func Lookup(f Font, r rune) (Bitmap, bool) {
	r = unicode.ToUpper(r)
	switch f {
	case Pixel:
		b, ok := pixelGlyphs[r]
		return b, ok
	case Slim:
		if b, ok := slimGlyphs[r]; ok {
			return b, true
		}
		b, ok := pixelGlyphs[r]
		return b, ok
	case Bold:
		b, ok := boldGlyphs[r]
		return b, ok
	default:
		return Bitmap{}, false
	}
}

// Supported reports whether r belongs to the renderable character set
// (space included).
func Supported(r rune) bool {
	if r == ' ' {
		return true
	}
	_, ok := pixelGlyphs[unicode.ToUpper(r)]
	return ok
}

// Width returns the column count of r's glyph in f, or 0 when r is absent.
func Width(f Font, r rune) int {
	b, ok := Lookup(f, r)
	if !ok {
		return 0
	}
	return b.Width()
}

// Height returns the row count shared by all font glyphs.
func Height() int { return glyphHeight }
