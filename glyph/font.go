// SPDX-License-Identifier: MIT
// Package: pixelcal/glyph
//
// font.go: font variants and their textual names.

package glyph

import (
	"fmt"
	"strings"
)

// Font selects one of the atlas variants.
type Font int

const (
	// Pixel is the canonical 3×5 font; every supported character has a glyph.
	Pixel Font = iota
	// Slim narrows thin characters (I, 1, punctuation) and falls back to Pixel.
	Slim
	// Bold is Pixel dilated horizontally: every glyph is one column wider.
	Bold
)

// Textual names used by config files and the CLI.
const (
	namePixel = "pixel"
	nameSlim  = "slim"
	nameBold  = "bold"
)

// String returns the lower-case font name.
func (f Font) String() string {
	switch f {
	case Pixel:
		return namePixel
	case Slim:
		return nameSlim
	case Bold:
		return nameBold
	default:
		return fmt.Sprintf("Font(%d)", int(f))
	}
}

// Valid reports whether f names a known variant.
func (f Font) Valid() bool {
	return f >= Pixel && f <= Bold
}

// ParseFont maps "pixel", "slim" or "bold" (any case) to a Font.
// The empty string resolves to Pixel.
func ParseFont(name string) (Font, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", namePixel:
		return Pixel, nil
	case nameSlim:
		return Slim, nil
	case nameBold:
		return Bold, nil
	default:
		return Pixel, fmt.Errorf("ParseFont: %q: %w", name, ErrUnknownFont)
	}
}
