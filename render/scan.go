package render

import (
	"unicode/utf8"

	"github.com/katalvlaran/pixelcal/glyph"
)

type tokenKind int

const (
	tokIcon tokenKind = iota
	tokGlyph
	tokSpace
	tokUnknown
)

// token is one unit of input: an icon, a glyph, a space or an unknown rune.
type token struct {
	kind   tokenKind
	bitmap glyph.Bitmap
	size   int // bytes of input consumed
}

// next classifies the token at the start of s (s must be non-empty).
func (c config) next(s string) token {
	if c.icons {
		if ic, ok := glyph.MatchIcon(s); ok {
			return token{kind: tokIcon, bitmap: ic.Bitmap.Scale(c.iconScale), size: len(ic.Token)}
		}
	}
	r, size := utf8.DecodeRuneInString(s)
	if b, ok := glyph.Lookup(c.font, r); ok {
		return token{kind: tokGlyph, bitmap: b, size: size}
	}
	if r == ' ' {
		return token{kind: tokSpace, size: size}
	}
	return token{kind: tokUnknown, size: size}
}

// advance is the cursor movement the token causes with unbounded width.
func (c config) advance(t token) int {
	switch t.kind {
	case tokIcon, tokGlyph:
		return t.bitmap.Width() + c.charSpacing
	case tokSpace:
		return SpaceAdvance
	default:
		return UnknownAdvance
	}
}
