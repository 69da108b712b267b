// SPDX-License-Identifier: MIT
// Package: pixelcal/glyph
//
// icons.go: multi-character icon tokens.
//
// An icon is triggered by a literal token in the message (e.g. ":NODE:") and
// renders as one wide bitmap. Renderers try icons before single-character
// lookup and consume the whole token span on a match.

package glyph

import (
	"strings"
	"unicode/utf8"
)

// Icon pairs a trigger token with its bitmap.
type Icon struct {
	Token  string
	Bitmap Bitmap
}

// Span returns how many message runes the token consumes.
func (i Icon) Span() int { return utf8.RuneCountInString(i.Token) }

// Icon tokens.
const (
	TokenNode   = ":NODE:"
	TokenPython = ":PY:"
)

// icons is ordered: the first matching token wins.
var icons = []Icon{
	{
		Token:  TokenNode,
		Bitmap: mustBitmap("#.#.#", "##.##", "#.#.#", "#.#.#", "#.#.#"),
	},
	{
		Token:  TokenPython,
		Bitmap: mustBitmap("####.", "#...#", "####.", "#....", "#...."),
	},
}

// Icons returns the registered icons in match order.
func Icons() []Icon {
	return append([]Icon(nil), icons...)
}

// MatchIcon reports the icon whose token prefixes s, ignoring case.
func MatchIcon(s string) (Icon, bool) {
	for _, ic := range icons {
		n := len(ic.Token)
		if len(s) >= n && strings.EqualFold(s[:n], ic.Token) {
			return ic, true
		}
	}
	return Icon{}, false
}
