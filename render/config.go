// SPDX-License-Identifier: MIT
// Package: pixelcal/render
//
// config.go: internal configuration and deterministic defaults.

package render

import (
	"github.com/katalvlaran/pixelcal/glyph"
	"github.com/katalvlaran/pixelcal/grid"
)

// Defaults, exported for callers that size things around the renderer.
const (
	DefaultMaxWidth    = grid.DefaultWeeks
	DefaultMaxHeight   = grid.DaysPerWeek
	DefaultCharSpacing = 1
	DefaultIconScale   = 1

	// SpaceAdvance is how far a space moves the cursor.
	SpaceAdvance = 2
	// UnknownAdvance is how far an unrenderable rune moves the cursor.
	UnknownAdvance = 1
)

// config is passed by value once resolved.
type config struct {
	font        glyph.Font
	maxWidth    int
	maxHeight   int
	charSpacing int
	iconScale   int
	icons       bool
}

// newConfig applies opts over the defaults, last one wins.
func newConfig(opts ...Option) config {
	cfg := config{
		font:        glyph.Pixel,
		maxWidth:    DefaultMaxWidth,
		maxHeight:   DefaultMaxHeight,
		charSpacing: DefaultCharSpacing,
		iconScale:   DefaultIconScale,
		icons:       true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
