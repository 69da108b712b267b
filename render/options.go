// SPDX-License-Identifier: MIT
// Package: pixelcal/render
//
// options.go: functional options for the renderer.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; the
//     render path itself never panics.
//   • Later options override earlier ones.

package render

import (
	"fmt"

	"github.com/katalvlaran/pixelcal/glyph"
)

// Option customizes a render or measure call.
type Option func(*config)

// WithFont selects the atlas variant. Panics on an unknown font.
func WithFont(f glyph.Font) Option {
	if !f.Valid() {
		panic(fmt.Sprintf("render: WithFont(%d)", int(f)))
	}
	return func(c *config) {
		c.font = f
	}
}

// WithMaxWidth sets the grid column count. Panics if n < 1.
func WithMaxWidth(n int) Option {
	if n < 1 {
		panic("render: WithMaxWidth(n<1)")
	}
	return func(c *config) {
		c.maxWidth = n
	}
}

// WithMaxHeight sets the grid row count. Glyph rows at or beyond it are
// dropped. Panics if n < 1.
func WithMaxHeight(n int) Option {
	if n < 1 {
		panic("render: WithMaxHeight(n<1)")
	}
	return func(c *config) {
		c.maxHeight = n
	}
}

// WithCharSpacing sets the blank columns inserted after each glyph or icon.
// Panics if n < 0.
func WithCharSpacing(n int) Option {
	if n < 0 {
		panic("render: WithCharSpacing(n<0)")
	}
	return func(c *config) {
		c.charSpacing = n
	}
}

// WithIconScale multiplies icon bitmaps along both axes. Glyphs are not
// scaled. Panics if k < 1.
func WithIconScale(k int) Option {
	if k < 1 {
		panic("render: WithIconScale(k<1)")
	}
	return func(c *config) {
		c.iconScale = k
	}
}

// WithIcons turns icon-token recognition on or off. With icons off a token
// such as ":PY:" renders character by character.
func WithIcons(enabled bool) Option {
	return func(c *config) {
		c.icons = enabled
	}
}
