// SPDX-License-Identifier: MIT
// Package: pixelcal/compose
//
// options.go: functional options for Compose / Write.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Compose itself only fails on a nil grid or a failing writer.
//   • Later options override earlier ones.

package compose

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/pixelcal/palette"
)

// Option customizes a Compose or Write call.
type Option func(*config)

// Stat is one key/value pair of the stats caption, rendered "Key: Value".
type Stat struct {
	Key   string
	Value string
}

// WithTheme selects the light or dark palette.
func WithTheme(t palette.Theme) Option {
	return func(c *config) {
		c.theme = t
	}
}

// WithCellSize sets the side of one cell in pixels. Panics if px < 1.
func WithCellSize(px int) Option {
	if px < 1 {
		panic("compose: WithCellSize(px<1)")
	}
	return func(c *config) {
		c.cellSize = px
	}
}

// WithCellGap sets the spacing between cells in pixels. Panics if px < 0.
func WithCellGap(px int) Option {
	if px < 0 {
		panic("compose: WithCellGap(px<0)")
	}
	return func(c *config) {
		c.cellGap = px
	}
}

// WithAnimation selects the entrance delay strategy. Panics on an unknown type.
func WithAnimation(a AnimationType) Option {
	if !a.Valid() {
		panic(fmt.Sprintf("compose: WithAnimation(%d)", int(a)))
	}
	return func(c *config) {
		c.animation = a
	}
}

// WithAnimationDuration sets how long one cell takes to fade in. Panics if d <= 0.
func WithAnimationDuration(d time.Duration) Option {
	if d <= 0 {
		panic("compose: WithAnimationDuration(d<=0)")
	}
	return func(c *config) {
		c.animationDur = d.Seconds()
	}
}

// WithScroll turns the overflow scroll on or off.
func WithScroll(on bool) Option {
	return func(c *config) {
		c.scroll = on
	}
}

// WithScrollDuration sets the length of one scroll loop. Panics if d <= 0.
func WithScrollDuration(d time.Duration) Option {
	if d <= 0 {
		panic("compose: WithScrollDuration(d<=0)")
	}
	return func(c *config) {
		c.scrollDur = d.Seconds()
	}
}

// WithContentWidth declares the width of the content in columns, usually
// render.MeasureWidth of the message. The composer still looks at the last
// lit column and takes the larger of the two. Panics if n < 0.
func WithContentWidth(n int) Option {
	if n < 0 {
		panic("compose: WithContentWidth(n<0)")
	}
	return func(c *config) {
		c.contentWidth = n
	}
}

// WithTitle sets the heading text.
func WithTitle(s string) Option {
	return func(c *config) {
		c.title = s
	}
}

// WithMessage sets the caption under the grid. Empty hides it.
func WithMessage(s string) Option {
	return func(c *config) {
		c.message = s
	}
}

// WithStats sets the stats line. No stats hides it.
func WithStats(stats ...Stat) Option {
	cp := append([]Stat(nil), stats...)
	return func(c *config) {
		c.stats = cp
	}
}

// WithSeed seeds the Random animation. Seed 0 maps to a fixed default.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand hands the Random animation an explicit source. Panics on nil.
// The source is consumed, so reusing it across calls yields different delays.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("compose: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
