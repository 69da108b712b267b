// SPDX-License-Identifier: MIT
// Package: pixelcal/compose
//
// config.go: internal configuration, defaults and derived geometry.

package compose

import (
	"math/rand"

	"github.com/katalvlaran/pixelcal/grid"
	"github.com/katalvlaran/pixelcal/palette"
)

// Canonical geometry and defaults.
const (
	CanonicalWeeks = grid.DefaultWeeks + 1
	CanonicalDays  = grid.DaysPerWeek

	DefaultCellSize          = 11
	DefaultCellGap           = 2
	DefaultAnimationDuration = 2.0  // seconds
	DefaultScrollDuration    = 15.0 // seconds
	DefaultTitle             = "GitGraph Animator"
	Subtitle                 = "Contribution Graph"

	padTop    = 40
	padRight  = 30
	padBottom = 50
	padLeft   = 40
	cellRound = 2
	bgRound   = 6
)

type config struct {
	theme        palette.Theme
	cellSize     int
	cellGap      int
	animation    AnimationType
	animationDur float64
	scroll       bool
	scrollDur    float64
	contentWidth int
	title        string
	message      string
	stats        []Stat
	seed         int64
	rng          *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{
		theme:        palette.Dark,
		cellSize:     DefaultCellSize,
		cellGap:      DefaultCellGap,
		animation:    Wave,
		animationDur: DefaultAnimationDuration,
		scroll:       true,
		scrollDur:    DefaultScrollDuration,
		title:        DefaultTitle,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// step is the distance between the origins of two neighbouring cells.
func (c config) step() int { return c.cellSize + c.cellGap }

func (c config) gridWidth() int  { return CanonicalWeeks*c.step() - c.cellGap }
func (c config) gridHeight() int { return CanonicalDays*c.step() - c.cellGap }

func (c config) docWidth() int  { return c.gridWidth() + padLeft + padRight }
func (c config) docHeight() int { return c.gridHeight() + padTop + padBottom }

// random returns the source for Random delays.
func (c config) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	return rngFromSeed(c.seed)
}
