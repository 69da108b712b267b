// SPDX-License-Identifier: MIT
// Package: pixelcal
//
// pixelcal.go: one-call entry points over the subpackages.

package pixelcal

import (
	"log/slog"

	"github.com/katalvlaran/pixelcal/compose"
	"github.com/katalvlaran/pixelcal/grid"
	"github.com/katalvlaran/pixelcal/internal/logging"
	"github.com/katalvlaran/pixelcal/render"
	"github.com/katalvlaran/pixelcal/schedule"
	"github.com/katalvlaran/pixelcal/validate"
)

// ContentType is the media type of ComposeGraphic output.
const ContentType = "image/svg+xml"

// ValidateMessage checks raw against the default limits.
func ValidateMessage(raw string) validate.Result {
	return validate.Validate(raw)
}

// RenderGrid draws message onto a new grid (52×7 by default).
func RenderGrid(message string, opts ...render.Option) *grid.Grid {
	return render.Render(message, opts...)
}

// GridToSchedule derives one dated event per lit cell of g.
func GridToSchedule(g *grid.Grid, opts ...schedule.Option) ([]schedule.Event, error) {
	return schedule.FromGrid(g, opts...)
}

// ComposeGraphic draws g as an animated SVG document.
func ComposeGraphic(g *grid.Grid, opts ...compose.Option) (string, error) {
	return compose.Compose(g, opts...)
}

// MeasureWidth is the column width of message with the default font and
// spacing, without a trailing spacing column.
func MeasureWidth(message string) int {
	return render.MeasureWidth(message)
}

// Banner renders message wide enough to hold all of it and composes it, so
// messages longer than the calendar scroll instead of being cut off. The
// message is also used as the caption.
func Banner(message string, opts ...compose.Option) (string, error) {
	width := render.MeasureWidth(message)
	g := render.Render(message, render.WithMaxWidth(max(width, render.DefaultMaxWidth)))
	all := append([]compose.Option{
		compose.WithContentWidth(width),
		compose.WithMessage(message),
	}, opts...)
	return compose.Compose(g, all...)
}

// SetLogger routes pixelcal's debug logging to l. nil silences it again,
// which is the default.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}
