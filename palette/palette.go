// Package palette holds the GitHub contribution-calendar colour themes shared
// by the SVG composer and the previews.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pixelcal/grid"
)

// ErrUnknownTheme is returned by ParseTheme for names outside light/dark.
var ErrUnknownTheme = errors.New("palette: unknown theme")

// Theme selects a palette.
type Theme int

const (
	// Dark is GitHub's dark mode palette (the default).
	Dark Theme = iota
	// Light is GitHub's light mode palette.
	Light
)

// String returns "dark" or "light".
func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// ParseTheme maps "dark" or "light" (any case) to a Theme; "" is Dark.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Dark, fmt.Errorf("ParseTheme(%q): %w", name, ErrUnknownTheme)
	}
}

// Palette is a fixed set of hex colours. Levels[0] is reserved for empty cells.
type Palette struct {
	Background string
	Levels     [grid.MaxIntensity + 1]string
	Text       string
	TextMuted  string
}

var (
	light = Palette{
		Background: "#ffffff",
		Levels:     [grid.MaxIntensity + 1]string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"},
		Text:       "#24292f",
		TextMuted:  "#656d76",
	}
	dark = Palette{
		Background: "#0d1117",
		Levels:     [grid.MaxIntensity + 1]string{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"},
		Text:       "#f0f6fc",
		TextMuted:  "#7d8590",
	}
)

// For returns the palette of t.
func For(t Theme) Palette {
	if t == Light {
		return light
	}
	return dark
}

// Empty is the colour of an empty cell.
func (p Palette) Empty() string { return p.Levels[grid.Empty] }

// Level returns the colour for intensity v, clamped into the palette range.
func (p Palette) Level(v int) string {
	switch {
	case v < 0:
		v = 0
	case v > grid.MaxIntensity:
		v = grid.MaxIntensity
	}
	return p.Levels[v]
}
