package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/pixelcal/grid"
	"github.com/katalvlaran/pixelcal/palette"
)

const (
	blockLit   = "██"
	blockEmpty = "··"
	blockColor = "  "
)

// Terminal renders g as one line per row with true-colour cell blocks.
// A nil grid renders as "".
func Terminal(g *grid.Grid, theme palette.Theme) string {
	return TerminalProfile(g, theme, termenv.TrueColor)
}

// TerminalProfile is Terminal with an explicit colour profile. With
// termenv.Ascii no escape codes are emitted and cells fall back to
// "██" for lit and "··" for empty.
func TerminalProfile(g *grid.Grid, theme palette.Theme, profile termenv.Profile) string {
	if g == nil {
		return ""
	}
	if profile == termenv.Ascii {
		return asciiBlocks(g)
	}

	cells := cellBlocks(palette.For(theme), profile)

	var sb strings.Builder
	for row := 0; row < g.Height(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Width(); col++ {
			sb.WriteString(cells[g.At(col, row)])
		}
	}
	return sb.String()
}

// cellBlocks renders one coloured block per intensity. True colour is built
// from the exact hex bytes; termenv's own hex conversion truncates channels
// (#39d353 becomes 56;211;83). Reduced profiles go through lipgloss, which
// maps to the nearest 256/16 colour anyway.
func cellBlocks(pal palette.Palette, profile termenv.Profile) [grid.MaxIntensity + 1]string {
	var cells [grid.MaxIntensity + 1]string

	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	for v := range cells {
		hex := pal.Level(v)
		if profile == termenv.TrueColor {
			if c, err := rgba(hex); err == nil {
				cells[v] = termenv.TrueColor.String(blockColor).
					Background(trueColor{c.R, c.G, c.B}).
					String()
				continue
			}
		}
		cells[v] = r.NewStyle().Background(lipgloss.Color(hex)).Render(blockColor)
	}
	return cells
}

// trueColor is a 24-bit termenv.Color with exact channel values.
type trueColor struct{ r, g, b uint8 }

// Sequence implements termenv.Color.
func (c trueColor) Sequence(bg bool) string {
	kind := "38"
	if bg {
		kind = "48"
	}
	return fmt.Sprintf("%s;2;%d;%d;%d", kind, c.r, c.g, c.b)
}

func asciiBlocks(g *grid.Grid) string {
	var sb strings.Builder
	for row := 0; row < g.Height(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Width(); col++ {
			if g.At(col, row) > grid.Empty {
				sb.WriteString(blockLit)
			} else {
				sb.WriteString(blockEmpty)
			}
		}
	}
	return sb.String()
}
