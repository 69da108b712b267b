package compose

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/pixelcal/grid"
	"github.com/katalvlaran/pixelcal/internal/logging"
	"github.com/katalvlaran/pixelcal/palette"
)

const (
	clipID    = "grid-area"
	overlayID = "overlay"
	captionID = "caption"
)

var (
	monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	dayLabels   = [CanonicalDays]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// Compose returns the SVG document for g.
func Compose(g *grid.Grid, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, g, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write streams the SVG document for g to w.
func Write(w io.Writer, g *grid.Grid, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("Write: %w", ErrNilGrid)
	}
	cfg := newConfig(opts...)
	ew := &errWriter{w: w}
	d := &document{cfg: cfg, pal: palette.For(cfg.theme), canvas: svg.New(ew)}
	d.draw(g)
	if ew.err != nil {
		return fmt.Errorf("Write: %w", ew.err)
	}
	return nil
}

// ContentColumns is the width the composer treats as content: the larger of
// the declared width and the last lit column plus one.
func ContentColumns(g *grid.Grid, declared int) int {
	n := g.LastLitColumn() + 1
	if declared > n {
		return declared
	}
	return n
}

type document struct {
	cfg    config
	pal    palette.Palette
	canvas *svg.SVG
}

func (d *document) draw(g *grid.Grid) {
	c := d.canvas
	w, h := d.cfg.docWidth(), d.cfg.docHeight()

	c.Start(w, h, fmt.Sprintf(`viewBox="0 0 %d %d"`, w, h))
	d.defs()
	c.Roundrect(0, 0, w, h, bgRound, bgRound, attr("fill", d.pal.Background))

	c.Text(padLeft, 25, d.cfg.title, `class="graph-title"`)
	c.Text(w-padRight, 25, Subtitle, `class="graph-subtitle"`, `text-anchor="end"`)
	d.months()
	d.days()

	c.Translate(padLeft, padTop)
	d.background()
	d.overlay(g)
	c.Gend()

	d.captions(w, h)
	c.End()
}

func (d *document) defs() {
	c := d.canvas
	c.Def()
	c.Style("text/css", d.css())
	c.ClipPath(attr("id", clipID))
	c.Rect(0, 0, d.cfg.gridWidth(), d.cfg.gridHeight())
	c.ClipEnd()
	c.DefEnd()
}

func (d *document) css() string {
	const family = `font-family: Inter, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;`
	return fmt.Sprintf(`
.graph-title { %[1]s font-size: 16px; font-weight: 600; fill: %[2]s; }
.graph-subtitle { %[1]s font-size: 12px; fill: %[3]s; }
.month-label, .day-label { %[1]s font-size: 10px; fill: %[3]s; }
.stats-text { %[1]s font-size: 11px; fill: %[3]s; }
.caption { %[1]s font-size: 12px; font-weight: 500; fill: %[2]s; }
`, family, d.pal.Text, d.pal.TextMuted)
}

// months spreads the twelve month ticks evenly over the canonical width.
func (d *document) months() {
	c := d.canvas
	c.Translate(padLeft, padTop-5)
	step := d.cfg.step()
	for i, m := range monthLabels {
		x := i * CanonicalWeeks * step / len(monthLabels)
		c.Text(x, 0, m, `class="month-label"`)
	}
	c.Gend()
}

// days labels every other row: Mon, Wed, Fri.
func (d *document) days() {
	c := d.canvas
	c.Translate(padLeft-5, padTop)
	for i := 1; i < CanonicalDays; i += 2 {
		y := i*d.cfg.step() + d.cfg.cellSize/2 + 3
		c.Text(0, y, dayLabels[i], `class="day-label"`, `text-anchor="end"`)
	}
	c.Gend()
}

func (d *document) background() {
	c := d.canvas
	c.Group(`class="background"`)
	empty := attr("fill", d.pal.Empty())
	for col := 0; col < CanonicalWeeks; col++ {
		for row := 0; row < CanonicalDays; row++ {
			x, y := col*d.cfg.step(), row*d.cfg.step()
			c.Roundrect(x, y, d.cfg.cellSize, d.cfg.cellSize, cellRound, cellRound, empty)
		}
	}
	c.Gend()
}

// overlay draws the lit cells with their entrance animation, inside the
// scroll layer when the content overflows the canonical width.
func (d *document) overlay(g *grid.Grid) {
	c := d.canvas
	content := ContentColumns(g, d.cfg.contentWidth)
	scrolling := d.cfg.scroll && content > CanonicalWeeks

	c.Group(attr("clip-path", "url(#"+clipID+")"))
	c.Group(attr("id", overlayID))
	if scrolling {
		dist := (content - CanonicalWeeks) * d.cfg.step()
		logging.Logger().Debug("compose: scrolling overflow", "content", content, "distance", dist)
		values := fmt.Sprintf("0,0; -%d,0; -%d,0; 0,0", dist, dist)
		c.AnimateTranslate("#"+overlayID, 0, 0, -dist, 0, d.cfg.scrollDur, 0, attr("values", values))
	}

	rng := d.cfg.random()
	for col := 0; col < g.Width(); col++ {
		for row := 0; row < g.Height(); row++ {
			v := g.At(col, row)
			if v == grid.Empty {
				continue
			}
			id := fmt.Sprintf("c%d-%d", col, row)
			x, y := col*d.cfg.step(), row*d.cfg.step()
			c.Roundrect(x, y, d.cfg.cellSize, d.cfg.cellSize, cellRound, cellRound,
				attr("id", id), attr("fill", d.pal.Level(v)), attr("opacity", "0"))
			begin := seconds(d.cfg.animation.delay(col, row, d.cfg.animationDur, rng))
			c.Animate("#"+id, "opacity", 0, 1, d.cfg.animationDur, 1,
				attr("begin", begin), attr("fill", "freeze"))
			d.animateFill(id, d.pal.Empty(), d.pal.Level(v), begin)
		}
	}
	c.Gend()
	c.Gend()
}

// animateFill moves a cell from the empty colour to its own over the same
// window as its fade-in. svgo's Animate only takes integer from/to values,
// so the element is written in its layout by hand.
func (d *document) animateFill(id, from, to, begin string) {
	fmt.Fprintf(d.canvas.Writer,
		`<animate xlink:href="#%s" attributeName="fill" values="%s;%s" dur="%gs" repeatCount="1" begin="%s" fill="freeze" />`+"\n",
		id, from, to, d.cfg.animationDur, begin)
}

func (d *document) captions(w, h int) {
	c := d.canvas
	if len(d.cfg.stats) > 0 {
		parts := make([]string, 0, len(d.cfg.stats))
		for _, s := range d.cfg.stats {
			if s.Key == "" {
				parts = append(parts, s.Value)
				continue
			}
			parts = append(parts, s.Key+": "+s.Value)
		}
		c.Text(padLeft, h-20, strings.Join(parts, " • "), `class="stats-text"`)
	}
	if d.cfg.message != "" {
		c.Text(w/2, h-35, d.cfg.message, attr("id", captionID), `class="caption"`, `text-anchor="middle"`)
		c.Animate("#"+captionID, "opacity", 0, 1, 2, 0, attr("values", "0;1;0"))
	}
}

// attr renders a key="value" pair for svgo. Values are our own constants or
// palette colours, never caller text.
func attr(k, v string) string { return k + `="` + v + `"` }

func seconds(f float64) string { return strconv.FormatFloat(f, 'f', 3, 64) + "s" }

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
