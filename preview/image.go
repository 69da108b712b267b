package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/pixelcal/grid"
	"github.com/katalvlaran/pixelcal/palette"
)

// Image defaults.
const (
	DefaultCellSize = 10
	DefaultCellGap  = 2
	DefaultScale    = 1

	captionBand = 20 // 13px face plus padding
)

// Option customizes Image and PNG.
type Option func(*imageConfig)

type imageConfig struct {
	theme    palette.Theme
	cellSize int
	cellGap  int
	scale    int
	caption  string
}

// WithTheme selects the palette.
func WithTheme(t palette.Theme) Option {
	return func(c *imageConfig) { c.theme = t }
}

// WithCellSize sets the cell side in pixels before scaling. Panics if px < 1.
func WithCellSize(px int) Option {
	if px < 1 {
		panic("preview: WithCellSize(px<1)")
	}
	return func(c *imageConfig) { c.cellSize = px }
}

// WithCellGap sets the gap between cells in pixels. Panics if px < 0.
func WithCellGap(px int) Option {
	if px < 0 {
		panic("preview: WithCellGap(px<0)")
	}
	return func(c *imageConfig) { c.cellGap = px }
}

// WithScale upscales the finished image by k. Panics if k < 1.
func WithScale(k int) Option {
	if k < 1 {
		panic("preview: WithScale(k<1)")
	}
	return func(c *imageConfig) { c.scale = k }
}

// WithCaption draws s under the grid.
func WithCaption(s string) Option {
	return func(c *imageConfig) { c.caption = s }
}

// Image draws g onto a new RGBA image.
func Image(g *grid.Grid, opts ...Option) (*image.RGBA, error) {
	if g == nil {
		return nil, fmt.Errorf("Image: %w", ErrNilGrid)
	}
	cfg := imageConfig{
		theme:    palette.Dark,
		cellSize: DefaultCellSize,
		cellGap:  DefaultCellGap,
		scale:    DefaultScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	pal := palette.For(cfg.theme)
	var levels [grid.MaxIntensity + 1]color.RGBA
	for v := range levels {
		c, err := rgba(pal.Level(v))
		if err != nil {
			return nil, fmt.Errorf("Image: %w", err)
		}
		levels[v] = c
	}
	bg, err := rgba(pal.Background)
	if err != nil {
		return nil, fmt.Errorf("Image: %w", err)
	}

	step := cfg.cellSize + cfg.cellGap
	w := g.Width()*step + cfg.cellGap
	h := g.Height()*step + cfg.cellGap
	if cfg.caption != "" {
		h += captionBand
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	for col := 0; col < g.Width(); col++ {
		for row := 0; row < g.Height(); row++ {
			x, y := cfg.cellGap+col*step, cfg.cellGap+row*step
			cell := image.Rect(x, y, x+cfg.cellSize, y+cfg.cellSize)
			draw.Draw(img, cell, image.NewUniform(levels[g.At(col, row)]), image.Point{}, draw.Src)
		}
	}

	if cfg.caption != "" {
		text, err := rgba(pal.Text)
		if err != nil {
			return nil, fmt.Errorf("Image: %w", err)
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(text),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(cfg.cellGap, h-6),
		}
		d.DrawString(cfg.caption)
	}

	if cfg.scale == 1 {
		return img, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, w*cfg.scale, h*cfg.scale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out, nil
}

// PNG encodes the Image of g to w.
func PNG(w io.Writer, g *grid.Grid, opts ...Option) error {
	img, err := Image(g, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("PNG: %w", err)
	}
	return nil
}

func rgba(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", hex, ErrBadColor)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
