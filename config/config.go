// Package config loads pixelcal settings from a YAML or JSONC file and turns
// them into the functional options of the render, compose, schedule and
// validate packages.
//
// A file only needs the keys it changes: loading starts from Default and
// decodes over it. Unknown keys are rejected so typos surface early.
//
//	render:
//	  font: pixel
//	  max_width: 52
//	graphic:
//	  theme: light
//	  animation: spiral
//	schedule:
//	  start: "2026-01-04"
//	validation:
//	  max_length: 30
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pixelcal/compose"
	"github.com/katalvlaran/pixelcal/glyph"
	"github.com/katalvlaran/pixelcal/palette"
	"github.com/katalvlaran/pixelcal/render"
	"github.com/katalvlaran/pixelcal/schedule"
	"github.com/katalvlaran/pixelcal/validate"
)

// Config is the whole settings file.
type Config struct {
	Render     RenderConfig     `yaml:"render" json:"render"`
	Graphic    GraphicConfig    `yaml:"graphic" json:"graphic"`
	Schedule   ScheduleConfig   `yaml:"schedule" json:"schedule"`
	Validation ValidationConfig `yaml:"validation" json:"validation"`
}

// RenderConfig mirrors the render options.
type RenderConfig struct {
	Font        string `yaml:"font" json:"font"`
	MaxWidth    int    `yaml:"max_width" json:"max_width"`
	MaxHeight   int    `yaml:"max_height" json:"max_height"`
	CharSpacing int    `yaml:"char_spacing" json:"char_spacing"`
	IconScale   int    `yaml:"icon_scale" json:"icon_scale"`
	Icons       bool   `yaml:"icons" json:"icons"`
}

// GraphicConfig mirrors the compose options. Durations are in seconds.
type GraphicConfig struct {
	Theme            string  `yaml:"theme" json:"theme"`
	Animation        string  `yaml:"animation" json:"animation"`
	AnimationSeconds float64 `yaml:"animation_seconds" json:"animation_seconds"`
	Scroll           bool    `yaml:"scroll" json:"scroll"`
	ScrollSeconds    float64 `yaml:"scroll_seconds" json:"scroll_seconds"`
	CellSize         int     `yaml:"cell_size" json:"cell_size"`
	CellGap          int     `yaml:"cell_gap" json:"cell_gap"`
	Title            string  `yaml:"title" json:"title"`
	Seed             int64   `yaml:"seed" json:"seed"`
}

// ScheduleConfig holds the schedule window and wire format.
type ScheduleConfig struct {
	// Start is a YYYY-MM-DD date; empty means the rolling window ending today.
	Start  string `yaml:"start" json:"start"`
	Format string `yaml:"format" json:"format"`
}

// ValidationConfig holds the message length limits.
type ValidationConfig struct {
	MinLength int `yaml:"min_length" json:"min_length"`
	MaxLength int `yaml:"max_length" json:"max_length"`
}

// Default returns the settings every package uses when given no options.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Font:        glyph.Pixel.String(),
			MaxWidth:    render.DefaultMaxWidth,
			MaxHeight:   render.DefaultMaxHeight,
			CharSpacing: render.DefaultCharSpacing,
			IconScale:   render.DefaultIconScale,
			Icons:       true,
		},
		Graphic: GraphicConfig{
			Theme:            palette.Dark.String(),
			Animation:        compose.Wave.String(),
			AnimationSeconds: compose.DefaultAnimationDuration,
			Scroll:           true,
			ScrollSeconds:    compose.DefaultScrollDuration,
			CellSize:         compose.DefaultCellSize,
			CellGap:          compose.DefaultCellGap,
			Title:            compose.DefaultTitle,
		},
		Schedule: ScheduleConfig{
			Format: string(schedule.FormatJSON),
		},
		Validation: ValidationConfig{
			MinLength: validate.DefaultMinLength,
			MaxLength: validate.DefaultMaxLength,
		},
	}
}

// Validate reports every bad value at once, each wrapped around
// ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	r := c.Render
	if _, err := glyph.ParseFont(r.Font); err != nil {
		bad("render.font %q", r.Font)
	}
	if r.MaxWidth < 1 {
		bad("render.max_width must be >= 1, got %d", r.MaxWidth)
	}
	if r.MaxHeight < 1 {
		bad("render.max_height must be >= 1, got %d", r.MaxHeight)
	}
	if r.CharSpacing < 0 {
		bad("render.char_spacing must be >= 0, got %d", r.CharSpacing)
	}
	if r.IconScale < 1 {
		bad("render.icon_scale must be >= 1, got %d", r.IconScale)
	}

	g := c.Graphic
	if _, err := palette.ParseTheme(g.Theme); err != nil {
		bad("graphic.theme %q", g.Theme)
	}
	if _, err := compose.ParseAnimation(g.Animation); err != nil {
		bad("graphic.animation %q", g.Animation)
	}
	if g.AnimationSeconds <= 0 {
		bad("graphic.animation_seconds must be > 0, got %g", g.AnimationSeconds)
	}
	if g.ScrollSeconds <= 0 {
		bad("graphic.scroll_seconds must be > 0, got %g", g.ScrollSeconds)
	}
	if g.CellSize < 1 {
		bad("graphic.cell_size must be >= 1, got %d", g.CellSize)
	}
	if g.CellGap < 0 {
		bad("graphic.cell_gap must be >= 0, got %d", g.CellGap)
	}

	if c.Schedule.Start != "" {
		if _, err := time.Parse(schedule.DateLayout, c.Schedule.Start); err != nil {
			bad("schedule.start %q is not YYYY-MM-DD", c.Schedule.Start)
		}
	}
	if _, err := schedule.ParseFormat(c.Schedule.Format); err != nil {
		bad("schedule.format %q", c.Schedule.Format)
	}

	v := c.Validation
	if v.MinLength < 1 {
		bad("validation.min_length must be >= 1, got %d", v.MinLength)
	}
	if v.MaxLength < 1 {
		bad("validation.max_length must be >= 1, got %d", v.MaxLength)
	}
	if v.MinLength > v.MaxLength {
		bad("validation.min_length %d > max_length %d", v.MinLength, v.MaxLength)
	}

	return errors.Join(errs...)
}

// The option helpers below assume Validate returned nil; option constructors
// panic on the values Validate rejects.

// RenderOptions maps the render section.
func (c *Config) RenderOptions() []render.Option {
	font, _ := glyph.ParseFont(c.Render.Font)
	return []render.Option{
		render.WithFont(font),
		render.WithMaxWidth(c.Render.MaxWidth),
		render.WithMaxHeight(c.Render.MaxHeight),
		render.WithCharSpacing(c.Render.CharSpacing),
		render.WithIconScale(c.Render.IconScale),
		render.WithIcons(c.Render.Icons),
	}
}

// ComposeOptions maps the graphic section.
func (c *Config) ComposeOptions() []compose.Option {
	g := c.Graphic
	theme, _ := palette.ParseTheme(g.Theme)
	anim, _ := compose.ParseAnimation(g.Animation)
	return []compose.Option{
		compose.WithTheme(theme),
		compose.WithAnimation(anim),
		compose.WithAnimationDuration(seconds(g.AnimationSeconds)),
		compose.WithScroll(g.Scroll),
		compose.WithScrollDuration(seconds(g.ScrollSeconds)),
		compose.WithCellSize(g.CellSize),
		compose.WithCellGap(g.CellGap),
		compose.WithTitle(g.Title),
		compose.WithSeed(g.Seed),
	}
}

// ScheduleOptions maps the schedule section.
func (c *Config) ScheduleOptions() []schedule.Option {
	if c.Schedule.Start == "" {
		return nil
	}
	start, _ := time.Parse(schedule.DateLayout, c.Schedule.Start)
	return []schedule.Option{schedule.WithStart(start)}
}

// ScheduleFormat returns the parsed schedule.format.
func (c *Config) ScheduleFormat() schedule.Format {
	f, _ := schedule.ParseFormat(c.Schedule.Format)
	return f
}

// Validator builds a validator from the validation section.
func (c *Config) Validator() *validate.Validator {
	return validate.New(c.ValidatorOptions()...)
}

// ValidatorOptions maps the validation section.
func (c *Config) ValidatorOptions() []validate.Option {
	return []validate.Option{
		validate.WithMinLength(c.Validation.MinLength),
		validate.WithMaxLength(c.Validation.MaxLength),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
