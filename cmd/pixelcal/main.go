// pixelcal draws a message on a contribution calendar and prints it as an
// animated SVG, a dated schedule, terminal blocks or a PNG.
//
// Settings come from an optional YAML/JSONC file (--config); flags override
// the file. Several candidate messages may be given: with --history the first
// one not drawn recently is used and recorded.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pixelcal"
	"github.com/katalvlaran/pixelcal/compose"
	"github.com/katalvlaran/pixelcal/config"
	"github.com/katalvlaran/pixelcal/palette"
	"github.com/katalvlaran/pixelcal/preview"
	"github.com/katalvlaran/pixelcal/recency"
	"github.com/katalvlaran/pixelcal/render"
	"github.com/katalvlaran/pixelcal/schedule"
	"github.com/katalvlaran/pixelcal/validate"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// usageError marks bad flags, bad settings and rejected messages.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }
func (e usageError) ExitCode() int { return 2 }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

type options struct {
	mode      string
	cfgPath   string
	out       string
	history   string
	logLevel  string
	scale     int
	theme     string
	animation string
	seed      int64
	start     string
	format    string
	maxWidth  int
	font      string
	iconScale int
	noScroll  bool
}

func run(args []string, stdout, stderr io.Writer) error {
	var o options
	fs := pflag.NewFlagSet("pixelcal", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&o.mode, "mode", "m", "svg", "output: svg, schedule, terminal or png")
	fs.StringVarP(&o.cfgPath, "config", "c", "", "settings file (.yaml, .yml, .json, .jsonc)")
	fs.StringVarP(&o.out, "out", "o", "", "write to this file instead of stdout")
	fs.StringVar(&o.history, "history", "", "recently drawn messages, one per line; skips repeats and is updated")
	fs.StringVar(&o.logLevel, "log-level", "warn", "debug, info, warn or error")
	fs.IntVar(&o.scale, "scale", 2, "png upscale factor")
	fs.StringVar(&o.theme, "theme", "", "light or dark")
	fs.StringVar(&o.animation, "animation", "", "wave, fade, spiral or random")
	fs.Int64Var(&o.seed, "seed", 0, "seed for --animation random")
	fs.StringVar(&o.start, "start", "", "schedule start date, YYYY-MM-DD")
	fs.StringVar(&o.format, "format", "", "schedule encoding: json, yaml or cbor")
	fs.IntVar(&o.maxWidth, "max-width", 0, "grid columns")
	fs.StringVar(&o.font, "font", "", "pixel, slim or bold")
	fs.IntVar(&o.iconScale, "icon-scale", 0, "icon magnification")
	fs.BoolVar(&o.noScroll, "no-scroll", false, "never scroll wide messages in svg mode")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  pixelcal [flags] MESSAGE [MESSAGE...]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usageError{err}
	}

	level, err := parseLevel(o.logLevel)
	if err != nil {
		return usageError{err}
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	pixelcal.SetLogger(logger)
	defer pixelcal.SetLogger(nil)

	if fs.NArg() == 0 {
		fs.Usage()
		return usagef("no message given")
	}

	cfg := config.Default()
	if o.cfgPath != "" {
		if cfg, err = config.Load(o.cfgPath); err != nil {
			return usageError{err}
		}
	}
	o.apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}

	msg, hist, err := pick(fs.Args(), o.history, cfg.Validator(), logger)
	if err != nil {
		return err
	}

	w := stdout
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := emit(w, o, cfg, msg, logger); err != nil {
		return err
	}
	if f, ok := w.(*os.File); ok && o.out != "" {
		if err := f.Close(); err != nil {
			return err
		}
	}

	// Only a message that was actually drawn counts as recent.
	if hist != nil {
		hist.Add(msg)
		return saveHistory(o.history, hist)
	}
	return nil
}

// apply copies the flags the user set onto cfg.
func (o options) apply(fs *pflag.FlagSet, cfg *config.Config) {
	set := func(name string) bool { return fs.Changed(name) }
	if set("theme") {
		cfg.Graphic.Theme = o.theme
	}
	if set("animation") {
		cfg.Graphic.Animation = o.animation
	}
	if set("seed") {
		cfg.Graphic.Seed = o.seed
	}
	if set("no-scroll") {
		cfg.Graphic.Scroll = !o.noScroll
	}
	if set("start") {
		cfg.Schedule.Start = o.start
	}
	if set("format") {
		cfg.Schedule.Format = o.format
	}
	if set("max-width") {
		cfg.Render.MaxWidth = o.maxWidth
	}
	if set("font") {
		cfg.Render.Font = o.font
	}
	if set("icon-scale") {
		cfg.Render.IconScale = o.iconScale
	}
}

func emit(w io.Writer, o options, cfg *config.Config, msg string, logger *slog.Logger) error {
	theme, _ := palette.ParseTheme(cfg.Graphic.Theme)
	ropts := cfg.RenderOptions()

	switch o.mode {
	case "svg":
		width := render.MeasureWidth(msg, ropts...)
		wide := append(ropts, render.WithMaxWidth(max(width, cfg.Render.MaxWidth)))
		g := render.Render(msg, wide...)
		copts := append(cfg.ComposeOptions(), compose.WithContentWidth(width), compose.WithMessage(msg))
		return compose.Write(w, g, copts...)

	case "schedule":
		res := render.Layout(msg, ropts...)
		if !res.FullyRendered {
			logger.Warn("message does not fit the grid, schedule is truncated",
				"message", msg, "width", render.MeasureWidth(msg, ropts...), "maxWidth", cfg.Render.MaxWidth)
		}
		sopts := append([]schedule.Option{schedule.WithClock(now)}, cfg.ScheduleOptions()...)
		sopts = append(sopts, schedule.WithMessage(msg))
		events, err := schedule.FromGrid(res.Grid, sopts...)
		if err != nil {
			return err
		}
		return schedule.Encode(w, events, cfg.ScheduleFormat())

	case "terminal":
		g := render.Render(msg, ropts...)
		profile := termenv.Ascii
		if o.out == "" {
			profile = termenv.EnvColorProfile()
		}
		_, err := fmt.Fprintln(w, preview.TerminalProfile(g, theme, profile))
		return err

	case "png":
		if o.scale < 1 {
			return usagef("--scale must be >= 1, got %d", o.scale)
		}
		g := render.Render(msg, ropts...)
		return preview.PNG(w, g, preview.WithTheme(theme), preview.WithCaption(msg), preview.WithScale(o.scale))

	default:
		return usagef("unknown --mode %q", o.mode)
	}
}

// pick returns the first valid candidate not in the history file, or the
// first valid one when all are recent. Invalid candidates are skipped; when
// none is valid the first failure is returned as a usage error. The history
// buffer is returned unchanged for the caller to record the pick once output
// succeeded; it is nil without --history.
func pick(candidates []string, path string, v *validate.Validator, logger *slog.Logger) (string, *recency.Buffer, error) {
	var (
		valid    []string
		firstErr error
	)
	for _, c := range candidates {
		if err := v.Validate(c).Err(); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("message %q: %w", c, err)
			}
			logger.Info("skipping invalid candidate", "message", c, "reason", err)
			continue
		}
		valid = append(valid, c)
	}
	if len(valid) == 0 {
		return "", nil, usageError{firstErr}
	}
	if path == "" {
		return valid[0], nil, nil
	}

	buf, err := loadHistory(path)
	if err != nil {
		return "", nil, err
	}
	msg := valid[0]
	if fresh := buf.Fresh(valid); len(fresh) > 0 {
		msg = fresh[0]
	} else {
		logger.Info("all candidates drawn recently, reusing", "message", msg)
	}
	return msg, buf, nil
}

func loadHistory(path string) (*recency.Buffer, error) {
	buf, err := recency.New(recency.DefaultCapacity)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return buf, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			buf.Add(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return buf, nil
}

func saveHistory(path string, buf *recency.Buffer) error {
	var sb strings.Builder
	for _, m := range buf.Items() {
		sb.WriteString(m)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("--log-level %q: %w", s, err)
	}
	return l, nil
}

// now feeds the default schedule window.
var now = time.Now
