package schedule

import "time"

// Option customizes FromGrid.
type Option func(*config)

type config struct {
	start   time.Time
	hasDate bool
	clock   func() time.Time
	message string
}

func newConfig(opts ...Option) config {
	cfg := config{clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithStart pins the date of cell (0,0). Only the calendar date of t is used.
func WithStart(t time.Time) Option {
	return func(c *config) {
		c.start = t
		c.hasDate = true
	}
}

// WithClock replaces time.Now when computing the default window.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("schedule: WithClock(nil)")
	}
	return func(c *config) {
		c.clock = now
	}
}

// WithMessage records the source message on every event.
func WithMessage(msg string) Option {
	return func(c *config) {
		c.message = msg
	}
}
