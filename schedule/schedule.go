package schedule

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pixelcal/grid"
	"github.com/katalvlaran/pixelcal/internal/logging"
)

const methodFromGrid = "FromGrid"

// FromGrid derives one event per lit cell of g.
// date(col,row) = start + col×7 + row days.
// Returns ErrNilGrid when g is nil.
// Complexity: O(W×H).
func FromGrid(g *grid.Grid, opts ...Option) ([]Event, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodFromGrid, ErrNilGrid)
	}
	cfg := newConfig(opts...)
	start := StartDate(g.Width(), cfg.clock())
	if cfg.hasDate {
		start = civil(cfg.start)
	}

	lit := g.Lit()
	events := make([]Event, 0, len(lit))
	for _, cell := range lit {
		events = append(events, Event{
			Date:          start.AddDate(0, 0, cell.Col*grid.DaysPerWeek+cell.Row),
			Intensity:     cell.Intensity,
			SourceMessage: cfg.message,
		})
	}
	logging.Logger().Debug("schedule: derived events",
		"start", start.Format(DateLayout), "events", len(events))

	return events, nil
}

// StartDate returns today − weeks×7 days as a calendar date, where today is
// the calendar date of now in now's location.
func StartDate(weeks int, now time.Time) time.Time {
	return civil(now).AddDate(0, 0, -weeks*grid.DaysPerWeek)
}

// civil drops the time of day, keeping t's calendar date at midnight UTC.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Totals sums intensity per YYYY-MM-DD.
func Totals(events []Event) map[string]int {
	out := make(map[string]int)
	for _, e := range events {
		out[e.Day()] += e.Intensity
	}
	return out
}

// ExpandUnits converts to the repeated-unit shape: each event becomes
// Intensity events of intensity 1, order preserved.
func ExpandUnits(events []Event) []Event {
	n := 0
	for _, e := range events {
		n += e.Intensity
	}
	out := make([]Event, 0, n)
	for _, e := range events {
		for i := 0; i < e.Intensity; i++ {
			unit := e
			unit.Intensity = 1
			out = append(out, unit)
		}
	}
	return out
}
