package grid

// Intensity levels. Renderers emit Empty or On; the range in between exists
// for consumers that grade activity the way the calendar palette does.
const (
	Empty        = 0
	On           = 4
	MaxIntensity = 4
)

// Calendar defaults: one column per week, one row per weekday.
const (
	DefaultWeeks = 52
	DaysPerWeek  = 7
)

// Cell is one grid position with its stored intensity.
type Cell struct {
	Col, Row  int
	Intensity int
}

// Grid is a fixed-size, column-major intensity matrix.
// The zero value is not usable; construct with New or FromColumns.
type Grid struct {
	width, height int
	cells         []int
}
