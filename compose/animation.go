package compose

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// AnimationType picks how the entrance delay of each lit cell is computed.
type AnimationType int

const (
	// Wave delays by a linear function of column and row.
	Wave AnimationType = iota
	// Fade reveals every cell at once.
	Fade
	// Spiral delays by distance from the top-left cell.
	Spiral
	// Random draws each delay from the seeded source.
	Random
)

var animationNames = [...]string{"wave", "fade", "spiral", "random"}

// String returns the lower-case name of a.
func (a AnimationType) String() string {
	if a < Wave || a > Random {
		return fmt.Sprintf("AnimationType(%d)", int(a))
	}
	return animationNames[a]
}

// Valid reports whether a is one of the declared types.
func (a AnimationType) Valid() bool { return a >= Wave && a <= Random }

// ParseAnimation maps a name (any case) to an AnimationType. "" is Wave.
func ParseAnimation(name string) (AnimationType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Wave, nil
	}
	for i, s := range animationNames {
		if s == n {
			return AnimationType(i), nil
		}
	}
	return Wave, fmt.Errorf("ParseAnimation(%q): %w", name, ErrUnknownAnimation)
}

// delay returns the begin offset in seconds for the cell at (col,row).
// rng is consulted only in Random mode and must be non-nil there.
func (a AnimationType) delay(col, row int, dur float64, rng *rand.Rand) float64 {
	var d float64
	switch a {
	case Wave:
		d = float64(col)*0.02 + float64(row)*0.01
	case Spiral:
		d = math.Sqrt(float64(col*col+row*row)) * 0.05
	case Random:
		return rng.Float64() * dur
	default:
		return 0
	}
	if dur > 0 {
		d = math.Mod(d, dur)
	}
	return d
}
