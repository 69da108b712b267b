package grid

import (
	"fmt"
	"strings"
)

// New returns an all-empty width×height grid.
// Returns ErrBadSize if either dimension is below 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrBadSize)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}, nil
}

// FromColumns builds a grid from a column-major 2D slice (cols[c][r]).
// It deep-copies the input and clamps every value into [Empty, MaxIntensity].
// Returns ErrEmptyGrid if cols has no columns or no rows,
// ErrNonRectangular if any column length differs.
func FromColumns(cols [][]int) (*Grid, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(cols), len(cols[0])
	for _, col := range cols {
		if len(col) != h {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for c := 0; c < w; c++ {
		for r := 0; r < h; r++ {
			g.cells[g.index(c, r)] = clamp(cols[c][r])
		}
	}

	return g, nil
}

// Width returns the number of columns (weeks).
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows (days).
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (col,row) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// At returns the intensity at (col,row); positions outside the grid read as Empty.
func (g *Grid) At(col, row int) int {
	if !g.InBounds(col, row) {
		return Empty
	}
	return g.cells[g.index(col, row)]
}

// Set stores v (clamped into [Empty, MaxIntensity]) at (col,row).
// Out-of-range writes are dropped; the result reports whether the write landed.
func (g *Grid) Set(col, row, v int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	g.cells[g.index(col, row)] = clamp(v)
	return true
}

// Column returns a copy of column col, or nil when col is out of range.
func (g *Grid) Column(col int) []int {
	if col < 0 || col >= g.width {
		return nil
	}
	start := col * g.height
	return append([]int(nil), g.cells[start:start+g.height]...)
}

// Columns returns a column-major deep copy, suitable for FromColumns.
func (g *Grid) Columns() [][]int {
	out := make([][]int, g.width)
	for c := range out {
		out[c] = g.Column(c)
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  append([]int(nil), g.cells...),
	}
}

// Equal reports whether g and o have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Sum returns the total intensity over all cells.
func (g *Grid) Sum() int {
	total := 0
	for _, v := range g.cells {
		total += v
	}
	return total
}

// ColumnSum returns the total intensity of column col (0 when out of range).
func (g *Grid) ColumnSum(col int) int {
	total := 0
	for _, v := range g.Column(col) {
		total += v
	}
	return total
}

// Lit returns every non-empty cell in column-major order.
func (g *Grid) Lit() []Cell {
	var out []Cell
	for i, v := range g.cells {
		if v == Empty {
			continue
		}
		c, r := g.Coordinate(i)
		out = append(out, Cell{Col: c, Row: r, Intensity: v})
	}
	return out
}

// LastLitColumn returns the right-most column holding a non-empty cell, or -1.
func (g *Grid) LastLitColumn() int {
	for i := len(g.cells) - 1; i >= 0; i-- {
		if g.cells[i] != Empty {
			c, _ := g.Coordinate(i)
			return c
		}
	}
	return -1
}

// String draws the grid row by row: '#' for lit cells, '.' for empty ones.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.width; c++ {
			if g.At(c, r) != Empty {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// index maps (col,row) to the column-major index col*Height + row.
func (g *Grid) index(col, row int) int {
	return col*g.height + row
}

// Coordinate converts a column-major index back to (col,row).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (col, row int) {
	return idx / g.height, idx % g.height
}

func clamp(v int) int {
	switch {
	case v < Empty:
		return Empty
	case v > MaxIntensity:
		return MaxIntensity
	default:
		return v
	}
}
