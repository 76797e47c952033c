package life

import (
	"fmt"
	"math"
)

// Source supplies the randomness used to seed a grid. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Grid is a fixed-size matrix of dead (0) and alive (1) cells.
// Cells are stored row-major in a single buffer.
type Grid struct {
	rows  int
	cols  int
	cells []uint8
}

// NewGrid returns an all-dead grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]uint8, rows*cols),
	}
}

// RandomGrid returns a grid where each cell is alive with probability density.
func RandomGrid(rows, cols int, density float64, src Source) *Grid {
	g := NewGrid(rows, cols)
	for i := range g.cells {
		if src.Float64() < density {
			g.cells[i] = 1
		}
	}
	return g
}

// FromRows builds a grid from a row-major matrix of 0/1 values.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid must have at least one row and one column")
	}
	g := NewGrid(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != g.cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), g.cols)
		}
		for j, v := range row {
			if v > 1 {
				return nil, fmt.Errorf("cell (%d,%d) = %d, want 0 or 1", i, j, v)
			}
			g.cells[i*g.cols+j] = v
		}
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

// Size is the total number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// At returns the cell value. Coordinates must be in bounds.
func (g *Grid) At(row, col int) uint8 {
	return g.cells[row*g.cols+col]
}

// InBounds reports whether (row, col) addresses a cell of g.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.rows && col < g.cols
}

func (g *Grid) set(row, col int, v uint8) {
	g.cells[row*g.cols+col] = v
}

// Alive counts live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, v := range g.cells {
		n += int(v)
	}
	return n
}

// Population is the live percentage rounded to two decimals.
func (g *Grid) Population() float64 {
	if len(g.cells) == 0 {
		return 0
	}
	pct := float64(g.Alive()) * 100 / float64(len(g.cells))
	return math.Round(pct*100) / 100
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]uint8, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// Matrix returns a fresh row-major copy of the cells.
func (g *Grid) Matrix() [][]uint8 {
	m := make([][]uint8, g.rows)
	for i := range m {
		m[i] = make([]uint8, g.cols)
		copy(m[i], g.cells[i*g.cols:(i+1)*g.cols])
	}
	return m
}
