package bpdgrid

import "fmt"

// Grid is a rectangular arrangement of tiles, rows x cols.
// Row 1 is the top row, column 1 the leftmost column.
// A Grid is never mutated after New returns it.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major
}

// GridError reports a non-rectangular input matrix.
type GridError struct {
	Row       int // 1-indexed offending row
	Want, Got int // expected and actual row lengths
}

func (e *GridError) Error() string {
	return fmt.Sprintf("bpdgrid: row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// New builds a Grid from a row-major matrix of tiles.
// Every row must have the same length; a zero-row matrix is valid.
func New(cells [][]Cell) (*Grid, error) {
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, 0, rows*cols)}
	for i, row := range cells {
		if len(row) != cols {
			return nil, &GridError{Row: i + 1, Want: cols, Got: len(row)}
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the tile at row i, column j, both 1-indexed.
func (g *Grid) At(i, j int) Cell { return g.cells[(i-1)*g.cols+(j-1)] }
