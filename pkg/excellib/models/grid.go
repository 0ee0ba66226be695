// Package models defines data structures for form extraction.
package models

// Grid is an immutable rectangular view over the cells of a single
// worksheet. Row and column indices are 0-based. Cell values are
// string, int64, float64, or nil for empty cells.
type Grid struct {
	cells [][]any
	cols  int
}

// NewGrid builds a Grid from parsed cell rows. Rows may be ragged;
// the grid's column count is the widest row.
func NewGrid(cells [][]any) *Grid {
	cols := 0
	for _, row := range cells {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return &Grid{cells: cells, cols: cols}
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// Value returns the cell value at (row, col), or nil when the cell is
// empty or the coordinates fall outside the grid.
func (g *Grid) Value(row, col int) any {
	if row < 0 || row >= len(g.cells) {
		return nil
	}
	r := g.cells[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// IsEmpty reports whether a cell value counts as empty.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
