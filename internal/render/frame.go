package render

import "github.com/san-kum/matrixrain/internal/palette"

// Cell is what one screen position shows. The zero Cell is background.
type Cell struct {
	Glyph rune
	Color palette.Color
	Lit   bool
}

// Frame is the full grid of cells produced by one Compose call. The
// zero Frame is an empty 0x0 grid.
type Frame struct {
	rows, cols int
	cells      []Cell
}

func NewFrame(rows, cols int) Frame {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return Frame{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

func (f Frame) Size() (rows, cols int) { return f.rows, f.cols }

// At returns the cell at (row, col), or background outside the grid.
func (f Frame) At(row, col int) Cell {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return Cell{}
	}
	return f.cells[row*f.cols+col]
}

// Lit counts the non-background cells.
func (f Frame) Lit() int {
	n := 0
	for _, c := range f.cells {
		if c.Lit {
			n++
		}
	}
	return n
}

func (f Frame) set(row, col int, c Cell) {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return
	}
	f.cells[row*f.cols+col] = c
}
