package render

import (
	"github.com/san-kum/matrixrain/internal/palette"
	"github.com/san-kum/matrixrain/internal/sim"
)

// Op is the kind of a draw command.
type Op int

const (
	OpDraw Op = iota
	OpClear
)

func (o Op) String() string {
	if o == OpClear {
		return "clear"
	}
	return "draw"
}

// Command paints or blanks one cell.
type Command struct {
	Op    Op
	Row   int
	Col   int
	Glyph rune
	Color palette.Color
}

// Batch is everything a sink needs to bring the screen up to date. When
// Reset is set the sink must blank the whole screen before applying
// Commands, which then describe every lit cell.
type Batch struct {
	Reset    bool
	Commands []Command
}

// Compose lays every stream's trail onto a rows x cols grid and diffs it
// against prev. Only changed cells produce a command. If prev has a
// different size the batch is a full redraw.
func Compose(streams []*sim.Stream, rows, cols int, pal *palette.Palette, prev Frame) (Batch, Frame) {
	next := NewFrame(rows, cols)
	for _, st := range streams {
		if st == nil || st.Col < 0 || st.Col >= next.cols {
			continue
		}
		for d := 0; d <= st.Length; d++ {
			row := st.Head - d
			if row < 0 || row >= next.rows {
				continue
			}
			next.set(row, st.Col, Cell{
				Glyph: st.Glyph(d),
				Color: pal.Color(d, st.Length, st.Col),
				Lit:   true,
			})
		}
	}

	pr, pc := prev.Size()
	if pr != next.rows || pc != next.cols {
		return redraw(next), next
	}

	var cmds []Command
	for i, cell := range next.cells {
		old := prev.cells[i]
		if cell == old {
			continue
		}
		row, col := i/next.cols, i%next.cols
		if cell.Lit {
			cmds = append(cmds, Command{Op: OpDraw, Row: row, Col: col, Glyph: cell.Glyph, Color: cell.Color})
		} else {
			cmds = append(cmds, Command{Op: OpClear, Row: row, Col: col, Glyph: ' '})
		}
	}
	return Batch{Commands: cmds}, next
}

func redraw(f Frame) Batch {
	cmds := make([]Command, 0, f.Lit())
	for i, cell := range f.cells {
		if !cell.Lit {
			continue
		}
		cmds = append(cmds, Command{Op: OpDraw, Row: i / f.cols, Col: i % f.cols, Glyph: cell.Glyph, Color: cell.Color})
	}
	return Batch{Reset: true, Commands: cmds}
}
