package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/matrixrain/internal/palette"
	"github.com/san-kum/matrixrain/internal/render"
)

// grid mirrors the terminal for the bubbletea backend. Draw applies a
// batch; View serializes it into styled lines.
type grid struct {
	rows, cols int
	cells      []render.Cell
	styles     map[palette.Color]lipgloss.Style
}

func newGrid() *grid {
	return &grid{styles: make(map[palette.Color]lipgloss.Style)}
}

func (g *grid) resize(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if rows == g.rows && cols == g.cols {
		return
	}
	g.rows, g.cols = rows, cols
	g.cells = make([]render.Cell, rows*cols)
}

func (g *grid) Size() (int, int, error) { return g.rows, g.cols, nil }

func (g *grid) Draw(b render.Batch) error {
	if b.Reset {
		for i := range g.cells {
			g.cells[i] = render.Cell{}
		}
	}
	for _, c := range b.Commands {
		if c.Row < 0 || c.Row >= g.rows || c.Col < 0 || c.Col >= g.cols {
			continue
		}
		i := c.Row*g.cols + c.Col
		if c.Op == render.OpClear {
			g.cells[i] = render.Cell{}
			continue
		}
		g.cells[i] = render.Cell{Glyph: c.Glyph, Color: c.Color, Lit: true}
	}
	return nil
}

func (g *grid) style(c palette.Color) lipgloss.Style {
	st, ok := g.styles[c]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		g.styles[c] = st
	}
	return st
}

// View renders the grid, styling runs of equally coloured cells at once.
func (g *grid) View() string {
	var b strings.Builder
	var run strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		row := g.cells[r*g.cols : (r+1)*g.cols]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].Lit == row[start].Lit && row[end].Color == row[start].Color {
				end++
			}
			if !row[start].Lit {
				b.WriteString(strings.Repeat(" ", end-start))
			} else {
				run.Reset()
				for _, c := range row[start:end] {
					run.WriteRune(c.Glyph)
				}
				b.WriteString(g.style(row[start].Color).Render(run.String()))
			}
			start = end
		}
	}
	return b.String()
}
