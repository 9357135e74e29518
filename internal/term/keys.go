package term

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/matrixrain/internal/control"
)

// FromTea translates a bubbletea key message. A burst of runes (paste,
// fast typing) becomes one event per rune.
func FromTea(msg tea.KeyMsg) []control.KeyEvent {
	switch msg.Type {
	case tea.KeyUp:
		return press(control.KeyUp)
	case tea.KeyDown:
		return press(control.KeyDown)
	case tea.KeyLeft:
		return press(control.KeyLeft)
	case tea.KeyRight:
		return press(control.KeyRight)
	case tea.KeyEsc:
		return press(control.KeyEscape)
	case tea.KeyEnter:
		return press(control.KeyEnter)
	case tea.KeySpace:
		return press(control.KeySpace)
	case tea.KeyCtrlC:
		return press(control.KeyCtrlC)
	case tea.KeyCtrlD:
		return press(control.KeyCtrlD)
	case tea.KeyCtrlZ:
		return press(control.KeyCtrlZ)
	case tea.KeyRunes:
		evs := make([]control.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, control.Char(r))
		}
		return evs
	}
	return press(control.KeyNone)
}

// FromTcell translates a tcell key event.
func FromTcell(ev *tcell.EventKey) control.KeyEvent {
	switch ev.Key() {
	case tcell.KeyUp:
		return control.Press(control.KeyUp)
	case tcell.KeyDown:
		return control.Press(control.KeyDown)
	case tcell.KeyLeft:
		return control.Press(control.KeyLeft)
	case tcell.KeyRight:
		return control.Press(control.KeyRight)
	case tcell.KeyEscape:
		return control.Press(control.KeyEscape)
	case tcell.KeyEnter:
		return control.Press(control.KeyEnter)
	case tcell.KeyCtrlC:
		return control.Press(control.KeyCtrlC)
	case tcell.KeyCtrlD:
		return control.Press(control.KeyCtrlD)
	case tcell.KeyCtrlZ:
		return control.Press(control.KeyCtrlZ)
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return control.Press(control.KeySpace)
		}
		return control.Char(ev.Rune())
	}
	return control.Press(control.KeyNone)
}

func press(k control.Key) []control.KeyEvent {
	return []control.KeyEvent{control.Press(k)}
}
