package term

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/matrixrain/internal/control"
	"github.com/san-kum/matrixrain/internal/frame"
	"github.com/san-kum/matrixrain/internal/rain"
)

// FrameMsg asks the model to run one frame.
type FrameMsg time.Time

// interruptMsg is sent when the run context is cancelled.
type interruptMsg struct{}

// keyQueue buffers key messages between frames and serves them to the
// loop as its input source.
type keyQueue struct {
	pending []control.KeyEvent
}

func (q *keyQueue) push(evs ...control.KeyEvent) { q.pending = append(q.pending, evs...) }

func (q *keyQueue) Poll() []control.KeyEvent {
	evs := q.pending
	q.pending = nil
	return evs
}

// Model is the bubbletea model of the default backend.
type Model struct {
	loop   *frame.Loop
	keys   *keyQueue
	screen *grid
	err    error
}

// NewModel builds a model whose frames are driven by tea.Tick.
func NewModel(opts Options) Model {
	keys := &keyQueue{}
	screen := newGrid()
	return Model{
		loop:   opts.newLoop(keys, screen),
		keys:   keys,
		screen: screen,
	}
}

func nextFrame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return nextFrame(m.loop.Delay())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys.push(FromTea(msg)...)
	case tea.WindowSizeMsg:
		m.screen.resize(msg.Height, msg.Width)
	case interruptMsg:
		m.keys.push(control.Press(control.KeyInterrupt))
	case FrameMsg:
		if err := m.loop.Tick(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.loop.Phase() == frame.Terminating {
			return m, tea.Quit
		}
		return m, nextFrame(m.loop.Delay())
	}
	return m, nil
}

func (m Model) View() string {
	if m.loop.Phase() == frame.Terminating {
		return ""
	}
	return m.screen.View()
}

// Err reports the error that stopped the model, if any.
func (m Model) Err() error { return m.err }

// Loop exposes the frame loop behind the model.
func (m Model) Loop() *frame.Loop { return m.loop }

// RunTea runs the bubbletea backend on the alternate screen. Signal
// handling is left to ctx so quit and interrupt share one exit path.
func RunTea(ctx context.Context, opts Options, extra ...tea.ProgramOption) error {
	progOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithoutSignalHandler()}, extra...)
	p := tea.NewProgram(NewModel(opts), progOpts...)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Send(interruptMsg{})
		case <-done:
		}
	}()

	final, err := p.Run()
	m, ok := final.(Model)
	if err != nil {
		// p.Run hands back the last model on failure too; a loop that has
		// ticked means the terminal was up and failed mid-run.
		if ok && m.loop.Ticks() > 0 {
			return &rain.FrameError{Tick: m.loop.Ticks(), Op: "run", Kind: rain.ErrTerminalWrite, Wrapped: err}
		}
		return fmt.Errorf("%w: %v", rain.ErrTerminalInit, err)
	}
	if ok {
		return m.err
	}
	return nil
}
