package term

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/matrixrain/internal/control"
	"github.com/san-kum/matrixrain/internal/palette"
	"github.com/san-kum/matrixrain/internal/rain"
	"github.com/san-kum/matrixrain/internal/render"
)

const eventBuffer = 64

// Screen adapts a tcell screen to the frame loop. It is both the input
// source and the output sink.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
	styles map[palette.Color]tcell.Style
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
		styles: make(map[palette.Color]tcell.Style),
	}
}

// Open initializes the terminal and starts the event pump.
func (s *Screen) Open() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", rain.ErrTerminalInit, err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	go s.pump()
	return nil
}

// Close restores the terminal. Safe to call more than once.
func (s *Screen) Close() {
	s.once.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}

func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Poll drains pending events without blocking.
func (s *Screen) Poll() []control.KeyEvent {
	var out []control.KeyEvent
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				out = append(out, FromTcell(ev))
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return out
		}
	}
}

func (s *Screen) Size() (int, int, error) {
	w, h := s.screen.Size()
	return h, w, nil
}

func (s *Screen) Draw(b render.Batch) error {
	if b.Reset {
		s.screen.Clear()
	}
	for _, c := range b.Commands {
		if c.Op == render.OpClear {
			s.screen.SetContent(c.Col, c.Row, ' ', nil, tcell.StyleDefault)
			continue
		}
		s.screen.SetContent(c.Col, c.Row, c.Glyph, nil, s.style(c.Color))
	}
	s.screen.Show()
	return nil
}

func (s *Screen) style(c palette.Color) tcell.Style {
	st, ok := s.styles[c]
	if !ok {
		st = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		s.styles[c] = st
	}
	return st
}

// RunTcell runs the tcell backend on the controlling terminal.
func RunTcell(ctx context.Context, opts Options) error {
	sc, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: %v", rain.ErrTerminalInit, err)
	}
	return runScreen(ctx, sc, opts)
}

func runScreen(ctx context.Context, sc tcell.Screen, opts Options) error {
	s := NewScreen(sc)
	if err := s.Open(); err != nil {
		return err
	}
	defer s.Close()
	return opts.newLoop(s, s).Run(ctx)
}
