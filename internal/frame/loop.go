package frame

import (
	"context"
	"log"
	"time"

	"github.com/san-kum/matrixrain/internal/control"
	"github.com/san-kum/matrixrain/internal/palette"
	"github.com/san-kum/matrixrain/internal/rain"
	"github.com/san-kum/matrixrain/internal/render"
	"github.com/san-kum/matrixrain/internal/sim"
)

// InputSource hands over every key press received since the last call
// without blocking.
type InputSource interface {
	Poll() []control.KeyEvent
}

// OutputSink is the terminal as seen by the loop.
type OutputSink interface {
	Size() (rows, cols int, err error)
	Draw(b render.Batch) error
}

// Phase is the loop's lifecycle state.
type Phase int

const (
	Running Phase = iota
	Terminating
)

func (p Phase) String() string {
	if p == Terminating {
		return "terminating"
	}
	return "running"
}

// Report describes one completed tick.
type Report struct {
	Tick     uint64
	Spawned  int
	Retired  int
	Active   int
	Commands int
	Reset    bool
	State    control.State
}

// Observer is notified after every rendered tick.
type Observer interface {
	OnTick(r Report)
}

// Loop owns the control state, the simulator and the last rendered frame.
// It is not safe for concurrent use.
type Loop struct {
	state     control.State
	sim       *sim.Simulator
	pal       *palette.Palette
	prev      render.Frame
	in        InputSource
	out       OutputSink
	observers []Observer
	phase     Phase
	tick      uint64
}

func New(initial control.State, rng sim.Source, in InputSource, out OutputSink, opts ...sim.Option) *Loop {
	initial = initial.Clamp()
	return &Loop{
		state: initial,
		sim:   sim.New(rng, 0, 0, opts...),
		pal:   palette.New(initial.Scheme),
		in:    in,
		out:   out,
	}
}

func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

func (l *Loop) State() control.State { return l.state }
func (l *Loop) Phase() Phase          { return l.phase }
func (l *Loop) Ticks() uint64         { return l.tick }

// Simulator exposes the stream storage for inspection.
func (l *Loop) Simulator() *sim.Simulator { return l.sim }

// Delay is how long to sleep before the next tick.
func (l *Loop) Delay() time.Duration { return l.state.Delay() }

// Tick runs one iteration: fold pending keys, reconcile the terminal size,
// advance the streams, compose and draw. It does not sleep. After a quit
// key or an error the loop is Terminating and Tick does nothing.
func (l *Loop) Tick() error {
	if l.phase == Terminating {
		return nil
	}

	for _, ev := range l.in.Poll() {
		before := l.state
		l.state = control.ApplyKey(l.state, ev)
		if l.state != before {
			log.Printf("key %v: %v", ev, l.state)
		}
		if l.state.Quit {
			l.phase = Terminating
			log.Printf("quit requested by %v after %d ticks", ev, l.tick)
			return nil
		}
	}

	rows, cols, err := l.out.Size()
	if err != nil {
		l.phase = Terminating
		return &rain.FrameError{Tick: l.tick, Op: "size", Kind: rain.ErrTerminalWrite, Wrapped: err}
	}
	if r, c := l.sim.Size(); r != rows || c != cols {
		dropped := l.sim.Resize(rows, cols)
		log.Printf("resize %dx%d -> %dx%d, dropped %d streams", c, r, cols, rows, dropped)
	}

	l.pal.SetScheme(l.state.Scheme)
	stats := l.sim.Advance(l.state)
	batch, next := render.Compose(l.sim.Slots(), rows, cols, l.pal, l.prev)

	if err := l.out.Draw(batch); err != nil {
		l.phase = Terminating
		return &rain.FrameError{Tick: l.tick, Op: "draw", Kind: rain.ErrTerminalWrite, Wrapped: err}
	}
	l.prev = next
	l.tick++

	report := Report{
		Tick:     l.tick,
		Spawned:  stats.Spawned,
		Retired:  stats.Retired,
		Active:   stats.Active,
		Commands: len(batch.Commands),
		Reset:    batch.Reset,
		State:    l.state,
	}
	for _, o := range l.observers {
		o.OnTick(report)
	}
	return nil
}

// Run ticks until a quit key, a terminal error or ctx is done, sleeping
// Delay between ticks. Cancellation is only observed between ticks.
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		select {
		case <-ctx.Done():
			l.phase = Terminating
			log.Printf("stopping after %d ticks: %v", l.tick, ctx.Err())
			return nil
		default:
		}

		if err := l.Tick(); err != nil {
			return err
		}
		if l.phase == Terminating {
			return nil
		}

		timer.Reset(l.Delay())
		select {
		case <-ctx.Done():
			l.phase = Terminating
			log.Printf("stopping after %d ticks: %v", l.tick, ctx.Err())
			return nil
		case <-timer.C:
		}
	}
}
