package term

import (
	"context"
	"fmt"
	"strings"

	"github.com/san-kum/matrixrain/internal/control"
	"github.com/san-kum/matrixrain/internal/frame"
	"github.com/san-kum/matrixrain/internal/rain"
	"github.com/san-kum/matrixrain/internal/sim"
)

// Backend names.
const (
	BackendTea   = "tea"
	BackendTcell = "tcell"
)

// Backends lists the accepted --backend values.
func Backends() []string { return []string{BackendTea, BackendTcell} }

// Options configures a terminal run.
type Options struct {
	State      control.State
	Source     sim.Source
	SimOptions []sim.Option
	Observers  []frame.Observer
}

func (o Options) newLoop(in frame.InputSource, out frame.OutputSink) *frame.Loop {
	l := frame.New(o.State, o.Source, in, out, o.SimOptions...)
	for _, obs := range o.Observers {
		l.AddObserver(obs)
	}
	return l
}

// Run starts the named backend and blocks until the rain stops. The
// terminal is restored before Run returns on every path.
func Run(ctx context.Context, backend string, opts Options) error {
	switch strings.ToLower(backend) {
	case "", BackendTea:
		return RunTea(ctx, opts)
	case BackendTcell:
		return RunTcell(ctx, opts)
	}
	return fmt.Errorf("%w: unknown backend %q (available: %s)",
		rain.ErrInvalidConfiguration, backend, strings.Join(Backends(), ", "))
}
