package bench

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/matrixrain/internal/control"
	"github.com/san-kum/matrixrain/internal/frame"
	"github.com/san-kum/matrixrain/internal/rain"
	"github.com/san-kum/matrixrain/internal/render"
	"github.com/san-kum/matrixrain/internal/sim"
)

const (
	DefaultRows  = 40
	DefaultCols  = 120
	DefaultTicks = 500
)

type Options struct {
	Rows, Cols int
	Ticks      int
	Seed       int64
	State      control.State
}

func DefaultOptions() Options {
	return Options{
		Rows:  DefaultRows,
		Cols:  DefaultCols,
		Ticks: DefaultTicks,
		Seed:  1,
		State: control.Default(),
	}
}

// Result holds per-tick counters of an off-screen run.
type Result struct {
	Options  Options
	Active   *Series
	Spawned  *Series
	Retired  *Series
	Commands *Series
}

func (r *Result) series() []*Series {
	return []*Series{r.Active, r.Spawned, r.Retired, r.Commands}
}

func (r *Result) OnTick(rep frame.Report) {
	r.Active.Observe(float64(rep.Active))
	r.Spawned.Observe(float64(rep.Spawned))
	r.Retired.Observe(float64(rep.Retired))
	r.Commands.Observe(float64(rep.Commands))
}

type nullInput struct{}

func (nullInput) Poll() []control.KeyEvent { return nil }

// fixedSink is a terminal of constant size that discards output.
type fixedSink struct {
	rows, cols int
}

func (s fixedSink) Size() (int, int, error) { return s.rows, s.cols, nil }

func (fixedSink) Draw(render.Batch) error { return nil }

// Run drives the frame loop for opts.Ticks ticks without sleeping.
func Run(opts Options) (*Result, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 || opts.Ticks <= 0 {
		return nil, fmt.Errorf("%w: bench needs positive rows, cols and ticks (got %dx%d, %d ticks)",
			rain.ErrInvalidConfiguration, opts.Rows, opts.Cols, opts.Ticks)
	}
	res := &Result{
		Options:  opts,
		Active:   NewSeries("active"),
		Spawned:  NewSeries("spawned"),
		Retired:  NewSeries("retired"),
		Commands: NewSeries("commands"),
	}
	loop := frame.New(opts.State, sim.NewSource(opts.Seed), nullInput{}, fixedSink{opts.Rows, opts.Cols})
	loop.AddObserver(res)
	for i := 0; i < opts.Ticks; i++ {
		if err := loop.Tick(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Report prints a summary table and plots of the busiest series.
func Report(w io.Writer, r *Result) error {
	o := r.Options
	if _, err := fmt.Fprintf(w, "%dx%d grid, %d ticks, seed %d, %s\n\n", o.Cols, o.Rows, o.Ticks, o.Seed, o.State); err != nil {
		return err
	}
	fmt.Fprintf(w, "%-10s %8s %8s %8s\n", "metric", "min", "mean", "max")
	for _, s := range r.series() {
		fmt.Fprintf(w, "%-10s %8.0f %8.2f %8.0f\n", s.Name(), s.Min(), s.Value(), s.Max())
	}
	for _, s := range []*Series{r.Active, r.Commands} {
		if s.Len() == 0 {
			continue
		}
		graph := asciigraph.Plot(s.Values(),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.Name()+" per tick"),
		)
		if _, err := fmt.Fprintf(w, "\n%s\n", graph); err != nil {
			return err
		}
	}
	return nil
}
