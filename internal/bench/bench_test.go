package bench

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/san-kum/matrixrain/internal/control"
	"github.com/san-kum/matrixrain/internal/rain"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestSeries(t *testing.T) {
	s := NewSeries("x")
	if s.Value() != 0 || s.Min() != 0 || s.Max() != 0 {
		t.Error("empty series should report zeros")
	}
	for _, v := range []float64{3, 1, 2} {
		s.Observe(v)
	}
	if s.Min() != 1 || s.Max() != 3 || s.Value() != 2 {
		t.Errorf("expected 1/2/3, got %v/%v/%v", s.Min(), s.Value(), s.Max())
	}
}

func TestRunCountsTicks(t *testing.T) {
	opts := DefaultOptions()
	opts.Rows, opts.Cols, opts.Ticks = 10, 20, 50
	res, err := Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range res.series() {
		if s.Len() != opts.Ticks {
			t.Errorf("%s: expected %d samples, got %d", s.Name(), opts.Ticks, s.Len())
		}
	}
	if res.Active.Max() > float64(opts.Cols) {
		t.Errorf("more active streams than columns: %v", res.Active.Max())
	}
	if res.Spawned.Max() > float64(opts.State.MaxSpawns) {
		t.Errorf("spawn cap exceeded: %v", res.Spawned.Max())
	}
}

func TestRunDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Ticks = 100
	a, err := Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	av, bv := a.Active.Values(), b.Active.Values()
	for i := range av {
		if av[i] != bv[i] {
			t.Fatalf("tick %d: %v != %v", i, av[i], bv[i])
		}
	}
}

func TestRunZeroDensity(t *testing.T) {
	opts := DefaultOptions()
	opts.Ticks = 20
	opts.State.DensityPct = control.MinDensity
	res, err := Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Active.Max() != 0 {
		t.Errorf("expected no streams at density 0, got %v", res.Active.Max())
	}
}

func TestRunRejectsEmptyGrid(t *testing.T) {
	opts := DefaultOptions()
	opts.Cols = 0
	if _, err := Run(opts); !errors.Is(err, rain.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestReport(t *testing.T) {
	opts := DefaultOptions()
	opts.Ticks = 30
	res, err := Run(opts)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Report(&buf, res); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"active", "spawned", "retired", "commands", "active per tick"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
