package sim

import (
	"testing"

	"github.com/san-kum/matrixrain/internal/control"
)

// sourceFunc adapts a function to Source.
type sourceFunc func(n int) int

func (f sourceFunc) Intn(n int) int { return f(n) }

// highest always returns n-1: identity shuffle, spawn only at density 100,
// every stream gets MaxLength.
var highest = sourceFunc(func(n int) int { return n - 1 })

var lowest = sourceFunc(func(n int) int { return 0 })

func ctl(density, spawns, length int) control.State {
	s := control.Default()
	s.DensityPct = density
	s.MaxSpawns = spawns
	s.MaxLength = length
	return s
}

func TestNewSizesSlots(t *testing.T) {
	s := New(lowest, 24, 80)
	rows, cols := s.Size()
	if rows != 24 || cols != 80 {
		t.Errorf("expected 24x80, got %dx%d", rows, cols)
	}
	if len(s.Slots()) != 80 {
		t.Errorf("expected 80 slots, got %d", len(s.Slots()))
	}
	if s.Active() != 0 {
		t.Errorf("expected empty simulator, got %d active", s.Active())
	}
}

func TestAdvanceDegenerateGrid(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 10},
		{"zero cols", 10, 0},
		{"negative", -3, -3},
	}
	for _, tt := range tests {
		s := New(highest, tt.rows, tt.cols)
		stats := s.Advance(ctl(100, 100, 5))
		if stats.Spawned != 0 || s.Active() != 0 {
			t.Errorf("%s: expected no spawns, got %+v", tt.name, stats)
		}
	}
}

func TestMaxLengthClamped(t *testing.T) {
	s := New(highest, 10, 3, WithShimmer(false))
	s.Advance(ctl(100, 3, 0))
	for c, st := range s.Slots() {
		if st == nil {
			t.Fatalf("column %d should have spawned", c)
		}
		if st.Length != 1 {
			t.Errorf("column %d: expected length 1, got %d", c, st.Length)
		}
		if len(st.Glyphs) != 2 {
			t.Errorf("column %d: expected 2 glyphs, got %d", c, len(st.Glyphs))
		}
	}
}

func TestDensityClamped(t *testing.T) {
	s := New(highest, 10, 5, WithShimmer(false))
	stats := s.Advance(ctl(250, 5, 4))
	if stats.Spawned != 5 {
		t.Errorf("density above 100 should act as 100, spawned %d", stats.Spawned)
	}

	s = New(lowest, 10, 5, WithShimmer(false))
	stats = s.Advance(ctl(-20, 5, 4))
	if stats.Spawned != 0 {
		t.Errorf("negative density should act as 0, spawned %d", stats.Spawned)
	}
}

func TestSpawnCapScenario(t *testing.T) {
	s := New(lowest, 24, 10, WithShimmer(false))
	stats := s.Advance(ctl(100, 4, 30))
	if stats.Spawned != 4 {
		t.Fatalf("expected 4 spawns, got %d", stats.Spawned)
	}
	heads := 0
	for _, st := range s.Slots() {
		if st != nil && st.Head == 0 {
			heads++
		}
	}
	if heads != 4 {
		t.Errorf("expected 4 streams at row 0, got %d", heads)
	}
}

func TestStreamRetiresAtRowsPlusLength(t *testing.T) {
	const rows = 10
	s := New(highest, rows, 1, WithShimmer(false))
	s.Advance(ctl(100, 1, 5))
	st := s.Slots()[0]
	if st == nil || st.Length != 5 || st.Head != 0 {
		t.Fatalf("expected length-5 stream at row 0, got %+v", st)
	}

	idle := ctl(0, 1, 5)
	for want := 1; want < rows+5; want++ {
		stats := s.Advance(idle)
		if stats.Retired != 0 {
			t.Fatalf("retired early at head %d", want)
		}
		if got := s.Slots()[0].Head; got != want {
			t.Fatalf("expected head %d, got %d", want, got)
		}
	}
	stats := s.Advance(idle)
	if stats.Retired != 1 || s.Slots()[0] != nil {
		t.Errorf("expected retirement when head reaches %d, stats %+v", rows+5, stats)
	}
}

func TestResizeDropsAndRegrows(t *testing.T) {
	s := New(highest, 10, 10, WithShimmer(false))
	s.Advance(ctl(100, 10, 5))
	if s.Active() != 10 {
		t.Fatalf("expected 10 active, got %d", s.Active())
	}

	dropped := s.Resize(10, 4)
	if dropped != 6 {
		t.Errorf("expected 6 dropped streams, got %d", dropped)
	}
	if s.Active() != 4 || len(s.Slots()) != 4 {
		t.Errorf("expected 4 slots all active, got %d/%d", s.Active(), len(s.Slots()))
	}

	if dropped := s.Resize(10, 10); dropped != 0 {
		t.Errorf("growing should not drop, got %d", dropped)
	}
	for c := 4; c < 10; c++ {
		if s.Slots()[c] != nil {
			t.Errorf("regrown column %d should start empty", c)
		}
	}

	stats := s.Advance(ctl(100, 10, 5))
	if stats.Spawned != 6 {
		t.Errorf("expected regrown columns to spawn, got %d", stats.Spawned)
	}
}

func TestResizeRowsRetiresOnNextTick(t *testing.T) {
	s := New(highest, 30, 1, WithShimmer(false))
	s.Advance(ctl(100, 1, 2))
	for i := 0; i < 20; i++ {
		s.Advance(ctl(0, 1, 2))
	}
	s.Resize(5, 1)
	stats := s.Advance(ctl(0, 1, 2))
	if stats.Retired != 1 {
		t.Errorf("stream below the new bottom should retire, stats %+v", stats)
	}
}

func TestShimmerKeepsGlyphsInSet(t *testing.T) {
	glyphs := []rune("ab")
	s := New(NewSource(7), 40, 20, WithGlyphs(glyphs))
	for i := 0; i < 200; i++ {
		s.Advance(ctl(60, 5, 10))
		for _, st := range s.Slots() {
			if st == nil {
				continue
			}
			for _, g := range st.Glyphs {
				if g != 'a' && g != 'b' {
					t.Fatalf("glyph %q outside the configured set", g)
				}
			}
		}
	}
}

func TestStreamHelpers(t *testing.T) {
	st := &Stream{Head: 8, Length: 3, Glyphs: []rune("wxyz")}
	if st.Tail() != 5 {
		t.Errorf("expected tail 5, got %d", st.Tail())
	}
	if st.Glyph(0) != 'w' || st.Glyph(3) != 'z' {
		t.Error("unexpected glyph lookup")
	}
	if st.Glyph(4) != ' ' || st.Glyph(-1) != ' ' {
		t.Error("out of range glyph should be blank")
	}
	if st.Gone(6) || !st.Gone(5) {
		t.Error("unexpected Gone result")
	}
}

func TestStreamPoolReuse(t *testing.T) {
	p := NewStreamPool()
	st := p.Get(9)
	if len(st.Glyphs) != 10 || st.Length != 9 {
		t.Fatalf("unexpected stream %+v", st)
	}
	st.Head = 42
	p.Put(st)

	again := p.Get(3)
	if len(again.Glyphs) != 4 || again.Head != 0 || again.Length != 3 {
		t.Errorf("pooled stream should be reset, got %+v", again)
	}
	p.Put(nil)
}
