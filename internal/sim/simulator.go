package sim

import (
	"github.com/san-kum/matrixrain/internal/control"
)

// Simulator owns one stream slot per terminal column. A nil slot is an
// empty column.
type Simulator struct {
	rng        Source
	glyphs     []rune
	shimmer    bool
	pool       *StreamPool
	rows, cols int
	slots      []*Stream
	candidates []int
}

type Option func(*Simulator)

// WithGlyphs replaces the character set. An empty set is ignored.
func WithGlyphs(glyphs []rune) Option {
	return func(s *Simulator) {
		if len(glyphs) > 0 {
			s.glyphs = glyphs
		}
	}
}

// WithShimmer toggles the per-tick glyph re-roll.
func WithShimmer(on bool) Option {
	return func(s *Simulator) { s.shimmer = on }
}

func New(rng Source, rows, cols int, opts ...Option) *Simulator {
	s := &Simulator{
		rng:     rng,
		glyphs:  DefaultGlyphs,
		shimmer: true,
		pool:    NewStreamPool(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Resize(rows, cols)
	return s
}

func (s *Simulator) Size() (rows, cols int) { return s.rows, s.cols }

// Slots returns the per-column streams. Callers must not modify them.
func (s *Simulator) Slots() []*Stream { return s.slots }

// Active counts the occupied columns.
func (s *Simulator) Active() int {
	n := 0
	for _, st := range s.slots {
		if st != nil {
			n++
		}
	}
	return n
}

// Resize adapts the slots to a new grid. Streams in columns that no longer
// exist are dropped and new columns start empty. It returns how many
// streams were dropped.
func (s *Simulator) Resize(rows, cols int) int {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	s.rows = rows
	if cols == len(s.slots) {
		s.cols = cols
		return 0
	}

	dropped := 0
	slots := make([]*Stream, cols)
	for c, st := range s.slots {
		if c < cols {
			slots[c] = st
			continue
		}
		if st != nil {
			dropped++
			s.pool.Put(st)
		}
	}
	s.slots = slots
	s.cols = cols
	return dropped
}

// Advance moves every stream down one row, retires streams whose trail has
// left the screen and then spawns new streams into empty columns.
func (s *Simulator) Advance(ctl control.State) TickStats {
	var stats TickStats
	if s.rows == 0 || s.cols == 0 {
		return stats
	}

	for c, st := range s.slots {
		if st == nil {
			continue
		}
		st.Head++
		if st.Gone(s.rows) {
			s.slots[c] = nil
			s.pool.Put(st)
			stats.Retired++
			continue
		}
		if s.shimmer {
			s.reroll(st)
		}
	}

	stats.Spawned = s.spawn(ctl)
	stats.Active = s.Active()
	return stats
}

// spawn evaluates the empty columns in random order, accepting each with
// probability DensityPct/100 until MaxSpawns streams have started.
func (s *Simulator) spawn(ctl control.State) int {
	density := clamp(ctl.DensityPct, control.MinDensity, control.MaxDensity)
	limit := ctl.MaxSpawns
	if density == 0 || limit <= 0 {
		return 0
	}
	maxLen := ctl.MaxLength
	if maxLen < 1 {
		maxLen = 1
	}

	s.candidates = s.candidates[:0]
	for c, st := range s.slots {
		if st == nil {
			s.candidates = append(s.candidates, c)
		}
	}
	for i := len(s.candidates) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		s.candidates[i], s.candidates[j] = s.candidates[j], s.candidates[i]
	}

	spawned := 0
	for _, c := range s.candidates {
		if spawned >= limit {
			break
		}
		if s.rng.Intn(100) < density {
			s.slots[c] = s.newStream(c, 1+s.rng.Intn(maxLen))
			spawned++
		}
	}
	return spawned
}

func (s *Simulator) newStream(col, length int) *Stream {
	st := s.pool.Get(length)
	st.Col = col
	st.Head = 0
	for i := range st.Glyphs {
		st.Glyphs[i] = s.randomGlyph()
	}
	return st
}

// reroll swaps up to MaxShimmer glyphs, each with even odds.
func (s *Simulator) reroll(st *Stream) {
	n := s.rng.Intn(MaxShimmer + 1)
	for i := 0; i < n; i++ {
		if s.rng.Intn(2) == 0 {
			continue
		}
		st.Glyphs[s.rng.Intn(len(st.Glyphs))] = s.randomGlyph()
	}
}

func (s *Simulator) randomGlyph() rune {
	return s.glyphs[s.rng.Intn(len(s.glyphs))]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
