package sim

// Stream is one falling trail. Glyphs[d] is drawn d rows above the head,
// for d in 0..Length, so a stream covers rows Head-Length through Head.
type Stream struct {
	Col    int
	Head   int
	Length int
	Glyphs []rune
}

// Tail is the row of the last (dimmest) trail cell.
func (s *Stream) Tail() int { return s.Head - s.Length }

// Glyph returns the character d rows behind the head.
func (s *Stream) Glyph(d int) rune {
	if d < 0 || d >= len(s.Glyphs) {
		return ' '
	}
	return s.Glyphs[d]
}

// Gone reports whether the whole trail has left a screen of the given
// height.
func (s *Stream) Gone(rows int) bool { return s.Head-s.Length >= rows }

// Source is the random capability the simulator draws from. *rand.Rand
// satisfies it.
type Source interface {
	Intn(n int) int
}

// TickStats summarizes one Advance call.
type TickStats struct {
	Spawned int
	Retired int
	Active  int
}
