package sim

import "sync"

// StreamPool recycles retired streams so a long run does not allocate a
// glyph buffer per spawn.
type StreamPool struct {
	pool sync.Pool
}

func NewStreamPool() *StreamPool {
	return &StreamPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Stream{}
			},
		},
	}
}

// Get returns a zeroed stream whose Glyphs slice holds length+1 entries.
func (p *StreamPool) Get(length int) *Stream {
	s := p.pool.Get().(*Stream)
	n := length + 1
	if cap(s.Glyphs) < n {
		s.Glyphs = make([]rune, n)
	}
	*s = Stream{Glyphs: s.Glyphs[:n], Length: length}
	return s
}

func (p *StreamPool) Put(s *Stream) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
