package palette

// Palette remembers the active scheme between frames.
type Palette struct {
	scheme Scheme
}

func New(s Scheme) *Palette {
	return &Palette{scheme: s}
}

func (p *Palette) Scheme() Scheme { return p.scheme }

// SetScheme switches the active scheme. Invalid values are ignored.
func (p *Palette) SetScheme(s Scheme) {
	if s.Valid() {
		p.scheme = s
	}
}

// Color is ColorFor with the active scheme.
func (p *Palette) Color(level, length, key int) Color {
	return ColorFor(p.scheme, level, length, key)
}
