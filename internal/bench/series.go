package bench

import "math"

// Series records one value per tick.
type Series struct {
	name   string
	values []float64
}

func NewSeries(name string) *Series {
	return &Series{name: name}
}

func (s *Series) Name() string { return s.name }

func (s *Series) Observe(v float64) { s.values = append(s.values, v) }

func (s *Series) Values() []float64 { return s.values }

func (s *Series) Len() int { return len(s.values) }

// Value is the mean of the observations.
func (s *Series) Value() float64 {
	if len(s.values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.values {
		sum += v
	}
	return sum / float64(len(s.values))
}

func (s *Series) Min() float64 {
	if len(s.values) == 0 {
		return 0
	}
	m := math.Inf(1)
	for _, v := range s.values {
		m = math.Min(m, v)
	}
	return m
}

func (s *Series) Max() float64 {
	if len(s.values) == 0 {
		return 0
	}
	m := math.Inf(-1)
	for _, v := range s.values {
		m = math.Max(m, v)
	}
	return m
}
