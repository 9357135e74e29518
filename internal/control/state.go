package control

import (
	"fmt"
	"time"

	"github.com/san-kum/matrixrain/internal/palette"
)

// Bounds shared by the runtime keys and startup validation.
const (
	MinSpeedMs = 5
	MaxSpeedMs = 1000
	SpeedStep  = 5

	MinDensity  = 0
	MaxDensity  = 100
	DensityStep = 5

	MinSpawns = 1
	MaxSpawns = 100

	MinLength  = 1
	MaxLength  = 100
	LengthStep = 5
)

// Defaults match the command-line defaults.
const (
	DefaultSpeedMs = 50
	DefaultDensity = 40
	DefaultSpawns  = 4
	DefaultLength  = 30
)

// State is the set of parameters the user can change while the rain runs.
type State struct {
	SpeedMs    int
	DensityPct int
	MaxSpawns  int
	MaxLength  int
	Scheme     palette.Scheme
	Quit       bool
}

func Default() State {
	return State{
		SpeedMs:    DefaultSpeedMs,
		DensityPct: DefaultDensity,
		MaxSpawns:  DefaultSpawns,
		MaxLength:  DefaultLength,
		Scheme:     palette.Green,
	}
}

// Clamp forces every field into its valid range.
func (s State) Clamp() State {
	s.SpeedMs = clamp(s.SpeedMs, MinSpeedMs, MaxSpeedMs)
	s.DensityPct = clamp(s.DensityPct, MinDensity, MaxDensity)
	s.MaxSpawns = clamp(s.MaxSpawns, MinSpawns, MaxSpawns)
	s.MaxLength = clamp(s.MaxLength, MinLength, MaxLength)
	if !s.Scheme.Valid() {
		s.Scheme = palette.Green
	}
	return s
}

// Delay is the sleep between frames.
func (s State) Delay() time.Duration {
	return time.Duration(s.SpeedMs) * time.Millisecond
}

func (s State) String() string {
	return fmt.Sprintf("speed=%dms density=%d%% spawns=%d length=%d color=%s",
		s.SpeedMs, s.DensityPct, s.MaxSpawns, s.MaxLength, s.Scheme)
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
