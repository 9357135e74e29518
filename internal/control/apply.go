package control

import "github.com/san-kum/matrixrain/internal/palette"

// ApplyKey returns the state after one key press. Recognized keys change a
// single field, clamped to its range, or set Quit. Anything else returns s
// unchanged.
func ApplyKey(s State, ev KeyEvent) State {
	switch ev.Key {
	case KeyUp:
		s.SpeedMs = clamp(s.SpeedMs-SpeedStep, MinSpeedMs, MaxSpeedMs)
	case KeyDown:
		s.SpeedMs = clamp(s.SpeedMs+SpeedStep, MinSpeedMs, MaxSpeedMs)
	case KeyRight:
		s.DensityPct = clamp(s.DensityPct+DensityStep, MinDensity, MaxDensity)
	case KeyLeft:
		s.DensityPct = clamp(s.DensityPct-DensityStep, MinDensity, MaxDensity)
	case KeyEscape, KeyEnter, KeySpace, KeyCtrlC, KeyCtrlD, KeyCtrlZ, KeyInterrupt:
		s.Quit = true
	case KeyRune:
		return applyRune(s, ev.Rune)
	}
	return s
}

func applyRune(s State, r rune) State {
	switch r {
	case 'q', 'Q', ' ':
		s.Quit = true
	case '+', '=':
		s.MaxLength = clamp(s.MaxLength+LengthStep, MinLength, MaxLength)
	case '-':
		s.MaxLength = clamp(s.MaxLength-LengthStep, MinLength, MaxLength)
	case ']':
		s.MaxSpawns = clamp(s.MaxSpawns+1, MinSpawns, MaxSpawns)
	case '[':
		s.MaxSpawns = clamp(s.MaxSpawns-1, MinSpawns, MaxSpawns)
	default:
		if scheme, ok := palette.SchemeForDigit(r); ok {
			s.Scheme = scheme
		}
	}
	return s
}

// ApplyKeys folds a batch of events in arrival order. Events after a quit
// request are ignored.
func ApplyKeys(s State, events []KeyEvent) State {
	for _, ev := range events {
		if s.Quit {
			break
		}
		s = ApplyKey(s, ev)
	}
	return s
}
