// Package control holds the live-adjustable animation parameters.
//
// [State] is a plain value; [ApplyKey] is a pure function from a state and
// a key press to the next state, so the whole keyboard mapping can be
// tested without a terminal:
//
//	s := control.Default()
//	s = control.ApplyKey(s, control.Press(control.KeyRight)) // density +5
//	s = control.ApplyKey(s, control.Char('6'))               // rainbow
//	if s.Quit { ... }
//
// Every numeric field has a hard range (see the Min*/Max* constants) and
// increments saturate at its bounds.
package control
