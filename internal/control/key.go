package control

import "fmt"

// Key identifies a keyboard key independent of the terminal backend.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // printable character, see KeyEvent.Rune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyEnter
	KeySpace
	KeyCtrlC
	KeyCtrlD
	KeyCtrlZ
	KeyInterrupt // external signal, not a physical key
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeySpace:     "space",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlD:     "ctrl+d",
	KeyCtrlZ:     "ctrl+z",
	KeyInterrupt: "interrupt",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// KeyEvent is one key press delivered by an input source.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// Press builds a KeyEvent for a special key.
func Press(k Key) KeyEvent { return KeyEvent{Key: k} }

// Char builds a KeyEvent for a printable character.
func Char(r rune) KeyEvent { return KeyEvent{Key: KeyRune, Rune: r} }

func (e KeyEvent) String() string {
	if e.Key == KeyRune {
		return fmt.Sprintf("%q", e.Rune)
	}
	return e.Key.String()
}
