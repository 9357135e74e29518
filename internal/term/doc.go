// Package term connects the frame loop to a real terminal. Two backends
// are provided: a bubbletea program (the default) and a raw tcell screen.
package term
