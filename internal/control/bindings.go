package control

// Binding documents one runtime control for help output.
type Binding struct {
	Keys   string
	Action string
}

// Bindings lists the runtime controls in display order.
func Bindings() []Binding {
	return []Binding{
		{"↑/↓", "faster / slower"},
		{"←/→", "less / more density"},
		{"+/-", "longer / shorter drops"},
		{"[/]", "fewer / more spawns per frame"},
		{"1-6", "green / blue / red / purple / cyan / rainbow"},
		{"q/Esc/Enter/Space/Ctrl+C", "quit"},
	}
}
