package palette

import (
	"fmt"
	"strings"

	"github.com/san-kum/matrixrain/internal/rain"
)

// Scheme selects the hue family used for every stream.
type Scheme int

const (
	Green Scheme = iota
	Blue
	Red
	Purple
	Cyan
	Rainbow
)

var schemeNames = [...]string{
	Green:   "green",
	Blue:    "blue",
	Red:     "red",
	Purple:  "purple",
	Cyan:    "cyan",
	Rainbow: "rainbow",
}

// Schemes returns every scheme in key order (1-6).
func Schemes() []Scheme {
	return []Scheme{Green, Blue, Red, Purple, Cyan, Rainbow}
}

// SchemeNames returns the flag spelling of every scheme.
func SchemeNames() []string {
	names := make([]string, len(schemeNames))
	copy(names, schemeNames[:])
	return names
}

func (s Scheme) String() string {
	if s < Green || s > Rainbow {
		return fmt.Sprintf("scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// Valid reports whether s is one of the defined schemes.
func (s Scheme) Valid() bool { return s >= Green && s <= Rainbow }

// ParseScheme resolves a case-insensitive scheme name.
func ParseScheme(name string) (Scheme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i), nil
		}
	}
	return Green, fmt.Errorf("%w: unknown color scheme %q (available: %s)",
		rain.ErrInvalidConfiguration, name, strings.Join(schemeNames[:], ", "))
}

// SchemeForDigit maps the runtime keys '1'..'6' to a scheme.
func SchemeForDigit(r rune) (Scheme, bool) {
	idx := int(r - '1')
	if idx < 0 || idx >= len(schemeNames) {
		return Green, false
	}
	return Scheme(idx), true
}

// Set implements pflag.Value so a Scheme can be bound straight to a flag.
func (s *Scheme) Set(v string) error {
	parsed, err := ParseScheme(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Scheme) Type() string { return "scheme" }
