package config

import "sort"

var Presets = map[string]*Config{
	"classic": {Speed: 50, Density: 40, Spawns: 4, Length: 30, Color: "green"},
	"gentle":  {Speed: 40, Density: 20, Spawns: 3, Length: 20, Color: "green"},
	"sparse":  {Speed: 50, Density: 10, Spawns: 2, Length: 15, Color: "green"},
	"chaos":   {Speed: 5, Density: 90, Spawns: 15, Length: 45, Color: "rainbow"},
}

var PresetInfo = map[string]string{
	"classic": "the default rain",
	"gentle":  "slow, thin drizzle",
	"sparse":  "a few short streams",
	"chaos":   "fast rainbow downpour",
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
