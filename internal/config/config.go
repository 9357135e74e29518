package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/san-kum/matrixrain/internal/control"
	"github.com/san-kum/matrixrain/internal/palette"
	"github.com/san-kum/matrixrain/internal/rain"
	"github.com/san-kum/matrixrain/internal/term"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MATRIXRAIN_"

type Config struct {
	Speed   int    `yaml:"speed" json:"speed"`
	Density int    `yaml:"density" json:"density"`
	Spawns  int    `yaml:"spawns" json:"spawns"`
	Length  int    `yaml:"length" json:"length"`
	Color   string `yaml:"color" json:"color"`
	Backend string `yaml:"backend" json:"backend"`
}

func DefaultConfig() *Config {
	return &Config{
		Speed:   control.DefaultSpeedMs,
		Density: control.DefaultDensity,
		Spawns:  control.DefaultSpawns,
		Length:  control.DefaultLength,
		Color:   palette.Green.String(),
		Backend: term.BackendTea,
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in a yaml file onto cfg. The file
// is checked against the schema before anything is applied.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s: %v", rain.ErrInvalidConfiguration, path, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	for _, k := range []string{"color", "backend"} {
		if s, ok := raw[k].(string); ok {
			raw[k] = strings.ToLower(s)
		}
	}
	if err := validate(raw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", rain.ErrInvalidConfiguration, path, err)
	}
	cfg.normalize()
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadDotEnv loads .env style files into the process environment. A
// missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("load .env: %w", err)
		}
	}
	return nil
}

// ApplyEnv overlays MATRIXRAIN_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"SPEED", &c.Speed},
		{"DENSITY", &c.Density},
		{"SPAWNS", &c.Spawns},
		{"LENGTH", &c.Length},
	}
	for _, v := range ints {
		s, ok := lookup(EnvPrefix + v.name)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", rain.ErrInvalidConfiguration, EnvPrefix, v.name, s)
		}
		*v.dst = n
	}
	if s, ok := lookup(EnvPrefix + "COLOR"); ok && s != "" {
		c.Color = s
	}
	if s, ok := lookup(EnvPrefix + "BACKEND"); ok && s != "" {
		c.Backend = s
	}
	c.normalize()
	return nil
}

// ApplyPreset copies a preset's effect settings onto c. The backend is
// left alone.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: unknown preset %q (available: %s)",
			rain.ErrInvalidConfiguration, name, strings.Join(ListPresets(), ", "))
	}
	c.Speed, c.Density, c.Spawns, c.Length, c.Color = p.Speed, p.Density, p.Spawns, p.Length, p.Color
	return nil
}

// Validate checks the merged settings against the schema.
func (c *Config) Validate() error {
	c.normalize()
	return validate(c)
}

// ControlState converts validated settings into the live control state.
func (c *Config) ControlState() (control.State, error) {
	scheme, err := palette.ParseScheme(c.Color)
	if err != nil {
		return control.State{}, err
	}
	return control.State{
		SpeedMs:    c.Speed,
		DensityPct: c.Density,
		MaxSpawns:  c.Spawns,
		MaxLength:  c.Length,
		Scheme:     scheme,
	}.Clamp(), nil
}

func (c *Config) String() string {
	return fmt.Sprintf("speed=%dms density=%d%% spawns=%d length=%d color=%s backend=%s",
		c.Speed, c.Density, c.Spawns, c.Length, c.Color, c.Backend)
}

func (c *Config) normalize() {
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
}
