package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/san-kum/matrixrain/internal/control"
	"github.com/san-kum/matrixrain/internal/palette"
	"github.com/san-kum/matrixrain/internal/rain"
	"github.com/san-kum/matrixrain/internal/term"
	"github.com/xeipuuv/gojsonschema"
)

var (
	schemaOnce   sync.Once
	schemaLoader gojsonschema.JSONLoader
)

// ValidationError collects every schema violation in one error.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Issues, "; "))
}

func (e *ValidationError) Unwrap() error { return rain.ErrInvalidConfiguration }

// Schema returns the JSON schema for a settings document.
func Schema() map[string]any {
	return map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"speed":   intRange(control.MinSpeedMs, control.MaxSpeedMs),
			"density": intRange(control.MinDensity, control.MaxDensity),
			"spawns":  intRange(control.MinSpawns, control.MaxSpawns),
			"length":  intRange(control.MinLength, control.MaxLength),
			"color":   enum(palette.SchemeNames()),
			"backend": enum(term.Backends()),
		},
	}
}

func intRange(lo, hi int) map[string]any {
	return map[string]any{"type": "integer", "minimum": lo, "maximum": hi}
}

func enum(values []string) map[string]any {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return map[string]any{"type": "string", "enum": vs}
}

func validate(doc any) error {
	schemaOnce.Do(func() {
		schemaLoader = gojsonschema.NewGoLoader(Schema())
	})
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: schema validation: %v", rain.ErrInvalidConfiguration, err)
	}
	if result.Valid() {
		return nil
	}
	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return &ValidationError{Issues: issues}
}
