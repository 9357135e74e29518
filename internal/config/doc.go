// Package config holds the startup settings of the rain: defaults, .env
// and MATRIXRAIN_* environment overrides, yaml files, presets, and the
// JSON schema every layer is validated against.
package config
