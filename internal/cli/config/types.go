// Package config loads breakline configuration from files, environment
// variables, and CLI flags, and exposes the project's breakpoint table.
package config

import (
	"github.com/viewportlabs/breakline/pkg/breakpoint"
)

// Config holds all CLI configuration options.
type Config struct {
	// ProjectRoot is the directory the config file was found in (or the
	// working directory when running without one).
	ProjectRoot string `mapstructure:"-"`

	Verbose      bool   `mapstructure:"verbose"`
	OutputFormat string `mapstructure:"output"`

	Units    UnitsConfig    `mapstructure:"units"`
	Generate GenerateConfig `mapstructure:"generate"`
	Serve    ServeConfig    `mapstructure:"serve"`

	// Breakpoints is parsed separately from the raw YAML so authored
	// key order survives; koanf flattens mappings into unordered maps.
	Breakpoints *breakpoint.Table `mapstructure:"-"`
}

// UnitsConfig controls how raw pixel widths are converted when media
// conditions are emitted.
type UnitsConfig struct {
	Unit string  `mapstructure:"unit"`
	Base float64 `mapstructure:"base"`
}

// GenerateConfig controls the generate command's output artifact.
type GenerateConfig struct {
	Out    string `mapstructure:"out"`
	Format string `mapstructure:"format"`
}

// ServeConfig controls the preview server.
type ServeConfig struct {
	Port int `mapstructure:"port"`
}

// Default configuration values.
const (
	DefaultUnit           = "px"
	DefaultBase           = 16
	DefaultGenerateOut    = "breakpoints.css"
	DefaultGenerateFormat = "custom-media"
	DefaultServePort      = 8750
	DefaultOutput         = "auto" // TTY=text, non-TTY=markdown
)
