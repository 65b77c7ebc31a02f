package config

import (
	"fmt"

	"github.com/viewportlabs/breakline/pkg/mediaquery"
)

// validGenerateFormats lists the artifact formats the generate command
// can produce.
var validGenerateFormats = map[string]bool{
	"custom-media": true,
	"css-vars":     true,
	"scss":         true,
}

// Validate checks configuration invariants that are independent of any
// particular command.
func Validate(cfg *Config) error {
	if _, err := mediaquery.ForUnit(cfg.Units.Unit, cfg.Units.Base); err != nil {
		return fmt.Errorf("invalid units.unit %q (expected px, em, or rem)", cfg.Units.Unit)
	}
	if cfg.Units.Base < 0 {
		return fmt.Errorf("invalid units.base %v: must be positive", cfg.Units.Base)
	}
	if cfg.Generate.Format != "" && !validGenerateFormats[cfg.Generate.Format] {
		return fmt.Errorf("invalid generate.format %q (expected custom-media, css-vars, or scss)", cfg.Generate.Format)
	}
	if cfg.Serve.Port < 1 || cfg.Serve.Port > 65535 {
		return fmt.Errorf("invalid serve.port %d", cfg.Serve.Port)
	}
	return nil
}

// Converter returns the unit converter the configuration selects.
func (c *Config) Converter() mediaquery.Converter {
	conv, err := mediaquery.ForUnit(c.Units.Unit, c.Units.Base)
	if err != nil {
		// Validate rejects unknown units at load time; fall back to px
		// for zero-value configs constructed in tests.
		return mediaquery.PxConverter{}
	}
	return conv
}
