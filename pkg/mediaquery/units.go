// Package mediaquery emits CSS media query conditions from resolved
// breakpoint envelopes. The resolver side knows nothing about units or
// CSS syntax; everything here happens after a Range has been produced.
package mediaquery

import (
	"fmt"
	"strconv"
)

// DefaultBase is the reference font size used for em/rem conversion
// when none is configured.
const DefaultBase = 16

// Converter turns a raw pixel value into a CSS length in the unit
// system the embedding stylesheet operates in.
type Converter interface {
	Convert(px float64) string
}

// PxConverter emits plain pixel lengths.
type PxConverter struct{}

func (PxConverter) Convert(px float64) string {
	return formatLength(px) + "px"
}

// RelativeConverter divides pixel values by a base font size and emits
// em or rem lengths.
type RelativeConverter struct {
	Unit string
	Base float64
}

func (c RelativeConverter) Convert(px float64) string {
	base := c.Base
	if base <= 0 {
		base = DefaultBase
	}
	return formatLength(px/base) + c.Unit
}

// ForUnit returns the converter for a configured unit name.
func ForUnit(unit string, base float64) (Converter, error) {
	switch unit {
	case "", "px":
		return PxConverter{}, nil
	case "em", "rem":
		return RelativeConverter{Unit: unit, Base: base}, nil
	default:
		return nil, fmt.Errorf("mediaquery: unsupported unit %q", unit)
	}
}

// formatLength renders a length without a trailing ".0" for whole
// values and without float noise for fractions like 59.9375.
func formatLength(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
