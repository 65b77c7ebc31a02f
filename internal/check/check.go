// Package check validates a breakpoint table before it ships: invalid
// value shapes, inverted spans, empty families, and overlapping
// siblings. Breakpoint configs are static, so every finding here is an
// authoring-time failure rather than a runtime one.
package check

import (
	"fmt"
	"strings"

	"github.com/viewportlabs/breakline/pkg/breakpoint"
)

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single finding against a table entry.
type Diagnostic struct {
	Path     []string
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, strings.Join(d.Path, "."), d.Message)
}

// Run walks the whole table and returns every finding, in definition
// order. An empty slice means the table is clean.
func Run(table *breakpoint.Table) []Diagnostic {
	var out []Diagnostic
	walk(table, nil, &out)
	return out
}

// HasErrors reports whether any finding is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func walk(table *breakpoint.Table, prefix []string, out *[]Diagnostic) {
	if table.Len() == 0 {
		*out = append(*out, Diagnostic{
			Path:     pathCopy(prefix),
			Severity: SeverityWarning,
			Message:  "table has no entries; resolving it yields a degenerate envelope",
		})
		return
	}

	type sibling struct {
		key  string
		span breakpoint.Span
	}
	var closed []sibling

	for _, key := range table.Keys() {
		path := append(prefix, key)
		v, _ := table.Get(key)

		switch val := v.(type) {
		case *breakpoint.Table:
			walk(val, path, out)
		case breakpoint.Span:
			if !val.Open && val.Min > val.Max {
				*out = append(*out, Diagnostic{
					Path:     pathCopy(path),
					Severity: SeverityError,
					Message:  fmt.Sprintf("span minimum %v exceeds maximum %v", val.Min, val.Max),
				})
			}
			if !val.Open {
				closed = append(closed, sibling{key: key, span: val})
			}
		case float64, int, int64:
			// Bare numbers are valid open-ended entries.
		default:
			*out = append(*out, Diagnostic{
				Path:     pathCopy(path),
				Severity: SeverityError,
				Message:  fmt.Sprintf("unsupported value %v (%T); expected number, span, or table", v, v),
			})
		}
	}

	// Overlapping sibling spans usually mean two rules fire at once.
	for i := 0; i < len(closed); i++ {
		for j := i + 1; j < len(closed); j++ {
			a, b := closed[i], closed[j]
			if a.span.Min <= b.span.Max && b.span.Min <= a.span.Max {
				*out = append(*out, Diagnostic{
					Path:     append(pathCopy(prefix), b.key),
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("span overlaps sibling %q", a.key),
				})
			}
		}
	}
}

func pathCopy(p []string) []string {
	out := make([]string, len(p))
	copy(out, p)
	return out
}
