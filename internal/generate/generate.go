// Package generate renders a breakpoint table into stylesheet
// artifacts: @custom-media rules, CSS custom properties, or SCSS
// variables. One entry is produced per defined path, including family
// nodes, so `--tablet` carries the envelope across both orientations.
package generate

import (
	"fmt"
	"strings"

	"github.com/viewportlabs/breakline/pkg/breakpoint"
	"github.com/viewportlabs/breakline/pkg/mediaquery"
)

// Formats supported by Render.
const (
	FormatCustomMedia = "custom-media"
	FormatCSSVars     = "css-vars"
	FormatSCSS        = "scss"
)

const header = "/* Generated by breakline. Do not edit by hand. */\n"

// Entry is one named breakpoint with its resolved envelope.
type Entry struct {
	Name  string
	Path  []string
	Range breakpoint.Range
}

// Entries resolves every node of the table, families included, in
// definition order. Resolution failures abort with the underlying
// breakpoint error.
func Entries(table *breakpoint.Table) ([]Entry, error) {
	var out []Entry
	if err := collect(table, table, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func collect(root, node *breakpoint.Table, prefix []string, out *[]Entry) error {
	for _, key := range node.Keys() {
		path := make([]string, len(prefix)+1)
		copy(path, prefix)
		path[len(prefix)] = key

		r, err := breakpoint.Resolve(path, root)
		if err != nil {
			return err
		}
		*out = append(*out, Entry{Name: strings.Join(path, "-"), Path: path, Range: r})

		if sub, ok := node.Get(key); ok {
			if subTable, ok := sub.(*breakpoint.Table); ok {
				if err := collect(root, subTable, path, out); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Render produces the artifact text for the given format.
func Render(table *breakpoint.Table, format string, conv mediaquery.Converter) (string, error) {
	entries, err := Entries(table)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatCustomMedia, "":
		return renderCustomMedia(entries, conv), nil
	case FormatCSSVars:
		return renderCSSVars(entries, conv), nil
	case FormatSCSS:
		return renderSCSS(entries, conv), nil
	default:
		return "", fmt.Errorf("generate: unknown format %q", format)
	}
}

func renderCustomMedia(entries []Entry, conv mediaquery.Converter) string {
	var b strings.Builder
	b.WriteString(header)
	for _, e := range entries {
		q := mediaquery.FromRange(e.Range, conv)
		fmt.Fprintf(&b, "@custom-media --%s %s;\n", e.Name, q.Condition())
	}
	return b.String()
}

func renderCSSVars(entries []Entry, conv mediaquery.Converter) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(":root {\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "  --breakpoint-%s-min: %s;\n", e.Name, conv.Convert(e.Range.Min))
		if !e.Range.Unbounded {
			fmt.Fprintf(&b, "  --breakpoint-%s-max: %s;\n", e.Name, conv.Convert(e.Range.Max))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func renderSCSS(entries []Entry, conv mediaquery.Converter) string {
	var b strings.Builder
	b.WriteString("// Generated by breakline. Do not edit by hand.\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "$breakpoint-%s-min: %s;\n", e.Name, conv.Convert(e.Range.Min))
		if !e.Range.Unbounded {
			fmt.Fprintf(&b, "$breakpoint-%s-max: %s;\n", e.Name, conv.Convert(e.Range.Max))
		}
	}
	return b.String()
}
