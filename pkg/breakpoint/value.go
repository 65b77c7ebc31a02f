package breakpoint

import (
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Span is an authored (min, max) pair. Open marks an absent upper
// bound ("at least min wide").
type Span struct {
	Min  float64
	Max  float64
	Open bool
}

// Table is an insertion-ordered mapping from symbolic key to a bare
// number (float64 or int), a Span, or a nested *Table. Values at the
// same depth need not share shape. A table is never mutated during
// resolution; unsupported shapes are kept as-is and reported when
// reduction reaches them.
type Table struct {
	keys []string
	vals map[string]any
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{vals: make(map[string]any)}
}

// Set stores a value under key, preserving first-insertion order.
// It returns the table for chaining.
func (t *Table) Set(key string, v any) *Table {
	if _, exists := t.vals[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.vals[key] = v
	return t
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (any, bool) {
	v, ok := t.vals[key]
	return v, ok
}

// Keys returns the table's keys in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.keys)
}

// Walk visits every leaf in depth-first insertion order. The path
// passed to fn is valid only for the duration of the call.
func (t *Table) Walk(fn func(path []string, v any) error) error {
	return t.walk(nil, fn)
}

func (t *Table) walk(prefix []string, fn func(path []string, v any) error) error {
	for _, k := range t.keys {
		path := append(prefix, k)
		if sub, ok := t.vals[k].(*Table); ok {
			if err := sub.walk(path, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(path, t.vals[k]); err != nil {
			return err
		}
	}
	return nil
}

// FromYAML builds a table from a YAML mapping node, preserving the
// authored key order. Scalars that are not numbers and sequences that
// are not valid spans are kept raw so Reduce can report them as
// InvalidValue with the offending key.
func FromYAML(node *yaml.Node) (*Table, error) {
	if node == nil {
		return nil, fmt.Errorf("breakpoint: nil yaml node")
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("breakpoint: empty yaml document")
		}
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("breakpoint: expected mapping at line %d, got %s", node.Line, yamlKindName(node.Kind))
	}
	t := NewTable()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		t.Set(key, valueFromNode(node.Content[i+1]))
	}
	return t, nil
}

// valueFromNode converts a YAML value node to a table value. Shapes
// that cannot be normalized are decoded raw for later error reporting.
func valueFromNode(n *yaml.Node) any {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		sub, err := FromYAML(n)
		if err != nil {
			return rawNode(n)
		}
		return sub
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, scalarValue(c))
		}
		return spanFromSlice(items)
	case yaml.ScalarNode:
		return scalarValue(n)
	default:
		return rawNode(n)
	}
}

// scalarValue parses a scalar node into float64 when numeric, nil for
// null, or the literal string otherwise.
func scalarValue(n *yaml.Node) any {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Tag {
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return n.Value
		}
		return f
	case "!!null":
		return nil
	default:
		return n.Value
	}
}

func rawNode(n *yaml.Node) any {
	var v any
	if err := n.Decode(&v); err != nil {
		return n.Value
	}
	return v
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// FromMap builds a table from a plain nested map (the shape koanf and
// json decoders produce). Map iteration order is not defined, so keys
// are sorted; ordering cannot affect a reduction result.
func FromMap(m map[string]any) *Table {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := NewTable()
	for _, k := range keys {
		t.Set(k, valueFromGo(m[k]))
	}
	return t
}

func valueFromGo(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return FromMap(val)
	case []any:
		return spanFromSlice(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case float64:
		return val
	default:
		return v
	}
}

// spanFromSlice normalizes an authored sequence into a Span:
//
//	[min, max]            closed
//	[min]                 open
//	[min, ~]              open
//	[min, "unbounded"]    open
//
// Anything else is returned raw so reduction reports it.
func spanFromSlice(items []any) any {
	if len(items) == 0 || len(items) > 2 {
		return items
	}
	lo, ok := asNumber(items[0])
	if !ok {
		return items
	}
	if len(items) == 1 {
		return Span{Min: lo, Open: true}
	}
	if isOpenMarker(items[1]) {
		return Span{Min: lo, Open: true}
	}
	hi, ok := asNumber(items[1])
	if !ok {
		return items
	}
	return Span{Min: lo, Max: hi}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func isOpenMarker(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == "unbounded"
}
