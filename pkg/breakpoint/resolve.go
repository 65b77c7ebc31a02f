package breakpoint

import "strings"

// Resolve walks path into root and reduces whatever it finds there.
//
// A path naming a sub-table reduces across every child, so a one-key
// path over a device family yields the envelope spanning all of its
// orientations or size classes. A path naming a leaf reduces just that
// leaf. Walking past a leaf fails with InvalidPathError; an absent
// segment fails with UnknownKeyError. There is no partial result.
func Resolve(path []string, root *Table) (Range, error) {
	if len(path) == 0 {
		return Range{}, &InvalidPathError{Path: path}
	}

	var current any = root
	for i, key := range path {
		tbl, ok := current.(*Table)
		if !ok {
			return Range{}, &InvalidPathError{Path: path, At: path[i-1]}
		}
		v, ok := tbl.Get(key)
		if !ok {
			return Range{}, &UnknownKeyError{Key: key, Path: path[:i+1]}
		}
		current = v
	}

	// Wrap a directly selected leaf in a one-entry table so leaves and
	// sub-tables share the same reduction path.
	if _, ok := current.(*Table); !ok {
		current = NewTable().Set(path[len(path)-1], current)
	}
	return Reduce(current)
}

// ParsePath splits a dotted path ("tablet.portrait") into its keys.
// A single bare key is a one-segment path. Empty segments are dropped.
func ParsePath(s string) []string {
	var keys []string
	for _, part := range strings.Split(s, ".") {
		part = strings.TrimSpace(part)
		if part != "" {
			keys = append(keys, part)
		}
	}
	return keys
}
