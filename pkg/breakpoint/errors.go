package breakpoint

import (
	"fmt"
	"strings"
)

// InvalidValueError reports a table entry that is neither a number, a
// span, nor a nested table.
type InvalidValueError struct {
	Key   string
	Value any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("breakpoint: entry %q has unsupported value %v (%T)", e.Key, e.Value, e.Value)
}

// UnknownKeyError reports a path segment that does not exist at the
// current table level. Path holds the segments consumed up to and
// including the missing key.
type UnknownKeyError struct {
	Key  string
	Path []string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("breakpoint: unknown key %q in path %q", e.Key, strings.Join(e.Path, "."))
}

// InvalidPathError reports a path that continues past a leaf value. At
// names the segment whose value the walk could not descend into.
type InvalidPathError struct {
	Path []string
	At   string
}

func (e *InvalidPathError) Error() string {
	if e.At == "" {
		return fmt.Sprintf("breakpoint: invalid path %q", strings.Join(e.Path, "."))
	}
	return fmt.Sprintf("breakpoint: path %q continues past leaf %q", strings.Join(e.Path, "."), e.At)
}
