// Package breakpoint resolves named, possibly nested breakpoint
// definitions into concrete minimum/maximum width bounds.
//
// A breakpoint table maps symbolic keys (device families, orientations,
// size classes) to bare numbers, spans, or further nested tables.
// Callers refer to breakpoints by path ("tablet.portrait") instead of
// duplicating raw thresholds throughout a stylesheet; resolution walks
// the path and reduces whatever it finds into a single envelope.
package breakpoint

import (
	"fmt"
	"math"
	"strconv"
)

// Range is a resolved breakpoint envelope. Max is meaningful only when
// Unbounded is false; an unbounded range is normalized to Max == 0 so
// two equal envelopes always compare equal.
type Range struct {
	Min       float64
	Max       float64
	Unbounded bool
}

// merge folds another envelope into r. Openness is monotonic: once
// either side is unbounded the result stays unbounded, regardless of
// any narrower entry merged later.
func (r Range) merge(o Range) Range {
	out := Range{Min: math.Min(r.Min, o.Min)}
	if r.Unbounded || o.Unbounded {
		out.Unbounded = true
		return out
	}
	out.Max = math.Max(r.Max, o.Max)
	return out
}

func (r Range) String() string {
	if r.Unbounded {
		return fmt.Sprintf("[%s, unbounded)", formatNumber(r.Min))
	}
	return fmt.Sprintf("[%s, %s]", formatNumber(r.Min), formatNumber(r.Max))
}

// formatNumber renders a bound without a trailing ".0" for whole values.
func formatNumber(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
