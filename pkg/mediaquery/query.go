package mediaquery

import (
	"fmt"
	"math"
	"strings"

	"github.com/viewportlabs/breakline/pkg/breakpoint"
)

// Feature is a single media feature such as (min-width: 45em).
type Feature struct {
	Name  string
	Value string
}

func (f Feature) String() string {
	if f.Value == "" {
		return "(" + f.Name + ")"
	}
	return "(" + f.Name + ": " + f.Value + ")"
}

// Query is an ordered set of media features gating a content block.
type Query struct {
	Features []Feature
}

// Condition returns the feature expression without the @media prefix,
// the form @custom-media and nested conditions use.
func (q Query) Condition() string {
	parts := make([]string, len(q.Features))
	for i, f := range q.Features {
		parts[i] = f.String()
	}
	return strings.Join(parts, " and ")
}

// String returns the full @media prelude.
func (q Query) String() string {
	if len(q.Features) == 0 {
		return "@media screen"
	}
	return "@media screen and " + q.Condition()
}

// FromRange builds the width condition for a resolved envelope: a
// lower bound whenever the minimum is finite, an upper bound only when
// the envelope is not open-ended.
func FromRange(r breakpoint.Range, conv Converter) Query {
	var q Query
	if !math.IsInf(r.Min, 1) {
		q.Features = append(q.Features, Feature{Name: "min-width", Value: conv.Convert(r.Min)})
	}
	if !r.Unbounded {
		q.Features = append(q.Features, Feature{Name: "max-width", Value: conv.Convert(r.Max)})
	}
	return q
}

// FromMin builds a minimum-only condition from a single explicit
// threshold, bypassing the resolver.
func FromMin(px float64, conv Converter) Query {
	return Query{Features: []Feature{{Name: "min-width", Value: conv.Convert(px)}}}
}

// FromPair builds both bounds from an explicit pair, bypassing the
// resolver.
func FromPair(lo, hi float64, conv Converter) Query {
	return Query{Features: []Feature{
		{Name: "min-width", Value: conv.Convert(lo)},
		{Name: "max-width", Value: conv.Convert(hi)},
	}}
}

// Orientation builds an equality condition with no numeric resolution.
func Orientation(o string) Query {
	return Query{Features: []Feature{{Name: "orientation", Value: o}}}
}

// AspectRatio builds an aspect-ratio condition.
func AspectRatio(w, h int) Query {
	return Query{Features: []Feature{{Name: "aspect-ratio", Value: fmt.Sprintf("%d/%d", w, h)}}}
}
