package breakpoint

import "math"

// Reduce flattens an arbitrarily nested table of numeric bounds into
// its overall envelope.
//
// A closed span contributes both bounds. A bare number means "at least
// this wide" and forces the envelope's upper bound open. An open span
// anywhere does the same. Openness is deliberate and permanent: a
// bounded entry merged after an open one never narrows the envelope
// back down, though its minimum still participates. Any other value
// shape aborts the reduction with an InvalidValueError naming the
// offending key.
func Reduce(v any) (Range, error) {
	return reduce("", v)
}

func reduce(key string, v any) (Range, error) {
	switch val := v.(type) {
	case *Table:
		// Accumulator, not a semantic default: min shrinks from +Inf,
		// max grows from 0 as entries are merged.
		acc := Range{Min: math.Inf(1), Max: 0}
		for _, k := range val.keys {
			child, err := reduce(k, val.vals[k])
			if err != nil {
				return Range{}, err
			}
			acc = acc.merge(child)
		}
		return acc, nil
	case Span:
		if val.Open {
			return Range{Min: val.Min, Unbounded: true}, nil
		}
		return Range{Min: val.Min, Max: val.Max}, nil
	case float64:
		return Range{Min: val, Unbounded: true}, nil
	case int:
		return Range{Min: float64(val), Unbounded: true}, nil
	case int64:
		return Range{Min: float64(val), Unbounded: true}, nil
	default:
		return Range{}, &InvalidValueError{Key: key, Value: v}
	}
}
