package breakpoint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_SingleShapes(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Range
	}{
		{
			name:  "bare number is open-ended",
			input: float64(1700),
			want:  Range{Min: 1700, Unbounded: true},
		},
		{
			name:  "bare int is open-ended",
			input: 1700,
			want:  Range{Min: 1700, Unbounded: true},
		},
		{
			name:  "closed span passes through",
			input: Span{Min: 720, Max: 959},
			want:  Range{Min: 720, Max: 959},
		},
		{
			name:  "open span",
			input: Span{Min: 1220, Open: true},
			want:  Range{Min: 1220, Unbounded: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reduce(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReduce_FlatTable(t *testing.T) {
	tbl := NewTable().
		Set("portrait", Span{Min: 720, Max: 959}).
		Set("landscape", Span{Min: 960, Max: 1219})

	got, err := Reduce(tbl)
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 720, Max: 1219}, got)
}

func TestReduce_OrderInvariant(t *testing.T) {
	forward := NewTable().
		Set("a", Span{Min: 100, Max: 199}).
		Set("b", Span{Min: 200, Max: 299}).
		Set("c", Span{Min: 300, Max: 399})
	reverse := NewTable().
		Set("c", Span{Min: 300, Max: 399}).
		Set("b", Span{Min: 200, Max: 299}).
		Set("a", Span{Min: 100, Max: 199})

	fwd, err := Reduce(forward)
	require.NoError(t, err)
	rev, err := Reduce(reverse)
	require.NoError(t, err)
	assert.Equal(t, fwd, rev)
}

func TestReduce_BareNumberPoisonsMax(t *testing.T) {
	tbl := NewTable().
		Set("small", Span{Min: 1220, Max: 1459}).
		Set("medium", Span{Min: 1460, Max: 1699}).
		Set("large", float64(1700))

	got, err := Reduce(tbl)
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 1220, Unbounded: true}, got)
}

func TestReduce_PoisoningIsMonotonic(t *testing.T) {
	// The open entry comes first; the bounded entries after it must not
	// close the envelope again, but their minimums still count.
	tbl := NewTable().
		Set("large", float64(1700)).
		Set("small", Span{Min: 1220, Max: 1459}).
		Set("medium", Span{Min: 1460, Max: 1699})

	got, err := Reduce(tbl)
	require.NoError(t, err)
	assert.True(t, got.Unbounded, "earlier open entry must keep the envelope open")
	assert.Equal(t, float64(1220), got.Min)
}

func TestReduce_NestedMatchesFlat(t *testing.T) {
	nested := NewTable().
		Set("mobile", NewTable().
			Set("portrait", Span{Min: 320, Max: 479}).
			Set("landscape", Span{Min: 480, Max: 599})).
		Set("tablet", NewTable().
			Set("portrait", Span{Min: 720, Max: 959}).
			Set("landscape", Span{Min: 960, Max: 1219}))
	flat := NewTable().
		Set("a", Span{Min: 320, Max: 479}).
		Set("b", Span{Min: 480, Max: 599}).
		Set("c", Span{Min: 720, Max: 959}).
		Set("d", Span{Min: 960, Max: 1219})

	fromNested, err := Reduce(nested)
	require.NoError(t, err)
	fromFlat, err := Reduce(flat)
	require.NoError(t, err)
	assert.Equal(t, fromFlat, fromNested)
}

func TestReduce_OpenChildStillContributesMin(t *testing.T) {
	// A fully open child reduces to (x, unbounded); its min must reach
	// the outer accumulator even though its max never will.
	tbl := NewTable().
		Set("open", NewTable().Set("wide", float64(100))).
		Set("closed", Span{Min: 500, Max: 900})

	got, err := Reduce(tbl)
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 100, Unbounded: true}, got)
}

func TestReduce_InvalidValue(t *testing.T) {
	tbl := NewTable().
		Set("portrait", Span{Min: 720, Max: 959}).
		Set("oops", "wat")

	_, err := Reduce(tbl)
	require.Error(t, err)

	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "oops", invalid.Key)
	assert.Equal(t, "wat", invalid.Value)
}

func TestReduce_InvalidValueNested(t *testing.T) {
	tbl := NewTable().
		Set("tablet", NewTable().
			Set("portrait", Span{Min: 720, Max: 959}).
			Set("broken", []any{"x", "y"}))

	_, err := Reduce(tbl)
	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "broken", invalid.Key)
}

func TestReduce_EmptyTable(t *testing.T) {
	got, err := Reduce(NewTable())
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.Min, 1), "empty table keeps the accumulator's +Inf min")
	assert.Equal(t, float64(0), got.Max)
	assert.False(t, got.Unbounded)
}

func TestRange_String(t *testing.T) {
	assert.Equal(t, "[720, 959]", Range{Min: 720, Max: 959}.String())
	assert.Equal(t, "[1700, unbounded)", Range{Min: 1700, Unbounded: true}.String())
}
