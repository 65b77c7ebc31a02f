package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoot() *Table {
	return Default()
}

func TestResolve_LeafPath(t *testing.T) {
	got, err := Resolve([]string{"tablet", "portrait"}, testRoot())
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 720, Max: 959}, got)
}

func TestResolve_FamilyEnvelope(t *testing.T) {
	got, err := Resolve([]string{"tablet"}, testRoot())
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 720, Max: 1219}, got)
}

func TestResolve_FamilyWithOpenChild(t *testing.T) {
	// screen.large is a bare number, so the family envelope is open
	// even though small and medium are bounded.
	got, err := Resolve([]string{"screen"}, testRoot())
	require.NoError(t, err)
	assert.True(t, got.Unbounded)
	assert.Equal(t, float64(1220), got.Min)
}

func TestResolve_BareNumberLeaf(t *testing.T) {
	got, err := Resolve([]string{"screen", "large"}, testRoot())
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 1700, Unbounded: true}, got)
}

func TestResolve_UnknownKey(t *testing.T) {
	_, err := Resolve([]string{"unknown_device"}, testRoot())
	require.Error(t, err)

	var unknown *UnknownKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unknown_device", unknown.Key)
}

func TestResolve_UnknownNestedKey(t *testing.T) {
	_, err := Resolve([]string{"tablet", "upside_down"}, testRoot())

	var unknown *UnknownKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "upside_down", unknown.Key)
	assert.Equal(t, []string{"tablet", "upside_down"}, unknown.Path)
}

func TestResolve_PathPastLeaf(t *testing.T) {
	_, err := Resolve([]string{"mobile", "portrait", "extra"}, testRoot())
	require.Error(t, err)

	var invalid *InvalidPathError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "portrait", invalid.At)
}

func TestResolve_EmptyPath(t *testing.T) {
	_, err := Resolve(nil, testRoot())

	var invalid *InvalidPathError
	require.ErrorAs(t, err, &invalid)
}

func TestResolve_InvalidValueInSubtree(t *testing.T) {
	root := NewTable().
		Set("tv", NewTable().
			Set("hd", Span{Min: 1280, Max: 1919}).
			Set("note", "not a range"))

	_, err := Resolve([]string{"tv"}, root)

	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "note", invalid.Key)
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "dotted", input: "tablet.portrait", want: []string{"tablet", "portrait"}},
		{name: "single key", input: "mobile", want: []string{"mobile"}},
		{name: "surrounding space", input: " screen . large ", want: []string{"screen", "large"}},
		{name: "empty", input: "", want: nil},
		{name: "stray dots", input: "..tablet.", want: []string{"tablet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePath(tt.input))
		})
	}
}
