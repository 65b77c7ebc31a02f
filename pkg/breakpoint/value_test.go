package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleYAML = `
mobile:
  portrait: [320, 479]
  landscape: [480, 599]
tablet:
  portrait: [720, 959]
  landscape: [960, 1219]
screen:
  small: [1220, 1459]
  medium: [1460, 1699]
  large: 1700
`

func parseYAMLTable(t *testing.T, src string) *Table {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &node))
	tbl, err := FromYAML(&node)
	require.NoError(t, err)
	return tbl
}

func TestFromYAML_PreservesOrder(t *testing.T) {
	tbl := parseYAMLTable(t, sampleYAML)
	assert.Equal(t, []string{"mobile", "tablet", "screen"}, tbl.Keys())

	sub, ok := tbl.Get("screen")
	require.True(t, ok)
	screen, ok := sub.(*Table)
	require.True(t, ok)
	assert.Equal(t, []string{"small", "medium", "large"}, screen.Keys())
}

func TestFromYAML_Shapes(t *testing.T) {
	tbl := parseYAMLTable(t, sampleYAML)

	sub, _ := tbl.Get("tablet")
	portrait, ok := sub.(*Table).vals["portrait"]
	require.True(t, ok)
	assert.Equal(t, Span{Min: 720, Max: 959}, portrait)

	screen, _ := tbl.Get("screen")
	large, _ := screen.(*Table).Get("large")
	assert.Equal(t, float64(1700), large)
}

func TestFromYAML_OpenSpans(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "single element", src: "wide: [1700]"},
		{name: "null second element", src: "wide: [1700, ~]"},
		{name: "unbounded keyword", src: "wide: [1700, unbounded]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := parseYAMLTable(t, tt.src)
			v, ok := tbl.Get("wide")
			require.True(t, ok)
			assert.Equal(t, Span{Min: 1700, Open: true}, v)
		})
	}
}

func TestFromYAML_InvalidShapesSurfaceInReduce(t *testing.T) {
	tbl := parseYAMLTable(t, "label: huge\nok: [100, 200]")

	_, err := Reduce(tbl)
	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "label", invalid.Key)
}

func TestFromYAML_NotAMapping(t *testing.T) {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("- 1\n- 2\n"), &node))

	_, err := FromYAML(&node)
	require.Error(t, err)
}

func TestFromMap(t *testing.T) {
	tbl := FromMap(map[string]any{
		"tablet": map[string]any{
			"portrait":  []any{720, 959},
			"landscape": []any{960, 1219},
		},
		"huge": 1700,
	})

	got, err := Resolve([]string{"tablet"}, tbl)
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 720, Max: 1219}, got)

	got, err = Resolve([]string{"huge"}, tbl)
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 1700, Unbounded: true}, got)
}

func TestTable_SetOverwriteKeepsOrder(t *testing.T) {
	tbl := NewTable().
		Set("a", float64(1)).
		Set("b", float64(2)).
		Set("a", float64(3))

	assert.Equal(t, []string{"a", "b"}, tbl.Keys())
	v, _ := tbl.Get("a")
	assert.Equal(t, float64(3), v)
}

func TestTable_Walk(t *testing.T) {
	tbl := parseYAMLTable(t, sampleYAML)

	var paths []string
	err := tbl.Walk(func(path []string, _ any) error {
		joined := ""
		for i, p := range path {
			if i > 0 {
				joined += "."
			}
			joined += p
		}
		paths = append(paths, joined)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"mobile.portrait", "mobile.landscape",
		"tablet.portrait", "tablet.landscape",
		"screen.small", "screen.medium", "screen.large",
	}, paths)
}
