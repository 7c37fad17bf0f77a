package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogYAML(t *testing.T) {
	doc := `
specials:
  - name: Snow Delay
    homeroom: 0
    mincha: 3
    skip: [2]
    periods:
      - {start: "10:00", end: "10:10"}
      - {start: "10:15", end: "11:00"}
      - {start: "11:05", end: "11:50"}
      - {start: "1:00", end: "1:15"}
`
	specials, err := LoadCatalogYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, specials, 1)

	s := specials[0]
	assert.Equal(t, "Snow Delay", s.Name)
	assert.Equal(t, []Range{Span(10, 0, 10, 10), Span(10, 15, 11, 0), Span(11, 5, 11, 50), Span(1, 0, 1, 15)}, s.Periods)
	assert.True(t, s.IsHomeroom(0))
	assert.True(t, s.IsMincha(3))
	assert.True(t, s.IsSkipped(2))

	c, err := DefaultCatalog().With(specials...)
	require.NoError(t, err)
	_, err = c.Lookup("Snow Delay")
	assert.NoError(t, err)
}

func TestLoadCatalogYAML_Empty(t *testing.T) {
	specials, err := LoadCatalogYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, specials)
}

func TestLoadCatalogYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Bad clock", "specials:\n  - name: x\n    periods:\n      - {start: \"7:00\", end: \"8:10\"}\n"},
		{"Reversed range", "specials:\n  - name: x\n    periods:\n      - {start: \"1:00\", end: \"12:10\"}\n"},
		{"No periods", "specials:\n  - name: x\n"},
		{"Not yaml", "specials: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalogYAML(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}
