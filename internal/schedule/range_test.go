package schedule

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_Contains(t *testing.T) {
	r := Span(12, 25, 1, 5)

	tests := []struct {
		name string
		at   Clock
		want bool
	}{
		{"Start is inside", At(12, 25), true},
		{"End is inside", At(1, 5), true},
		{"Across noon", At(12, 59), true},
		{"After noon", At(1, 0), true},
		{"Just before", At(12, 24), false},
		{"Just after", At(1, 6), false},
		{"Morning", At(9, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.at))
		})
	}
}

func TestRange_BeforeAfter(t *testing.T) {
	r := Span(11, 35, 12, 20)

	assert.True(t, r.IsBefore(At(1, 0)))
	assert.True(t, r.IsBefore(At(12, 21)))
	assert.False(t, r.IsBefore(At(12, 20)))
	assert.False(t, r.IsBefore(At(9, 0)))

	assert.True(t, r.IsAfter(At(9, 0)))
	assert.True(t, r.IsAfter(At(11, 34)))
	assert.False(t, r.IsAfter(At(11, 35)))
	assert.False(t, r.IsAfter(At(1, 0)))
}

func TestNewRange_RejectsReversed(t *testing.T) {
	_, err := NewRange(At(1, 0), At(12, 0))
	assert.ErrorIs(t, err, ErrFormat)

	r, err := NewRange(At(12, 0), At(1, 0))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, r.Duration())
}

func TestParseRanges(t *testing.T) {
	data := `[
		{"start": {"hour": 8, "minutes": 0}, "end": {"hour": 8, "minutes": 10}},
		{"start": {"hour": 12, "minutes": 45}, "end": {"hour": 1, "minutes": 25}}
	]`

	ranges, err := ParseRanges([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []Range{Span(8, 0, 8, 10), Span(12, 45, 1, 25)}, ranges)

	_, err = ParseRanges([]byte(`[{"start": {"hour": 2, "minutes": 0}, "end": {"hour": 1, "minutes": 0}}]`))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = ParseRanges([]byte(`[{"start": {"hour": 2, "minutes": 0}}]`))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestRange_JSONRoundTrip(t *testing.T) {
	r := Span(3, 40, 3, 55)
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":{"hour":3,"minutes":40},"end":{"hour":3,"minutes":55}}`, string(data))

	var back Range
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}
