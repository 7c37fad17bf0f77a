package schedule

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Range is a closed interval of the school day.
type Range struct {
	Start Clock `json:"start"`
	End   Clock `json:"end"`
}

// NewRange returns the range [start, end]. start must not be after end.
func NewRange(start, end Clock) (Range, error) {
	if start.After(end) {
		return Range{}, fmt.Errorf("%w: range %s-%s ends before it starts", ErrFormat, start, end)
	}
	return Range{Start: start, End: end}, nil
}

// Span is NewRange over literal hours and minutes. It panics on invalid input.
func Span(startHour, startMinute, endHour, endMinute int) Range {
	r, err := NewRange(At(startHour, startMinute), At(endHour, endMinute))
	if err != nil {
		panic(err)
	}
	return r
}

// Contains reports whether start <= t <= end.
func (r Range) Contains(t Clock) bool {
	return r.Start.AtOrBefore(t) && t.AtOrBefore(r.End)
}

// IsBefore reports whether the whole range ends before t.
func (r Range) IsBefore(t Clock) bool {
	return r.End.Before(t)
}

// IsAfter reports whether the whole range starts after t.
func (r Range) IsAfter(t Clock) bool {
	return r.Start.After(t)
}

// Duration is the length of the range.
func (r Range) Duration() time.Duration {
	ref := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	return r.End.On(ref).Sub(r.Start.On(ref))
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

type rangeJSON struct {
	Start *Clock `json:"start"`
	End   *Clock `json:"end"`
}

// UnmarshalJSON decodes {"start": Clock, "end": Clock} and checks start <= end.
func (r *Range) UnmarshalJSON(b []byte) error {
	var raw rangeJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: range: %v", ErrFormat, err)
	}
	if raw.Start == nil || raw.End == nil {
		return fmt.Errorf("%w: range requires start and end", ErrFormat)
	}
	parsed, err := NewRange(*raw.Start, *raw.End)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRanges builds an ordered list of ranges from a JSON array of {start, end} records.
func ParseRanges(data []byte) ([]Range, error) {
	var ranges []Range
	if err := json.Unmarshal(data, &ranges); err != nil {
		return nil, wrapFormat("periods", err)
	}
	return ranges, nil
}
