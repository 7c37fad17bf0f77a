package schedule

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Day is one school day: its rotation letter and the bell schedule it follows.
// A Day with NoLetter means there is no school.
type Day struct {
	Letter  Letter
	Special Special
}

// NoSchool returns the day value for dates without school.
func NoSchool() Day {
	return Day{}
}

// NewDay builds a Day on the letter's default schedule. E and F days pick
// Friday or Winter Friday from the date of now.
func (c *Catalog) NewDay(l Letter, now time.Time) (Day, error) {
	special, err := c.ForLetter(l, now)
	if err != nil {
		return Day{}, err
	}
	return Day{Letter: l, Special: special}, nil
}

// NewDayWithSpecial builds a Day on an explicit schedule.
func NewDayWithSpecial(l Letter, special Special) Day {
	return Day{Letter: l, Special: special.clone()}
}

// InSession reports whether there is school on the day.
func (d Day) InSession() bool {
	return d.Letter != NoLetter
}

// Equal compares letters and schedule names.
func (d Day) Equal(o Day) bool {
	return d.Letter == o.Letter && d.Special.Equal(o.Special)
}

// Name renders the day for display, e.g. "A day" or "A day Tzom".
// The regular and rotate schedules are implied by the letter and not named.
// ok is false when there is no school.
func (d Day) Name() (name string, ok bool) {
	if !d.InSession() {
		return "", false
	}
	name = d.Letter.String() + " day"
	switch d.Special.Name {
	case Regular, Rotate, "":
	default:
		name += " " + d.Special.Name
	}
	return name, true
}

// PeriodAt returns the index of the period in session at t.
// Time between two periods belongs to the upcoming period, and so does the
// instant a period ends when another one follows. ok is false outside the
// school day or when there is no school.
func (d Day) PeriodAt(t Clock) (index int, ok bool) {
	if !d.InSession() {
		return -1, false
	}
	periods := d.Special.Periods
	last := len(periods) - 1
	for i, r := range periods {
		if r.Contains(t) && (i == last || t != r.End) {
			return i, true
		}
		if i > 0 && periods[i-1].End.AtOrBefore(t) && r.IsAfter(t) {
			return i, true
		}
	}
	return -1, false
}

// CurrentPeriod is PeriodAt for a wall-clock instant.
func (d Day) CurrentPeriod(now time.Time) (int, bool) {
	return d.PeriodAt(FromTime(now))
}

// Status describes where a wall-clock instant falls in a day.
type Status struct {
	Period int
	Active bool
	Range  Range
	Label  string
}

// Status reports the current period of d at now.
func (d Day) Status(now time.Time) Status {
	i, ok := d.CurrentPeriod(now)
	if !ok {
		return Status{Period: -1}
	}
	return Status{
		Period: i,
		Active: true,
		Range:  d.Special.Periods[i],
		Label:  d.Special.Label(i),
	}
}

type dayJSON struct {
	Letter  Letter  `json:"letter"`
	Special Special `json:"special"`
}

// MarshalJSON writes {"letter": ..., "special": {...}}. A day without school encodes as null.
func (d Day) MarshalJSON() ([]byte, error) {
	if !d.InSession() {
		return []byte("null"), nil
	}
	return json.Marshal(dayJSON{Letter: d.Letter, Special: d.Special})
}

// ParseDay decodes a day record. The letter is required; a missing special
// falls back to the letter's default schedule for now.
func (c *Catalog) ParseDay(data []byte, now time.Time) (Day, error) {
	var raw struct {
		Letter  json.RawMessage `json:"letter"`
		Special json.RawMessage `json:"special"`
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return Day{}, fmt.Errorf("%w: day must be a record", ErrFormat)
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Day{}, wrapFormat("day", err)
	}
	if isNull(raw.Letter) {
		return Day{}, fmt.Errorf("%w: day requires a letter", ErrFormat)
	}
	var l Letter
	if err := l.UnmarshalJSON(raw.Letter); err != nil {
		return Day{}, err
	}
	if isNull(raw.Special) {
		return c.NewDay(l, now)
	}
	special, err := c.ParseSpecial(raw.Special)
	if err != nil {
		return Day{}, err
	}
	return Day{Letter: l, Special: special}, nil
}

func isNull(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
