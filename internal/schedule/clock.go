package schedule

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// schoolHours is the order hours appear on a 12-hour school-day clock.
var schoolHours = [...]int{8, 9, 10, 11, 12, 1, 2, 3, 4, 5}

// AfterHours is the hour used for wall-clock instants outside the school day.
const AfterHours = 5

const (
	dayStartHour = 8
	dayEndHour   = 17
)

// Clock is a time of day on the 12-hour school clock.
// Clocks order by where their hour falls in the school day (8 first, 5 last),
// then by minute.
type Clock struct {
	Hour   int
	Minute int
}

// NewClock validates hour and minute and returns a Clock.
func NewClock(hour, minute int) (Clock, error) {
	if position(hour) < 0 {
		return Clock{}, fmt.Errorf("%w: hour %d is not a school hour", ErrFormat, hour)
	}
	if minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: minute %d out of range", ErrFormat, minute)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// At is NewClock for literal tables. It panics on invalid input.
func At(hour, minute int) Clock {
	c, err := NewClock(hour, minute)
	if err != nil {
		panic(err)
	}
	return c
}

// FromTime converts a wall-clock instant to a Clock.
// Instants before 8:00 or from 17:00 on map to the AfterHours sentinel hour.
func FromTime(t time.Time) Clock {
	hour := t.Hour()
	switch {
	case hour >= dayEndHour || hour < dayStartHour:
		hour = AfterHours
	case hour > 12:
		hour -= 12
	}
	return Clock{Hour: hour, Minute: t.Minute()}
}

func position(hour int) int {
	for i, h := range schoolHours {
		if h == hour {
			return i
		}
	}
	return -1
}

func (c Clock) compare(o Clock) int {
	if d := position(c.Hour) - position(o.Hour); d != 0 {
		return d
	}
	return c.Minute - o.Minute
}

// Before reports whether c is strictly earlier in the school day than o.
func (c Clock) Before(o Clock) bool { return c.compare(o) < 0 }

// AtOrBefore reports whether c is earlier than or equal to o.
func (c Clock) AtOrBefore(o Clock) bool { return c.compare(o) <= 0 }

// After reports whether c is strictly later in the school day than o.
func (c Clock) After(o Clock) bool { return c.compare(o) > 0 }

// AtOrAfter reports whether c is later than or equal to o.
func (c Clock) AtOrAfter(o Clock) bool { return c.compare(o) >= 0 }

// On returns the wall-clock time of c on the given date.
// Hours 1 through 5 are afternoon hours.
func (c Clock) On(date time.Time) time.Time {
	hour := c.Hour
	if hour < dayStartHour {
		hour += 12
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, c.Minute, 0, 0, date.Location())
}

// String renders c as h:mm.
func (c Clock) String() string {
	return fmt.Sprintf("%d:%02d", c.Hour, c.Minute)
}

type clockJSON struct {
	Hour    *int `json:"hour"`
	Minutes *int `json:"minutes"`
}

// MarshalJSON encodes c as {"hour": h, "minutes": m}.
func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(clockJSON{Hour: &c.Hour, Minutes: &c.Minute})
}

// UnmarshalJSON decodes {"hour": h, "minutes": m}, rejecting hours outside the school day.
func (c *Clock) UnmarshalJSON(b []byte) error {
	var raw clockJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: clock: %v", ErrFormat, err)
	}
	if raw.Hour == nil || raw.Minutes == nil {
		return fmt.Errorf("%w: clock requires hour and minutes", ErrFormat)
	}
	parsed, err := NewClock(*raw.Hour, *raw.Minutes)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseClock parses "h:mm" on the school clock.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return Clock{}, fmt.Errorf("%w: clock %q: %v", ErrFormat, s, err)
	}
	return NewClock(h, m)
}
