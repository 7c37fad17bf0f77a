package schedule

import (
	"fmt"
	"time"
)

// FridayRule decides when Fridays follow the winter schedule.
// Winter runs from WinterDayStart of WinterStart up to (not including)
// WinterDayEnd of WinterEnd; the school year runs SchoolStart through SchoolEnd.
type FridayRule struct {
	SchoolStart    time.Month
	SchoolEnd      time.Month
	WinterStart    time.Month
	WinterEnd      time.Month
	WinterDayStart int
	WinterDayEnd   int
}

// DefaultFridayRule: school September to July, winter Fridays November 1 until March 1.
func DefaultFridayRule() FridayRule {
	return FridayRule{
		SchoolStart:    time.September,
		SchoolEnd:      time.July,
		WinterStart:    time.November,
		WinterEnd:      time.March,
		WinterDayStart: 1,
		WinterDayEnd:   1,
	}
}

// Validate checks that months and days are in calendar range.
func (r FridayRule) Validate() error {
	for _, m := range []time.Month{r.SchoolStart, r.SchoolEnd, r.WinterStart, r.WinterEnd} {
		if m < time.January || m > time.December {
			return fmt.Errorf("%w: friday rule month %d out of range", ErrFormat, m)
		}
	}
	for _, d := range []int{r.WinterDayStart, r.WinterDayEnd} {
		if d < 1 || d > 31 {
			return fmt.Errorf("%w: friday rule day %d out of range", ErrFormat, d)
		}
	}
	return nil
}

// IsWinter reports whether a Friday in the given month and day of month uses the winter schedule.
// Months outside the school year (summer) fall back to the regular Friday.
func (r FridayRule) IsWinter(month time.Month, day int) bool {
	switch {
	case r.SchoolStart <= month && month < r.WinterStart:
		return false
	case month > r.WinterStart || month < r.WinterEnd:
		return true
	case r.WinterEnd < month && month <= r.SchoolEnd:
		return false
	case month == r.WinterStart:
		return day >= r.WinterDayStart
	case month == r.WinterEnd:
		return day < r.WinterDayEnd
	default:
		return false
	}
}

// IsWinterOn is IsWinter for the date of t.
func (r FridayRule) IsWinterOn(t time.Time) bool {
	return r.IsWinter(t.Month(), t.Day())
}
