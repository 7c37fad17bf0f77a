package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the layout used for calendar dates throughout the app
const DateLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfMonth returns midnight of the first day of date's month
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateInMonth returns midnight of the given day of ref's month, in ref's location.
// Days that do not exist in that month are an error.
func DateInMonth(ref time.Time, day int) (time.Time, error) {
	if day < 1 || day > DaysInMonth(ref.Year(), ref.Month()) {
		return time.Time{}, fmt.Errorf("day %d does not exist in %s", day, MonthKey(ref.Year(), ref.Month()))
	}
	return time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, ref.Location()), nil
}

// MonthKey formats a month as YYYY-MM
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// IsSameMonth returns true if two dates are in the same month of the same year
func IsSameMonth(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() && date1.Month() == date2.Month()
}

// ParseDate parses date string in various formats, in loc
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	formats := []string{
		DateLayout,
		"02.01.2006",
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date: %q", dateStr)
}
