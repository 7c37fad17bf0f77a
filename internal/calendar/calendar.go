package calendar

import (
	"context"
	"time"

	"github.com/username/school-bells/internal/schedule"
	"github.com/username/school-bells/pkg/dateutil"
)

// DayInfo represents the school day on a specific date
type DayInfo struct {
	Date time.Time
	Day  schedule.Day
}

// MonthInfo represents the school calendar for a month
type MonthInfo struct {
	Start      time.Time // midnight of the first day of the month
	Year       int
	Month      time.Month
	SchoolDays int
	ByLetter   map[schedule.Letter]int // school days per letter
	Days       []DayInfo               // school days only, ordered by date
}

// EmptyMonth is the calendar of a month without any school days
func EmptyMonth(date time.Time) *MonthInfo {
	return &MonthInfo{
		Start:    dateutil.StartOfMonth(date),
		Year:     date.Year(),
		Month:    date.Month(),
		ByLetter: make(map[schedule.Letter]int),
	}
}

// Lookup returns the school day on date. Dates without an entry, or outside
// the month, have no school.
func (m *MonthInfo) Lookup(date time.Time) DayInfo {
	noSchool := DayInfo{Date: dateutil.StartOfDay(date), Day: schedule.NoSchool()}
	if !dateutil.IsSameMonth(m.Start, date) {
		return noSchool
	}
	for _, info := range m.Days {
		if dateutil.IsSameDay(info.Date, date) {
			return info
		}
	}
	return noSchool
}

// Calendar resolves calendar dates to school days
type Calendar interface {
	// GetMonthInfo returns the school calendar for the month containing now
	GetMonthInfo(ctx context.Context, now time.Time) (*MonthInfo, error)

	// GetDayInfo returns the school day on now's date
	GetDayInfo(ctx context.Context, now time.Time) (*DayInfo, error)
}

// dayFromMonth implements GetDayInfo on top of GetMonthInfo
func dayFromMonth(ctx context.Context, cal Calendar, now time.Time) (*DayInfo, error) {
	month, err := cal.GetMonthInfo(ctx, now)
	if err != nil {
		return nil, err
	}
	info := month.Lookup(now)
	return &info, nil
}
