package calendar

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/username/school-bells/internal/docstore"
	"github.com/username/school-bells/internal/schedule"
	"github.com/username/school-bells/pkg/dateutil"
)

// BuildIndex parses a raw month document (day-of-month string -> day record)
// into the school calendar of now's month. Any malformed entry fails the
// whole document with schedule.ErrFormat.
func BuildIndex(catalog *schedule.Catalog, raw docstore.Document, now time.Time) (*MonthInfo, error) {
	month := &MonthInfo{
		Start:    dateutil.StartOfMonth(now),
		Year:     now.Year(),
		Month:    now.Month(),
		ByLetter: make(map[schedule.Letter]int),
		Days:     make([]DayInfo, 0, len(raw)),
	}

	for key, body := range raw {
		dayOfMonth, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: day of month %q: %v", schedule.ErrFormat, key, err)
		}
		date, err := dateutil.DateInMonth(now, dayOfMonth)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", schedule.ErrFormat, err)
		}
		// E and F defaults follow the entry's own date, not now's
		day, err := catalog.ParseDay(body, date)
		if err != nil {
			return nil, fmt.Errorf("entry %s of %s: %w", key, dateutil.MonthKey(month.Year, month.Month), err)
		}

		month.Days = append(month.Days, DayInfo{Date: date, Day: day})
		month.SchoolDays++
		month.ByLetter[day.Letter]++
	}

	slices.SortFunc(month.Days, func(a, b DayInfo) int {
		return a.Date.Compare(b.Date)
	})

	for i := 1; i < len(month.Days); i++ {
		if month.Days[i].Date.Equal(month.Days[i-1].Date) {
			return nil, fmt.Errorf("%w: day %d listed twice", schedule.ErrFormat, month.Days[i].Date.Day())
		}
	}

	return month, nil
}
