package calendar

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/username/school-bells/pkg/dateutil"
)

const (
	icalProductID = "-//school-bells//bell schedule//EN"
	icalVersion   = "2.0"
	icalDomain    = "school-bells"
)

// emptyCalendar is returned for months without school days, since the
// encoder refuses a VCALENDAR with no components.
const emptyCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + icalProductID + "\r\nEND:VCALENDAR\r\n"

// ExportICal renders a month as iCalendar data: one all-day event per school
// day named after the day, and one timed event per period. stamp is written
// as DTSTAMP on every event.
func ExportICal(month *MonthInfo, stamp time.Time) ([]byte, error) {
	if len(month.Days) == 0 {
		return []byte(emptyCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icalVersion)
	cal.Props.SetText(ical.PropProductID, icalProductID)
	cal.Props.SetText("X-WR-CALNAME", "Bell schedule "+dateutil.MonthKey(month.Year, month.Month))

	for _, info := range month.Days {
		name, ok := info.Day.Name()
		if !ok {
			continue
		}

		dayEvent := ical.NewEvent()
		dayEvent.Props.SetText(ical.PropUID, eventUID(info.Date, -1))
		dayEvent.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		dayEvent.Props.SetDate(ical.PropDateTimeStart, info.Date)
		dayEvent.Props.SetText(ical.PropSummary, name)
		cal.Children = append(cal.Children, dayEvent.Component)

		special := info.Day.Special
		for i, r := range special.Periods {
			ev := ical.NewEvent()
			ev.Props.SetText(ical.PropUID, eventUID(info.Date, i))
			ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
			ev.Props.SetDateTime(ical.PropDateTimeStart, r.Start.On(info.Date).UTC())
			ev.Props.SetDateTime(ical.PropDateTimeEnd, r.End.On(info.Date).UTC())
			ev.Props.SetText(ical.PropSummary, special.Label(i))
			ev.Props.SetText(ical.PropDescription, name)
			cal.Children = append(cal.Children, ev.Component)
		}
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

// eventUID is stable across exports so calendar clients update events in place.
// period -1 is the all-day event.
func eventUID(date time.Time, period int) string {
	name := fmt.Sprintf("%s/%d", date.Format(dateutil.DateLayout), period)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String() + "@" + icalDomain
}
