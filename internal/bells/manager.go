// Package bells answers "what day is it and which period are we in" for the
// school, on top of a calendar and a schedule catalog.
package bells

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/username/school-bells/internal/calendar"
	"github.com/username/school-bells/internal/docstore"
	"github.com/username/school-bells/internal/schedule"
	"go.uber.org/zap"
)

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the school's time zone
type SystemClock struct {
	Location *time.Location
}

// Now returns the current time in the school's time zone
func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// Status is the school's state at one instant
type Status struct {
	Time time.Time
	Day  schedule.Day
	Name string // empty without school
	schedule.Status
}

// InSession reports whether a period is running or about to start
func (s Status) InSession() bool {
	return s.Day.InSession() && s.Active
}

// Manager resolves the school day and period for the current time
type Manager struct {
	calendar calendar.Calendar
	clock    Clock
	logger   *zap.Logger
}

// NewManager creates a new bells manager
func NewManager(cal calendar.Calendar, clock Clock, logger *zap.Logger) *Manager {
	return &Manager{
		calendar: cal,
		clock:    clock,
		logger:   logger,
	}
}

// Today returns today's school day
func (m *Manager) Today(ctx context.Context) (*calendar.DayInfo, error) {
	return m.Day(ctx, m.clock.Now())
}

// Day returns the school day on date's date. A month with no calendar
// document has no school.
func (m *Manager) Day(ctx context.Context, date time.Time) (*calendar.DayInfo, error) {
	info, err := m.calendar.GetDayInfo(ctx, date)
	if errors.Is(err, docstore.ErrNotFound) {
		m.logger.Debug("No calendar for month, treating as no school",
			zap.String("date", date.Format("2006-01-02")),
			zap.Error(err))
		empty := calendar.EmptyMonth(date).Lookup(date)
		return &empty, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve day %s: %w", date.Format("2006-01-02"), err)
	}
	return info, nil
}

// Now returns the school day and the period in session right now
func (m *Manager) Now(ctx context.Context) (Status, error) {
	return m.StatusAt(ctx, m.clock.Now())
}

// StatusAt returns the school day and the period in session at t
func (m *Manager) StatusAt(ctx context.Context, t time.Time) (Status, error) {
	info, err := m.Day(ctx, t)
	if err != nil {
		return Status{}, err
	}

	name, _ := info.Day.Name()
	status := Status{
		Time:   t,
		Day:    info.Day,
		Name:   name,
		Status: info.Day.Status(t),
	}

	m.logger.Debug("Resolved bell status",
		zap.Time("time", t),
		zap.String("day", name),
		zap.Int("period", status.Period),
		zap.String("label", status.Label))

	return status, nil
}

// Month returns the current month's school calendar
func (m *Manager) Month(ctx context.Context) (*calendar.MonthInfo, error) {
	return m.MonthOf(ctx, m.clock.Now())
}

// MonthOf returns the school calendar of the month containing date. A month
// with no calendar document comes back empty.
func (m *Manager) MonthOf(ctx context.Context, date time.Time) (*calendar.MonthInfo, error) {
	month, err := m.calendar.GetMonthInfo(ctx, date)
	if errors.Is(err, docstore.ErrNotFound) {
		m.logger.Debug("No calendar for month, treating as no school",
			zap.String("month", date.Format("2006-01")),
			zap.Error(err))
		return calendar.EmptyMonth(date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve month %s: %w", date.Format("2006-01"), err)
	}
	return month, nil
}

// Remaining returns the periods of today that have not ended yet, with their indices
func (m *Manager) Remaining(ctx context.Context) ([]int, schedule.Day, error) {
	now := m.clock.Now()
	info, err := m.Day(ctx, now)
	if err != nil {
		return nil, schedule.Day{}, err
	}
	if !info.Day.InSession() {
		return nil, info.Day, nil
	}

	// Compared on the wall clock: FromTime maps early mornings to an after-hours hour.
	var left []int
	for i, r := range info.Day.Special.Periods {
		if !r.End.On(now).Before(now) {
			left = append(left, i)
		}
	}
	return left, info.Day, nil
}

// LoadCatalog builds the schedule catalog: the built-in schedules under rule,
// overridden or extended by the schedules in the optional YAML file.
func LoadCatalog(rule schedule.FridayRule, file string, logger *zap.Logger) (*schedule.Catalog, error) {
	catalog, err := schedule.DefaultCatalog().WithRule(rule)
	if err != nil {
		return nil, err
	}
	if file == "" {
		return catalog, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	specials, err := schedule.LoadCatalogYAML(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	catalog, err = catalog.With(specials...)
	if err != nil {
		return nil, err
	}

	logger.Info("Catalog file loaded",
		zap.String("file", file),
		zap.Int("schedules", len(specials)))
	return catalog, nil
}
