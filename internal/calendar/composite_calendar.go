package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/username/school-bells/internal/docstore"
	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: StoreCalendar (document store)
// Fallback: FileCalendar (local file)
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// GetMonthInfo returns the school calendar for the month containing now
func (cc *CompositeCalendar) GetMonthInfo(ctx context.Context, now time.Time) (*MonthInfo, error) {
	monthInfo, err := cc.primary.GetMonthInfo(ctx, now)
	if err == nil {
		return monthInfo, nil
	}

	cc.logFallback(err,
		zap.Int("year", now.Year()),
		zap.Int("month", int(now.Month())),
		zap.Error(err))

	return cc.fallback.GetMonthInfo(ctx, now)
}

// GetDayInfo returns the school day on now's date
func (cc *CompositeCalendar) GetDayInfo(ctx context.Context, now time.Time) (*DayInfo, error) {
	dayInfo, err := cc.primary.GetDayInfo(ctx, now)
	if err == nil {
		return dayInfo, nil
	}

	cc.logFallback(err,
		zap.Time("date", now),
		zap.Error(err))

	return cc.fallback.GetDayInfo(ctx, now)
}

// A month the primary has no document for is routine outside the school year
func (cc *CompositeCalendar) logFallback(err error, fields ...zap.Field) {
	if errors.Is(err, docstore.ErrNotFound) {
		cc.logger.Debug("Month missing from primary calendar, falling back to file", fields...)
		return
	}
	cc.logger.Warn("Primary calendar failed, falling back to file", fields...)
}

// LoadFallback loads the fallback calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadFallback() error {
	if fc, ok := cc.fallback.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load fallback calendar: %w", err)
		}
		cc.logger.Info("Fallback calendar loaded successfully")
	}
	return nil
}
