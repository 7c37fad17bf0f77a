package calendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/username/school-bells/internal/docstore"
	"github.com/username/school-bells/internal/schedule"
	"github.com/username/school-bells/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar using a local JSON file of the form
//
//	{"2026-10": {"15": {"letter": "M"}, "16": {"letter": "F", "special": "Tzom"}}}
type FileCalendar struct {
	filePath string
	catalog  *schedule.Catalog
	logger   *zap.Logger
	data     map[string]docstore.Document // key: "YYYY-MM"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, catalog *schedule.Catalog, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		catalog:  catalog,
		logger:   logger,
		data:     make(map[string]docstore.Document),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	raw, err := os.ReadFile(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}

	var data map[string]docstore.Document
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse calendar file: %w", err)
	}

	for monthKey := range data {
		if _, err := time.Parse("2006-01", monthKey); err != nil {
			return fmt.Errorf("%w: calendar file month %q", schedule.ErrFormat, monthKey)
		}
	}
	fc.data = data

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("months", len(fc.data)))

	return nil
}

// GetMonthInfo returns the school calendar for the month containing now
func (fc *FileCalendar) GetMonthInfo(_ context.Context, now time.Time) (*MonthInfo, error) {
	monthKey := dateutil.MonthKey(now.Year(), now.Month())

	doc, ok := fc.data[monthKey]
	if !ok {
		return nil, fmt.Errorf("calendar month %s: %w", monthKey, docstore.ErrNotFound)
	}

	return BuildIndex(fc.catalog, doc, now)
}

// GetDayInfo returns the school day on now's date
func (fc *FileCalendar) GetDayInfo(ctx context.Context, now time.Time) (*DayInfo, error) {
	return dayFromMonth(ctx, fc, now)
}
