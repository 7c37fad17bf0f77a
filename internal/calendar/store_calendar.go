package calendar

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/username/school-bells/internal/docstore"
	"github.com/username/school-bells/internal/schedule"
	"go.uber.org/zap"
)

const (
	// DefaultKeyFormat names month documents; it receives the year and month number
	DefaultKeyFormat = "calendar/%04d-%02d"
	defaultCacheTTL  = 10 * time.Minute
)

// StoreCalendar implements Calendar on top of a document store holding one
// document per month
type StoreCalendar struct {
	store     docstore.Store
	catalog   *schedule.Catalog
	keyFormat string
	logger    *zap.Logger
	cache     map[string]*cachedMonth
	cacheMu   sync.RWMutex
	cacheTTL  time.Duration
	clock     func() time.Time
}

type cachedMonth struct {
	doc       docstore.Document
	fetchedAt time.Time
}

// NewStoreCalendar creates a new StoreCalendar instance
func NewStoreCalendar(store docstore.Store, catalog *schedule.Catalog, keyFormat string, cacheTTL time.Duration, logger *zap.Logger) *StoreCalendar {
	if keyFormat == "" {
		keyFormat = DefaultKeyFormat
	}
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &StoreCalendar{
		store:     store,
		catalog:   catalog,
		keyFormat: keyFormat,
		logger:    logger,
		cache:     make(map[string]*cachedMonth),
		cacheTTL:  cacheTTL,
		clock:     time.Now,
	}
}

// MonthKey returns the document key holding now's month
func (c *StoreCalendar) MonthKey(now time.Time) string {
	return fmt.Sprintf(c.keyFormat, now.Year(), int(now.Month()))
}

// GetMonthInfo returns the school calendar for the month containing now
func (c *StoreCalendar) GetMonthInfo(ctx context.Context, now time.Time) (*MonthInfo, error) {
	key := c.MonthKey(now)

	doc, err := c.fetch(ctx, key)
	if err != nil {
		return nil, err
	}

	month, err := BuildIndex(c.catalog, doc, now)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar %s: %w", key, err)
	}
	return month, nil
}

// GetDayInfo returns the school day on now's date
func (c *StoreCalendar) GetDayInfo(ctx context.Context, now time.Time) (*DayInfo, error) {
	return dayFromMonth(ctx, c, now)
}

// SetDay writes the school day on date back to the store. A day without
// school removes the date's entry.
func (c *StoreCalendar) SetDay(ctx context.Context, date time.Time, day schedule.Day) error {
	key := c.MonthKey(date)

	doc, err := c.store.Get(ctx, key)
	if err != nil && !errors.Is(err, docstore.ErrNotFound) {
		return fmt.Errorf("failed to load calendar %s: %w", key, err)
	}
	if doc == nil {
		doc = docstore.Document{}
	}

	entry := strconv.Itoa(date.Day())
	if day.InSession() {
		body, err := json.Marshal(day)
		if err != nil {
			return fmt.Errorf("failed to encode day: %w", err)
		}
		doc[entry] = body
	} else {
		delete(doc, entry)
	}

	if err := c.store.Set(ctx, key, doc); err != nil {
		return fmt.Errorf("failed to save calendar %s: %w", key, err)
	}

	c.cacheMu.Lock()
	delete(c.cache, key)
	c.cacheMu.Unlock()

	name, _ := day.Name()
	c.logger.Info("Calendar day updated",
		zap.String("key", key),
		zap.String("entry", entry),
		zap.String("day", name))
	return nil
}

func (c *StoreCalendar) fetch(ctx context.Context, key string) (docstore.Document, error) {
	c.cacheMu.RLock()
	if cached, ok := c.cache[key]; ok {
		if c.clock().Sub(cached.fetchedAt) < c.cacheTTL {
			c.cacheMu.RUnlock()
			c.logger.Debug("Using cached calendar", zap.String("key", key))
			return cached.doc, nil
		}
	}
	c.cacheMu.RUnlock()

	doc, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar %s: %w", key, err)
	}

	c.cacheMu.Lock()
	c.cache[key] = &cachedMonth{
		doc:       doc,
		fetchedAt: c.clock(),
	}
	c.cacheMu.Unlock()

	c.logger.Debug("Calendar fetched",
		zap.String("key", key),
		zap.Int("entries", len(doc)))
	return doc, nil
}
