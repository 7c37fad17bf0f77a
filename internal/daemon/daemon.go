package daemon

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/username/school-bells/internal/bells"
	"github.com/username/school-bells/internal/schedule"
	"github.com/username/school-bells/pkg/dateutil"
	"go.uber.org/zap"
)

// StatusSource reports the school's state at the current instant
type StatusSource interface {
	Now(ctx context.Context) (bells.Status, error)
}

// Event is a bell: the period in session changed
type Event struct {
	Time   time.Time
	Day    string // day name, empty without school
	Period int    // -1 when no period is in session
	Label  string
	Range  schedule.Range
}

// Watcher polls the bell status and reports period transitions
type Watcher struct {
	source   StatusSource
	interval time.Duration
	logger   *zap.Logger
	onBell   func(Event)

	mu         sync.Mutex // Protect against overlapping checks
	lastDate   string
	lastPeriod int
	started    bool
	bells      int
}

// NewWatcher creates a new period watcher. onBell may be nil.
func NewWatcher(source StatusSource, interval time.Duration, onBell func(Event), logger *zap.Logger) *Watcher {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Watcher{
		source:     source,
		interval:   interval,
		logger:     logger,
		onBell:     onBell,
		lastPeriod: -1,
	}
}

// Run checks the status every interval until ctx is done or the process
// receives SIGINT or SIGTERM
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("Watcher started",
		zap.Duration("interval", w.interval))

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// Run initial check immediately
	w.Check(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Watcher stopped", zap.Int("bells", w.Bells()))
			return nil

		case sig := <-sigChan:
			w.logger.Info("Received signal, shutting down",
				zap.String("signal", sig.String()))
			return nil

		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// Check reads the current status once and reports a bell if the period
// changed since the previous check. It returns the bell, if any.
func (w *Watcher) Check(ctx context.Context) (Event, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	status, err := w.source.Now(ctx)
	if err != nil {
		w.logger.Error("Failed to read bell status", zap.Error(err))
		return Event{}, false
	}

	date := status.Time.Format(dateutil.DateLayout)
	if date != w.lastDate {
		if status.Day.InSession() {
			w.logger.Info("School day", zap.String("date", date), zap.String("day", status.Name))
		} else {
			w.logger.Info("No school today", zap.String("date", date))
		}
	}

	period := -1
	if status.InSession() {
		period = status.Period
	}

	first := !w.started
	changed := date != w.lastDate || period != w.lastPeriod
	w.started = true
	w.lastDate = date
	w.lastPeriod = period

	if !changed || (first && period == -1) {
		w.logger.Debug("No bell", zap.Int("period", period))
		return Event{}, false
	}

	ev := Event{
		Time:   status.Time,
		Day:    status.Name,
		Period: period,
	}
	if period >= 0 {
		ev.Label = status.Label
		ev.Range = status.Range
		w.logger.Info("Bell",
			zap.String("day", ev.Day),
			zap.Int("period", ev.Period),
			zap.String("label", ev.Label),
			zap.String("range", ev.Range.String()))
	} else {
		w.logger.Info("Bell", zap.String("day", ev.Day), zap.String("label", "dismissal"))
	}

	w.bells++
	if w.onBell != nil {
		w.onBell(ev)
	}
	return ev, true
}

// Bells returns the number of bells reported so far
func (w *Watcher) Bells() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bells
}
