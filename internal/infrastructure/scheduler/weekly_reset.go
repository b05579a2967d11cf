// Package scheduler runs recurring background jobs on a ticker loop.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/config"
)

// HoursResetter clears accumulated weekly working hours for all
// transport staff. Implemented by the transport application service.
type HoursResetter interface {
	ResetWeeklyHours(ctx context.Context) (int64, error)
}

// WeeklyResetTrigger fires the weekly hours reset once per week at the
// configured weekday and time. It checks on an interval instead of
// sleeping until the exact moment, so a restart never skips the run as
// long as the process is up during the target minute's week.
type WeeklyResetTrigger struct {
	cfg      config.SchedulerConfig
	resetter HoursResetter
	logger   *zap.Logger

	cancel      context.CancelFunc
	wg          sync.WaitGroup
	mu          sync.Mutex
	isRunning   bool
	lastRunWeek string // ISO year-week of the last successful run
}

// NewWeeklyResetTrigger creates a new WeeklyResetTrigger
func NewWeeklyResetTrigger(cfg config.SchedulerConfig, resetter HoursResetter, logger *zap.Logger) *WeeklyResetTrigger {
	return &WeeklyResetTrigger{
		cfg:      cfg,
		resetter: resetter,
		logger:   logger,
	}
}

// Start launches the background loop
func (t *WeeklyResetTrigger) Start(ctx context.Context) {
	t.mu.Lock()
	if t.isRunning {
		t.mu.Unlock()
		return
	}
	t.isRunning = true
	t.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.wg.Add(1)
	go t.runLoop(ctx)

	t.logger.Info("Weekly hours reset trigger started",
		zap.Int("weekday", t.cfg.ResetWeekday),
		zap.Int("hour", t.cfg.ResetHour),
		zap.Int("minute", t.cfg.ResetMinute),
	)
}

// Stop stops the loop and waits for an in-flight run to finish
func (t *WeeklyResetTrigger) Stop() {
	t.mu.Lock()
	if !t.isRunning {
		t.mu.Unlock()
		return
	}
	t.isRunning = false
	t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	t.wg.Wait()

	t.logger.Info("Weekly hours reset trigger stopped")
}

func (t *WeeklyResetTrigger) runLoop(ctx context.Context) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.checkAndRun(ctx, time.Now())
		}
	}
}

// checkAndRun fires the reset when now is at or past the weekly target
// and this week's run has not happened yet
func (t *WeeklyResetTrigger) checkAndRun(ctx context.Context, now time.Time) {
	if int(now.Weekday()) != t.cfg.ResetWeekday {
		return
	}
	if now.Hour() < t.cfg.ResetHour {
		return
	}
	if now.Hour() == t.cfg.ResetHour && now.Minute() < t.cfg.ResetMinute {
		return
	}

	week := isoWeek(now)
	t.mu.Lock()
	if t.lastRunWeek == week {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	runCtx, cancel := context.WithTimeout(ctx, t.cfg.JobTimeout)
	defer cancel()

	affected, err := t.resetter.ResetWeeklyHours(runCtx)
	if err != nil {
		t.logger.Error("Weekly hours reset failed", zap.Error(err))
		return
	}

	t.mu.Lock()
	t.lastRunWeek = week
	t.mu.Unlock()

	t.logger.Info("Weekly hours reset completed",
		zap.Int64("staff_affected", affected),
		zap.String("week", week),
	)
}

func isoWeek(now time.Time) string {
	year, week := now.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}
