// Package scheduler drives the recurring update runs.
//
// The first run fires at a configured daily time (today if still ahead,
// otherwise tomorrow); every later run fires a fixed interval after the
// previous one. The daily time seeds the first run only, it is never
// consulted again.
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Scheduler runs a job at a fixed interval anchored to a daily start time.
type Scheduler struct {
	cron     *gocron.Scheduler
	anchor   string
	interval time.Duration
}

// New creates a scheduler firing first at the anchor time ("HH:MM",
// 24-hour) and every interval thereafter.
func New(anchor string, interval time.Duration) *Scheduler {
	return &Scheduler{
		cron:     gocron.NewScheduler(time.Local),
		anchor:   anchor,
		interval: interval,
	}
}

// Start blocks and runs the job on schedule until the process exits.
// Runs never overlap: a run still in flight when the next fire time
// arrives delays it. The job's outcome is logged and never stops the
// loop.
func (s *Scheduler) Start(run func() error) error {
	first, ok := FirstFire(time.Now(), s.anchor)
	if !ok {
		slog.Warn("DAILY_SEND_TIME is not a valid HH:MM time, starting immediately", "value", s.anchor)
		// A start time already in the past would push the first run out a
		// full interval; keep it just ahead of the clock instead.
		first = time.Now().Add(time.Second)
	}

	slog.Info("scheduler starting", "first_run", first.Format(time.RFC3339), "interval", s.interval)

	s.cron.SingletonModeAll()
	_, err := s.cron.Every(s.interval).StartAt(first).Do(func() {
		if err := run(); err != nil {
			slog.Error("scheduled run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule update job: %w", err)
	}

	s.cron.StartBlocking()
	return nil
}

// Stop stops the scheduler. Only useful from another goroutine since
// Start blocks.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// FirstFire computes the first run time from a daily anchor given as
// "HH:MM" in 24-hour notation: today at that time if it is still in the
// future, otherwise tomorrow. A malformed anchor yields now and false so
// the caller can log a warning instead of aborting.
func FirstFire(now time.Time, anchor string) (time.Time, bool) {
	t, err := time.Parse("15:04", anchor)
	if err != nil {
		return now, false
	}

	fire := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !fire.After(now) {
		fire = fire.AddDate(0, 0, 1)
	}
	return fire, true
}
