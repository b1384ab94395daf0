package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler reloads a Store on a standard five field cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	store   *Store
	log     *slog.Logger
	timeout time.Duration
}

// ParseSchedule validates a five field cron expression such as
// "*/5 * * * *". Descriptors like "@every 1m" are accepted too.
func ParseSchedule(expr string) (cron.Schedule, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, expr, err)
	}
	return schedule, nil
}

// NewScheduler prepares reloads of store. Each reload is bounded by one
// minute.
func NewScheduler(store *Store, expr string, log *slog.Logger) (*Scheduler, error) {
	schedule, err := ParseSchedule(expr)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		store:   store,
		log:     log,
		timeout: time.Minute,
	}
	s.cron.Schedule(schedule, cron.FuncJob(s.reload))
	return s, nil
}

func (s *Scheduler) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.store.Reload(ctx); err != nil {
		s.log.Warn("scheduled catalog reload failed, keeping previous catalog", slog.Any("error", err))
	}
}

// Start runs the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the schedule and waits for a running reload or ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next returns the next planned reload.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
