package payout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

type Runner interface {
	Run(ctx context.Context) (*Report, error)
}

// Scheduler runs the engine once per calendar day at hour in loc. Until a run
// finishes without failed users the day stays open and is retried every half
// hour. A restart on the same day may run again; instances already paid that
// day are skipped by the engine.
type Scheduler struct {
	runner Runner
	loc    *time.Location
	hour   int
	now    func() time.Time

	mu         sync.Mutex
	lastRunDay string
}

func NewScheduler(runner Runner, loc *time.Location, hour int) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		runner: runner,
		loc:    loc,
		hour:   hour,
		now:    time.Now,
	}
}

func (s *Scheduler) dailySpec() string {
	return fmt.Sprintf("0 %d * * *", s.hour)
}

func (s *Scheduler) retrySpec() string {
	return fmt.Sprintf("30 %d-23 * * *", s.hour)
}

// Start blocks until ctx is cancelled. A run missed while the process was down
// is caught up immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(s.loc))
	job := func() { s.tick(ctx) }
	if _, err := c.AddFunc(s.dailySpec(), job); err != nil {
		return fmt.Errorf("schedule daily payout: %w", err)
	}
	if _, err := c.AddFunc(s.retrySpec(), job); err != nil {
		return fmt.Errorf("schedule payout retry: %w", err)
	}

	logger.Info("payout scheduler started", "hour", s.hour, "timezone", s.loc.String())
	c.Start()
	s.tick(ctx)

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("payout scheduler stopped")
	return nil
}

// tick runs the engine if today's run is still open and reports whether it ran.
func (s *Scheduler) tick(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	local := s.now().In(s.loc)
	day := local.Format("2006-01-02")
	if day == s.lastRunDay || local.Hour() < s.hour {
		return false
	}

	report, err := s.runner.Run(ctx)
	if err != nil {
		logger.Error("scheduled payout run failed", "day", day, "error", err)
		return true
	}
	if report != nil && report.UsersFailed > 0 {
		logger.Warn("payout run left users unpaid, will retry", "day", day, "failed", report.UsersFailed)
		return true
	}
	s.lastRunDay = day
	return true
}
