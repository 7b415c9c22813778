// Package payout credits the daily return of every active plan instance.
package payout

import (
	"context"
	"sync"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/logger"
	"github.com/Bhishaj9/redbull-backend/internal/metrics"
	"github.com/Bhishaj9/redbull-backend/internal/money"
)

type Failure struct {
	UserID int    `json:"user_id"`
	Error  string `json:"error"`
}

type Report struct {
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
	DisbursedPaise    int64     `json:"disbursed_paise"`
	Disbursed         string    `json:"disbursed"`
	UsersCredited     int       `json:"users_credited"`
	InstancesCredited int       `json:"instances_credited"`
	UsersFailed       int       `json:"users_failed"`
	Failures          []Failure `json:"failures"`
}

// Notifier is told about every finished run.
type Notifier interface {
	PayoutCompleted(ctx context.Context, disbursedPaise int64, usersCredited, usersFailed int) error
}

type Engine struct {
	repo     Repository
	loc      *time.Location
	notifier Notifier
	now      func() time.Time

	// one run at a time per process
	mu sync.Mutex
}

func NewEngine(repo Repository, loc *time.Location, notifier Notifier) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{
		repo:     repo,
		loc:      loc,
		notifier: notifier,
		now:      time.Now,
	}
}

// Run credits every due instance. A failing user is recorded in the report
// and does not stop the batch; only failing to list users aborts it.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	report := &Report{StartedAt: now, Failures: []Failure{}}

	users, err := e.repo.ActiveUsers(ctx, now)
	if err != nil {
		metrics.RecordPayoutRun("error", 0, 0)
		return nil, err
	}

	for _, userID := range users {
		if err := ctx.Err(); err != nil {
			report.Failures = append(report.Failures, Failure{UserID: userID, Error: err.Error()})
			report.UsersFailed++
			continue
		}

		credit, err := e.repo.CreditUser(ctx, userID, now, e.loc)
		if err != nil {
			logger.Error("payout failed for user", "user_id", userID, "error", err)
			report.Failures = append(report.Failures, Failure{UserID: userID, Error: err.Error()})
			report.UsersFailed++
			continue
		}
		if credit.Instances == 0 {
			continue
		}
		report.UsersCredited++
		report.InstancesCredited += credit.Instances
		report.DisbursedPaise += credit.AmountPaise
	}

	report.FinishedAt = e.now()
	report.Disbursed = money.Format(report.DisbursedPaise)

	result := "ok"
	if report.UsersFailed > 0 {
		result = "partial"
	}
	metrics.RecordPayoutRun(result, report.DisbursedPaise, report.UsersFailed)

	logger.Info("payout run finished",
		"users_credited", report.UsersCredited,
		"instances_credited", report.InstancesCredited,
		"disbursed_paise", report.DisbursedPaise,
		"users_failed", report.UsersFailed,
		"duration", report.FinishedAt.Sub(report.StartedAt).String(),
	)

	if e.notifier != nil {
		if err := e.notifier.PayoutCompleted(ctx, report.DisbursedPaise, report.UsersCredited, report.UsersFailed); err != nil {
			logger.Warn("payout notification not queued", "error", err)
		}
	}

	return report, nil
}
