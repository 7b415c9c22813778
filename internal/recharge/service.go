// Package recharge handles manual top-ups confirmed by an operator.
package recharge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/logger"
	"github.com/Bhishaj9/redbull-backend/internal/metrics"
	"github.com/Bhishaj9/redbull-backend/internal/money"
)

const AdminListLimit = 200

type Notifier interface {
	RechargeSubmitted(ctx context.Context, phone string, amountPaise int64, utr string) error
}

type Service interface {
	Submit(ctx context.Context, s Submitter, req SubmitRequest) (*Recharge, error)
	Process(ctx context.Context, id int, req ProcessRequest) (*Recharge, error)
	ListMine(ctx context.Context, userID int) ([]Recharge, error)
	ListAll(ctx context.Context) ([]Recharge, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{repo: repo, notifier: notifier, now: time.Now}
}

func (s *service) Submit(ctx context.Context, sub Submitter, req SubmitRequest) (*Recharge, error) {
	paise, err := money.PositivePaise(req.Amount)
	if err != nil {
		return nil, err
	}
	utr := strings.TrimSpace(req.UTR)
	if utr == "" {
		return nil, fmt.Errorf("utr is required: %w", api.ErrValidation)
	}
	method := strings.ToLower(strings.TrimSpace(req.Method))
	if method == "" {
		method = DefaultMethod
	}

	created, err := s.repo.Create(ctx, sub, paise, utr, method)
	if err != nil {
		return nil, err
	}
	metrics.RecordRecharge(StatusPending)
	logger.Info("recharge submitted", "recharge_id", created.ID, "user_id", sub.ID, "amount_paise", paise)

	if s.notifier != nil {
		if err := s.notifier.RechargeSubmitted(ctx, sub.Phone, paise, utr); err != nil {
			logger.Warn("recharge notification not queued", "recharge_id", created.ID, "error", err)
		}
	}
	return created, nil
}

func (s *service) Process(ctx context.Context, id int, req ProcessRequest) (*Recharge, error) {
	if req.Action != ActionApprove && req.Action != ActionDecline {
		return nil, fmt.Errorf("action must be approve or decline: %w", api.ErrValidation)
	}

	updated, err := s.repo.Process(ctx, id, req.Action, req.Note, s.now())
	if err != nil {
		return nil, err
	}
	metrics.RecordRecharge(updated.Status)
	logger.Info("recharge processed", "recharge_id", id, "status", updated.Status)
	return updated, nil
}

func (s *service) ListMine(ctx context.Context, userID int) ([]Recharge, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]Recharge, error) {
	return s.repo.ListAll(ctx, AdminListLimit)
}
