// Package withdrawal implements payout requests and their admin review.
package withdrawal

import (
	"context"
	"fmt"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/auth"
	"github.com/Bhishaj9/redbull-backend/internal/logger"
	"github.com/Bhishaj9/redbull-backend/internal/metrics"
	"github.com/Bhishaj9/redbull-backend/internal/money"

	"github.com/shopspring/decimal"
)

const AdminListLimit = 200

var (
	ErrPasswordNotSet = fmt.Errorf("withdrawal password not set: %w", api.ErrValidation)
	ErrWrongPassword  = fmt.Errorf("wrong withdrawal password: %w", api.ErrValidation)
)

type Notifier interface {
	WithdrawalRequested(ctx context.Context, phone string, amountPaise int64, id int) error
}

type Service interface {
	Request(ctx context.Context, acct Account, amount decimal.Decimal, password string) (*RequestResponse, error)
	Process(ctx context.Context, id int, req ProcessRequest) (*Withdrawal, error)
	ListMine(ctx context.Context, userID int) ([]Withdrawal, error)
	ListAll(ctx context.Context) ([]Withdrawal, error)
}

type service struct {
	repo     Repository
	minPaise int64
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, minPaise int64, notifier Notifier) Service {
	return &service{
		repo:     repo,
		minPaise: minPaise,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *service) Request(ctx context.Context, acct Account, amount decimal.Decimal, password string) (*RequestResponse, error) {
	if acct.WithdrawPasswordHash == "" {
		return nil, ErrPasswordNotSet
	}
	if !auth.CheckPassword(acct.WithdrawPasswordHash, password) {
		return nil, ErrWrongPassword
	}

	paise, err := money.PositivePaise(amount)
	if err != nil {
		return nil, err
	}
	if paise < s.minPaise {
		return nil, fmt.Errorf("minimum withdrawal is %s: %w", money.Format(s.minPaise), api.ErrValidation)
	}

	created, balance, err := s.repo.Create(ctx, acct, paise)
	if err != nil {
		metrics.RecordWithdrawal("rejected")
		return nil, err
	}
	metrics.RecordWithdrawal(StatusPending)

	logger.Info("withdrawal requested", "withdrawal_id", created.ID, "user_id", acct.ID, "amount_paise", paise)

	if s.notifier != nil {
		if err := s.notifier.WithdrawalRequested(ctx, acct.Phone, paise, created.ID); err != nil {
			logger.Warn("withdrawal notification not queued", "withdrawal_id", created.ID, "error", err)
		}
	}

	return &RequestResponse{
		Message:     "Withdrawal requested",
		Withdrawal:  created,
		WalletPaise: balance,
	}, nil
}

func (s *service) Process(ctx context.Context, id int, req ProcessRequest) (*Withdrawal, error) {
	if req.Action != ActionAccept && req.Action != ActionDecline {
		return nil, fmt.Errorf("action must be accept or decline: %w", api.ErrValidation)
	}

	updated, err := s.repo.Process(ctx, id, req.Action, req.Note, s.now())
	if err != nil {
		return nil, err
	}
	metrics.RecordWithdrawal(updated.Status)

	logger.Info("withdrawal processed", "withdrawal_id", id, "status", updated.Status)
	return updated, nil
}

func (s *service) ListMine(ctx context.Context, userID int) ([]Withdrawal, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]Withdrawal, error) {
	return s.repo.ListAll(ctx, AdminListLimit)
}
