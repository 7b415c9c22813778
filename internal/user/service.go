package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/auth"
	"github.com/Bhishaj9/redbull-backend/internal/logger"
	"github.com/Bhishaj9/redbull-backend/internal/metrics"
	"github.com/Bhishaj9/redbull-backend/internal/money"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", api.ErrUnauthorized)

const (
	AdminListLimit   = 200
	inviteCodeLength = 8
	inviteAttempts   = 3
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	Team(ctx context.Context, userID int) (*TeamResponse, error)
	SetWithdrawPassword(ctx context.Context, userID int, password string) error
	UpdateBank(ctx context.Context, userID int, bank BankDetails) error
	List(ctx context.Context) ([]User, error)
	ToggleBlock(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) error
}

type Options struct {
	JWTSecret        string
	SignupBonusPaise int64
	ReferralRate     float64
}

type service struct {
	repo Repository
	opts Options
}

func NewService(repo Repository, opts Options) Service {
	return &service{repo: repo, opts: opts}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	phone := strings.TrimSpace(req.Phone)
	if len(phone) < 6 || len(req.Password) < 6 {
		return nil, "", fmt.Errorf("phone and password must be at least 6 characters: %w", api.ErrValidation)
	}

	exists, err := s.repo.PhoneExists(ctx, phone)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrPhoneTaken
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	var created *User
	for attempt := 0; attempt < inviteAttempts; attempt++ {
		created, err = s.repo.CreateWithBonus(ctx, phone, passwordHash, newInviteCode(), s.opts.SignupBonusPaise)
		if !errors.Is(err, ErrInviteCodeTaken) {
			break
		}
	}
	if err != nil {
		return nil, "", err
	}
	metrics.RecordSignup()

	// The account is committed at this point; a referral failure must not undo it.
	if invite := strings.TrimSpace(req.Invite); invite != "" {
		s.applyReferral(ctx, invite, created.Phone)
	}

	token, err := auth.GenerateSessionToken(created.Phone, s.opts.JWTSecret)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

func (s *service) applyReferral(ctx context.Context, invite, refereePhone string) {
	referrer, err := s.repo.FindByInviteCode(ctx, invite)
	if errors.Is(err, ErrUserNotFound) {
		logger.Info("unknown invite code at signup", "invite", invite, "phone", refereePhone)
		return
	}
	if err != nil {
		logger.Error("referral lookup failed", "invite", invite, "phone", refereePhone, "error", err)
		return
	}

	bonus := money.Fraction(s.opts.SignupBonusPaise, s.opts.ReferralRate)
	if bonus <= 0 {
		return
	}

	if err := s.repo.CreditReferral(ctx, referrer.ID, refereePhone, bonus); err != nil {
		logger.Error("referral bonus failed",
			"referrer_id", referrer.ID,
			"phone", refereePhone,
			"error", err,
		)
		return
	}
	metrics.RecordReferralBonus()
	logger.Info("referral bonus credited", "referrer_id", referrer.ID, "phone", refereePhone, "bonus_paise", bonus)
}

func newInviteCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:inviteCodeLength])
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	u, err := s.repo.FindByPhone(ctx, strings.TrimSpace(req.Phone))
	if errors.Is(err, ErrUserNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCredentials
	}
	if u.Blocked {
		return nil, "", ErrBlocked
	}

	token, err := auth.GenerateSessionToken(u.Phone, s.opts.JWTSecret)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) GetByPhone(ctx context.Context, phone string) (*User, error) {
	return s.repo.FindByPhone(ctx, phone)
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Team(ctx context.Context, userID int) (*TeamResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListTeam(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &TeamResponse{
		Team: Team{
			Level1: TeamLevel{Size: len(members), Members: members},
			Level2: TeamLevel{Members: []TeamMember{}},
			Level3: TeamLevel{Members: []TeamMember{}},
		},
		InviteCode: u.InviteCode,
	}, nil
}

func (s *service) SetWithdrawPassword(ctx context.Context, userID int, password string) error {
	if len(password) < 4 {
		return fmt.Errorf("withdrawal password must be at least 4 characters: %w", api.ErrValidation)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.SetWithdrawPassword(ctx, userID, hash)
}

func (s *service) UpdateBank(ctx context.Context, userID int, bank BankDetails) error {
	bank.IFSC = strings.ToUpper(strings.TrimSpace(bank.IFSC))
	bank.Account = strings.TrimSpace(bank.Account)
	return s.repo.UpdateBank(ctx, userID, bank)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx, AdminListLimit)
}

func (s *service) ToggleBlock(ctx context.Context, id int) (bool, error) {
	blocked, err := s.repo.ToggleBlocked(ctx, id)
	if err != nil {
		return false, err
	}
	logger.Info("user block toggled", "user_id", id, "blocked", blocked)
	return blocked, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("user deleted", "user_id", id)
	return nil
}
