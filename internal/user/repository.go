package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/db"
	"github.com/Bhishaj9/redbull-backend/internal/wallet"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrUserNotFound    = fmt.Errorf("user: %w", api.ErrNotFound)
	ErrPhoneTaken      = fmt.Errorf("phone already registered: %w", api.ErrValidation)
	ErrInviteCodeTaken = errors.New("invite code already in use")
	ErrAlreadyReferred = errors.New("referee already credited")
)

const userColumns = `id, phone, password_hash, withdraw_password_hash, wallet_paise, invite_code, blocked,
	bank_holder, bank_account, bank_ifsc, bank_name, created_at, updated_at`

type Repository interface {
	PhoneExists(ctx context.Context, phone string) (bool, error)
	CreateWithBonus(ctx context.Context, phone, passwordHash, inviteCode string, bonusPaise int64) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	FindByInviteCode(ctx context.Context, code string) (*User, error)
	CreditReferral(ctx context.Context, referrerID int, refereePhone string, bonusPaise int64) error
	ListTeam(ctx context.Context, referrerID int) ([]TeamMember, error)
	SetWithdrawPassword(ctx context.Context, id int, hash string) error
	UpdateBank(ctx context.Context, id int, bank BankDetails) error
	List(ctx context.Context, limit int) ([]User, error)
	ToggleBlocked(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE phone = $1)`, phone)
}

// CreateWithBonus inserts the account and journals the signup bonus in one transaction.
func (r *repository) CreateWithBonus(ctx context.Context, phone, passwordHash, inviteCode string, bonusPaise int64) (*User, error) {
	var created User
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &created, `
			INSERT INTO users (phone, password_hash, invite_code)
			VALUES ($1, $2, $3)
			RETURNING `+userColumns, phone, passwordHash, inviteCode)
		if err != nil {
			return uniqueViolation(err)
		}

		if bonusPaise > 0 {
			balance, err := wallet.Apply(ctx, tx, created.ID, bonusPaise, wallet.KindSignupBonus, "signup")
			if err != nil {
				return err
			}
			created.WalletPaise = balance
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func uniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return err
	}
	switch pqErr.Constraint {
	case "users_phone_key":
		return ErrPhoneTaken
	case "users_invite_code_key":
		return ErrInviteCodeTaken
	case "referrals_referee_phone_key":
		return ErrAlreadyReferred
	}
	return err
}

func (r *repository) findOne(ctx context.Context, where string, arg interface{}) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByPhone(ctx context.Context, phone string) (*User, error) {
	return r.findOne(ctx, "phone = $1", phone)
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *repository) FindByInviteCode(ctx context.Context, code string) (*User, error) {
	return r.findOne(ctx, "invite_code = $1", code)
}

// CreditReferral records the referee and credits the referrer. A referee can
// only ever be credited once.
func (r *repository) CreditReferral(ctx context.Context, referrerID int, refereePhone string, bonusPaise int64) error {
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO referrals (referrer_id, referee_phone, bonus_paise)
			VALUES ($1, $2, $3)
		`, referrerID, refereePhone, bonusPaise)
		if err != nil {
			return uniqueViolation(err)
		}

		_, err = wallet.Apply(ctx, tx, referrerID, bonusPaise, wallet.KindReferralBonus, refereePhone)
		return err
	})
}

func (r *repository) ListTeam(ctx context.Context, referrerID int) ([]TeamMember, error) {
	members := []TeamMember{}
	err := r.db.SelectContext(ctx, &members, `
		SELECT u.phone, u.created_at
		FROM referrals rf
		JOIN users u ON u.phone = rf.referee_phone
		WHERE rf.referrer_id = $1
		ORDER BY rf.id
	`, referrerID)
	return members, err
}

func (r *repository) SetWithdrawPassword(ctx context.Context, id int, hash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET withdraw_password_hash = $1, updated_at = NOW() WHERE id = $2`,
		hash, id,
	)
	return affectedOne(res, err)
}

func (r *repository) UpdateBank(ctx context.Context, id int, bank BankDetails) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET bank_holder = $1, bank_account = $2, bank_ifsc = $3, bank_name = $4, updated_at = NOW()
		WHERE id = $5
	`, bank.Holder, bank.Account, bank.IFSC, bank.Bank, id)
	return affectedOne(res, err)
}

func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context, limit int) ([]User, error) {
	users := []User{}
	err := r.db.SelectContext(ctx, &users,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC LIMIT $1`,
		limit,
	)
	return users, err
}

func (r *repository) ToggleBlocked(ctx context.Context, id int) (bool, error) {
	var blocked bool
	err := r.db.GetContext(ctx, &blocked,
		`UPDATE users SET blocked = NOT blocked, updated_at = NOW() WHERE id = $1 RETURNING blocked`,
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrUserNotFound
	}
	return blocked, err
}

// Delete removes the account. Instances, pending orders, journal entries and
// the referrals it made cascade; purchases, withdrawals and recharges keep the
// phone with a null owner.
func (r *repository) Delete(ctx context.Context, id int) error {
	return db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var phone string
		err := tx.GetContext(ctx, &phone, `SELECT phone FROM users WHERE id = $1 FOR UPDATE`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM referrals WHERE referee_phone = $1`, phone); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
		return err
	})
}
