package withdrawal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/db"
	"github.com/Bhishaj9/redbull-backend/internal/wallet"

	"github.com/jmoiron/sqlx"
)

var (
	ErrWithdrawalNotFound = fmt.Errorf("withdrawal: %w", api.ErrNotFound)
	ErrAlreadyProcessed   = fmt.Errorf("withdrawal already processed: %w", api.ErrAlreadyProcessed)
)

const withdrawalColumns = `id, user_id, phone, amount_paise, status, note, created_at, processed_at`

type Repository interface {
	Create(ctx context.Context, acct Account, amountPaise int64) (*Withdrawal, int64, error)
	Process(ctx context.Context, id int, action, note string, now time.Time) (*Withdrawal, error)
	ListByUser(ctx context.Context, userID int) ([]Withdrawal, error)
	ListAll(ctx context.Context, limit int) ([]Withdrawal, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create debits the wallet and records a pending request in one transaction.
func (r *repository) Create(ctx context.Context, acct Account, amountPaise int64) (*Withdrawal, int64, error) {
	var (
		created Withdrawal
		balance int64
	)

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &created, `
			INSERT INTO withdrawals (user_id, phone, amount_paise, status)
			VALUES ($1, $2, $3, $4)
			RETURNING `+withdrawalColumns,
			acct.ID, acct.Phone, amountPaise, StatusPending,
		)
		if err != nil {
			return err
		}

		balance, err = wallet.Apply(ctx, tx, acct.ID, -amountPaise, wallet.KindWithdrawal, reference(created.ID))
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return &created, balance, nil
}

// Process moves a pending request to its terminal state. A decline refunds
// exactly the requested amount; requests of deleted accounts are closed
// without a refund.
func (r *repository) Process(ctx context.Context, id int, action, note string, now time.Time) (*Withdrawal, error) {
	var updated Withdrawal

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current Withdrawal
		err := tx.GetContext(ctx, &current,
			`SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1 FOR UPDATE`,
			id,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWithdrawalNotFound
		}
		if err != nil {
			return err
		}
		if current.Status != StatusPending {
			return ErrAlreadyProcessed
		}

		status := StatusProcessed
		if action == ActionDecline {
			status = StatusCancelled
		}

		err = tx.GetContext(ctx, &updated, `
			UPDATE withdrawals
			SET status = $1, note = $2, processed_at = $3
			WHERE id = $4
			RETURNING `+withdrawalColumns,
			status, note, now, id,
		)
		if err != nil {
			return err
		}

		if action != ActionDecline || current.UserID == nil {
			return nil
		}
		_, err = wallet.Apply(ctx, tx, *current.UserID, current.AmountPaise, wallet.KindWithdrawalRefund, reference(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Withdrawal, error) {
	list := []Withdrawal{}
	err := r.db.SelectContext(ctx, &list,
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	return list, err
}

func (r *repository) ListAll(ctx context.Context, limit int) ([]Withdrawal, error) {
	list := []Withdrawal{}
	err := r.db.SelectContext(ctx, &list,
		`SELECT `+withdrawalColumns+` FROM withdrawals ORDER BY created_at DESC, id DESC LIMIT $1`,
		limit,
	)
	return list, err
}

func reference(id int) string {
	return "withdrawal:" + strconv.Itoa(id)
}
