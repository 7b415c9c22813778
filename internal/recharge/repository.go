package recharge

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
	"github.com/lib/pq"
)

var (
	ErrRechargeNotFound = fmt.Errorf("recharge: %w", api.ErrNotFound)
	ErrAlreadyProcessed = fmt.Errorf("recharge already processed: %w", api.ErrAlreadyProcessed)
	ErrDuplicateUTR     = fmt.Errorf("UTR already submitted: %w", api.ErrValidation)
)

const rechargeColumns = `id, user_id, phone, amount_paise, utr, method, status, note, created_at, processed_at`

type Repository interface {
	Create(ctx context.Context, s Submitter, amountPaise int64, utr, method string) (*Recharge, error)
	Process(ctx context.Context, id int, action, note string, now time.Time) (*Recharge, error)
	ListByUser(ctx context.Context, userID int) ([]Recharge, error)
	ListAll(ctx context.Context, limit int) ([]Recharge, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s Submitter, amountPaise int64, utr, method string) (*Recharge, error) {
	var created Recharge
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO recharges (user_id, phone, amount_paise, utr, method, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+rechargeColumns,
		s.ID, s.Phone, amountPaise, utr, method, StatusPending,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return nil, ErrDuplicateUTR
	}
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Process closes a pending recharge. Approval credits the wallet of the
// submitting account; a deleted account cannot be approved.
func (r *repository) Process(ctx context.Context, id int, action, note string, now time.Time) (*Recharge, error) {
	var updated Recharge

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current Recharge
		err := tx.GetContext(ctx, &current,
			`SELECT `+rechargeColumns+` FROM recharges WHERE id = $1 FOR UPDATE`,
			id,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRechargeNotFound
		}
		if err != nil {
			return err
		}
		if current.Status != StatusPending {
			return ErrAlreadyProcessed
		}

		status := StatusDeclined
		if action == ActionApprove {
			if current.UserID == nil {
				return fmt.Errorf("recharge owner deleted: %w", api.ErrValidation)
			}
			status = StatusApproved
		}

		err = tx.GetContext(ctx, &updated, `
			UPDATE recharges
			SET status = $1, note = $2, processed_at = $3
			WHERE id = $4
			RETURNING `+rechargeColumns,
			status, note, now, id,
		)
		if err != nil {
			return err
		}

		if status != StatusApproved {
			return nil
		}
		_, err = wallet.Apply(ctx, tx, *current.UserID, current.AmountPaise, wallet.KindRecharge, "recharge:"+strconv.Itoa(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Recharge, error) {
	list := []Recharge{}
	err := r.db.SelectContext(ctx, &list,
		`SELECT `+rechargeColumns+` FROM recharges WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	return list, err
}

func (r *repository) ListAll(ctx context.Context, limit int) ([]Recharge, error) {
	list := []Recharge{}
	err := r.db.SelectContext(ctx, &list,
		`SELECT `+rechargeColumns+` FROM recharges ORDER BY created_at DESC, id DESC LIMIT $1`,
		limit,
	)
	return list, err
}
