package payout

import (
	"context"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/db"
	"github.com/Bhishaj9/redbull-backend/internal/plan"
	"github.com/Bhishaj9/redbull-backend/internal/wallet"

	"github.com/jmoiron/sqlx"
)

// Credit is what one user's payout added up to.
type Credit struct {
	Instances   int
	AmountPaise int64
}

type Repository interface {
	ActiveUsers(ctx context.Context, now time.Time) ([]int, error)
	CreditUser(ctx context.Context, userID int, now time.Time, loc *time.Location) (Credit, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// ActiveUsers lists owners of at least one unexpired, unexhausted instance.
func (r *repository) ActiveUsers(ctx context.Context, now time.Time) ([]int, error) {
	ids := []int{}
	err := r.db.SelectContext(ctx, &ids, `
		SELECT DISTINCT user_id
		FROM plan_instances
		WHERE expires_at > $1 AND total_credited_paise < daily_paise * days
		ORDER BY user_id
	`, now)
	return ids, err
}

// CreditUser pays every due instance of one user in a single transaction.
// Instance rows are locked so a concurrent run sees the updated
// last_credited_at and skips them.
func (r *repository) CreditUser(ctx context.Context, userID int, now time.Time, loc *time.Location) (Credit, error) {
	var credit Credit

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		instances := []plan.Instance{}
		err := tx.SelectContext(ctx, &instances, `
			SELECT `+plan.InstanceColumns+`
			FROM plan_instances
			WHERE user_id = $1 AND expires_at > $2 AND total_credited_paise < daily_paise * days
			ORDER BY id
			FOR UPDATE
		`, userID, now)
		if err != nil {
			return err
		}

		for _, inst := range instances {
			if !inst.DueAt(now, loc) {
				continue
			}
			amount := inst.NextCredit()
			_, err := tx.ExecContext(ctx, `
				UPDATE plan_instances
				SET total_credited_paise = total_credited_paise + $1, last_credited_at = $2
				WHERE id = $3
			`, amount, now, inst.ID)
			if err != nil {
				return err
			}
			credit.Instances++
			credit.AmountPaise += amount
		}

		if credit.AmountPaise == 0 {
			return nil
		}
		_, err = wallet.Apply(ctx, tx, userID, credit.AmountPaise, wallet.KindPayout, "payout:"+now.In(loc).Format("2006-01-02"))
		return err
	})
	if err != nil {
		return Credit{}, err
	}
	return credit, nil
}
