package plan

import (
	"context"
	"fmt"

	"github.com/Bhishaj9/redbull-backend/internal/db"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	List(ctx context.Context) ([]Plan, error)
	Create(ctx context.Context, p Plan) (*Plan, error)
	SeedDefaults(ctx context.Context, plans []Plan) (int, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Plan, error) {
	plans := []Plan{}
	err := r.db.SelectContext(ctx, &plans, `
		SELECT seq, id, name, price_paise, daily_paise, days, image, type, timer_hours, diamond, created_at
		FROM plans
		ORDER BY seq
	`)
	return plans, err
}

func (r *repository) Create(ctx context.Context, p Plan) (*Plan, error) {
	var created Plan
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO plans (id, name, price_paise, daily_paise, days, image, type, timer_hours, diamond)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING seq, id, name, price_paise, daily_paise, days, image, type, timer_hours, diamond, created_at
	`, p.ID, p.Name, p.PricePaise, p.DailyPaise, p.Days, p.Image, p.Type, p.TimerHours, p.Diamond)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// SeedDefaults inserts plans only into an empty catalog and reports how many were added.
func (r *repository) SeedDefaults(ctx context.Context, plans []Plan) (int, error) {
	seeded := 0
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		// Serializes concurrent seeders on the same database.
		if _, err := tx.ExecContext(ctx, `LOCK TABLE plans IN EXCLUSIVE MODE`); err != nil {
			return err
		}

		var count int
		if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM plans`); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, p := range plans {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO plans (id, name, price_paise, daily_paise, days, image, type, timer_hours, diamond)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`, p.ID, p.Name, p.PricePaise, p.DailyPaise, p.Days, p.Image, p.Type, p.TimerHours, p.Diamond)
			if err != nil {
				return fmt.Errorf("seed plan %s: %w", p.ID, err)
			}
		}
		seeded = len(plans)
		return nil
	})
	return seeded, err
}
