package plan

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const InstanceColumns = `id, user_id, plan_id, name, price_paise, daily_paise, days, purchase_id,
	purchased_at, expires_at, last_credited_at, total_credited_paise`

// InsertInstance persists a newly bought instance inside the caller's transaction.
func InsertInstance(ctx context.Context, tx *sqlx.Tx, inst Instance) (*Instance, error) {
	var created Instance
	err := tx.GetContext(ctx, &created, `
		INSERT INTO plan_instances
			(user_id, plan_id, name, price_paise, daily_paise, days, purchase_id, purchased_at, expires_at, last_credited_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+InstanceColumns,
		inst.UserID, inst.PlanID, inst.Name, inst.PricePaise, inst.DailyPaise, inst.Days,
		inst.PurchaseID, inst.PurchasedAt, inst.ExpiresAt, inst.LastCreditedAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func ListInstances(ctx context.Context, q sqlx.QueryerContext, userID int) ([]Instance, error) {
	instances := []Instance{}
	err := sqlx.SelectContext(ctx, q, &instances,
		`SELECT `+InstanceColumns+` FROM plan_instances WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	return instances, err
}
