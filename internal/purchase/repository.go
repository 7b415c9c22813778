package purchase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/db"
	"github.com/Bhishaj9/redbull-backend/internal/plan"
	"github.com/Bhishaj9/redbull-backend/internal/wallet"

	"github.com/jmoiron/sqlx"
)

var ErrPurchaseNotFound = fmt.Errorf("purchase: %w", api.ErrNotFound)

const purchaseColumns = `id, user_id, phone, type, plan_id, plan_name, amount_paise, method,
	order_id, payment_id, signature, status, created_at, paid_at`

// Fulfillment is a verified gateway payment ready to be applied.
type Fulfillment struct {
	OrderID   string
	PaymentID string
	Signature string
	UserID    int
	// Plan carries the terms to instantiate for plan orders.
	Plan *plan.Plan
	Now  time.Time
}

type Repository interface {
	BuyWithWallet(ctx context.Context, buyer Buyer, p plan.Plan, now time.Time) (*Purchase, *plan.Instance, int64, error)
	CreateOrder(ctx context.Context, o NewOrder) (*Purchase, error)
	FindByOrderID(ctx context.Context, orderID string) (*Purchase, error)
	MarkSignatureFailed(ctx context.Context, orderID string) error
	Fulfill(ctx context.Context, f Fulfillment) (*Purchase, bool, error)
	ListByUser(ctx context.Context, userID int) ([]Purchase, error)
	ListInstances(ctx context.Context, userID int) ([]plan.Instance, error)
	ListAll(ctx context.Context, limit int) ([]Purchase, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// BuyWithWallet debits the price, records a completed purchase and creates
// the instance in one transaction. It returns the new wallet balance.
func (r *repository) BuyWithWallet(ctx context.Context, buyer Buyer, p plan.Plan, now time.Time) (*Purchase, *plan.Instance, int64, error) {
	var (
		purchase Purchase
		instance *plan.Instance
		balance  int64
	)

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		balance, err = wallet.Apply(ctx, tx, buyer.ID, -p.PricePaise, wallet.KindPlanPurchase, p.ID)
		if err != nil {
			return err
		}

		err = tx.GetContext(ctx, &purchase, `
			INSERT INTO purchases (user_id, phone, type, plan_id, plan_name, amount_paise, method, status, paid_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+purchaseColumns,
			buyer.ID, buyer.Phone, TypePlan, p.ID, p.Name, p.PricePaise, MethodWallet, StatusCompleted, now,
		)
		if err != nil {
			return err
		}

		inst := plan.NewInstance(buyer.ID, p, now)
		inst.PurchaseID = &purchase.ID
		instance, err = plan.InsertInstance(ctx, tx, inst)
		return err
	})
	if err != nil {
		return nil, nil, 0, err
	}
	return &purchase, instance, balance, nil
}

// CreateOrder stores the created purchase and its pending-order marker together.
func (r *repository) CreateOrder(ctx context.Context, o NewOrder) (*Purchase, error) {
	var purchase Purchase
	var planID *string
	if o.PlanID != "" {
		planID = &o.PlanID
	}

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &purchase, `
			INSERT INTO purchases (user_id, phone, type, plan_id, plan_name, amount_paise, method, order_id, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+purchaseColumns,
			o.UserID, o.Phone, o.Type, planID, o.PlanName, o.AmountPaise, MethodGateway, o.OrderID, StatusCreated,
		)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO pending_orders (order_id, user_id, plan_id, type, amount_paise)
			VALUES ($1, $2, $3, $4, $5)
		`, o.OrderID, o.UserID, planID, o.Type, o.AmountPaise)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *repository) FindByOrderID(ctx context.Context, orderID string) (*Purchase, error) {
	var p Purchase
	err := r.db.GetContext(ctx, &p, `SELECT `+purchaseColumns+` FROM purchases WHERE order_id = $1`, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPurchaseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkSignatureFailed never downgrades a completed purchase.
func (r *repository) MarkSignatureFailed(ctx context.Context, orderID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE purchases SET status = $1 WHERE order_id = $2 AND status <> $3`,
		StatusFailedSignature, orderID, StatusCompleted,
	)
	return err
}

// Fulfill completes the order and credits it exactly once. The boolean is true
// when the order had already been completed by an earlier call.
func (r *repository) Fulfill(ctx context.Context, f Fulfillment) (*Purchase, bool, error) {
	var (
		purchase Purchase
		already  bool
	)

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &purchase,
			`SELECT `+purchaseColumns+` FROM purchases WHERE order_id = $1 FOR UPDATE`,
			f.OrderID,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPurchaseNotFound
		}
		if err != nil {
			return err
		}
		if !purchase.OwnedBy(f.UserID) {
			return ErrPurchaseNotFound
		}
		if purchase.Status == StatusCompleted {
			already = true
			return nil
		}

		err = tx.GetContext(ctx, &purchase, `
			UPDATE purchases
			SET status = $1, payment_id = $2, signature = $3, paid_at = $4
			WHERE id = $5
			RETURNING `+purchaseColumns,
			StatusCompleted, f.PaymentID, f.Signature, f.Now, purchase.ID,
		)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM pending_orders WHERE order_id = $1`, f.OrderID); err != nil {
			return err
		}

		switch purchase.Type {
		case TypeRecharge:
			_, err = wallet.Apply(ctx, tx, f.UserID, purchase.AmountPaise, wallet.KindRecharge, f.OrderID)
			return err
		case TypePlan:
			if f.Plan == nil {
				return fmt.Errorf("order %s has no plan terms", f.OrderID)
			}
			inst := plan.NewInstance(f.UserID, *f.Plan, f.Now)
			inst.PurchaseID = &purchase.ID
			_, err = plan.InsertInstance(ctx, tx, inst)
			return err
		default:
			return fmt.Errorf("order %s has unknown type %q", f.OrderID, purchase.Type)
		}
	})
	if err != nil {
		return nil, false, err
	}
	return &purchase, already, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Purchase, error) {
	purchases := []Purchase{}
	err := r.db.SelectContext(ctx, &purchases,
		`SELECT `+purchaseColumns+` FROM purchases WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	return purchases, err
}

func (r *repository) ListInstances(ctx context.Context, userID int) ([]plan.Instance, error) {
	return plan.ListInstances(ctx, r.db, userID)
}

func (r *repository) ListAll(ctx context.Context, limit int) ([]Purchase, error) {
	purchases := []Purchase{}
	err := r.db.SelectContext(ctx, &purchases,
		`SELECT `+purchaseColumns+` FROM purchases ORDER BY created_at DESC, id DESC LIMIT $1`,
		limit,
	)
	return purchases, err
}
