package purchase

import (
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/plan"

	"github.com/shopspring/decimal"
)

const (
	TypePlan     = "plan"
	TypeRecharge = "recharge"

	MethodWallet  = "wallet"
	MethodGateway = "gateway"

	StatusCreated         = "created"
	StatusPending         = "pending"
	StatusCompleted       = "completed"
	StatusFailed          = "failed"
	StatusFailedSignature = "failed_signature"
)

type Purchase struct {
	ID          int        `db:"id" json:"id"`
	UserID      *int       `db:"user_id" json:"user_id"`
	Phone       string     `db:"phone" json:"phone"`
	Type        string     `db:"type" json:"type"`
	PlanID      *string    `db:"plan_id" json:"plan_id"`
	PlanName    string     `db:"plan_name" json:"plan_name"`
	AmountPaise int64      `db:"amount_paise" json:"amount_paise"`
	Method      string     `db:"method" json:"method"`
	OrderID     *string    `db:"order_id" json:"order_id"`
	PaymentID   *string    `db:"payment_id" json:"payment_id"`
	Signature   *string    `db:"signature" json:"-"`
	Status      string     `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	PaidAt      *time.Time `db:"paid_at" json:"paid_at"`
}

// OwnedBy reports whether the purchase belongs to the account. Purchases of
// deleted accounts belong to nobody.
func (p *Purchase) OwnedBy(userID int) bool {
	return p.UserID != nil && *p.UserID == userID
}

// Buyer is the authenticated account making a purchase.
type Buyer struct {
	ID    int
	Phone string
}

type NewOrder struct {
	UserID      int
	Phone       string
	Type        string
	PlanID      string
	PlanName    string
	AmountPaise int64
	OrderID     string
}

type BuyRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

type BuyResponse struct {
	Message     string         `json:"message"`
	Purchase    *Purchase      `json:"purchase"`
	Instance    *plan.Instance `json:"instance"`
	WalletPaise int64          `json:"wallet_paise"`
}

// CreateOrderRequest opens a plan order when PlanID names a plan and a
// recharge order for Amount rupees otherwise.
type CreateOrderRequest struct {
	PlanID string              `json:"planId"`
	Amount decimal.NullDecimal `json:"amount"`
}

type OrderResponse struct {
	Key        string `json:"key"`
	Amount     int64  `json:"amount"`
	OrderID    string `json:"order_id"`
	PurchaseID int    `json:"purchase_id"`
}

type VerifyRequest struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

type VerifyResponse struct {
	Verified bool      `json:"verified"`
	Message  string    `json:"message"`
	Purchase *Purchase `json:"purchase,omitempty"`
}
