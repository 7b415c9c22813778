package recharge

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"

	ActionApprove = "approve"
	ActionDecline = "decline"

	DefaultMethod = "upi"
)

type Recharge struct {
	ID          int        `db:"id" json:"id"`
	UserID      *int       `db:"user_id" json:"user_id"`
	Phone       string     `db:"phone" json:"phone"`
	AmountPaise int64      `db:"amount_paise" json:"amount_paise"`
	UTR         string     `db:"utr" json:"utr"`
	Method      string     `db:"method" json:"method"`
	Status      string     `db:"status" json:"status"`
	Note        string     `db:"note" json:"note"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	ProcessedAt *time.Time `db:"processed_at" json:"processed_at"`
}

type Submitter struct {
	ID    int
	Phone string
}

type SubmitRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"500"`
	UTR    string          `json:"utr" binding:"required,min=6,max=64"`
	Method string          `json:"method" binding:"omitempty,max=20"`
}

type ProcessRequest struct {
	Action string `json:"action" binding:"required"`
	Note   string `json:"note" binding:"max=500"`
}
