package withdrawal

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusCancelled = "cancelled"

	ActionAccept  = "accept"
	ActionDecline = "decline"
)

type Withdrawal struct {
	ID          int        `db:"id" json:"id"`
	UserID      *int       `db:"user_id" json:"user_id"`
	Phone       string     `db:"phone" json:"phone"`
	AmountPaise int64      `db:"amount_paise" json:"amount_paise"`
	Status      string     `db:"status" json:"status"`
	Note        string     `db:"note" json:"note"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	ProcessedAt *time.Time `db:"processed_at" json:"processed_at"`
}

// Account is the requester as resolved by the session middleware.
type Account struct {
	ID                   int
	Phone                string
	WithdrawPasswordHash string
}

type Request struct {
	Amount   decimal.Decimal `json:"amount" swaggertype:"number" example:"150"`
	Password string          `json:"withdrawPass" binding:"required"`
}

type RequestResponse struct {
	Message     string      `json:"message"`
	Withdrawal  *Withdrawal `json:"withdraw"`
	WalletPaise int64       `json:"wallet_paise"`
}

type ProcessRequest struct {
	Action string `json:"action" binding:"required"`
	Note   string `json:"note" binding:"max=500"`
}
