package wallet

import "time"

// Kind labels a journal entry with the operation that moved the money.
type Kind string

const (
	KindSignupBonus      Kind = "signup_bonus"
	KindReferralBonus    Kind = "referral_bonus"
	KindPlanPurchase     Kind = "plan_purchase"
	KindPayout           Kind = "payout"
	KindWithdrawal       Kind = "withdrawal"
	KindWithdrawalRefund Kind = "withdrawal_refund"
	KindRecharge         Kind = "recharge"
)

// Transaction is one journal line; BalanceAfter is the wallet after applying it.
type Transaction struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	AmountPaise  int64     `db:"amount_paise" json:"amount_paise"`
	Kind         Kind      `db:"kind" json:"kind"`
	Reference    string    `db:"reference" json:"reference"`
	BalanceAfter int64     `db:"balance_after" json:"balance_after"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type BalanceResponse struct {
	WalletPaise int64  `json:"wallet_paise"`
	Wallet      string `json:"wallet"`
}
