package user

import "time"

type User struct {
	ID                   int       `db:"id" json:"id"`
	Phone                string    `db:"phone" json:"phone"`
	PasswordHash         string    `db:"password_hash" json:"-"`
	WithdrawPasswordHash string    `db:"withdraw_password_hash" json:"-"`
	WalletPaise          int64     `db:"wallet_paise" json:"wallet_paise"`
	InviteCode           string    `db:"invite_code" json:"invite_code"`
	Blocked              bool      `db:"blocked" json:"blocked"`
	BankHolder           string    `db:"bank_holder" json:"bank_holder"`
	BankAccount          string    `db:"bank_account" json:"bank_account"`
	BankIFSC             string    `db:"bank_ifsc" json:"bank_ifsc"`
	BankName             string    `db:"bank_name" json:"bank_name"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

func (u *User) HasWithdrawPassword() bool {
	return u.WithdrawPasswordHash != ""
}

type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required,min=6,max=20"`
	Password string `json:"pass" binding:"required,min=6,max=72"`
	Invite   string `json:"invite" binding:"max=32"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"pass" binding:"required"`
}

type AuthResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}

type MeResponse struct {
	User *User `json:"user"`
}

type WithdrawPasswordRequest struct {
	Password string `json:"withdrawPass" binding:"required,min=4,max=72"`
}

type BankDetails struct {
	Holder  string `json:"holder" db:"bank_holder" binding:"required,max=100"`
	Account string `json:"account" db:"bank_account" binding:"required,max=34"`
	IFSC    string `json:"ifsc" db:"bank_ifsc" binding:"required,len=11"`
	Bank    string `json:"bank" db:"bank_name" binding:"required,max=100"`
}

type TeamMember struct {
	ID     string    `db:"phone" json:"id"`
	Joined time.Time `db:"created_at" json:"joined"`
}

type TeamLevel struct {
	Size    int          `json:"size"`
	Members []TeamMember `json:"members"`
}

// Team lists direct referrals. Deeper levels are reported empty.
type Team struct {
	Level1 TeamLevel `json:"level1"`
	Level2 TeamLevel `json:"level2"`
	Level3 TeamLevel `json:"level3"`
}

type TeamResponse struct {
	Team       Team   `json:"team"`
	InviteCode string `json:"inviteCode"`
}

type BlockResponse struct {
	Message string `json:"message"`
	Blocked bool   `json:"blocked"`
}
