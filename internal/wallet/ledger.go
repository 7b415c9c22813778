package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Bhishaj9/redbull-backend/internal/api"

	"github.com/jmoiron/sqlx"
)

var (
	ErrInsufficientBalance = fmt.Errorf("wallet balance too low: %w", api.ErrInsufficientFunds)
	ErrWalletNotFound      = fmt.Errorf("wallet owner: %w", api.ErrNotFound)
)

// Lock takes the row lock on the owner's wallet and returns the current balance.
// Every read-modify-write of a wallet starts here so concurrent operations on
// the same user serialize.
func Lock(ctx context.Context, tx *sqlx.Tx, userID int) (int64, error) {
	var balance int64
	err := tx.GetContext(ctx, &balance,
		`SELECT wallet_paise FROM users WHERE id = $1 FOR UPDATE`,
		userID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrWalletNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// Apply adds amount (negative for debits) to the wallet and journals it.
// It must run inside the caller's transaction.
func Apply(ctx context.Context, tx *sqlx.Tx, userID int, amount int64, kind Kind, ref string) (int64, error) {
	balance, err := Lock(ctx, tx, userID)
	if err != nil {
		return 0, err
	}

	newBalance := balance + amount
	if newBalance < 0 {
		return 0, ErrInsufficientBalance
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users
		 SET wallet_paise = $1, updated_at = NOW()
		 WHERE id = $2`,
		newBalance, userID,
	)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO wallet_transactions (user_id, amount_paise, kind, reference, balance_after)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, amount, kind, ref, newBalance,
	)
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}
