package wallet

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/api"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	db, mock, close := setupWalletMock(t)
	defer close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT wallet_paise FROM users WHERE id = $1")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"wallet_paise"}).AddRow(35000))

	balance, err := repo.GetBalance(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(35000), balance)
}

func TestGetBalance_NotFound(t *testing.T) {
	db, mock, close := setupWalletMock(t)
	defer close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT wallet_paise FROM users WHERE id = $1")).
		WithArgs(11).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBalance(context.Background(), 11)
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestGetTransactions_ClampsLimit(t *testing.T) {
	db, mock, close := setupWalletMock(t)
	defer close()
	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM wallet_transactions")).
		WithArgs(3, 50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount_paise", "kind", "reference", "balance_after", "created_at"}).
			AddRow(2, 3, 12000, "payout", "", 17000, now).
			AddRow(1, 3, 5000, "signup_bonus", "", 5000, now))

	txs, err := repo.GetTransactions(context.Background(), 3, 1000, -5)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, KindPayout, txs[0].Kind)
	assert.Equal(t, int64(17000), txs[0].BalanceAfter)
}
