package payout

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var instanceRowColumns = []string{"id", "user_id", "plan_id", "name", "price_paise", "daily_paise", "days", "purchase_id",
	"purchased_at", "expires_at", "last_credited_at", "total_credited_paise"}

const (
	selectDue     = "FROM plan_instances WHERE user_id = $1 AND expires_at > $2 AND total_credited_paise < daily_paise * days ORDER BY id FOR UPDATE"
	updateCredit  = "UPDATE plan_instances SET total_credited_paise = total_credited_paise + $1, last_credited_at = $2 WHERE id = $3"
	lockWallet    = "SELECT wallet_paise FROM users WHERE id = $1 FOR UPDATE"
	updateWallet  = "UPDATE users SET wallet_paise = $1, updated_at = NOW() WHERE id = $2"
	insertJournal = "INSERT INTO wallet_transactions"
)

func setupPayoutMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return NewRepository(sqlxDB), mock
}

func TestRepository_ActiveUsers(t *testing.T) {
	repo, mock := setupPayoutMock(t)
	now := time.Date(2024, 6, 2, 3, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT user_id FROM plan_instances")).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1).AddRow(4))

	ids, err := repo.ActiveUsers(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreditUser(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	bought := time.Date(2024, 6, 1, 10, 0, 0, 0, loc)
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, loc)
	expires := bought.Add(47 * 24 * time.Hour)

	t.Run("credits due instances and skips ones paid today", func(t *testing.T) {
		repo, mock := setupPayoutMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(selectDue)).WithArgs(1, now).
			WillReturnRows(sqlmock.NewRows(instanceRowColumns).
				AddRow(3, 1, "p1", "Plan 1", 52000, 12000, 47, 10, bought, expires, bought, 0).
				AddRow(4, 1, "p2", "Plan 2", 95000, 19000, 45, 11, bought, expires, now.Add(-time.Hour), 19000))
		mock.ExpectExec(regexp.QuoteMeta(updateCredit)).WithArgs(int64(12000), now, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(lockWallet)).WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"wallet_paise"}).AddRow(8000))
		mock.ExpectExec(regexp.QuoteMeta(updateWallet)).WithArgs(int64(20000), 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertJournal)).WithArgs(1, int64(12000), "payout", "payout:2024-06-02", int64(20000)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		credit, err := repo.CreditUser(context.Background(), 1, now, loc)

		require.NoError(t, err)
		assert.Equal(t, Credit{Instances: 1, AmountPaise: 12000}, credit)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("last credit is clipped to the cap", func(t *testing.T) {
		repo, mock := setupPayoutMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(selectDue)).WithArgs(1, now).
			WillReturnRows(sqlmock.NewRows(instanceRowColumns).
				AddRow(3, 1, "p1", "Plan 1", 52000, 12000, 47, 10, bought, expires, now.Add(-24*time.Hour), 12000*47-5000))
		mock.ExpectExec(regexp.QuoteMeta(updateCredit)).WithArgs(int64(5000), now, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(lockWallet)).WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"wallet_paise"}).AddRow(0))
		mock.ExpectExec(regexp.QuoteMeta(updateWallet)).WithArgs(int64(5000), 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertJournal)).WithArgs(1, int64(5000), "payout", "payout:2024-06-02", int64(5000)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		credit, err := repo.CreditUser(context.Background(), 1, now, loc)

		require.NoError(t, err)
		assert.Equal(t, int64(5000), credit.AmountPaise)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing due leaves the wallet alone", func(t *testing.T) {
		repo, mock := setupPayoutMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(selectDue)).WithArgs(1, now).
			WillReturnRows(sqlmock.NewRows(instanceRowColumns).
				AddRow(3, 1, "p1", "Plan 1", 52000, 12000, 47, 10, bought, expires, now.Add(-time.Minute), 12000))
		mock.ExpectCommit()

		credit, err := repo.CreditUser(context.Background(), 1, now, loc)

		require.NoError(t, err)
		assert.Zero(t, credit.Instances)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update failure rolls back", func(t *testing.T) {
		repo, mock := setupPayoutMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(selectDue)).WithArgs(1, now).
			WillReturnRows(sqlmock.NewRows(instanceRowColumns).
				AddRow(3, 1, "p1", "Plan 1", 52000, 12000, 47, 10, bought, expires, bought, 0))
		mock.ExpectExec(regexp.QuoteMeta(updateCredit)).WillReturnError(errors.New("deadlock"))
		mock.ExpectRollback()

		_, err := repo.CreditUser(context.Background(), 1, now, loc)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
