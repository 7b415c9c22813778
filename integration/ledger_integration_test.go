package integration_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/payout"
	"github.com/Bhishaj9/redbull-backend/internal/plan"
	"github.com/Bhishaj9/redbull-backend/internal/purchase"
	"github.com/Bhishaj9/redbull-backend/internal/user"
	"github.com/Bhishaj9/redbull-backend/internal/withdrawal"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyAndPayoutLifetime_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	u := createUser(t, database, "9876500001", 60000)
	p := plan.Plan{ID: "p1", Name: "Plan 1", PricePaise: 52000, DailyPaise: 12000, Days: 47}
	bought := time.Date(2024, 6, 1, 10, 0, 0, 0, ist)

	_, inst, balance, err := purchase.NewRepository(database).
		BuyWithWallet(ctx, purchase.Buyer{ID: u.ID, Phone: u.Phone}, p, bought)
	require.NoError(t, err)
	assert.Equal(t, int64(8000), balance)
	assert.Equal(t, 47, inst.Days)

	repo := payout.NewRepository(database)
	for day := 1; day <= 48; day++ {
		runAt := time.Date(2024, 6, 1+day, 9, 0, 0, 0, ist)
		_, err := repo.CreditUser(ctx, u.ID, runAt, ist)
		require.NoError(t, err)

		again, err := repo.CreditUser(ctx, u.ID, runAt.Add(time.Hour), ist)
		require.NoError(t, err)
		assert.Zero(t, again.AmountPaise, "second run on day %d", day)
	}

	instances, err := plan.ListInstances(ctx, database, u.ID)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, int64(12000*47), instances[0].TotalCreditedPaise)
	assert.Equal(t, int64(8000+12000*47), walletOf(t, database, u.ID))
	assert.Equal(t, walletOf(t, database, u.ID), journalSum(t, database, u.ID))
}

func TestWithdrawalDecline_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repo := withdrawal.NewRepository(database)

	u := createUser(t, database, "9876500002", 50000)
	acct := withdrawal.Account{ID: u.ID, Phone: u.Phone}

	w, balance, err := repo.Create(ctx, acct, 15000)
	require.NoError(t, err)
	assert.Equal(t, int64(35000), balance)
	assert.Equal(t, withdrawal.StatusPending, w.Status)

	declined, err := repo.Process(ctx, w.ID, withdrawal.ActionDecline, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, withdrawal.StatusCancelled, declined.Status)
	assert.Equal(t, int64(50000), walletOf(t, database, u.ID))

	_, err = repo.Process(ctx, w.ID, withdrawal.ActionDecline, "", time.Now())
	assert.ErrorIs(t, err, api.ErrAlreadyProcessed)
	assert.Equal(t, int64(50000), walletOf(t, database, u.ID))
	assert.Equal(t, int64(50000), journalSum(t, database, u.ID))
}

func TestConcurrentWithdrawals_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repo := withdrawal.NewRepository(database)

	u := createUser(t, database, "9876500003", 50000)
	acct := withdrawal.Account{ID: u.ID, Phone: u.Phone}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := repo.Create(ctx, acct, 15000)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, api.ErrInsufficientFunds)
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded)
	assert.Equal(t, int64(5000), walletOf(t, database, u.ID))
	assert.Equal(t, int64(5000), journalSum(t, database, u.ID))
}

func TestReferralCreditedOnce_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repo := user.NewRepository(database)

	referrer := createUser(t, database, "9876500004", 5000)
	createUser(t, database, "9876500005", 5000)

	require.NoError(t, repo.CreditReferral(ctx, referrer.ID, "9876500005", 1250))
	err := repo.CreditReferral(ctx, referrer.ID, "9876500005", 1250)
	assert.ErrorIs(t, err, user.ErrAlreadyReferred)

	team, err := repo.ListTeam(ctx, referrer.ID)
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "9876500005", team[0].ID)
	assert.Equal(t, int64(6250), walletOf(t, database, referrer.ID))
}
