package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/rewardledger/internal/service/servicetest"
	"github.com/GlebRadaev/rewardledger/internal/workerpool"
)

func TestCheck_ConsistentLedger(t *testing.T) {
	ctx := context.Background()
	store := servicetest.New()
	ledger := ledgerservice.New(store.Ledger, store.TXManager(), nil, nil, 1)

	_, err := ledger.Post(ctx, 5, decimal.NewFromInt(160), domain.ActionShoppingCashback, 1, domain.RefShoppingBill, "cashback")
	require.NoError(t, err)
	_, err = ledger.PostPending(ctx, 5, decimal.NewFromInt(-100), domain.ActionWithdrawal, 1, domain.RefWithdrawal, "withdrawal")
	require.NoError(t, err)
	_, err = ledger.CreditPlatform(ctx, decimal.NewFromInt(40), domain.ActionPlatformShare, 1, domain.RefShoppingBill, "share")
	require.NoError(t, err)

	pool := workerpool.New("reconcile", 2)
	defer pool.Close()

	mismatches, err := New(store.Ledger, pool, nil, time.Minute).Check(ctx)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestCheck_ReportsDrift(t *testing.T) {
	ctx := context.Background()
	store := servicetest.New()
	ledger := ledgerservice.New(store.Ledger, store.TXManager(), nil, nil, 1)

	_, err := ledger.Post(ctx, 5, decimal.NewFromInt(160), domain.ActionShoppingCashback, 1, domain.RefShoppingBill, "cashback")
	require.NoError(t, err)
	_, err = ledger.Post(ctx, 6, decimal.NewFromInt(80), domain.ActionReferralBonus, 1, domain.RefReferral, "bonus")
	require.NoError(t, err)
	_, err = store.Ledger.ApplyDelta(ctx, 6, domain.AccountUser, decimal.NewFromInt(20))
	require.NoError(t, err)

	pool := workerpool.New("reconcile", 3)
	defer pool.Close()

	mismatches, err := New(store.Ledger, pool, nil, time.Minute).Check(ctx)
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	assert.Equal(t, 6, mismatches[0].UserID)
	assert.Equal(t, "100", mismatches[0].Balance.String())
	assert.Equal(t, "80", mismatches[0].Replayed.String())
}

func TestCheck_PostAfterListingIsNotDrift(t *testing.T) {
	ctx := context.Background()
	store := servicetest.New()
	ledger := ledgerservice.New(store.Ledger, store.TXManager(), nil, nil, 1)

	_, err := ledger.Post(ctx, 7, decimal.NewFromInt(500), domain.ActionReferralBonus, 1, domain.RefReferral, "bonus")
	require.NoError(t, err)
	listed, err := store.Ledger.ListAccounts(ctx)
	require.NoError(t, err)

	// a posting commits after the accounts were listed
	_, err = ledger.Post(ctx, 7, decimal.NewFromInt(160), domain.ActionShoppingCashback, 2, domain.RefShoppingBill, "cashback")
	require.NoError(t, err)

	repo := NewMockRepo(gomock.NewController(t))
	repo.EXPECT().ListAccounts(gomock.Any()).Return(listed, nil)
	repo.EXPECT().ReplayAccount(gomock.Any(), 7).DoAndReturn(store.Ledger.ReplayAccount)

	pool := workerpool.New("reconcile", 1)
	defer pool.Close()

	mismatches, err := New(repo, pool, nil, time.Minute).Check(ctx)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
	assert.Equal(t, "500", listed[0].Balance.String())
}

func TestCheck_RepoErrors(t *testing.T) {
	ctx := context.Background()
	pool := workerpool.New("reconcile", 1)
	defer pool.Close()

	t.Run("list fails", func(t *testing.T) {
		repo := NewMockRepo(gomock.NewController(t))
		repo.EXPECT().ListAccounts(gomock.Any()).Return(nil, domain.StoreError(errors.New("down")))

		_, err := New(repo, pool, nil, time.Minute).Check(ctx)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})

	t.Run("replay fails", func(t *testing.T) {
		repo := NewMockRepo(gomock.NewController(t))
		repo.EXPECT().ListAccounts(gomock.Any()).Return([]domain.Account{{UserID: 5, Balance: decimal.NewFromInt(10)}}, nil)
		repo.EXPECT().ReplayAccount(gomock.Any(), 5).Return(decimal.Zero, decimal.Zero, domain.StoreError(errors.New("down")))

		_, err := New(repo, pool, nil, time.Minute).Check(ctx)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})

	t.Run("pool closed", func(t *testing.T) {
		closed := workerpool.New("closed", 1)
		closed.Close()
		repo := NewMockRepo(gomock.NewController(t))
		repo.EXPECT().ListAccounts(gomock.Any()).Return([]domain.Account{{UserID: 5}}, nil)

		_, err := New(repo, closed, nil, time.Minute).Check(ctx)
		assert.ErrorIs(t, err, workerpool.ErrClosed)
	})
}

func TestStart_StopsOnCancel(t *testing.T) {
	repo := NewMockRepo(gomock.NewController(t))
	repo.EXPECT().ListAccounts(gomock.Any()).Return(nil, nil).MinTimes(1)

	pool := workerpool.New("reconcile", 1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	New(repo, pool, nil, 10*time.Millisecond).Start(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}
