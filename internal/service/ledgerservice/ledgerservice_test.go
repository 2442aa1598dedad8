package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rewardledger/internal/cache"
	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/pg"
)

const platformID = 1

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCache) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	c := NewMockCache(ctrl)
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	return New(repo, tx, c, nil, platformID), repo, c
}

func TestPost(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name        string
		userID      int
		amount      decimal.Decimal
		prepareMock func(repo *MockRepo)
		wantErr     error
		wantBalance string
		wantDir     domain.Direction
	}{
		{
			name:   "Credit user account",
			userID: 7,
			amount: decimal.NewFromInt(160),
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ApplyDelta(gomock.Any(), 7, domain.AccountUser, decimal.NewFromInt(160)).
					Return(&domain.Account{UserID: 7, Balance: decimal.NewFromInt(260)}, nil)
				repo.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						e.ID = 1
						return e, nil
					})
			},
			wantBalance: "260",
			wantDir:     domain.Credit,
		},
		{
			name:   "Debit keeps negative sign",
			userID: 7,
			amount: decimal.NewFromInt(-100),
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ApplyDelta(gomock.Any(), 7, domain.AccountUser, decimal.NewFromInt(-100)).
					Return(&domain.Account{UserID: 7, Balance: decimal.NewFromInt(-40)}, nil)
				repo.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						return e, nil
					})
			},
			wantBalance: "-40",
			wantDir:     domain.Debit,
		},
		{
			name:   "Platform account kind",
			userID: platformID,
			amount: decimal.NewFromInt(80),
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ApplyDelta(gomock.Any(), platformID, domain.AccountPlatform, decimal.NewFromInt(80)).
					Return(&domain.Account{UserID: platformID, Balance: decimal.NewFromInt(80)}, nil)
				repo.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						return e, nil
					})
			},
			wantBalance: "80",
			wantDir:     domain.Credit,
		},
		{
			name:    "Zero amount rejected",
			userID:  7,
			amount:  decimal.Zero,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "Sub-minor amount rejected",
			userID:  7,
			amount:  decimal.RequireFromString("0.004"),
			wantErr: domain.ErrAmountScale,
		},
		{
			name:   "Store failure",
			userID: 7,
			amount: decimal.NewFromInt(10),
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().ApplyDelta(gomock.Any(), 7, domain.AccountUser, decimal.NewFromInt(10)).Return(nil, dbErr)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(repo)
			}

			entry, err := service.Post(context.Background(), tt.userID, tt.amount, domain.ActionShoppingCashback, 3, domain.RefShoppingBill, "cashback")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, entry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBalance, entry.BalanceAfter.String())
			assert.Equal(t, tt.wantDir, entry.Direction)
			assert.Equal(t, domain.EntryCompleted, entry.Status)
			assert.Equal(t, 3, entry.ReferenceID)
		})
	}
}

func TestPostPending(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().ApplyDelta(gomock.Any(), 7, domain.AccountUser, decimal.NewFromInt(-150)).
		Return(&domain.Account{UserID: 7, Balance: decimal.NewFromInt(50)}, nil)
	repo.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) { return e, nil })

	entry, err := service.PostPending(context.Background(), 7, decimal.NewFromInt(-150), domain.ActionWithdrawal, 0, domain.RefWithdrawal, "withdrawal")
	require.NoError(t, err)
	assert.Equal(t, domain.EntryPending, entry.Status)
}

func TestSettleEntry(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo)
		wantErr     error
	}{
		{
			name: "Pending entry completes",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindEntry(gomock.Any(), 4).Return(&domain.LedgerEntry{ID: 4, Status: domain.EntryPending}, nil)
				repo.EXPECT().SetEntryStatus(gomock.Any(), 4, domain.EntryPending, domain.EntryCompleted).Return(true, nil)
			},
		},
		{
			name: "Already settled",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindEntry(gomock.Any(), 4).Return(&domain.LedgerEntry{ID: 4, Status: domain.EntryFailed}, nil)
				repo.EXPECT().SetEntryStatus(gomock.Any(), 4, domain.EntryPending, domain.EntryCompleted).Return(false, nil)
			},
			wantErr: domain.ErrInvalidState,
		},
		{
			name: "Unknown entry",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindEntry(gomock.Any(), 4).Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)
			err := service.SettleEntry(context.Background(), 4, domain.EntryCompleted)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	t.Run("Served from cache", func(t *testing.T) {
		service, _, c := NewMock(t)
		c.EXPECT().Get(gomock.Any(), cache.WalletKey(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) bool {
				*dest.(*domain.WalletSummary) = domain.WalletSummary{UserID: 7, Balance: decimal.NewFromInt(5)}
				return true
			})

		summary, err := service.Summary(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "5", summary.Balance.String())
	})

	t.Run("Loaded and cached", func(t *testing.T) {
		service, repo, c := NewMock(t)
		entries := []domain.LedgerEntry{{ID: 2, UserID: 7, Amount: decimal.NewFromInt(100)}}
		c.EXPECT().Get(gomock.Any(), cache.WalletKey(7), gomock.Any()).Return(false)
		repo.EXPECT().GetAccount(gomock.Any(), 7).Return(&domain.Account{UserID: 7, Balance: decimal.NewFromInt(100)}, nil)
		repo.EXPECT().ListEntries(gomock.Any(), 7, summaryEntries).Return(entries, nil)
		c.EXPECT().Set(gomock.Any(), cache.WalletKey(7), gomock.Any())

		summary, err := service.Summary(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "100", summary.Balance.String())
		assert.Equal(t, entries, summary.Transactions)
	})

	t.Run("No account yet", func(t *testing.T) {
		service, repo, c := NewMock(t)
		c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
		repo.EXPECT().GetAccount(gomock.Any(), 8).Return(nil, nil)
		repo.EXPECT().ListEntries(gomock.Any(), 8, summaryEntries).Return(nil, nil)
		c.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any())

		summary, err := service.Summary(context.Background(), 8)
		require.NoError(t, err)
		assert.True(t, summary.Balance.IsZero())
	})
}

func TestAnalytics(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().GetAccount(gomock.Any(), 7).Return(&domain.Account{Balance: decimal.NewFromInt(410)}, nil)
	repo.EXPECT().Totals(gomock.Any(), 7).Return([]domain.ActionTotal{
		{Action: domain.ActionShoppingCashback, Direction: domain.Credit, Total: decimal.NewFromInt(360), Count: 2},
		{Action: domain.ActionReferralBonus, Direction: domain.Credit, Total: decimal.NewFromInt(200), Count: 1},
		{Action: domain.ActionWithdrawal, Direction: domain.Debit, Total: decimal.NewFromInt(150), Count: 1},
	}, nil)

	a, err := service.Analytics(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "560", a.TotalCredited.String())
	assert.Equal(t, "150", a.TotalDebited.String())
	assert.Len(t, a.ByAction, 3)
}

func TestInvalidate(t *testing.T) {
	service, _, c := NewMock(t)
	c.EXPECT().Delete(gomock.Any(), cache.WalletKey(1), cache.WalletKey(2))

	service.Invalidate(context.Background(), 1, 2)
	service.Invalidate(context.Background())
}
