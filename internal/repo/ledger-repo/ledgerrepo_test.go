package ledgerrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/rewardledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

var (
	accountCols = []string{"id", "user_id", "kind", "balance_minor", "updated_at"}
	entryCols   = []string{"id", "user_id", "amount_minor", "balance_after_minor", "direction", "action",
		"reference_id", "reference_kind", "status", "description", "created_at"}
)

func TestRepository_ApplyDelta(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		delta     decimal.Decimal
		mockSetup func()
		expectErr error
		balance   string
	}{
		{
			name:  "Creates or updates account",
			delta: decimal.RequireFromString("160.00"),
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO accounts").
					WithArgs(5, domain.AccountUser, int64(16000)).
					WillReturnRows(pgxmock.NewRows(accountCols).
						AddRow(1, 5, domain.AccountUser, int64(26000), now))
			},
			balance: "260",
		},
		{
			name:  "Driver failure",
			delta: decimal.RequireFromString("-1"),
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO accounts").
					WithArgs(5, domain.AccountUser, int64(-100)).
					WillReturnError(errors.New("connection reset"))
			},
			expectErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			acc, err := repo.ApplyDelta(context.Background(), 5, domain.AccountUser, tt.delta)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, acc)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.balance, acc.Balance.String())
				assert.Equal(t, 5, acc.UserID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetAccount(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE user_id").
		WithArgs(9).
		WillReturnError(pgx.ErrNoRows)

	acc, err := repo.GetAccount(context.Background(), 9)
	assert.NoError(t, err)
	assert.Nil(t, acc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAccountForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("FROM accounts WHERE user_id = \\$1 FOR UPDATE").
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows(accountCols).AddRow(1, 2, domain.AccountUser, int64(25050), now))

	acc, err := repo.GetAccountForUpdate(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "250.5", acc.Balance.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AppendEntry(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Now()

	entry := &domain.LedgerEntry{
		UserID:        5,
		Amount:        decimal.RequireFromString("80"),
		BalanceAfter:  decimal.RequireFromString("80"),
		Direction:     domain.Credit,
		Action:        domain.ActionReferralBonus,
		ReferenceID:   11,
		ReferenceKind: domain.RefShoppingBill,
		Status:        domain.EntryCompleted,
		Description:   "referral bonus for bill 11",
	}
	mock.ExpectQuery("INSERT INTO ledger_entries").
		WithArgs(5, int64(8000), int64(8000), domain.Credit, domain.ActionReferralBonus, 11,
			domain.RefShoppingBill, domain.EntryCompleted, "referral bonus for bill 11").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(100, created))

	got, err := repo.AppendEntry(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, 100, got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListEntries(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		limit     int
		mockSetup func()
		count     int
	}{
		{
			name:  "Limited",
			limit: 1,
			mockSetup: func() {
				mock.ExpectQuery("FROM ledger_entries WHERE user_id = \\$1 ORDER BY id DESC LIMIT \\$2").
					WithArgs(5, 1).
					WillReturnRows(pgxmock.NewRows(entryCols).
						AddRow(2, 5, int64(-10000), int64(6000), domain.Debit, domain.ActionWithdrawal, 1,
							domain.RefWithdrawal, domain.EntryPending, "withdrawal 1", now))
			},
			count: 1,
		},
		{
			name:  "All",
			limit: 0,
			mockSetup: func() {
				mock.ExpectQuery("FROM ledger_entries WHERE user_id = \\$1 ORDER BY id DESC").
					WithArgs(5).
					WillReturnRows(pgxmock.NewRows(entryCols).
						AddRow(2, 5, int64(-10000), int64(6000), domain.Debit, domain.ActionWithdrawal, 1,
							domain.RefWithdrawal, domain.EntryPending, "withdrawal 1", now).
						AddRow(1, 5, int64(16000), int64(16000), domain.Credit, domain.ActionShoppingCashback, 3,
							domain.RefShoppingBill, domain.EntryCompleted, "cashback for bill 3", now))
			},
			count: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			entries, err := repo.ListEntries(context.Background(), 5, tt.limit)
			require.NoError(t, err)
			assert.Len(t, entries, tt.count)
			assert.Equal(t, "-100", entries[0].Amount.String())
			assert.Equal(t, domain.EntryPending, entries[0].Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SetEntryStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("UPDATE ledger_entries SET status").
		WithArgs(7, domain.EntryPending, domain.EntryCompleted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE ledger_entries SET status").
		WithArgs(7, domain.EntryPending, domain.EntryFailed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.SetEntryStatus(context.Background(), 7, domain.EntryPending, domain.EntryCompleted)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SetEntryStatus(context.Background(), 7, domain.EntryPending, domain.EntryFailed)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumAndTotals(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("LEFT JOIN ledger_entries e ON e.user_id = a.user_id").
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"balance_minor", "sum"}).AddRow(int64(6050), int64(6050)))
	mock.ExpectQuery("GROUP BY action, direction").
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"action", "direction", "total", "count"}).
			AddRow(domain.ActionShoppingCashback, domain.Credit, int64(16050), 2).
			AddRow(domain.ActionWithdrawal, domain.Debit, int64(10000), 1))

	balance, replayed, err := repo.ReplayAccount(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "60.5", balance.String())
	assert.Equal(t, "60.5", replayed.String())

	totals, err := repo.Totals(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "160.5", totals[0].Total.String())
	assert.Equal(t, 2, totals[0].Count)
	assert.Equal(t, domain.Debit, totals[1].Direction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplayAccountErrors(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("LEFT JOIN ledger_entries").
		WithArgs(9).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("LEFT JOIN ledger_entries").
		WithArgs(5).
		WillReturnError(errors.New("connection reset"))

	balance, replayed, err := repo.ReplayAccount(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	assert.True(t, replayed.IsZero())

	_, _, err = repo.ReplayAccount(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListAccounts(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery("FROM accounts ORDER BY user_id").
		WillReturnRows(pgxmock.NewRows(accountCols).
			AddRow(1, 1, domain.AccountPlatform, int64(0), now).
			AddRow(2, 5, domain.AccountUser, int64(12345), now))

	accounts, err := repo.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, domain.AccountPlatform, accounts[0].Kind)
	assert.Equal(t, "123.45", accounts[1].Balance.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
