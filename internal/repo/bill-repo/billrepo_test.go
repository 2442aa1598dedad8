package billrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

var billCols = []string{"id", "user_id", "shop_id", "bill_amount_minor", "cashback_amount_minor", "status",
	"vendor_profit_state", "first_cashback_state", "referrer_bonus_state", "approved_by", "approved_at", "created_at"}

func pendingRow(rows *pgxmock.Rows, id int, at time.Time) *pgxmock.Rows {
	return rows.AddRow(id, 1, 3, int64(100000), int64(0), domain.BillPending,
		domain.NotClaimed, domain.NotClaimed, domain.NotClaimed, (*int)(nil), (*time.Time)(nil), at)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO shopping_bills (user_id, shop_id, bill_amount_minor)`)).
		WithArgs(1, 3, int64(100000)).
		WillReturnRows(pendingRow(pgxmock.NewRows(billCols), 11, now))

	bill, err := repo.Create(context.Background(), &domain.ShoppingBill{UserID: 1, ShopID: 3, BillAmount: decimal.NewFromInt(1000)})
	require.NoError(t, err)
	assert.Equal(t, 11, bill.ID)
	assert.Equal(t, "1000", bill.BillAmount.String())
	assert.Equal(t, domain.BillPending, bill.Status)
	assert.Equal(t, domain.NotClaimed, bill.ReferrerBonus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindForUpdate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantNil   bool
		expectErr bool
	}{
		{
			name: "Found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM shopping_bills WHERE id = $1 FOR UPDATE`)).
					WithArgs(11).
					WillReturnRows(pendingRow(pgxmock.NewRows(billCols), 11, now))
			},
		},
		{
			name: "Not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
					WithArgs(11).
					WillReturnRows(pgxmock.NewRows(billCols))
			},
			wantNil: true,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
					WithArgs(11).
					WillReturnError(errors.New("conn reset"))
			},
			wantNil:   true,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)
			bill, err := repo.FindForUpdate(context.Background(), 11)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantNil, bill == nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(billCols)
	pendingRow(rows, 1, now)
	pendingRow(rows, 2, now)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = $1`)).
		WithArgs(domain.BillPending).
		WillReturnRows(rows)

	bills, err := repo.ListByStatus(context.Background(), domain.BillPending)
	require.NoError(t, err)
	assert.Len(t, bills, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkApproved(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "Pending bill", affected: 1},
		{name: "Already settled", affected: 0, wantErr: domain.ErrBillNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE shopping_bills`)).
				WithArgs(11, domain.BillApproved, int64(16000), 99, now, domain.BillPending).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			err := repo.MarkApproved(context.Background(), 11, decimal.NewFromInt(160), 99, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkRejected(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE shopping_bills`)).
		WithArgs(11, domain.BillRejected, 99, now, domain.BillPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.MarkRejected(context.Background(), 11, 99, now))
	assert.NoError(t, mock.ExpectationsWereMet())
}
