package guardrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
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

func TestRepository_ClaimUserFirstCashback(t *testing.T) {
	tests := []struct {
		name      string
		affected  int64
		dbErr     error
		want      bool
		expectErr bool
	}{
		{name: "First claim wins", affected: 1, want: true},
		{name: "Already claimed", affected: 0, want: false},
		{name: "Database error", dbErr: errors.New("timeout"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			exp := mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET first_cashback_state = $2 WHERE id = $1 AND first_cashback_state = $3`)).
				WithArgs(1, domain.Claimed, domain.NotClaimed)
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			}

			got, err := repo.ClaimUserFirstCashback(context.Background(), 1)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ClaimBillFlag(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE shopping_bills SET referrer_bonus_state = $2 WHERE id = $1 AND referrer_bonus_state = $3`)).
		WithArgs(11, domain.Claimed, domain.NotClaimed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.ClaimBillFlag(context.Background(), 11, domain.FlagReferrerBonus)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.ClaimBillFlag(context.Background(), 11, domain.BillFlag("status; DROP TABLE users"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ClaimPaymentCashback(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE payments SET activation_cashback_state`)).
		WithArgs(5, domain.Claimed, domain.NotClaimed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.ClaimPaymentCashback(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
