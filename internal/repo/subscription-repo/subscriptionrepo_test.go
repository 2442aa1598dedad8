package subscriptionrepo

import (
	"context"
	"testing"
	"time"

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

func TestRepository_ActiveLifecycle(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	cols := []string{"id", "user_id", "plan_code", "payment_id", "status", "activated_at", "expires_at"}

	mock.ExpectQuery("FROM user_subscriptions WHERE user_id = \\$1 AND status = \\$2 FOR UPDATE").
		WithArgs(1, domain.SubscriptionActive).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(4, 1, domain.PlanB, 2, domain.SubscriptionActive, &now, (*time.Time)(nil)))
	mock.ExpectExec("UPDATE user_subscriptions SET status").
		WithArgs(4, domain.SubscriptionExpired, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO user_subscriptions").
		WithArgs(1, domain.PlanA, 3, domain.SubscriptionActive, &now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))

	current, err := repo.FindActiveForUpdate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanB, current.PlanCode)

	require.NoError(t, repo.Expire(context.Background(), current.ID, now))

	next, err := repo.Create(context.Background(), &domain.UserSubscription{
		UserID: 1, PlanCode: domain.PlanA, PaymentID: 3, Status: domain.SubscriptionActive, ActivatedAt: &now,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, next.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActive_None(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("FROM user_subscriptions").
		WithArgs(1, domain.SubscriptionActive).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	s, err := repo.FindActive(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, s)
}
