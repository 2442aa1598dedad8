package planrepo

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/rewardledger/internal/domain"
)

var planCols = []string{"code", "name", "price_minor", "activation_cashback_minor", "is_active"}

func TestRepository_FindByCode(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	repo := New(mockDB)

	mockDB.ExpectQuery("FROM plans WHERE code = \\$1").
		WithArgs(domain.PlanA).
		WillReturnRows(pgxmock.NewRows(planCols).AddRow(domain.PlanA, "Plan A", int64(240000), int64(0), true))
	mockDB.ExpectQuery("FROM plans WHERE code = \\$1").
		WithArgs(domain.PlanType("C")).
		WillReturnRows(pgxmock.NewRows(planCols))

	plan, err := repo.FindByCode(context.Background(), domain.PlanA)
	require.NoError(t, err)
	assert.Equal(t, "2400", plan.Price.String())
	assert.True(t, plan.ActivationCashback.IsZero())

	plan, err = repo.FindByCode(context.Background(), domain.PlanType("C"))
	assert.NoError(t, err)
	assert.Nil(t, plan)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	repo := New(mockDB)

	mockDB.ExpectQuery("FROM plans WHERE is_active").
		WillReturnRows(pgxmock.NewRows(planCols).
			AddRow(domain.PlanA, "Plan A", int64(240000), int64(0), true).
			AddRow(domain.PlanB, "Plan B", int64(99900), int64(0), true))

	plans, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "999", plans[1].Price.String())
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
