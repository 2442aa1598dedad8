package shoprepo

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/rewardledger/internal/domain"
)

func TestRepository_FindByID(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	repo := New(mockDB)
	cols := []string{"id", "owner_id", "name", "status"}

	mockDB.ExpectQuery("FROM shops WHERE id = \\$1").
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(3, 50, "Corner Store", domain.ShopActive))
	mockDB.ExpectQuery("FROM shops WHERE id = \\$1").
		WithArgs(4).
		WillReturnRows(pgxmock.NewRows(cols))

	shop, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 50, shop.OwnerID)
	assert.Equal(t, domain.ShopActive, shop.Status)

	shop, err = repo.FindByID(context.Background(), 4)
	assert.NoError(t, err)
	assert.Nil(t, shop)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
