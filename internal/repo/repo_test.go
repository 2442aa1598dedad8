package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditrepo "github.com/GlebRadaev/rewardledger/internal/repo/audit-repo"
	billrepo "github.com/GlebRadaev/rewardledger/internal/repo/bill-repo"
	guardrepo "github.com/GlebRadaev/rewardledger/internal/repo/guard-repo"
	ledgerrepo "github.com/GlebRadaev/rewardledger/internal/repo/ledger-repo"
	paymentrepo "github.com/GlebRadaev/rewardledger/internal/repo/payment-repo"
	planrepo "github.com/GlebRadaev/rewardledger/internal/repo/plan-repo"
	referralrepo "github.com/GlebRadaev/rewardledger/internal/repo/referral-repo"
	shoprepo "github.com/GlebRadaev/rewardledger/internal/repo/shop-repo"
	subscriptionrepo "github.com/GlebRadaev/rewardledger/internal/repo/subscription-repo"
	userrepo "github.com/GlebRadaev/rewardledger/internal/repo/user-repo"
	vendorrepo "github.com/GlebRadaev/rewardledger/internal/repo/vendor-repo"
	withdrawalrepo "github.com/GlebRadaev/rewardledger/internal/repo/withdrawal-repo"
)

func TestNew(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := New(mock)

	assert.IsType(t, &userrepo.Repository{}, repo.Users)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.Ledger)
	assert.IsType(t, &referralrepo.Repository{}, repo.Referrals)
	assert.IsType(t, &billrepo.Repository{}, repo.Bills)
	assert.IsType(t, &shoprepo.Repository{}, repo.Shops)
	assert.IsType(t, &vendorrepo.Repository{}, repo.Vendors)
	assert.IsType(t, &planrepo.Repository{}, repo.Plans)
	assert.IsType(t, &paymentrepo.Repository{}, repo.Payments)
	assert.IsType(t, &subscriptionrepo.Repository{}, repo.Subscriptions)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.Withdrawals)
	assert.IsType(t, &auditrepo.Repository{}, repo.Audit)
	assert.IsType(t, &guardrepo.Repository{}, repo.Guard)

	assert.NoError(t, mock.ExpectationsWereMet())
}
