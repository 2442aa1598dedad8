package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rewardledger/internal/handlers/auth"
	"github.com/GlebRadaev/rewardledger/internal/handlers/balance"
	"github.com/GlebRadaev/rewardledger/internal/handlers/bills"
	"github.com/GlebRadaev/rewardledger/internal/handlers/referrals"
	"github.com/GlebRadaev/rewardledger/internal/handlers/subscriptions"
	"github.com/GlebRadaev/rewardledger/internal/service"
	pkgauth "github.com/GlebRadaev/rewardledger/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuthService:         auth.NewMockService(ctrl),
		BalanceService:      balance.NewMockService(ctrl),
		SettlementService:   bills.NewMockService(ctrl),
		ReferralService:     referrals.NewMockService(ctrl),
		SubscriptionService: subscriptions.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewJWTService("secret"), nil)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.BillsHandler)
	assert.NotNil(t, h.SubscriptionsHandler)
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	authHandler := NewMockAuthHandler(ctrl)
	balanceHandler := NewMockBalanceHandler(ctrl)
	billsHandler := NewMockBillsHandler(ctrl)
	referralsHandler := NewMockReferralsHandler(ctrl)
	subscriptionsHandler := NewMockSubscriptionsHandler(ctrl)

	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	balanceHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	balanceHandler.EXPECT().GetAnalytics(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	balanceHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	balanceHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	balanceHandler.EXPECT().ApproveWithdrawal(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	balanceHandler.EXPECT().RejectWithdrawal(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	billsHandler.EXPECT().UploadBill(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	billsHandler.EXPECT().GetBills(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	billsHandler.EXPECT().GetPendingBills(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	billsHandler.EXPECT().ApproveBill(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	billsHandler.EXPECT().RejectBill(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	billsHandler.EXPECT().GetVendorPayables(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	billsHandler.EXPECT().MarkVendorPaid(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	referralsHandler.EXPECT().GetSummary(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	referralsHandler.EXPECT().RecomputePairs(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	subscriptionsHandler.EXPECT().GetPlans(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	subscriptionsHandler.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	subscriptionsHandler.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	subscriptionsHandler.EXPECT().GetSubscription(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	subscriptionsHandler.EXPECT().ApproveCashPayment(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	jwt := pkgauth.NewJWTService("secret")
	h := &Handlers{
		AuthHandler:          authHandler,
		BalanceHandler:       balanceHandler,
		BillsHandler:         billsHandler,
		ReferralsHandler:     referralsHandler,
		SubscriptionsHandler: subscriptionsHandler,
		jwt:                  jwt,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	token := func(role string) string {
		tok, err := jwt.GenerateJWT(7, role, time.Now().Add(time.Minute))
		require.NoError(t, err)
		return "Bearer " + tok
	}
	userToken := token("user")
	vendorToken := token("vendor")
	adminToken := token("admin")

	tests := []struct {
		method string
		url    string
		auth   string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"GET", "/api/plans", "", http.StatusOK},
		{"GET", "/api/user/wallet", "", http.StatusUnauthorized},
		{"GET", "/api/user/wallet", "Bearer broken", http.StatusUnauthorized},
		{"GET", "/api/user/wallet", userToken, http.StatusOK},
		{"GET", "/api/user/wallet/analytics", userToken, http.StatusOK},
		{"POST", "/api/user/wallet/withdraw", userToken, http.StatusOK},
		{"GET", "/api/user/withdrawals", userToken, http.StatusOK},
		{"GET", "/api/user/referrals", userToken, http.StatusOK},
		{"POST", "/api/user/bills", userToken, http.StatusOK},
		{"GET", "/api/user/bills", userToken, http.StatusOK},
		{"POST", "/api/user/payments", userToken, http.StatusOK},
		{"POST", "/api/user/payments/confirm", userToken, http.StatusOK},
		{"GET", "/api/user/subscription", userToken, http.StatusOK},
		{"GET", "/api/vendor/payables", userToken, http.StatusForbidden},
		{"GET", "/api/vendor/payables", vendorToken, http.StatusOK},
		{"GET", "/api/admin/bills/pending", "", http.StatusUnauthorized},
		{"GET", "/api/admin/bills/pending", userToken, http.StatusForbidden},
		{"GET", "/api/admin/bills/pending", vendorToken, http.StatusForbidden},
		{"GET", "/api/admin/bills/pending", adminToken, http.StatusOK},
		{"POST", "/api/admin/bills/4/approve", adminToken, http.StatusOK},
		{"POST", "/api/admin/bills/4/reject", adminToken, http.StatusOK},
		{"POST", "/api/admin/payments/9/approve", adminToken, http.StatusOK},
		{"POST", "/api/admin/withdrawals/3/approve", adminToken, http.StatusOK},
		{"POST", "/api/admin/withdrawals/3/reject", adminToken, http.StatusOK},
		{"POST", "/api/admin/referrals/7/recompute", adminToken, http.StatusOK},
		{"POST", "/api/admin/vendors/3/paid", adminToken, http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
