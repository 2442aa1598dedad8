package bills

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/dto"
	"github.com/GlebRadaev/rewardledger/pkg/auth"
	"github.com/GlebRadaev/rewardledger/pkg/utils"
)

func NewMock(t *testing.T) (*BillsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func request(method, target, body string, userID int, params map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestUploadBill(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Bill accepted",
			body: `{"shop_id":2,"bill_amount":"1000"}`,
			prepareMock: func() {
				service.EXPECT().UploadBill(gomock.Any(), 5, 2, gomock.Any()).
					DoAndReturn(func(_ context.Context, userID, shopID int, amount decimal.Decimal) (*domain.ShoppingBill, error) {
						return &domain.ShoppingBill{ID: 4, UserID: userID, ShopID: shopID, BillAmount: amount, Status: domain.BillPending}, nil
					})
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:         "Invalid request body",
			body:         `not json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Shop not found",
			body: `{"shop_id":99,"bill_amount":"1000"}`,
			prepareMock: func() {
				service.EXPECT().UploadBill(gomock.Any(), 5, 99, gomock.Any()).Return(nil, domain.ErrShopNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Shop inactive",
			body: `{"shop_id":3,"bill_amount":"1000"}`,
			prepareMock: func() {
				service.EXPECT().UploadBill(gomock.Any(), 5, 3, gomock.Any()).Return(nil, domain.ErrShopInactive)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Non-positive amount",
			body: `{"shop_id":2,"bill_amount":"0"}`,
			prepareMock: func() {
				service.EXPECT().UploadBill(gomock.Any(), 5, 2, gomock.Any()).Return(nil, domain.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.UploadBill(w, request(http.MethodPost, "/api/user/bills", tt.body, 5, nil))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusAccepted {
				var body dto.BillResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 4, body.ID)
				assert.Equal(t, "1000", body.BillAmount.String())
				assert.Equal(t, "pending", body.Status)
			}
		})
	}
}

func TestGetBills(t *testing.T) {
	handler, service := NewMock(t)
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Bills found", func(t *testing.T) {
		service.EXPECT().MyBills(gomock.Any(), 5).Return([]domain.ShoppingBill{
			{ID: 2, ShopID: 2, BillAmount: decimal.NewFromInt(2000), Status: domain.BillPending, CreatedAt: created},
			{ID: 1, ShopID: 2, BillAmount: decimal.NewFromInt(1000), CashbackAmount: decimal.NewFromInt(320), Status: domain.BillApproved, CreatedAt: created},
		}, nil)
		w := httptest.NewRecorder()
		handler.GetBills(w, request(http.MethodGet, "/api/user/bills", "", 5, nil))
		require.Equal(t, http.StatusOK, w.Code)
		var body []dto.BillResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		require.Len(t, body, 2)
		assert.Equal(t, "320", body[1].CashbackAmount.String())
	})

	t.Run("No bills", func(t *testing.T) {
		service.EXPECT().MyBills(gomock.Any(), 5).Return(nil, nil)
		w := httptest.NewRecorder()
		handler.GetBills(w, request(http.MethodGet, "/api/user/bills", "", 5, nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Pending for admin", func(t *testing.T) {
		service.EXPECT().PendingBills(gomock.Any()).Return([]domain.ShoppingBill{
			{ID: 2, ShopID: 2, BillAmount: decimal.NewFromInt(2000), Status: domain.BillPending, CreatedAt: created},
		}, nil)
		w := httptest.NewRecorder()
		handler.GetPendingBills(w, request(http.MethodGet, "/api/admin/bills/pending", "", 2, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestApproveBill(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		billID       string
		body         string
		prepareMock  func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name:   "Distributed",
			billID: "4",
			body:   `{"profit_amount":"400"}`,
			prepareMock: func() {
				service.EXPECT().SettleBill(gomock.Any(), 4, gomock.Any(), 2).Return(&domain.Settlement{
					BillID:        4,
					UserCashback:  decimal.NewFromInt(160),
					ReferrerBonus: decimal.Zero,
					FirstBonus:    decimal.NewFromInt(160),
					AdminShare:    decimal.Zero,
					VendorProfit:  decimal.NewFromInt(400),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Profit over cap",
			billID: "4",
			body:   `{"profit_amount":"401"}`,
			prepareMock: func() {
				service.EXPECT().SettleBill(gomock.Any(), 4, gomock.Any(), 2).
					Return(nil, &domain.ProfitCapError{Max: decimal.NewFromInt(400)})
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedMsg:  "profit cannot exceed ₹400.00 (40% of bill amount)",
		},
		{
			name:   "Already approved",
			billID: "4",
			body:   `{"profit_amount":"400"}`,
			prepareMock: func() {
				service.EXPECT().SettleBill(gomock.Any(), 4, gomock.Any(), 2).Return(nil, domain.ErrBillNotPending)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Store unavailable",
			billID: "4",
			body:   `{"profit_amount":"400"}`,
			prepareMock: func() {
				service.EXPECT().SettleBill(gomock.Any(), 4, gomock.Any(), 2).Return(nil, domain.StoreError(errors.New("timeout")))
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedMsg:  "Service temporarily unavailable",
		},
		{
			name:         "Bad bill id",
			billID:       "x",
			body:         `{"profit_amount":"400"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			r := request(http.MethodPost, "/api/admin/bills/"+tt.billID+"/approve", tt.body, 2, map[string]string{"billID": tt.billID})
			handler.ApproveBill(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedMsg != "" {
				var body utils.Response
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedMsg, body.Message)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.SettlementResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "160", body.FirstBonus.String())
				assert.Equal(t, "400", body.VendorProfit.String())
			}
		})
	}
}

func TestRejectBill(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().RejectBill(gomock.Any(), 4, 2, "blurry").Return(nil)
	w := httptest.NewRecorder()
	handler.RejectBill(w, request(http.MethodPost, "/api/admin/bills/4/reject", `{"reason":"blurry"}`, 2, map[string]string{"billID": "4"}))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().RejectBill(gomock.Any(), 5, 2, "").Return(domain.ErrBillNotFound)
	w = httptest.NewRecorder()
	handler.RejectBill(w, request(http.MethodPost, "/api/admin/bills/5/reject", "", 2, map[string]string{"billID": "5"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVendorPayables(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().VendorPayables(gomock.Any(), 3).Return(&domain.VendorPayables{
		VendorID:     3,
		PendingTotal: decimal.NewFromInt(550),
		Records: []domain.VendorProfit{
			{ID: 1, VendorID: 3, BillID: 1, Amount: decimal.NewFromInt(400), Status: domain.VendorProfitPending},
			{ID: 2, VendorID: 3, BillID: 2, Amount: decimal.NewFromInt(150), Status: domain.VendorProfitPending},
		},
	}, nil)
	w := httptest.NewRecorder()
	handler.GetVendorPayables(w, request(http.MethodGet, "/api/vendor/payables", "", 3, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body dto.VendorPayablesResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "550", body.PendingTotal.String())
	assert.Len(t, body.Records, 2)

	service.EXPECT().MarkVendorPaid(gomock.Any(), 3, 2).Return(2, nil)
	w = httptest.NewRecorder()
	handler.MarkVendorPaid(w, request(http.MethodPost, "/api/admin/vendors/3/paid", "", 2, map[string]string{"vendorID": "3"}))
	require.Equal(t, http.StatusOK, w.Code)
	var paid dto.VendorPaidResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&paid))
	assert.Equal(t, 2, paid.Paid)
}
