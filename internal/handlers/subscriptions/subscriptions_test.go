package subscriptions

import (
	"bytes"
	"context"
	"encoding/json"
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
)

func NewMock(t *testing.T) (*SubscriptionsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func asUser(r *http.Request, userID int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func TestGetPlans(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Plans(gomock.Any()).Return([]domain.Plan{
		{Code: domain.PlanA, Name: "Plan A", Price: decimal.NewFromInt(2400), ActivationCashback: decimal.Zero, IsActive: true},
		{Code: domain.PlanB, Name: "Plan B", Price: decimal.NewFromInt(999), ActivationCashback: decimal.Zero, IsActive: true},
		{Code: "C", Name: "Retired", Price: decimal.NewFromInt(10), IsActive: false},
	}, nil)

	w := httptest.NewRecorder()
	handler.GetPlans(w, httptest.NewRequest(http.MethodGet, "/api/plans", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body []dto.PlanDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "A", body[0].Code)
	assert.Equal(t, "2400", body[0].Price.String())
}

func TestInitiatePayment(t *testing.T) {
	handler, service := NewMock(t)
	orderID := "order_abc"

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Online payment",
			body: `{"plan_code":"a","mode":"ONLINE"}`,
			prepareMock: func() {
				service.EXPECT().InitiatePayment(gomock.Any(), 5, domain.PlanA, domain.PaymentOnline).Return(&domain.Payment{
					ID: 9, UserID: 5, PlanCode: domain.PlanA, Mode: domain.PaymentOnline,
					Amount: decimal.NewFromInt(2400), Status: domain.PaymentPending, GatewayOrderID: &orderID,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Duplicate plan",
			body: `{"plan_code":"B","mode":"cash"}`,
			prepareMock: func() {
				service.EXPECT().InitiatePayment(gomock.Any(), 5, domain.PlanB, domain.PaymentCash).Return(nil, domain.ErrDuplicatePlan)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Unknown plan",
			body: `{"plan_code":"Z","mode":"cash"}`,
			prepareMock: func() {
				service.EXPECT().InitiatePayment(gomock.Any(), 5, domain.PlanType("Z"), domain.PaymentCash).Return(nil, domain.ErrInvalidPlan)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid body",
			body:         `[`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.InitiatePayment(w, asUser(httptest.NewRequest(http.MethodPost, "/api/user/payments", bytes.NewBufferString(tt.body)), 5))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.PaymentResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 9, body.ID)
				require.NotNil(t, body.GatewayOrderID)
				assert.Equal(t, orderID, *body.GatewayOrderID)
			}
		})
	}
}

func TestConfirmPayment(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Activated",
			body: `{"order_id":"order_abc","payment_id":"pay_1","amount":"2400","status":"captured"}`,
			prepareMock: func() {
				service.EXPECT().ConfirmOnlinePayment(gomock.Any(), 5, gomock.Any()).
					DoAndReturn(func(_ context.Context, userID int, conf domain.GatewayConfirmation) (*domain.Activation, error) {
						assert.Equal(t, "order_abc", conf.OrderID)
						assert.Equal(t, "pay_1", conf.PaymentID)
						assert.True(t, conf.Amount.Equal(decimal.NewFromInt(2400)))
						return &domain.Activation{UserID: userID, Plan: domain.PlanA, PaymentID: 9, ReferralCode: "7992739875", Cashback: decimal.Zero}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Amount mismatch",
			body: `{"order_id":"order_abc","payment_id":"pay_1","amount":"1","status":"captured"}`,
			prepareMock: func() {
				service.EXPECT().ConfirmOnlinePayment(gomock.Any(), 5, gomock.Any()).Return(nil, domain.ErrPaymentMismatch)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Already processed",
			body: `{"order_id":"order_abc","payment_id":"pay_1","amount":"2400","status":"captured"}`,
			prepareMock: func() {
				service.EXPECT().ConfirmOnlinePayment(gomock.Any(), 5, gomock.Any()).Return(nil, domain.ErrPaymentProcessed)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.ConfirmPayment(w, asUser(httptest.NewRequest(http.MethodPost, "/api/user/payments/confirm", bytes.NewBufferString(tt.body)), 5))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ActivationResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "A", body.Plan)
				assert.Equal(t, "7992739875", body.ReferralCode)
			}
		})
	}
}

func TestGetSubscription(t *testing.T) {
	handler, service := NewMock(t)
	activated := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	service.EXPECT().ActiveSubscription(gomock.Any(), 5).Return(&domain.UserSubscription{
		ID: 1, UserID: 5, PlanCode: domain.PlanB, PaymentID: 9, Status: domain.SubscriptionActive, ActivatedAt: &activated,
	}, nil)
	w := httptest.NewRecorder()
	handler.GetSubscription(w, asUser(httptest.NewRequest(http.MethodGet, "/api/user/subscription", nil), 5))
	require.Equal(t, http.StatusOK, w.Code)
	var body dto.SubscriptionResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "B", body.PlanCode)
	assert.Equal(t, "active", body.Status)

	service.EXPECT().ActiveSubscription(gomock.Any(), 6).Return(nil, domain.ErrSubscriptionNotFound)
	w = httptest.NewRecorder()
	handler.GetSubscription(w, asUser(httptest.NewRequest(http.MethodGet, "/api/user/subscription", nil), 6))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApproveCashPayment(t *testing.T) {
	handler, service := NewMock(t)

	call := func(id string) *httptest.ResponseRecorder {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("paymentID", id)
		r := asUser(httptest.NewRequest(http.MethodPost, "/api/admin/payments/"+id+"/approve", nil), 2)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()
		handler.ApproveCashPayment(w, r)
		return w
	}

	service.EXPECT().ApproveCashPayment(gomock.Any(), 9, 2).Return(&domain.Activation{UserID: 5, Plan: domain.PlanB, PaymentID: 9, Cashback: decimal.Zero}, nil)
	assert.Equal(t, http.StatusOK, call("9").Code)

	service.EXPECT().ApproveCashPayment(gomock.Any(), 10, 2).Return(nil, domain.ErrPaymentNotFound)
	assert.Equal(t, http.StatusNotFound, call("10").Code)

	assert.Equal(t, http.StatusBadRequest, call("zero").Code)
}
