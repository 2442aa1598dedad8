package referrals

import (
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
	"github.com/GlebRadaev/rewardledger/internal/service/referralservice"
	"github.com/GlebRadaev/rewardledger/pkg/auth"
)

func NewMock(t *testing.T) (*ReferralsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestGetSummary(t *testing.T) {
	handler, service := NewMock(t)
	code := "7992739875"
	activated := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		check        func(t *testing.T, body dto.ReferralSummaryResponseDTO)
	}{
		{
			name: "Summary with one pair",
			prepareMock: func() {
				service.EXPECT().Summary(gomock.Any(), 1).Return(&domain.ReferralSummary{
					UserID:        1,
					ReferralCode:  &code,
					ReferralCount: 4,
					PairCount:     1,
					Progress:      domain.NextPair(4),
					Referrals: []domain.Referral{
						{ReferrerID: 1, ReferredUserID: 10, ReferredPlan: domain.PlanA, BonusAwarded: decimal.NewFromInt(500), ActivatedAt: activated},
					},
					Rewards: []domain.Reward{{UserID: 1, Type: referralservice.RewardPairBonus, PairTier: 1}},
				}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body dto.ReferralSummaryResponseDTO) {
				assert.Equal(t, code, body.ReferralCode)
				assert.Equal(t, 1, body.PairCount)
				assert.Equal(t, 2, body.NextPair)
				assert.Equal(t, 5, body.ReferralsToGo)
				assert.Equal(t, 4, body.Qualifying)
				require.Len(t, body.Referrals, 1)
				assert.Equal(t, "500", body.Referrals[0].BonusAwarded.String())
				require.Len(t, body.Rewards, 1)
				assert.Equal(t, "pair_bonus", body.Rewards[0].Type)
			},
		},
		{
			name: "Inactive user without code",
			prepareMock: func() {
				service.EXPECT().Summary(gomock.Any(), 1).Return(&domain.ReferralSummary{
					UserID:   1,
					Progress: domain.NextPair(0),
				}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body dto.ReferralSummaryResponseDTO) {
				assert.Empty(t, body.ReferralCode)
				assert.Equal(t, 1, body.NextPair)
				assert.Equal(t, 3, body.ReferralsToGo)
				assert.Empty(t, body.Referrals)
			},
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().Summary(gomock.Any(), 1).Return(nil, domain.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/referrals", nil)
			r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.GetSummary(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.check != nil {
				var body dto.ReferralSummaryResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				tt.check(t, body)
			}
		})
	}
}

func TestRecomputePairs(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
		expected     []int
	}{
		{
			name:   "Missing pair paid",
			userID: "7",
			prepareMock: func() {
				service.EXPECT().RecomputePairs(gomock.Any(), 7).Return(&referralservice.Outcome{ReferrerID: 7, PairsUnlocked: []int{2}}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     []int{2},
		},
		{
			name:   "Nothing to pay",
			userID: "7",
			prepareMock: func() {
				service.EXPECT().RecomputePairs(gomock.Any(), 7).Return(&referralservice.Outcome{ReferrerID: 7}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     []int{},
		},
		{
			name:         "Invalid id",
			userID:       "-1",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userID", tt.userID)
			r := httptest.NewRequest(http.MethodPost, "/api/admin/referrals/"+tt.userID+"/recompute", nil)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()
			handler.RecomputePairs(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expected != nil {
				var body dto.RecomputePairsResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expected, body.PairsUnlocked)
			}
		})
	}
}
