package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralDTO struct {
	ReferredUserID int             `json:"referred_user_id" example:"12"`
	ReferredPlan   string          `json:"referred_plan" example:"A"`
	BonusAwarded   decimal.Decimal `json:"bonus_awarded" swaggertype:"string" example:"500"`
	ActivatedAt    time.Time       `json:"activated_at" example:"2024-03-01T10:00:00Z"`
}

type RewardDTO struct {
	Type     string `json:"type" example:"pair_bonus"`
	PairTier int    `json:"pair_tier" example:"1"`
}

type ReferralSummaryResponseDTO struct {
	ReferralCode  string        `json:"referral_code,omitempty" example:"7992739875"`
	ReferralCount int           `json:"referral_count" example:"4"`
	PairCount     int           `json:"pair_count" example:"1"`
	NextPair      int           `json:"next_pair" example:"2"`
	ReferralsToGo int           `json:"referrals_to_go" example:"5"`
	Qualifying    int           `json:"qualifying" example:"4"`
	Referrals     []ReferralDTO `json:"referrals"`
	Rewards       []RewardDTO   `json:"rewards"`
}

type RecomputePairsResponseDTO struct {
	PairsUnlocked []int `json:"pairs_unlocked"`
}
