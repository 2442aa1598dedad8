package referrals

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/dto"
	"github.com/GlebRadaev/rewardledger/internal/handlers/httperr"
	"github.com/GlebRadaev/rewardledger/internal/service/referralservice"
	"github.com/GlebRadaev/rewardledger/pkg/auth"
	"github.com/GlebRadaev/rewardledger/pkg/utils"
)

//go:generate mockgen -source=referrals.go -destination=mock_referrals.go -package=referrals

type Service interface {
	Summary(ctx context.Context, userID int) (*domain.ReferralSummary, error)
	RecomputePairs(ctx context.Context, referrerID int) (*referralservice.Outcome, error)
}

type ReferralsHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralsHandler {
	return &ReferralsHandler{
		referralService: referralService,
	}
}

// GetSummary godoc
//
//	@Summary		Get referral summary
//	@Description	Referral code, referred users, unlocked pairs and the progress towards the next pair.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralSummaryResponseDTO	"Referral summary"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		404	{object}	utils.Response					"User not found"
//	@Router			/api/user/referrals [get]
func (h *ReferralsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.referralService.Summary(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	response := dto.ReferralSummaryResponseDTO{
		ReferralCount: summary.ReferralCount,
		PairCount:     summary.PairCount,
		NextPair:      summary.Progress.NextPair,
		ReferralsToGo: summary.Progress.ReferralsToGo,
		Qualifying:    summary.Progress.QualifyingSeen,
		Referrals:     make([]dto.ReferralDTO, len(summary.Referrals)),
		Rewards:       make([]dto.RewardDTO, len(summary.Rewards)),
	}
	if summary.ReferralCode != nil {
		response.ReferralCode = *summary.ReferralCode
	}
	for i, ref := range summary.Referrals {
		response.Referrals[i] = dto.ReferralDTO{
			ReferredUserID: ref.ReferredUserID,
			ReferredPlan:   string(ref.ReferredPlan),
			BonusAwarded:   ref.BonusAwarded,
			ActivatedAt:    ref.ActivatedAt,
		}
	}
	for i, rw := range summary.Rewards {
		response.Rewards[i] = dto.RewardDTO{Type: rw.Type, PairTier: rw.PairTier}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RecomputePairs godoc
//
//	@Summary		Recompute pairs
//	@Description	Re-derive the referrer's pairs from stored referrals and pay any missing pair bonus.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int								true	"Referrer user ID"
//	@Success		200		{object}	dto.RecomputePairsResponseDTO	"Pairs unlocked by this call"
//	@Failure		400		{object}	utils.Response					"Invalid user id"
//	@Failure		404		{object}	utils.Response					"User not found"
//	@Router			/api/admin/referrals/{userID}/recompute [post]
func (h *ReferralsHandler) RecomputePairs(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	out, err := h.referralService.RecomputePairs(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	unlocked := out.PairsUnlocked
	if unlocked == nil {
		unlocked = []int{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RecomputePairsResponseDTO{PairsUnlocked: unlocked})
}
