package subscriptions

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/dto"
	"github.com/GlebRadaev/rewardledger/internal/handlers/httperr"
	"github.com/GlebRadaev/rewardledger/pkg/auth"
	"github.com/GlebRadaev/rewardledger/pkg/utils"
)

//go:generate mockgen -source=subscriptions.go -destination=mock_subscriptions.go -package=subscriptions

type Service interface {
	Plans(ctx context.Context) ([]domain.Plan, error)
	ActiveSubscription(ctx context.Context, userID int) (*domain.UserSubscription, error)
	InitiatePayment(ctx context.Context, userID int, planCode domain.PlanType, mode domain.PaymentMode) (*domain.Payment, error)
	ConfirmOnlinePayment(ctx context.Context, userID int, conf domain.GatewayConfirmation) (*domain.Activation, error)
	ApproveCashPayment(ctx context.Context, paymentID int, adminID int) (*domain.Activation, error)
}

type SubscriptionsHandler struct {
	subscriptionService Service
}

func New(subscriptionService Service) *SubscriptionsHandler {
	return &SubscriptionsHandler{
		subscriptionService: subscriptionService,
	}
}

func toActivationDTO(a *domain.Activation) dto.ActivationResponseDTO {
	return dto.ActivationResponseDTO{
		Plan:         string(a.Plan),
		PaymentID:    a.PaymentID,
		ReferralCode: a.ReferralCode,
		Cashback:     a.Cashback,
	}
}

// GetPlans godoc
//
//	@Summary	List subscription plans
//	@Tags		Subscriptions
//	@Produce	json
//	@Success	200	{array}		dto.PlanDTO		"Active plans"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/plans [get]
func (h *SubscriptionsHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.subscriptionService.Plans(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := make([]dto.PlanDTO, 0, len(plans))
	for _, p := range plans {
		if !p.IsActive {
			continue
		}
		response = append(response, dto.PlanDTO{
			Code:               string(p.Code),
			Name:               p.Name,
			Price:              p.Price,
			ActivationCashback: p.ActivationCashback,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// InitiatePayment godoc
//
//	@Summary		Start a plan payment
//	@Description	Open a pending payment for the plan price. Online payments return a gateway order id.
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InitiatePaymentRequestDTO	true	"Plan and payment mode"
//	@Success		201		{object}	dto.PaymentResponseDTO			"Payment created"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		409		{object}	utils.Response					"Plan already active or downgrade"
//	@Failure		422		{object}	utils.Response					"Unknown plan or mode"
//	@Router			/api/user/payments [post]
func (h *SubscriptionsHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.InitiatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan := domain.PlanType(strings.ToUpper(req.PlanCode))
	mode := domain.PaymentMode(strings.ToLower(req.Mode))
	payment, err := h.subscriptionService.InitiatePayment(r.Context(), userID, plan, mode)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PaymentResponseDTO{
		ID:             payment.ID,
		PlanCode:       string(payment.PlanCode),
		Mode:           string(payment.Mode),
		Amount:         payment.Amount,
		Status:         string(payment.Status),
		GatewayOrderID: payment.GatewayOrderID,
	})
}

// ConfirmPayment godoc
//
//	@Summary		Confirm an online payment
//	@Description	Activate the subscription behind a captured gateway payment.
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmPaymentRequestDTO	true	"Gateway confirmation"
//	@Success		200		{object}	dto.ActivationResponseDTO		"Subscription activated"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		404		{object}	utils.Response					"Payment not found"
//	@Failure		409		{object}	utils.Response					"Payment already processed"
//	@Failure		422		{object}	utils.Response					"Confirmation does not match the payment"
//	@Router			/api/user/payments/confirm [post]
func (h *SubscriptionsHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ConfirmPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	activation, err := h.subscriptionService.ConfirmOnlinePayment(r.Context(), userID, domain.GatewayConfirmation{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Amount:    req.Amount,
		Status:    req.Status,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toActivationDTO(activation))
}

// GetSubscription godoc
//
//	@Summary	Get my active subscription
//	@Tags		Subscriptions
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.SubscriptionResponseDTO	"Active subscription"
//	@Failure	404	{object}	utils.Response				"No active subscription"
//	@Router		/api/user/subscription [get]
func (h *SubscriptionsHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	sub, err := h.subscriptionService.ActiveSubscription(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SubscriptionResponseDTO{
		PlanCode:    string(sub.PlanCode),
		Status:      string(sub.Status),
		PaymentID:   sub.PaymentID,
		ActivatedAt: sub.ActivatedAt,
	})
}

// ApproveCashPayment godoc
//
//	@Summary		Approve a cash payment
//	@Description	Activate the subscription behind a cash payment collected offline.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			paymentID	path		int							true	"Payment ID"
//	@Success		200			{object}	dto.ActivationResponseDTO	"Subscription activated"
//	@Failure		400			{object}	utils.Response				"Invalid payment id"
//	@Failure		404			{object}	utils.Response				"Payment not found"
//	@Failure		409			{object}	utils.Response				"Payment already processed"
//	@Router			/api/admin/payments/{paymentID}/approve [post]
func (h *SubscriptionsHandler) ApproveCashPayment(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	paymentID, err := strconv.Atoi(chi.URLParam(r, "paymentID"))
	if err != nil || paymentID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	activation, err := h.subscriptionService.ApproveCashPayment(r.Context(), paymentID, adminID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toActivationDTO(activation))
}
