package balance

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/dto"
	"github.com/GlebRadaev/rewardledger/internal/handlers/httperr"
	"github.com/GlebRadaev/rewardledger/pkg/auth"
	"github.com/GlebRadaev/rewardledger/pkg/utils"
)

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=balance

type Service interface {
	GetWalletSummary(ctx context.Context, userID int) (*domain.WalletSummary, error)
	GetAnalytics(ctx context.Context, userID int) (*domain.WalletAnalytics, error)
	RequestWithdrawal(ctx context.Context, userID int, amount decimal.Decimal, destination string) (*domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, withdrawalID int, adminID int) (*domain.Withdrawal, error)
	RejectWithdrawal(ctx context.Context, withdrawalID int, adminID int, reason string) (*domain.Withdrawal, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

func toEntryDTO(e domain.LedgerEntry) dto.LedgerEntryDTO {
	return dto.LedgerEntryDTO{
		ID:            e.ID,
		Amount:        e.Amount,
		BalanceAfter:  e.BalanceAfter,
		Direction:     string(e.Direction),
		Action:        string(e.Action),
		ReferenceID:   e.ReferenceID,
		ReferenceKind: string(e.ReferenceKind),
		Status:        string(e.Status),
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
	}
}

func toWithdrawalDTO(wd domain.Withdrawal) dto.GetWithdrawalsResponseDTO {
	return dto.GetWithdrawalsResponseDTO{
		ID:          wd.ID,
		Amount:      wd.Amount,
		Destination: wd.Destination,
		Status:      string(wd.Status),
		RequestedAt: wd.RequestedAt,
		ProcessedAt: wd.ProcessedAt,
	}
}

// GetWallet godoc
//
//	@Summary		Get wallet summary
//	@Description	Current balance and the 50 most recent ledger entries of the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet summary"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *BalanceHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.balanceService.GetWalletSummary(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := dto.WalletResponseDTO{
		Balance:      summary.Balance,
		Transactions: make([]dto.LedgerEntryDTO, len(summary.Transactions)),
	}
	for i, e := range summary.Transactions {
		response.Transactions[i] = toEntryDTO(e)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetAnalytics godoc
//
//	@Summary		Get wallet analytics
//	@Description	Totals credited and debited and a per-action breakdown for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletAnalyticsResponseDTO	"Wallet analytics"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/wallet/analytics [get]
func (h *BalanceHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	analytics, err := h.balanceService.GetAnalytics(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := dto.WalletAnalyticsResponseDTO{
		Balance:       analytics.Balance,
		TotalCredited: analytics.TotalCredited,
		TotalDebited:  analytics.TotalDebited,
		ByAction:      make([]dto.ActionTotalDTO, len(analytics.ByAction)),
	}
	for i, t := range analytics.ByAction {
		response.ByAction[i] = dto.ActionTotalDTO{
			Action:    string(t.Action),
			Direction: string(t.Direction),
			Total:     t.Total,
			Count:     t.Count,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Withdraw godoc
//
//	@Summary		Request funds withdrawal
//	@Description	Reserve an amount of at least 100 from the wallet for payout to the given destination.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BalanceWithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		202		{object}	dto.GetWithdrawalsResponseDTO	"Withdrawal accepted"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		422		{object}	utils.Response					"Amount below minimum"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/wallet/withdraw [post]
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BalanceWithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wd, err := h.balanceService.RequestWithdrawal(r.Context(), userID, req.Amount, req.Destination)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toWithdrawalDTO(*wd))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Get withdrawals history for the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetWithdrawalsResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response					"Withdrawals not found"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *BalanceHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.balanceService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.GetWithdrawalsResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = toWithdrawalDTO(wd)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ApproveWithdrawal godoc
//
//	@Summary		Approve a withdrawal
//	@Description	Complete the reserved debit and mark the withdrawal paid.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int								true	"Withdrawal ID"
//	@Success		200	{object}	dto.GetWithdrawalsResponseDTO	"Withdrawal paid"
//	@Failure		403	{object}	utils.Response					"Forbidden"
//	@Failure		404	{object}	utils.Response					"Withdrawal not found"
//	@Failure		409	{object}	utils.Response					"Withdrawal already processed"
//	@Router			/api/admin/withdrawals/{id}/approve [post]
func (h *BalanceHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid withdrawal id")
		return
	}

	wd, err := h.balanceService.ApproveWithdrawal(r.Context(), id, adminID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(*wd))
}

// RejectWithdrawal godoc
//
//	@Summary		Reject a withdrawal
//	@Description	Fail the reserved debit and refund the amount to the wallet.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Withdrawal ID"
//	@Param			request	body		dto.WithdrawalDecisionRequestDTO	false	"Rejection reason"
//	@Success		200		{object}	dto.GetWithdrawalsResponseDTO		"Withdrawal rejected"
//	@Failure		403		{object}	utils.Response						"Forbidden"
//	@Failure		404		{object}	utils.Response						"Withdrawal not found"
//	@Failure		409		{object}	utils.Response						"Withdrawal already processed"
//	@Router			/api/admin/withdrawals/{id}/reject [post]
func (h *BalanceHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid withdrawal id")
		return
	}

	var req dto.WithdrawalDecisionRequestDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	wd, err := h.balanceService.RejectWithdrawal(r.Context(), id, adminID, req.Reason)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(*wd))
}
