package bills

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

//go:generate mockgen -source=bills.go -destination=mock_bills.go -package=bills

type Service interface {
	UploadBill(ctx context.Context, userID, shopID int, amount decimal.Decimal) (*domain.ShoppingBill, error)
	MyBills(ctx context.Context, userID int) ([]domain.ShoppingBill, error)
	PendingBills(ctx context.Context) ([]domain.ShoppingBill, error)
	SettleBill(ctx context.Context, billID int, profit decimal.Decimal, adminID int) (*domain.Settlement, error)
	RejectBill(ctx context.Context, billID int, adminID int, reason string) error
	VendorPayables(ctx context.Context, vendorID int) (*domain.VendorPayables, error)
	MarkVendorPaid(ctx context.Context, vendorID int, adminID int) (int, error)
}

type BillsHandler struct {
	settlementService Service
}

func New(settlementService Service) *BillsHandler {
	return &BillsHandler{
		settlementService: settlementService,
	}
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	return id, err == nil && id > 0
}

func toBillDTO(b domain.ShoppingBill) dto.BillResponseDTO {
	return dto.BillResponseDTO{
		ID:             b.ID,
		ShopID:         b.ShopID,
		BillAmount:     b.BillAmount,
		CashbackAmount: b.CashbackAmount,
		Status:         string(b.Status),
		ApprovedAt:     b.ApprovedAt,
		CreatedAt:      b.CreatedAt,
	}
}

func respondBills(w http.ResponseWriter, bills []domain.ShoppingBill) {
	if len(bills) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No bills found")
		return
	}
	response := make([]dto.BillResponseDTO, len(bills))
	for i, b := range bills {
		response[i] = toBillDTO(b)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UploadBill godoc
//
//	@Summary		Upload a shopping bill
//	@Description	Submit a bill from an active shop for admin review.
//	@Tags			Bills
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UploadBillRequestDTO	true	"Bill payload"
//	@Success		202		{object}	dto.BillResponseDTO			"Bill accepted for review"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		404		{object}	utils.Response				"Shop not found"
//	@Failure		409		{object}	utils.Response				"Shop is not active"
//	@Failure		422		{object}	utils.Response				"Amount must be positive"
//	@Router			/api/user/bills [post]
func (h *BillsHandler) UploadBill(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.UploadBillRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bill, err := h.settlementService.UploadBill(r.Context(), userID, req.ShopID, req.BillAmount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toBillDTO(*bill))
}

// GetBills godoc
//
//	@Summary		Get my bills
//	@Tags			Bills
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BillResponseDTO	"Bills, newest first"
//	@Success		204	{object}	utils.Response		"No bills found"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Router			/api/user/bills [get]
func (h *BillsHandler) GetBills(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bills, err := h.settlementService.MyBills(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	respondBills(w, bills)
}

// GetPendingBills godoc
//
//	@Summary		List bills awaiting review
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BillResponseDTO	"Pending bills"
//	@Success		204	{object}	utils.Response		"No bills found"
//	@Failure		403	{object}	utils.Response		"Forbidden"
//	@Router			/api/admin/bills/pending [get]
func (h *BillsHandler) GetPendingBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.settlementService.PendingBills(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	respondBills(w, bills)
}

// ApproveBill godoc
//
//	@Summary		Approve a bill
//	@Description	Approve a pending bill with a profit of at most 40% of its amount and distribute it.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			billID	path		int							true	"Bill ID"
//	@Param			request	body		dto.ApproveBillRequestDTO	true	"Profit amount"
//	@Success		200		{object}	dto.SettlementResponseDTO	"Distribution"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		404		{object}	utils.Response				"Bill not found"
//	@Failure		409		{object}	utils.Response				"Bill is not pending"
//	@Failure		422		{object}	utils.Response				"Profit exceeds the cap"
//	@Failure		503		{object}	utils.Response				"Service temporarily unavailable"
//	@Router			/api/admin/bills/{billID}/approve [post]
func (h *BillsHandler) ApproveBill(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	billID, ok := pathID(r, "billID")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid bill id")
		return
	}

	var req dto.ApproveBillRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.settlementService.SettleBill(r.Context(), billID, req.ProfitAmount, adminID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResponseDTO{
		BillID:        st.BillID,
		UserCashback:  st.UserCashback,
		ReferrerBonus: st.ReferrerBonus,
		FirstBonus:    st.FirstBonus,
		AdminShare:    st.AdminShare,
		VendorProfit:  st.VendorProfit,
	})
}

// RejectBill godoc
//
//	@Summary		Reject a bill
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			billID	path		int							true	"Bill ID"
//	@Param			request	body		dto.RejectBillRequestDTO	false	"Rejection reason"
//	@Success		200		{object}	utils.Response				"Bill rejected"
//	@Failure		404		{object}	utils.Response				"Bill not found"
//	@Failure		409		{object}	utils.Response				"Bill is not pending"
//	@Router			/api/admin/bills/{billID}/reject [post]
func (h *BillsHandler) RejectBill(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	billID, ok := pathID(r, "billID")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid bill id")
		return
	}

	var req dto.RejectBillRequestDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if err := h.settlementService.RejectBill(r.Context(), billID, adminID, req.Reason); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bill rejected"})
}

// GetVendorPayables godoc
//
//	@Summary		Get pending vendor profit
//	@Tags			Vendor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.VendorPayablesResponseDTO	"Pending profit records"
//	@Failure		403	{object}	utils.Response					"Forbidden"
//	@Router			/api/vendor/payables [get]
func (h *BillsHandler) GetVendorPayables(w http.ResponseWriter, r *http.Request) {
	vendorID := r.Context().Value(auth.UserIDKey).(int)

	payables, err := h.settlementService.VendorPayables(r.Context(), vendorID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	response := dto.VendorPayablesResponseDTO{
		PendingTotal: payables.PendingTotal,
		Records:      make([]dto.VendorProfitDTO, len(payables.Records)),
	}
	for i, rec := range payables.Records {
		response.Records[i] = dto.VendorProfitDTO{
			ID:        rec.ID,
			BillID:    rec.BillID,
			Amount:    rec.Amount,
			Status:    string(rec.Status),
			CreatedAt: rec.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkVendorPaid godoc
//
//	@Summary		Mark vendor profit paid
//	@Description	Settle every pending profit record of the vendor.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			vendorID	path		int							true	"Vendor user ID"
//	@Success		200			{object}	dto.VendorPaidResponseDTO	"Records paid"
//	@Failure		400			{object}	utils.Response				"Invalid vendor id"
//	@Router			/api/admin/vendors/{vendorID}/paid [post]
func (h *BillsHandler) MarkVendorPaid(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	vendorID, ok := pathID(r, "vendorID")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}

	paid, err := h.settlementService.MarkVendorPaid(r.Context(), vendorID, adminID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VendorPaidResponseDTO{Paid: paid})
}
