package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type UploadBillRequestDTO struct {
	ShopID     int             `json:"shop_id" example:"2"`
	BillAmount decimal.Decimal `json:"bill_amount" swaggertype:"string" example:"1000"`
}

type BillResponseDTO struct {
	ID             int             `json:"id" example:"4"`
	ShopID         int             `json:"shop_id" example:"2"`
	BillAmount     decimal.Decimal `json:"bill_amount" swaggertype:"string" example:"1000"`
	CashbackAmount decimal.Decimal `json:"cashback_amount" swaggertype:"string" example:"160"`
	Status         string          `json:"status" example:"approved"`
	ApprovedAt     *time.Time      `json:"approved_at,omitempty" example:"2024-03-01T10:00:00Z"`
	CreatedAt      time.Time       `json:"created_at" example:"2024-03-01T09:00:00Z"`
}

type ApproveBillRequestDTO struct {
	ProfitAmount decimal.Decimal `json:"profit_amount" swaggertype:"string" example:"400"`
}

type RejectBillRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"unreadable receipt"`
}

type SettlementResponseDTO struct {
	BillID        int             `json:"bill_id" example:"4"`
	UserCashback  decimal.Decimal `json:"user_cashback" swaggertype:"string" example:"160"`
	ReferrerBonus decimal.Decimal `json:"referrer_bonus" swaggertype:"string" example:"80"`
	FirstBonus    decimal.Decimal `json:"first_bonus" swaggertype:"string" example:"160"`
	AdminShare    decimal.Decimal `json:"admin_share" swaggertype:"string" example:"0"`
	VendorProfit  decimal.Decimal `json:"vendor_profit" swaggertype:"string" example:"400"`
}

type VendorProfitDTO struct {
	ID        int             `json:"id" example:"9"`
	BillID    int             `json:"bill_id" example:"4"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"400"`
	Status    string          `json:"status" example:"pending"`
	CreatedAt time.Time       `json:"created_at" example:"2024-03-01T10:00:00Z"`
}

type VendorPayablesResponseDTO struct {
	PendingTotal decimal.Decimal   `json:"pending_total" swaggertype:"string" example:"400"`
	Records      []VendorProfitDTO `json:"records"`
}

type VendorPaidResponseDTO struct {
	Paid int `json:"paid" example:"2"`
}
