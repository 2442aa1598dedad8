package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type LedgerEntryDTO struct {
	ID            int             `json:"id" example:"17"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"160"`
	BalanceAfter  decimal.Decimal `json:"balance_after" swaggertype:"string" example:"320"`
	Direction     string          `json:"direction" example:"CREDIT"`
	Action        string          `json:"action" example:"shopping_cashback"`
	ReferenceID   int             `json:"reference_id" example:"4"`
	ReferenceKind string          `json:"reference_kind" example:"ShoppingBill"`
	Status        string          `json:"status" example:"completed"`
	Description   string          `json:"description" example:"40% cashback on bill ₹1000.00"`
	CreatedAt     time.Time       `json:"created_at" example:"2024-03-01T10:00:00Z"`
}

type WalletResponseDTO struct {
	Balance      decimal.Decimal  `json:"balance" swaggertype:"string" example:"320"`
	Transactions []LedgerEntryDTO `json:"transactions"`
}

type ActionTotalDTO struct {
	Action    string          `json:"action" example:"shopping_cashback"`
	Direction string          `json:"direction" example:"CREDIT"`
	Total     decimal.Decimal `json:"total" swaggertype:"string" example:"160"`
	Count     int             `json:"count" example:"1"`
}

type WalletAnalyticsResponseDTO struct {
	Balance       decimal.Decimal  `json:"balance" swaggertype:"string" example:"320"`
	TotalCredited decimal.Decimal  `json:"total_credited" swaggertype:"string" example:"420"`
	TotalDebited  decimal.Decimal  `json:"total_debited" swaggertype:"string" example:"100"`
	ByAction      []ActionTotalDTO `json:"by_action"`
}

type BalanceWithdrawRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"500"`
	Destination string          `json:"destination" example:"upi:user@bank"`
}

type WithdrawalDecisionRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"account closed"`
}

type GetWithdrawalsResponseDTO struct {
	ID          int             `json:"id" example:"3"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"500"`
	Destination string          `json:"destination" example:"upi:user@bank"`
	Status      string          `json:"status" example:"pending"`
	RequestedAt time.Time       `json:"requested_at" example:"2020-12-09T16:09:57+03:00"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty" example:"2020-12-10T16:09:57+03:00"`
}
