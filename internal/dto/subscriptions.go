package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PlanDTO struct {
	Code               string          `json:"code" example:"A"`
	Name               string          `json:"name" example:"Plan A"`
	Price              decimal.Decimal `json:"price" swaggertype:"string" example:"2400"`
	ActivationCashback decimal.Decimal `json:"activation_cashback" swaggertype:"string" example:"0"`
}

type InitiatePaymentRequestDTO struct {
	PlanCode string `json:"plan_code" example:"A"`
	Mode     string `json:"mode" example:"online"`
}

type PaymentResponseDTO struct {
	ID             int             `json:"id" example:"5"`
	PlanCode       string          `json:"plan_code" example:"A"`
	Mode           string          `json:"mode" example:"online"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string" example:"2400"`
	Status         string          `json:"status" example:"pending"`
	GatewayOrderID *string         `json:"gateway_order_id,omitempty" example:"order_5f1c"`
}

type ConfirmPaymentRequestDTO struct {
	OrderID   string          `json:"order_id" example:"order_5f1c"`
	PaymentID string          `json:"payment_id" example:"pay_29QQoUBi66xm2f"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"2400"`
	Status    string          `json:"status" example:"captured"`
}

type ActivationResponseDTO struct {
	Plan          string          `json:"plan" example:"A"`
	PaymentID     int             `json:"payment_id" example:"5"`
	ReferralCode  string          `json:"referral_code" example:"7992739875"`
	Cashback      decimal.Decimal `json:"cashback" swaggertype:"string" example:"0"`
}

type SubscriptionResponseDTO struct {
	PlanCode    string     `json:"plan_code" example:"A"`
	Status      string     `json:"status" example:"active"`
	PaymentID   int        `json:"payment_id" example:"5"`
	ActivatedAt *time.Time `json:"activated_at,omitempty" example:"2024-03-01T10:00:00Z"`
}
