package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PlanType string

const (
	PlanNone PlanType = "none"
	PlanB    PlanType = "B"
	PlanA    PlanType = "A"
)

// Rank orders plans by value. Unknown plans rank zero.
func (p PlanType) Rank() int {
	switch p {
	case PlanB:
		return 1
	case PlanA:
		return 2
	default:
		return 0
	}
}

func (p PlanType) Valid() bool {
	return p == PlanA || p == PlanB
}

type Role string

const (
	RoleUser     Role = "user"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
	RolePlatform Role = "platform"
)

// ClaimState is the state of a one-shot action attached to an aggregate.
type ClaimState string

const (
	NotClaimed ClaimState = "not_claimed"
	Claimed    ClaimState = "claimed"
)

type User struct {
	ID            int        `db:"id"`
	Login         string     `db:"login"`
	PasswordHash  string     `db:"password_hash"`
	Role          Role       `db:"role"`
	PlanType      PlanType   `db:"plan_type"`
	ReferralCode  *string    `db:"referral_code"`
	ReferredBy    *string    `db:"referred_by"`
	ReferralCount int        `db:"referral_count"`
	PairCount     int        `db:"pair_count"`
	FirstCashback ClaimState `db:"first_cashback_state"`
	IsActive      bool       `db:"is_active"`
	ActivatedAt   *time.Time `db:"activated_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

type Reward struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Type      string    `db:"type"`
	PairTier  int       `db:"pair_tier"`
	AwardedAt time.Time `db:"awarded_at"`
}

type AccountKind string

const (
	AccountUser     AccountKind = "user"
	AccountPlatform AccountKind = "platform"
)

type Account struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Kind      AccountKind     `db:"kind"`
	Balance   decimal.Decimal `db:"balance_minor"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type Direction string

const (
	Credit Direction = "CREDIT"
	Debit  Direction = "DEBIT"
)

type EntryStatus string

const (
	EntryPending   EntryStatus = "pending"
	EntryCompleted EntryStatus = "completed"
	EntryFailed    EntryStatus = "failed"
)

type Action string

const (
	ActionActivationCashback    Action = "activation_cashback"
	ActionShoppingCashback      Action = "shopping_cashback"
	ActionFirstShoppingCashback Action = "first_shopping_cashback"
	ActionReferralBonus         Action = "referral_bonus"
	ActionPairBonus             Action = "pair_bonus"
	ActionPlatformShare         Action = "platform_share"
	ActionWithdrawal            Action = "withdrawal"
	ActionWithdrawalRefund      Action = "withdrawal_refund"
)

type ReferenceKind string

const (
	RefShoppingBill ReferenceKind = "ShoppingBill"
	RefReferral     ReferenceKind = "Referral"
	RefPayment      ReferenceKind = "Payment"
	RefWithdrawal   ReferenceKind = "Withdrawal"
	RefPairTier     ReferenceKind = "PairTier"
)

type LedgerEntry struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	Amount        decimal.Decimal `db:"amount_minor"`
	BalanceAfter  decimal.Decimal `db:"balance_after_minor"`
	Direction     Direction       `db:"direction"`
	Action        Action          `db:"action"`
	ReferenceID   int             `db:"reference_id"`
	ReferenceKind ReferenceKind   `db:"reference_kind"`
	Status        EntryStatus     `db:"status"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Referral struct {
	ID             int             `db:"id"`
	ReferrerID     int             `db:"referrer_id"`
	ReferredUserID int             `db:"referred_user_id"`
	ReferredPlan   PlanType        `db:"referred_plan"`
	BonusAwarded   decimal.Decimal `db:"bonus_awarded_minor"`
	ActivatedAt    time.Time       `db:"activated_at"`
}

type BillStatus string

const (
	BillPending  BillStatus = "pending"
	BillApproved BillStatus = "approved"
	BillRejected BillStatus = "rejected"
)

// BillFlag names a one-shot side effect of a bill approval.
type BillFlag string

const (
	FlagVendorProfit  BillFlag = "vendor_profit_state"
	FlagFirstCashback BillFlag = "first_cashback_state"
	FlagReferrerBonus BillFlag = "referrer_bonus_state"
)

type ShoppingBill struct {
	ID             int             `db:"id"`
	UserID         int             `db:"user_id"`
	ShopID         int             `db:"shop_id"`
	BillAmount     decimal.Decimal `db:"bill_amount_minor"`
	CashbackAmount decimal.Decimal `db:"cashback_amount_minor"`
	Status         BillStatus      `db:"status"`
	VendorProfit   ClaimState      `db:"vendor_profit_state"`
	FirstCashback  ClaimState      `db:"first_cashback_state"`
	ReferrerBonus  ClaimState      `db:"referrer_bonus_state"`
	ApprovedBy     *int            `db:"approved_by"`
	ApprovedAt     *time.Time      `db:"approved_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

type ShopStatus string

const (
	ShopActive   ShopStatus = "active"
	ShopInactive ShopStatus = "inactive"
)

type Shop struct {
	ID      int        `db:"id"`
	OwnerID int        `db:"owner_id"`
	Name    string     `db:"name"`
	Status  ShopStatus `db:"status"`
}

type VendorProfitStatus string

const (
	VendorProfitPending VendorProfitStatus = "pending"
	VendorProfitPaid    VendorProfitStatus = "paid"
)

type VendorProfit struct {
	ID        int                `db:"id"`
	VendorID  int                `db:"vendor_id"`
	BillID    int                `db:"bill_id"`
	Amount    decimal.Decimal    `db:"amount_minor"`
	Status    VendorProfitStatus `db:"status"`
	PaidAt    *time.Time         `db:"paid_at"`
	PaidBy    *int               `db:"paid_by"`
	CreatedAt time.Time          `db:"created_at"`
}

type Plan struct {
	Code               PlanType        `db:"code"`
	Name               string          `db:"name"`
	Price              decimal.Decimal `db:"price_minor"`
	ActivationCashback decimal.Decimal `db:"activation_cashback_minor"`
	IsActive           bool            `db:"is_active"`
}

type PaymentMode string

const (
	PaymentOnline PaymentMode = "online"
	PaymentCash   PaymentMode = "cash"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

type Payment struct {
	ID                 int             `db:"id"`
	UserID             int             `db:"user_id"`
	PlanCode           PlanType        `db:"plan_code"`
	Mode               PaymentMode     `db:"mode"`
	Amount             decimal.Decimal `db:"amount_minor"`
	Status             PaymentStatus   `db:"status"`
	GatewayOrderID     *string         `db:"gateway_order_id"`
	GatewayPaymentID   *string         `db:"gateway_payment_id"`
	ActivationCashback ClaimState      `db:"activation_cashback_state"`
	ApprovedBy         *int            `db:"approved_by"`
	ApprovedAt         *time.Time      `db:"approved_at"`
	CreatedAt          time.Time       `db:"created_at"`
}

// GatewayConfirmation is the verified tuple handed over by the payment gateway.
type GatewayConfirmation struct {
	OrderID   string
	PaymentID string
	Amount    decimal.Decimal
	Status    string
}

type SubscriptionStatus string

const (
	SubscriptionPending SubscriptionStatus = "pending"
	SubscriptionActive  SubscriptionStatus = "active"
	SubscriptionExpired SubscriptionStatus = "expired"
)

type UserSubscription struct {
	ID          int                `db:"id"`
	UserID      int                `db:"user_id"`
	PlanCode    PlanType           `db:"plan_code"`
	PaymentID   int                `db:"payment_id"`
	Status      SubscriptionStatus `db:"status"`
	ActivatedAt *time.Time         `db:"activated_at"`
	ExpiresAt   *time.Time         `db:"expires_at"`
}

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalPaid     WithdrawalStatus = "paid"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

type Withdrawal struct {
	ID            int              `db:"id"`
	UserID        int              `db:"user_id"`
	Amount        decimal.Decimal  `db:"amount_minor"`
	Destination   string           `db:"destination"`
	Status        WithdrawalStatus `db:"status"`
	LedgerEntryID int              `db:"ledger_entry_id"`
	RequestedAt   time.Time        `db:"requested_at"`
	ProcessedAt   *time.Time       `db:"processed_at"`
}

type AuditEntry struct {
	ID        int            `db:"id"`
	ActorID   int            `db:"actor_id"`
	Action    string         `db:"action"`
	Details   map[string]any `db:"details"`
	CreatedAt time.Time      `db:"created_at"`
}
