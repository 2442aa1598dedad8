package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletSummary struct {
	UserID       int
	Balance      decimal.Decimal
	Transactions []LedgerEntry
}

// ActionTotal aggregates the entries of one action and direction.
type ActionTotal struct {
	Action    Action
	Direction Direction
	Total     decimal.Decimal
	Count     int
}

type WalletAnalytics struct {
	UserID        int
	Balance       decimal.Decimal
	TotalCredited decimal.Decimal
	TotalDebited  decimal.Decimal
	ByAction      []ActionTotal
}

// PairProgress describes how far a referrer is from the next pair.
type PairProgress struct {
	NextPair       int
	ReferralsToGo  int
	QualifyingSeen int
}

// NextPair returns the progress towards the next pair for q qualifying referrals.
func NextPair(q int) PairProgress {
	if q < 3 {
		return PairProgress{NextPair: 1, ReferralsToGo: 3 - q, QualifyingSeen: q}
	}
	extra := (q - 3) % 6
	return PairProgress{NextPair: (q-3)/6 + 2, ReferralsToGo: 6 - extra, QualifyingSeen: q}
}

// TotalPairs is the number of pairs unlocked by q qualifying referrals.
func TotalPairs(q int) int {
	if q < 3 {
		return 0
	}
	return 1 + (q-3)/6
}

type ReferralSummary struct {
	UserID        int
	ReferralCode  *string
	ReferralCount int
	PairCount     int
	Progress      PairProgress
	Referrals     []Referral
	Rewards       []Reward
}

// Settlement is the split realized by a bill approval.
type Settlement struct {
	BillID        int
	UserCashback  decimal.Decimal
	ReferrerBonus decimal.Decimal
	FirstBonus    decimal.Decimal
	AdminShare    decimal.Decimal
	VendorProfit  decimal.Decimal
}

// Activation is the outcome of a subscription activation.
type Activation struct {
	UserID         int
	Plan           PlanType
	PaymentID      int
	SubscriptionID int
	ReferralCode   string
	Cashback       decimal.Decimal
	ReferrerID     int
	ReferrerBonus  decimal.Decimal
	PairsUnlocked  []int
}

type VendorPayables struct {
	VendorID     int
	PendingTotal decimal.Decimal
	Records      []VendorProfit
}

type NotificationKind string

const (
	NotifyBillApproved          NotificationKind = "bill_approved"
	NotifyBillRejected          NotificationKind = "bill_rejected"
	NotifySubscriptionActivated NotificationKind = "subscription_activated"
	NotifyPairUnlocked          NotificationKind = "pair_unlocked"
	NotifyWithdrawalApproved    NotificationKind = "withdrawal_approved"
	NotifyWithdrawalRejected    NotificationKind = "withdrawal_rejected"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    int              `json:"user_id"`
	Kind      NotificationKind `json:"kind"`
	Payload   map[string]any   `json:"payload,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// BalanceMismatch is reported when an account balance differs from the replay of its entries.
type BalanceMismatch struct {
	UserID   int
	Balance  decimal.Decimal
	Replayed decimal.Decimal
}
