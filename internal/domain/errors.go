package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error kinds. Every error returned by the services wraps exactly one of them.
var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidState     = errors.New("invalid state")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotFound         = errors.New("reference not found")
)

var (
	ErrProfitCapExceeded    = fmt.Errorf("%w: profit cap exceeded", ErrValidation)
	ErrInvalidPlan          = fmt.Errorf("%w: unknown or inactive plan", ErrValidation)
	ErrInvalidAmount        = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrAmountScale          = fmt.Errorf("%w: amount has more than two decimal places", ErrValidation)
	ErrZeroAmount           = fmt.Errorf("%w: ledger amount must not be zero", ErrValidation)
	ErrMinimumWithdrawal    = fmt.Errorf("%w: minimum withdrawal amount is 100", ErrValidation)
	ErrInsufficientBalance  = fmt.Errorf("%w: insufficient wallet balance", ErrValidation)
	ErrMissingDestination   = fmt.Errorf("%w: payout destination is required", ErrValidation)
	ErrInvalidReferralCode  = fmt.Errorf("%w: malformed referral code", ErrValidation)
	ErrPaymentMismatch      = fmt.Errorf("%w: payment does not match the request", ErrValidation)
	ErrInvalidPaymentMode   = fmt.Errorf("%w: unknown payment mode", ErrValidation)
	ErrBillNotPending       = fmt.Errorf("%w: bill is not pending", ErrInvalidState)
	ErrDuplicatePlan        = fmt.Errorf("%w: plan already active", ErrInvalidState)
	ErrDowngradeNotAllowed  = fmt.Errorf("%w: downgrade not allowed", ErrInvalidState)
	ErrPaymentProcessed     = fmt.Errorf("%w: payment already processed", ErrInvalidState)
	ErrWithdrawalProcessed  = fmt.Errorf("%w: withdrawal already processed", ErrInvalidState)
	ErrShopInactive         = fmt.Errorf("%w: shop is not active", ErrInvalidState)
	ErrEntryNotPending      = fmt.Errorf("%w: ledger entry is not pending", ErrInvalidState)
	ErrLoginTaken           = fmt.Errorf("%w: login already taken", ErrInvalidState)
	ErrUserNotFound         = fmt.Errorf("%w: user", ErrNotFound)
	ErrBillNotFound         = fmt.Errorf("%w: bill", ErrNotFound)
	ErrShopNotFound         = fmt.Errorf("%w: shop", ErrNotFound)
	ErrPaymentNotFound      = fmt.Errorf("%w: payment", ErrNotFound)
	ErrWithdrawalNotFound   = fmt.Errorf("%w: withdrawal", ErrNotFound)
	ErrSubscriptionNotFound = fmt.Errorf("%w: subscription", ErrNotFound)
	ErrEntryNotFound        = fmt.Errorf("%w: ledger entry", ErrNotFound)
)

// ProfitCapError reports the maximum profit allowed for a bill.
type ProfitCapError struct {
	Max decimal.Decimal
}

func (e *ProfitCapError) Error() string {
	return fmt.Sprintf("profit cannot exceed ₹%s (40%% of bill amount)", e.Max.StringFixed(2))
}

func (e *ProfitCapError) Unwrap() error {
	return ErrProfitCapExceeded
}

// StoreError marks a driver failure as retryable. Domain errors pass through.
func StoreError(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{ErrValidation, ErrInvalidState, ErrStoreUnavailable, ErrNotFound} {
		if errors.Is(err, kind) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
