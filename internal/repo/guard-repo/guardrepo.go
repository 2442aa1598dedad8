package guardrepo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/pg"
)

// Repository flips one-shot claim columns from not_claimed to claimed.
// Every method reports true only to the caller whose update changed the row.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) claim(ctx context.Context, query string, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, query, id, domain.Claimed, domain.NotClaimed)
	if err != nil {
		zap.L().Error("can't claim", zap.Int("id", id), zap.Error(err))
		return false, domain.StoreError(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ClaimUserFirstCashback(ctx context.Context, userID int) (bool, error) {
	return r.claim(ctx, `UPDATE users SET first_cashback_state = $2 WHERE id = $1 AND first_cashback_state = $3`, userID)
}

func (r *Repository) ClaimBillFlag(ctx context.Context, billID int, flag domain.BillFlag) (bool, error) {
	switch flag {
	case domain.FlagVendorProfit, domain.FlagFirstCashback, domain.FlagReferrerBonus:
	default:
		return false, fmt.Errorf("%w: unknown bill flag %q", domain.ErrValidation, flag)
	}
	query := fmt.Sprintf(`UPDATE shopping_bills SET %[1]s = $2 WHERE id = $1 AND %[1]s = $3`, flag)
	return r.claim(ctx, query, billID)
}

func (r *Repository) ClaimPaymentCashback(ctx context.Context, paymentID int) (bool, error) {
	return r.claim(ctx, `UPDATE payments SET activation_cashback_state = $2 WHERE id = $1 AND activation_cashback_state = $3`, paymentID)
}
