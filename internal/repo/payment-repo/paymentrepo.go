package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/pg"
	"github.com/GlebRadaev/rewardledger/pkg/money"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const paymentColumns = `id, user_id, plan_code, mode, amount_minor, status, gateway_order_id, gateway_payment_id,
	activation_cashback_state, approved_by, approved_at, created_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	var amount int64
	err := row.Scan(&p.ID, &p.UserID, &p.PlanCode, &p.Mode, &amount, &p.Status, &p.GatewayOrderID, &p.GatewayPaymentID,
		&p.ActivationCashback, &p.ApprovedBy, &p.ApprovedAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Amount = money.FromMinor(amount)
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (user_id, plan_code, mode, amount_minor, status, gateway_order_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + paymentColumns
	created, err := scanPayment(r.db.QueryRow(ctx, query, p.UserID, p.PlanCode, p.Mode, money.ToMinor(p.Amount), p.Status, p.GatewayOrderID))
	if err != nil {
		zap.L().Error("can't save payment", zap.Int("userID", p.UserID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return created, nil
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find payment", zap.Any("key", arg), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return p, nil
}

func (r *Repository) FindForUpdate(ctx context.Context, id int) (*domain.Payment, error) {
	return r.findOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) FindByGatewayOrderForUpdate(ctx context.Context, orderID string) (*domain.Payment, error) {
	return r.findOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE gateway_order_id = $1 FOR UPDATE`, orderID)
}

// MarkSuccess records a confirmed payment. gatewayPaymentID is nil for cash payments and approvedBy is nil for online ones.
func (r *Repository) MarkSuccess(ctx context.Context, id int, gatewayPaymentID *string, approvedBy *int, at time.Time) error {
	query := `
		UPDATE payments
		SET status = $2, gateway_payment_id = $3, approved_by = $4, approved_at = $5
		WHERE id = $1 AND status = $6
	`
	tag, err := r.db.Exec(ctx, query, id, domain.PaymentSuccess, gatewayPaymentID, approvedBy, at, domain.PaymentPending)
	if err != nil {
		zap.L().Error("can't mark payment successful", zap.Int("paymentID", id), zap.Error(err))
		return domain.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentProcessed
	}
	return nil
}
