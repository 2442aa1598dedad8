package subscriptionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const subscriptionColumns = `id, user_id, plan_code, payment_id, status, activated_at, expires_at`

func (r *Repository) findActive(ctx context.Context, query string, userID int) (*domain.UserSubscription, error) {
	var s domain.UserSubscription
	err := r.db.QueryRow(ctx, query, userID, domain.SubscriptionActive).
		Scan(&s.ID, &s.UserID, &s.PlanCode, &s.PaymentID, &s.Status, &s.ActivatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find subscription", zap.Int("userID", userID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return &s, nil
}

func (r *Repository) FindActive(ctx context.Context, userID int) (*domain.UserSubscription, error) {
	return r.findActive(ctx, `SELECT `+subscriptionColumns+` FROM user_subscriptions WHERE user_id = $1 AND status = $2`, userID)
}

func (r *Repository) FindActiveForUpdate(ctx context.Context, userID int) (*domain.UserSubscription, error) {
	return r.findActive(ctx, `SELECT `+subscriptionColumns+` FROM user_subscriptions WHERE user_id = $1 AND status = $2 FOR UPDATE`, userID)
}

func (r *Repository) Expire(ctx context.Context, id int, at time.Time) error {
	query := `UPDATE user_subscriptions SET status = $2, expires_at = $3 WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id, domain.SubscriptionExpired, at); err != nil {
		zap.L().Error("can't expire subscription", zap.Int("subscriptionID", id), zap.Error(err))
		return domain.StoreError(err)
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, s *domain.UserSubscription) (*domain.UserSubscription, error) {
	query := `
		INSERT INTO user_subscriptions (user_id, plan_code, payment_id, status, activated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, s.UserID, s.PlanCode, s.PaymentID, s.Status, s.ActivatedAt).Scan(&s.ID)
	if err != nil {
		zap.L().Error("can't save subscription", zap.Int("userID", s.UserID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return s, nil
}
