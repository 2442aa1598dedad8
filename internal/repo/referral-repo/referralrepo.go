package referralrepo

import (
	"context"
	"errors"

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

const referralColumns = "id, referrer_id, referred_user_id, referred_plan, bonus_awarded_minor, activated_at"

func scanReferral(row pgx.Row) (*domain.Referral, error) {
	var ref domain.Referral
	var bonus int64
	if err := row.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredUserID, &ref.ReferredPlan, &bonus, &ref.ActivatedAt); err != nil {
		return nil, err
	}
	ref.BonusAwarded = money.FromMinor(bonus)
	return &ref, nil
}

// Create inserts the edge and reports false when the (referrer, referred) pair already exists.
func (r *Repository) Create(ctx context.Context, ref *domain.Referral) (bool, error) {
	query := `
		INSERT INTO referrals (referrer_id, referred_user_id, referred_plan, bonus_awarded_minor, activated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (referrer_id, referred_user_id) DO NOTHING
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, ref.ReferrerID, ref.ReferredUserID, ref.ReferredPlan,
		money.ToMinor(ref.BonusAwarded), ref.ActivatedAt).Scan(&ref.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't save referral", zap.Int("referrerID", ref.ReferrerID), zap.Error(err))
		return false, domain.StoreError(err)
	}
	return true, nil
}

func (r *Repository) FindForUpdate(ctx context.Context, referrerID, referredUserID int) (*domain.Referral, error) {
	query := `SELECT ` + referralColumns + ` FROM referrals WHERE referrer_id = $1 AND referred_user_id = $2 FOR UPDATE`
	ref, err := scanReferral(r.db.QueryRow(ctx, query, referrerID, referredUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find referral", zap.Int("referrerID", referrerID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return ref, nil
}

// Update records the referred user's current plan and the direct bonus paid on the edge so far.
func (r *Repository) Update(ctx context.Context, ref *domain.Referral) error {
	query := `UPDATE referrals SET referred_plan = $2, bonus_awarded_minor = $3 WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, ref.ID, ref.ReferredPlan, money.ToMinor(ref.BonusAwarded)); err != nil {
		zap.L().Error("can't update referral", zap.Int("referralID", ref.ID), zap.Error(err))
		return domain.StoreError(err)
	}
	return nil
}

// CountQualifying counts edges whose referred user is currently on plan A.
func (r *Repository) CountQualifying(ctx context.Context, referrerID int) (int, error) {
	query := `
		SELECT COUNT(*)::INT
		FROM referrals r
		JOIN users u ON u.id = r.referred_user_id
		WHERE r.referrer_id = $1 AND u.plan_type = $2
	`
	var q int
	if err := r.db.QueryRow(ctx, query, referrerID, domain.PlanA).Scan(&q); err != nil {
		zap.L().Error("can't count qualifying referrals", zap.Int("referrerID", referrerID), zap.Error(err))
		return 0, domain.StoreError(err)
	}
	return q, nil
}

func (r *Repository) ListByReferrer(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	query := `SELECT ` + referralColumns + ` FROM referrals WHERE referrer_id = $1 ORDER BY activated_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("failed to fetch referrals", zap.Int("referrerID", referrerID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	var refs []domain.Referral
	for rows.Next() {
		ref, err := scanReferral(rows)
		if err != nil {
			zap.L().Error("failed to scan referral row", zap.Error(err))
			return nil, domain.StoreError(err)
		}
		refs = append(refs, *ref)
	}
	return refs, domain.StoreError(rows.Err())
}
