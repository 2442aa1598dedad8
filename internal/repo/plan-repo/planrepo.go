package planrepo

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

const planColumns = `code, name, price_minor, activation_cashback_minor, is_active`

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var p domain.Plan
	var price, cashback int64
	if err := row.Scan(&p.Code, &p.Name, &price, &cashback, &p.IsActive); err != nil {
		return nil, err
	}
	p.Price = money.FromMinor(price)
	p.ActivationCashback = money.FromMinor(cashback)
	return &p, nil
}

func (r *Repository) FindByCode(ctx context.Context, code domain.PlanType) (*domain.Plan, error) {
	plan, err := scanPlan(r.db.QueryRow(ctx, `SELECT `+planColumns+` FROM plans WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find plan", zap.String("plan", string(code)), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return plan, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Plan, error) {
	rows, err := r.db.Query(ctx, `SELECT `+planColumns+` FROM plans WHERE is_active ORDER BY price_minor DESC`)
	if err != nil {
		zap.L().Error("failed to fetch plans", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			zap.L().Error("failed to scan plan row", zap.Error(err))
			return nil, domain.StoreError(err)
		}
		plans = append(plans, *p)
	}
	return plans, domain.StoreError(rows.Err())
}
