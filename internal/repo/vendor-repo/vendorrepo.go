package vendorrepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, vp *domain.VendorProfit) (*domain.VendorProfit, error) {
	query := `
		INSERT INTO vendor_profits (vendor_id, bill_id, amount_minor, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, vp.VendorID, vp.BillID, money.ToMinor(vp.Amount), vp.Status).Scan(&vp.ID, &vp.CreatedAt)
	if err != nil {
		zap.L().Error("can't save vendor profit", zap.Int("billID", vp.BillID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return vp, nil
}

func (r *Repository) ListByVendor(ctx context.Context, vendorID int, status domain.VendorProfitStatus) ([]domain.VendorProfit, error) {
	query := `
		SELECT id, vendor_id, bill_id, amount_minor, status, paid_at, paid_by, created_at
		FROM vendor_profits
		WHERE vendor_id = $1 AND status = $2
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, vendorID, status)
	if err != nil {
		zap.L().Error("failed to fetch vendor profits", zap.Int("vendorID", vendorID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	var out []domain.VendorProfit
	for rows.Next() {
		var vp domain.VendorProfit
		var amount int64
		if err := rows.Scan(&vp.ID, &vp.VendorID, &vp.BillID, &amount, &vp.Status, &vp.PaidAt, &vp.PaidBy, &vp.CreatedAt); err != nil {
			zap.L().Error("failed to scan vendor profit row", zap.Error(err))
			return nil, domain.StoreError(err)
		}
		vp.Amount = money.FromMinor(amount)
		out = append(out, vp)
	}
	return out, domain.StoreError(rows.Err())
}

// MarkPaid settles every pending profit of the vendor and returns how many rows changed.
func (r *Repository) MarkPaid(ctx context.Context, vendorID int, paidBy int, at time.Time) (int, error) {
	query := `
		UPDATE vendor_profits
		SET status = $2, paid_at = $3, paid_by = $4
		WHERE vendor_id = $1 AND status = $5
	`
	tag, err := r.db.Exec(ctx, query, vendorID, domain.VendorProfitPaid, at, paidBy, domain.VendorProfitPending)
	if err != nil {
		zap.L().Error("can't mark vendor profits paid", zap.Int("vendorID", vendorID), zap.Error(err))
		return 0, domain.StoreError(err)
	}
	return int(tag.RowsAffected()), nil
}
