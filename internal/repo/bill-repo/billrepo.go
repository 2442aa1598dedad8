package billrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

const billColumns = `id, user_id, shop_id, bill_amount_minor, cashback_amount_minor, status,
	vendor_profit_state, first_cashback_state, referrer_bonus_state, approved_by, approved_at, created_at`

func scanBill(row pgx.Row) (*domain.ShoppingBill, error) {
	var b domain.ShoppingBill
	var amount, cashback int64
	err := row.Scan(&b.ID, &b.UserID, &b.ShopID, &amount, &cashback, &b.Status,
		&b.VendorProfit, &b.FirstCashback, &b.ReferrerBonus, &b.ApprovedBy, &b.ApprovedAt, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	b.BillAmount = money.FromMinor(amount)
	b.CashbackAmount = money.FromMinor(cashback)
	return &b, nil
}

func (r *Repository) Create(ctx context.Context, bill *domain.ShoppingBill) (*domain.ShoppingBill, error) {
	query := `
		INSERT INTO shopping_bills (user_id, shop_id, bill_amount_minor)
		VALUES ($1, $2, $3)
		RETURNING ` + billColumns
	created, err := scanBill(r.db.QueryRow(ctx, query, bill.UserID, bill.ShopID, money.ToMinor(bill.BillAmount)))
	if err != nil {
		zap.L().Error("can't save bill", zap.Int("userID", bill.UserID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return created, nil
}

func (r *Repository) findOne(ctx context.Context, query string, id int) (*domain.ShoppingBill, error) {
	bill, err := scanBill(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find bill", zap.Int("billID", id), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return bill, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.ShoppingBill, error) {
	return r.findOne(ctx, `SELECT `+billColumns+` FROM shopping_bills WHERE id = $1`, id)
}

// FindForUpdate locks the bill row; a concurrent settlement waits here and then sees the new status.
func (r *Repository) FindForUpdate(ctx context.Context, id int) (*domain.ShoppingBill, error) {
	return r.findOne(ctx, `SELECT `+billColumns+` FROM shopping_bills WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.ShoppingBill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch bills", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	var bills []domain.ShoppingBill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			zap.L().Error("failed to scan bill row", zap.Error(err))
			return nil, domain.StoreError(err)
		}
		bills = append(bills, *bill)
	}
	return bills, domain.StoreError(rows.Err())
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]domain.ShoppingBill, error) {
	return r.list(ctx, `SELECT `+billColumns+` FROM shopping_bills WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *Repository) ListByStatus(ctx context.Context, status domain.BillStatus) ([]domain.ShoppingBill, error) {
	return r.list(ctx, `SELECT `+billColumns+` FROM shopping_bills WHERE status = $1 ORDER BY created_at`, status)
}

func (r *Repository) MarkApproved(ctx context.Context, id int, cashback decimal.Decimal, approverID int, at time.Time) error {
	query := `
		UPDATE shopping_bills
		SET status = $2, cashback_amount_minor = $3, approved_by = $4, approved_at = $5
		WHERE id = $1 AND status = $6
	`
	tag, err := r.db.Exec(ctx, query, id, domain.BillApproved, money.ToMinor(cashback), approverID, at, domain.BillPending)
	if err != nil {
		zap.L().Error("can't approve bill", zap.Int("billID", id), zap.Error(err))
		return domain.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBillNotPending
	}
	return nil
}

func (r *Repository) MarkRejected(ctx context.Context, id int, approverID int, at time.Time) error {
	query := `
		UPDATE shopping_bills
		SET status = $2, approved_by = $3, approved_at = $4
		WHERE id = $1 AND status = $5
	`
	tag, err := r.db.Exec(ctx, query, id, domain.BillRejected, approverID, at, domain.BillPending)
	if err != nil {
		zap.L().Error("can't reject bill", zap.Int("billID", id), zap.Error(err))
		return domain.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBillNotPending
	}
	return nil
}
