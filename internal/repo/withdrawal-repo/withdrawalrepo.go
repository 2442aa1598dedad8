package withdrawalrepo

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

const withdrawalColumns = `id, user_id, amount_minor, destination, status, COALESCE(ledger_entry_id, 0), requested_at, processed_at`

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	var amount int64
	if err := row.Scan(&wd.ID, &wd.UserID, &amount, &wd.Destination, &wd.Status, &wd.LedgerEntryID, &wd.RequestedAt, &wd.ProcessedAt); err != nil {
		return nil, err
	}
	wd.Amount = money.FromMinor(amount)
	return &wd, nil
}

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (user_id, amount_minor, destination, status, ledger_entry_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, 0))
		RETURNING id, requested_at
	`
	err := r.db.QueryRow(ctx, query, withdrawal.UserID, money.ToMinor(withdrawal.Amount), withdrawal.Destination,
		withdrawal.Status, withdrawal.LedgerEntryID).Scan(&withdrawal.ID, &withdrawal.RequestedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return withdrawal, nil
}

// AttachEntry links the withdrawal to the ledger entry that reserved its amount.
func (r *Repository) AttachEntry(ctx context.Context, id int, entryID int) error {
	if _, err := r.db.Exec(ctx, `UPDATE withdrawals SET ledger_entry_id = $2 WHERE id = $1`, id, entryID); err != nil {
		zap.L().Error("can't attach ledger entry to withdrawal", zap.Int("withdrawalID", id), zap.Error(err))
		return domain.StoreError(err)
	}
	return nil
}

func (r *Repository) FindForUpdate(ctx context.Context, id int) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`
	wd, err := scanWithdrawal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Int("withdrawalID", id), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return wd, nil
}

func (r *Repository) GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY requested_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		wd, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, domain.StoreError(err)
		}
		withdrawals = append(withdrawals, *wd)
	}

	return withdrawals, domain.StoreError(rows.Err())
}

// SetStatus moves a pending withdrawal to its final status.
func (r *Repository) SetStatus(ctx context.Context, id int, status domain.WithdrawalStatus, at time.Time) error {
	query := `
		UPDATE withdrawals
		SET status = $2, processed_at = $3
		WHERE id = $1 AND status = $4
	`
	tag, err := r.db.Exec(ctx, query, id, status, at, domain.WithdrawalPending)
	if err != nil {
		zap.L().Error("can't update withdrawal", zap.Int("withdrawalID", id), zap.Error(err))
		return domain.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWithdrawalProcessed
	}
	return nil
}
