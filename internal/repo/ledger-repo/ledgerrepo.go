package ledgerrepo

import (
	"context"
	"errors"

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

const accountColumns = "id, user_id, kind, balance_minor, updated_at"

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	var balance int64
	if err := row.Scan(&acc.ID, &acc.UserID, &acc.Kind, &balance, &acc.UpdatedAt); err != nil {
		return nil, err
	}
	acc.Balance = money.FromMinor(balance)
	return &acc, nil
}

// ApplyDelta adds delta to the user's account, creating it when absent.
// The upsert keeps the account row locked until the surrounding transaction ends.
func (r *Repository) ApplyDelta(ctx context.Context, userID int, kind domain.AccountKind, delta decimal.Decimal) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (user_id, kind, balance_minor, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET balance_minor = accounts.balance_minor + EXCLUDED.balance_minor, updated_at = NOW()
		RETURNING ` + accountColumns
	acc, err := scanAccount(r.db.QueryRow(ctx, query, userID, kind, money.ToMinor(delta)))
	if err != nil {
		zap.L().Error("failed to apply balance delta", zap.Int("userID", userID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return acc, nil
}

func (r *Repository) GetAccount(ctx context.Context, userID int) (*domain.Account, error) {
	return r.getAccount(ctx, `SELECT `+accountColumns+` FROM accounts WHERE user_id = $1`, userID)
}

// GetAccountForUpdate locks the account row so a balance check and the following debit see the same value.
func (r *Repository) GetAccountForUpdate(ctx context.Context, userID int) (*domain.Account, error) {
	return r.getAccount(ctx, `SELECT `+accountColumns+` FROM accounts WHERE user_id = $1 FOR UPDATE`, userID)
}

func (r *Repository) getAccount(ctx context.Context, query string, userID int) (*domain.Account, error) {
	acc, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Int("userID", userID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return acc, nil
}

func (r *Repository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY user_id`)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("failed to scan account row", zap.Error(err))
			return nil, domain.StoreError(err)
		}
		accounts = append(accounts, *acc)
	}
	return accounts, domain.StoreError(rows.Err())
}

const entryColumns = `id, user_id, amount_minor, balance_after_minor, direction, action,
	reference_id, reference_kind, status, description, created_at`

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	var amount, after int64
	err := row.Scan(&e.ID, &e.UserID, &amount, &after, &e.Direction, &e.Action,
		&e.ReferenceID, &e.ReferenceKind, &e.Status, &e.Description, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.Amount = money.FromMinor(amount)
	e.BalanceAfter = money.FromMinor(after)
	return &e, nil
}

func (r *Repository) AppendEntry(ctx context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (user_id, amount_minor, balance_after_minor, direction, action,
			reference_id, reference_kind, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, e.UserID, money.ToMinor(e.Amount), money.ToMinor(e.BalanceAfter),
		e.Direction, e.Action, e.ReferenceID, e.ReferenceKind, e.Status, e.Description).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Int("userID", e.UserID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return e, nil
}

func (r *Repository) FindEntry(ctx context.Context, id int) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE id = $1`
	e, err := scanEntry(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find ledger entry", zap.Int("entryID", id), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return e, nil
}

// ListEntries returns the newest entries first. A non-positive limit returns all of them.
func (r *Repository) ListEntries(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE user_id = $1 ORDER BY id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Int("userID", userID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			zap.L().Error("failed to scan ledger entry row", zap.Error(err))
			return nil, domain.StoreError(err)
		}
		entries = append(entries, *e)
	}
	return entries, domain.StoreError(rows.Err())
}

// SetEntryStatus moves an entry from one status to another and reports whether it did.
func (r *Repository) SetEntryStatus(ctx context.Context, id int, from, to domain.EntryStatus) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE ledger_entries SET status = $3 WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		zap.L().Error("failed to update ledger entry status", zap.Int("entryID", id), zap.Error(err))
		return false, domain.StoreError(err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReplayAccount reads the stored balance and the sum of the account's entries in one statement,
// so both come from the same snapshot.
func (r *Repository) ReplayAccount(ctx context.Context, userID int) (balance, replayed decimal.Decimal, err error) {
	query := `
		SELECT a.balance_minor, COALESCE(SUM(e.amount_minor), 0)::BIGINT
		FROM accounts a
		LEFT JOIN ledger_entries e ON e.user_id = a.user_id
		WHERE a.user_id = $1
		GROUP BY a.balance_minor
	`
	var stored, sum int64
	err = r.db.QueryRow(ctx, query, userID).Scan(&stored, &sum)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, decimal.Zero, nil
		}
		zap.L().Error("failed to replay ledger entries", zap.Int("userID", userID), zap.Error(err))
		return decimal.Zero, decimal.Zero, domain.StoreError(err)
	}
	return money.FromMinor(stored), money.FromMinor(sum), nil
}

func (r *Repository) Totals(ctx context.Context, userID int) ([]domain.ActionTotal, error) {
	query := `
		SELECT action, direction, COALESCE(SUM(ABS(amount_minor)), 0)::BIGINT, COUNT(*)::INT
		FROM ledger_entries
		WHERE user_id = $1
		GROUP BY action, direction
		ORDER BY action, direction
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to aggregate ledger entries", zap.Int("userID", userID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	var totals []domain.ActionTotal
	for rows.Next() {
		var t domain.ActionTotal
		var total int64
		if err := rows.Scan(&t.Action, &t.Direction, &total, &t.Count); err != nil {
			zap.L().Error("failed to scan ledger total row", zap.Error(err))
			return nil, domain.StoreError(err)
		}
		t.Total = money.FromMinor(total)
		totals = append(totals, t)
	}
	return totals, domain.StoreError(rows.Err())
}
