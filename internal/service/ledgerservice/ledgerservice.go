package ledgerservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/cache"
	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/metrics"
	"github.com/GlebRadaev/rewardledger/internal/pg"
	"github.com/GlebRadaev/rewardledger/pkg/money"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type Repo interface {
	ApplyDelta(ctx context.Context, userID int, kind domain.AccountKind, delta decimal.Decimal) (*domain.Account, error)
	GetAccount(ctx context.Context, userID int) (*domain.Account, error)
	GetAccountForUpdate(ctx context.Context, userID int) (*domain.Account, error)
	AppendEntry(ctx context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error)
	FindEntry(ctx context.Context, id int) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error)
	SetEntryStatus(ctx context.Context, id int, from, to domain.EntryStatus) (bool, error)
	Totals(ctx context.Context, userID int) ([]domain.ActionTotal, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
	Delete(ctx context.Context, keys ...string)
}

const summaryEntries = 50

type Service struct {
	repo       Repo
	tx         pg.TXManager
	cache      Cache
	metrics    *metrics.Metrics
	platformID int
}

func New(repo Repo, tx pg.TXManager, cache Cache, m *metrics.Metrics, platformID int) *Service {
	return &Service{
		repo:       repo,
		tx:         tx,
		cache:      cache,
		metrics:    m,
		platformID: platformID,
	}
}

func (s *Service) PlatformAccountID() int {
	return s.platformID
}

// Post applies a signed amount to the user's balance and appends a completed entry.
// Negative results are not rejected here; callers enforce their own balance policy.
func (s *Service) Post(ctx context.Context, userID int, amount decimal.Decimal, action domain.Action,
	refID int, refKind domain.ReferenceKind, description string) (*domain.LedgerEntry, error) {
	return s.post(ctx, domain.EntryCompleted, userID, amount, action, refID, refKind, description)
}

// PostPending is Post for movements that are settled later with SettleEntry.
// The balance moves immediately.
func (s *Service) PostPending(ctx context.Context, userID int, amount decimal.Decimal, action domain.Action,
	refID int, refKind domain.ReferenceKind, description string) (*domain.LedgerEntry, error) {
	return s.post(ctx, domain.EntryPending, userID, amount, action, refID, refKind, description)
}

func (s *Service) CreditPlatform(ctx context.Context, amount decimal.Decimal, action domain.Action,
	refID int, refKind domain.ReferenceKind, description string) (*domain.LedgerEntry, error) {
	return s.post(ctx, domain.EntryCompleted, s.platformID, amount, action, refID, refKind, description)
}

func (s *Service) post(ctx context.Context, status domain.EntryStatus, userID int, amount decimal.Decimal,
	action domain.Action, refID int, refKind domain.ReferenceKind, description string) (*domain.LedgerEntry, error) {
	if amount.IsZero() {
		return nil, domain.ErrZeroAmount
	}
	if !money.HasMinorScale(amount) {
		return nil, domain.ErrAmountScale
	}

	kind := domain.AccountUser
	if userID == s.platformID {
		kind = domain.AccountPlatform
	}
	direction := domain.Credit
	if amount.IsNegative() {
		direction = domain.Debit
	}

	var entry *domain.LedgerEntry
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.ApplyDelta(ctx, userID, kind, amount)
		if err != nil {
			return err
		}
		entry, err = s.repo.AppendEntry(ctx, &domain.LedgerEntry{
			UserID:        userID,
			Amount:        amount,
			BalanceAfter:  account.Balance,
			Direction:     direction,
			Action:        action,
			ReferenceID:   refID,
			ReferenceKind: refKind,
			Status:        status,
			Description:   description,
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to post ledger entry",
			zap.Int("userID", userID),
			zap.String("action", string(action)),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return nil, domain.StoreError(err)
	}

	s.metrics.ObservePosting(string(action), amount)
	zap.L().Debug("ledger entry posted",
		zap.Int("entryID", entry.ID),
		zap.Int("userID", userID),
		zap.String("action", string(action)),
		zap.String("amount", amount.String()),
		zap.String("balanceAfter", entry.BalanceAfter.String()),
	)
	return entry, nil
}

// SettleEntry moves a pending entry to completed or failed. The balance is not touched.
func (s *Service) SettleEntry(ctx context.Context, entryID int, to domain.EntryStatus) error {
	entry, err := s.repo.FindEntry(ctx, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrEntryNotFound
	}
	ok, err := s.repo.SetEntryStatus(ctx, entryID, domain.EntryPending, to)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrEntryNotPending
	}
	return nil
}

func (s *Service) Balance(ctx context.Context, userID int) (decimal.Decimal, error) {
	account, err := s.repo.GetAccount(ctx, userID)
	if err != nil || account == nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// LockedBalance reads the balance with the account row locked for the surrounding transaction.
func (s *Service) LockedBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	account, err := s.repo.GetAccountForUpdate(ctx, userID)
	if err != nil || account == nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

func (s *Service) Summary(ctx context.Context, userID int) (*domain.WalletSummary, error) {
	key := cache.WalletKey(userID)
	var cached domain.WalletSummary
	if s.cache != nil && s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	balance, err := s.Balance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to read balance", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	entries, err := s.repo.ListEntries(ctx, userID, summaryEntries)
	if err != nil {
		zap.L().Error("failed to read ledger entries", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	summary := &domain.WalletSummary{
		UserID:       userID,
		Balance:      balance,
		Transactions: entries,
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, summary)
	}
	return summary, nil
}

func (s *Service) Analytics(ctx context.Context, userID int) (*domain.WalletAnalytics, error) {
	balance, err := s.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &domain.WalletAnalytics{
		UserID:        userID,
		Balance:       balance,
		TotalCredited: decimal.Zero,
		TotalDebited:  decimal.Zero,
		ByAction:      totals,
	}
	for _, t := range totals {
		switch t.Direction {
		case domain.Credit:
			out.TotalCredited = out.TotalCredited.Add(t.Total)
		case domain.Debit:
			out.TotalDebited = out.TotalDebited.Add(t.Total)
		}
	}
	return out, nil
}

// Invalidate drops cached wallet summaries. Call it after the unit of work that posted has committed.
func (s *Service) Invalidate(ctx context.Context, userIDs ...int) {
	if s.cache == nil || len(userIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, cache.WalletKey(id))
	}
	s.cache.Delete(ctx, keys...)
}
