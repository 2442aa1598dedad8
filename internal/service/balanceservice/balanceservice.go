package balanceservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/pg"
	"github.com/GlebRadaev/rewardledger/pkg/money"
)

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

type Ledger interface {
	Post(ctx context.Context, userID int, amount decimal.Decimal, action domain.Action, refID int, refKind domain.ReferenceKind, description string) (*domain.LedgerEntry, error)
	PostPending(ctx context.Context, userID int, amount decimal.Decimal, action domain.Action, refID int, refKind domain.ReferenceKind, description string) (*domain.LedgerEntry, error)
	SettleEntry(ctx context.Context, entryID int, to domain.EntryStatus) error
	LockedBalance(ctx context.Context, userID int) (decimal.Decimal, error)
	Summary(ctx context.Context, userID int) (*domain.WalletSummary, error)
	Analytics(ctx context.Context, userID int) (*domain.WalletAnalytics, error)
	Invalidate(ctx context.Context, userIDs ...int)
}

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	AttachEntry(ctx context.Context, id int, entryID int) error
	FindForUpdate(ctx context.Context, id int) (*domain.Withdrawal, error)
	GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	SetStatus(ctx context.Context, id int, status domain.WithdrawalStatus, at time.Time) error
}

type AuditRepo interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

var minWithdrawal = decimal.NewFromInt(100)

type Service struct {
	ledger         Ledger
	withdrawalRepo WithdrawalRepo
	audit          AuditRepo
	tx             pg.TXManager
	notifier       Notifier
}

func New(ledger Ledger, withdrawalRepo WithdrawalRepo, audit AuditRepo, tx pg.TXManager, notifier Notifier) *Service {
	return &Service{
		ledger:         ledger,
		withdrawalRepo: withdrawalRepo,
		audit:          audit,
		tx:             tx,
		notifier:       notifier,
	}
}

func (s *Service) GetWalletSummary(ctx context.Context, userID int) (*domain.WalletSummary, error) {
	summary, err := s.ledger.Summary(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet summary", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return summary, nil
}

func (s *Service) GetAnalytics(ctx context.Context, userID int) (*domain.WalletAnalytics, error) {
	analytics, err := s.ledger.Analytics(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet analytics", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return analytics, nil
}

// RequestWithdrawal reserves the amount with a pending debit. The balance is checked under the account lock.
func (s *Service) RequestWithdrawal(ctx context.Context, userID int, amount decimal.Decimal, destination string) (*domain.Withdrawal, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if !money.HasMinorScale(amount) {
		return nil, domain.ErrAmountScale
	}
	if amount.LessThan(minWithdrawal) {
		return nil, domain.ErrMinimumWithdrawal
	}
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, domain.ErrMissingDestination
	}

	var withdrawal *domain.Withdrawal
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.ledger.LockedBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance.LessThan(amount) {
			return domain.ErrInsufficientBalance
		}

		withdrawal, err = s.withdrawalRepo.CreateWithdrawal(ctx, &domain.Withdrawal{
			UserID:      userID,
			Amount:      amount,
			Destination: destination,
			Status:      domain.WithdrawalPending,
		})
		if err != nil {
			return err
		}
		entry, err := s.ledger.PostPending(ctx, userID, amount.Neg(), domain.ActionWithdrawal, withdrawal.ID, domain.RefWithdrawal,
			fmt.Sprintf("Withdrawal to %s", destination))
		if err != nil {
			return err
		}
		withdrawal.LedgerEntryID = entry.ID
		return s.withdrawalRepo.AttachEntry(ctx, withdrawal.ID, entry.ID)
	})
	if err != nil {
		zap.L().Error("withdrawal request failed", zap.Int("userID", userID), zap.String("amount", amount.String()), zap.Error(err))
		return nil, err
	}

	s.ledger.Invalidate(ctx, userID)
	zap.L().Info("withdrawal requested", zap.Int("withdrawalID", withdrawal.ID), zap.Int("userID", userID), zap.String("amount", amount.String()))
	return withdrawal, nil
}

// ApproveWithdrawal completes the reserved debit and marks the withdrawal paid.
func (s *Service) ApproveWithdrawal(ctx context.Context, withdrawalID int, adminID int) (*domain.Withdrawal, error) {
	return s.decide(ctx, withdrawalID, adminID, domain.WithdrawalPaid, "", func(ctx context.Context, wd *domain.Withdrawal) error {
		return s.ledger.SettleEntry(ctx, wd.LedgerEntryID, domain.EntryCompleted)
	})
}

// RejectWithdrawal fails the reserved debit and credits the amount back.
func (s *Service) RejectWithdrawal(ctx context.Context, withdrawalID int, adminID int, reason string) (*domain.Withdrawal, error) {
	return s.decide(ctx, withdrawalID, adminID, domain.WithdrawalRejected, reason, func(ctx context.Context, wd *domain.Withdrawal) error {
		if err := s.ledger.SettleEntry(ctx, wd.LedgerEntryID, domain.EntryFailed); err != nil {
			return err
		}
		_, err := s.ledger.Post(ctx, wd.UserID, wd.Amount, domain.ActionWithdrawalRefund, wd.ID, domain.RefWithdrawal,
			fmt.Sprintf("Refund of withdrawal #%d", wd.ID))
		return err
	})
}

func (s *Service) decide(ctx context.Context, withdrawalID, adminID int, status domain.WithdrawalStatus, reason string,
	settle func(ctx context.Context, wd *domain.Withdrawal) error) (*domain.Withdrawal, error) {
	var wd *domain.Withdrawal
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		var err error
		wd, err = s.withdrawalRepo.FindForUpdate(ctx, withdrawalID)
		if err != nil {
			return err
		}
		if wd == nil {
			return domain.ErrWithdrawalNotFound
		}
		if wd.Status != domain.WithdrawalPending {
			return domain.ErrWithdrawalProcessed
		}
		if err := settle(ctx, wd); err != nil {
			return err
		}
		now := time.Now().UTC()
		if err := s.withdrawalRepo.SetStatus(ctx, wd.ID, status, now); err != nil {
			return err
		}
		wd.Status = status
		wd.ProcessedAt = &now

		details := map[string]any{"withdrawal_id": wd.ID, "user_id": wd.UserID, "amount": wd.Amount.String()}
		if reason != "" {
			details["reason"] = reason
		}
		return s.audit.Create(ctx, &domain.AuditEntry{ActorID: adminID, Action: "withdrawal_" + string(status), Details: details})
	})
	if err != nil {
		zap.L().Error("withdrawal decision failed", zap.Int("withdrawalID", withdrawalID), zap.String("status", string(status)), zap.Error(err))
		return nil, err
	}

	s.ledger.Invalidate(ctx, wd.UserID)
	zap.L().Info("withdrawal processed", zap.Int("withdrawalID", wd.ID), zap.String("status", string(status)), zap.Int("adminID", adminID))
	if s.notifier != nil {
		kind := domain.NotifyWithdrawalApproved
		if status == domain.WithdrawalRejected {
			kind = domain.NotifyWithdrawalRejected
		}
		s.notifier.Notify(ctx, domain.Notification{
			UserID:  wd.UserID,
			Kind:    kind,
			Payload: map[string]any{"withdrawal_id": wd.ID, "amount": wd.Amount.String(), "reason": reason},
		})
	}
	return wd, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
