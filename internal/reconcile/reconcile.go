// Package reconcile periodically replays every account's ledger entries and reports balances
// that drifted from their history.
package reconcile

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/metrics"
	"github.com/GlebRadaev/rewardledger/internal/workerpool"
)

//go:generate mockgen -source=reconcile.go -destination=mock_reconcile.go -package=reconcile

type Repo interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// ReplayAccount returns the stored balance and the sum of entries read from one snapshot.
	ReplayAccount(ctx context.Context, userID int) (balance, replayed decimal.Decimal, err error)
}

type Service struct {
	repo     Repo
	pool     workerpool.WorkerPoolI
	metrics  *metrics.Metrics
	interval time.Duration
}

func New(repo Repo, pool workerpool.WorkerPoolI, m *metrics.Metrics, interval time.Duration) *Service {
	return &Service{
		repo:     repo,
		pool:     pool,
		metrics:  m,
		interval: interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("balance reconciliation started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping reconciliation")
			return
		case <-ticker.C:
			if _, err := s.Check(ctx); err != nil {
				zap.L().Error("reconciliation pass failed", zap.Error(err))
			}
		}
	}
}

// Check compares every account balance with the sum of its entries and returns the accounts that differ.
func (s *Service) Check(ctx context.Context) ([]domain.BalanceMismatch, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	var (
		mu         sync.Mutex
		mismatches []domain.BalanceMismatch
		firstErr   error
		done       sync.WaitGroup
		g          errgroup.Group
	)
	for _, acc := range accounts {
		acc := acc
		done.Add(1)
		g.Go(func() error {
			err := s.pool.AddTask(ctx, func() error {
				defer done.Done()
				balance, replayed, err := s.repo.ReplayAccount(ctx, acc.UserID)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					if firstErr == nil {
						firstErr = fmt.Errorf("replay entries of user %d: %w", acc.UserID, err)
					}
					return err
				}
				if !replayed.Equal(balance) {
					mismatches = append(mismatches, domain.BalanceMismatch{
						UserID:   acc.UserID,
						Balance:  balance,
						Replayed: replayed,
					})
				}
				return nil
			})
			if err != nil {
				done.Done()
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		done.Wait()
		return nil, err
	}
	done.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].UserID < mismatches[j].UserID })
	for _, m := range mismatches {
		zap.L().Error("balance does not match ledger",
			zap.Int("userID", m.UserID),
			zap.String("balance", m.Balance.String()),
			zap.String("replayed", m.Replayed.String()),
		)
	}
	s.metrics.ObserveReconcile(len(mismatches))
	zap.L().Info("reconciliation pass finished", zap.Int("accounts", len(accounts)), zap.Int("mismatches", len(mismatches)))
	return mismatches, nil
}
