// Package guardservice runs the one-shot claims that keep settlement side effects from repeating.
// Every claim executes inside the caller's transaction and returns true to exactly one caller.
package guardservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/domain"
)

//go:generate mockgen -source=guardservice.go -destination=mock_guardservice.go -package=guardservice

type Repo interface {
	ClaimUserFirstCashback(ctx context.Context, userID int) (bool, error)
	ClaimBillFlag(ctx context.Context, billID int, flag domain.BillFlag) (bool, error)
	ClaimPaymentCashback(ctx context.Context, paymentID int) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// ClaimFirstCashback consumes the user's lifetime first-shopping bonus.
func (s *Service) ClaimFirstCashback(ctx context.Context, userID int) (bool, error) {
	ok, err := s.repo.ClaimUserFirstCashback(ctx, userID)
	logClaim("first_cashback", userID, ok, err)
	return ok, err
}

func (s *Service) MarkVendorProfitProcessed(ctx context.Context, billID int) (bool, error) {
	return s.claimBill(ctx, billID, domain.FlagVendorProfit)
}

func (s *Service) MarkReferrerBonusProcessed(ctx context.Context, billID int) (bool, error) {
	return s.claimBill(ctx, billID, domain.FlagReferrerBonus)
}

func (s *Service) MarkFirstCashbackProcessed(ctx context.Context, billID int) (bool, error) {
	return s.claimBill(ctx, billID, domain.FlagFirstCashback)
}

func (s *Service) ClaimActivationCashback(ctx context.Context, paymentID int) (bool, error) {
	ok, err := s.repo.ClaimPaymentCashback(ctx, paymentID)
	logClaim("activation_cashback", paymentID, ok, err)
	return ok, err
}

func (s *Service) claimBill(ctx context.Context, billID int, flag domain.BillFlag) (bool, error) {
	ok, err := s.repo.ClaimBillFlag(ctx, billID, flag)
	logClaim(string(flag), billID, ok, err)
	return ok, err
}

func logClaim(name string, id int, ok bool, err error) {
	if err != nil {
		zap.L().Error("claim failed", zap.String("claim", name), zap.Int("id", id), zap.Error(err))
		return
	}
	if !ok {
		zap.L().Debug("already claimed", zap.String("claim", name), zap.Int("id", id))
	}
}
