package referralservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/cache"
	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/metrics"
	"github.com/GlebRadaev/rewardledger/internal/pg"
)

//go:generate mockgen -source=referralservice.go -destination=mock_referralservice.go -package=referralservice

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	IncrementReferralCount(ctx context.Context, userID int) (int, error)
	AdvancePairCount(ctx context.Context, userID int, total int) (bool, error)
	AddReward(ctx context.Context, reward *domain.Reward) error
	ListRewards(ctx context.Context, userID int) ([]domain.Reward, error)
}

type ReferralRepo interface {
	Create(ctx context.Context, ref *domain.Referral) (bool, error)
	FindForUpdate(ctx context.Context, referrerID, referredUserID int) (*domain.Referral, error)
	Update(ctx context.Context, ref *domain.Referral) error
	CountQualifying(ctx context.Context, referrerID int) (int, error)
	ListByReferrer(ctx context.Context, referrerID int) ([]domain.Referral, error)
}

type Ledger interface {
	Post(ctx context.Context, userID int, amount decimal.Decimal, action domain.Action, refID int, refKind domain.ReferenceKind, description string) (*domain.LedgerEntry, error)
	Invalidate(ctx context.Context, userIDs ...int)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
	Delete(ctx context.Context, keys ...string)
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

const (
	RewardPairBonus    = "pair_bonus"
	RewardDomesticTrip = "domestic_trip"

	tripPair = 20
)

var (
	directBonusA = decimal.NewFromInt(500)
	directBonusB = decimal.NewFromInt(200)
	tierStep     = decimal.NewFromInt(1000)
	tripBonus    = decimal.NewFromInt(20000)
)

// Outcome reports what one activation changed for the referrer.
type Outcome struct {
	ReferrerID    int
	DirectBonus   decimal.Decimal
	PairsUnlocked []int
}

type Service struct {
	users     UserRepo
	referrals ReferralRepo
	ledger    Ledger
	tx        pg.TXManager
	cache     Cache
	notifier  Notifier
	metrics   *metrics.Metrics
}

func New(users UserRepo, referrals ReferralRepo, ledger Ledger, tx pg.TXManager, cache Cache, notifier Notifier, m *metrics.Metrics) *Service {
	return &Service{
		users:     users,
		referrals: referrals,
		ledger:    ledger,
		tx:        tx,
		cache:     cache,
		notifier:  notifier,
		metrics:   m,
	}
}

// DirectBonus is the referral bonus owed for a referred user on plan.
func DirectBonus(plan domain.PlanType) decimal.Decimal {
	switch plan {
	case domain.PlanA:
		return directBonusA
	case domain.PlanB:
		return directBonusB
	default:
		return decimal.Zero
	}
}

// PairReward returns the bonus for pair tier p and the extra reward type it carries, if any.
func PairReward(p int) (decimal.Decimal, string) {
	switch {
	case p >= 1 && p <= 6:
		return tierStep.Mul(decimal.NewFromInt(int64(p))), ""
	case p == tripPair:
		return tripBonus, RewardDomesticTrip
	default:
		return tierStep, ""
	}
}

// OnReferredUserActivated credits the referrer of a freshly activated user and unlocks any pairs
// the activation completes. It joins the caller's transaction; call Publish after it commits.
func (s *Service) OnReferredUserActivated(ctx context.Context, newUserID int) (*Outcome, error) {
	out := &Outcome{DirectBonus: decimal.Zero}
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		user, err := s.users.FindByID(ctx, newUserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if user.ReferredBy == nil || *user.ReferredBy == "" {
			return nil
		}

		found, err := s.users.FindByReferralCode(ctx, *user.ReferredBy)
		if err != nil {
			return err
		}
		if found == nil || found.ID == user.ID {
			zap.L().Info("referral code does not resolve", zap.Int("userID", user.ID))
			return nil
		}

		referrer, err := s.users.FindByIDForUpdate(ctx, found.ID)
		if err != nil {
			return err
		}
		if referrer == nil || referrer.PlanType != domain.PlanA {
			return nil
		}
		out.ReferrerID = referrer.ID

		if out.DirectBonus, err = s.creditEdge(ctx, referrer, user); err != nil {
			return err
		}
		out.PairsUnlocked, err = s.settlePairs(ctx, referrer)
		return err
	})
	if err != nil {
		zap.L().Error("referral activation failed", zap.Int("userID", newUserID), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// creditEdge records the referral edge and tops the direct bonus up to what the user's plan is worth.
func (s *Service) creditEdge(ctx context.Context, referrer, user *domain.User) (decimal.Decimal, error) {
	target := DirectBonus(user.PlanType)

	edge, err := s.referrals.FindForUpdate(ctx, referrer.ID, user.ID)
	if err != nil {
		return decimal.Zero, err
	}

	if edge == nil {
		edge = &domain.Referral{
			ReferrerID:     referrer.ID,
			ReferredUserID: user.ID,
			ReferredPlan:   user.PlanType,
			BonusAwarded:   target,
			ActivatedAt:    time.Now().UTC(),
		}
		created, err := s.referrals.Create(ctx, edge)
		if err != nil {
			return decimal.Zero, err
		}
		if !created {
			return decimal.Zero, fmt.Errorf("%w: referral edge appeared concurrently", domain.ErrInvalidState)
		}
		if _, err := s.users.IncrementReferralCount(ctx, referrer.ID); err != nil {
			return decimal.Zero, err
		}
		return target, s.postDirect(ctx, referrer.ID, edge.ID, target, user)
	}

	owed := target.Sub(edge.BonusAwarded)
	if !owed.IsPositive() && edge.ReferredPlan == user.PlanType {
		return decimal.Zero, nil
	}
	edge.ReferredPlan = user.PlanType
	if owed.IsPositive() {
		edge.BonusAwarded = target
	} else {
		owed = decimal.Zero
	}
	if err := s.referrals.Update(ctx, edge); err != nil {
		return decimal.Zero, err
	}
	return owed, s.postDirect(ctx, referrer.ID, edge.ID, owed, user)
}

func (s *Service) postDirect(ctx context.Context, referrerID, edgeID int, amount decimal.Decimal, user *domain.User) error {
	if !amount.IsPositive() {
		return nil
	}
	desc := fmt.Sprintf("Referral bonus for user #%d on plan %s", user.ID, user.PlanType)
	_, err := s.ledger.Post(ctx, referrerID, amount, domain.ActionReferralBonus, edgeID, domain.RefReferral, desc)
	return err
}

// settlePairs posts every pair tier crossed since the stored pair count. The referrer row must be locked.
func (s *Service) settlePairs(ctx context.Context, referrer *domain.User) ([]int, error) {
	q, err := s.referrals.CountQualifying(ctx, referrer.ID)
	if err != nil {
		return nil, err
	}
	total := domain.TotalPairs(q)
	if total <= referrer.PairCount {
		return nil, nil
	}

	now := time.Now().UTC()
	var unlocked []int
	for p := referrer.PairCount + 1; p <= total; p++ {
		amount, extra := PairReward(p)
		desc := fmt.Sprintf("Pair %d unlocked", p)
		if _, err := s.ledger.Post(ctx, referrer.ID, amount, domain.ActionPairBonus, p, domain.RefPairTier, desc); err != nil {
			return nil, err
		}
		if err := s.users.AddReward(ctx, &domain.Reward{UserID: referrer.ID, Type: RewardPairBonus, PairTier: p, AwardedAt: now}); err != nil {
			return nil, err
		}
		if extra != "" {
			if err := s.users.AddReward(ctx, &domain.Reward{UserID: referrer.ID, Type: extra, PairTier: p, AwardedAt: now}); err != nil {
				return nil, err
			}
		}
		unlocked = append(unlocked, p)
	}

	ok, err := s.users.AdvancePairCount(ctx, referrer.ID, total)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: pair count moved concurrently", domain.ErrInvalidState)
	}

	zap.L().Info("pairs unlocked",
		zap.Int("referrerID", referrer.ID),
		zap.Int("qualifying", q),
		zap.Int("pairCount", total),
	)
	return unlocked, nil
}

// RecomputePairs re-derives the referrer's pairs from the stored edges and pays whatever is missing.
func (s *Service) RecomputePairs(ctx context.Context, referrerID int) (*Outcome, error) {
	out := &Outcome{ReferrerID: referrerID, DirectBonus: decimal.Zero}
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		referrer, err := s.users.FindByIDForUpdate(ctx, referrerID)
		if err != nil {
			return err
		}
		if referrer == nil {
			return domain.ErrUserNotFound
		}
		if referrer.PlanType != domain.PlanA {
			return nil
		}
		out.PairsUnlocked, err = s.settlePairs(ctx, referrer)
		return err
	})
	if err != nil {
		zap.L().Error("pair recompute failed", zap.Int("referrerID", referrerID), zap.Error(err))
		return nil, err
	}
	s.Publish(ctx, out)
	return out, nil
}

// Publish drops stale summaries and notifies the referrer about unlocked pairs.
func (s *Service) Publish(ctx context.Context, out *Outcome) {
	if out == nil || out.ReferrerID == 0 {
		return
	}
	s.ledger.Invalidate(ctx, out.ReferrerID)
	if s.cache != nil {
		s.cache.Delete(ctx, cache.ReferralKey(out.ReferrerID))
	}
	if len(out.PairsUnlocked) == 0 {
		return
	}
	s.metrics.ObservePairsUnlocked(len(out.PairsUnlocked))
	if s.notifier == nil {
		return
	}
	for _, p := range out.PairsUnlocked {
		amount, extra := PairReward(p)
		payload := map[string]any{"pair": p, "amount": amount.String()}
		if extra != "" {
			payload["reward"] = extra
		}
		s.notifier.Notify(ctx, domain.Notification{UserID: out.ReferrerID, Kind: domain.NotifyPairUnlocked, Payload: payload})
	}
}

func (s *Service) Summary(ctx context.Context, userID int) (*domain.ReferralSummary, error) {
	key := cache.ReferralKey(userID)
	var cached domain.ReferralSummary
	if s.cache != nil && s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	referrals, err := s.referrals.ListByReferrer(ctx, userID)
	if err != nil {
		return nil, err
	}
	rewards, err := s.users.ListRewards(ctx, userID)
	if err != nil {
		return nil, err
	}
	q, err := s.referrals.CountQualifying(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &domain.ReferralSummary{
		UserID:        user.ID,
		ReferralCode:  user.ReferralCode,
		ReferralCount: user.ReferralCount,
		PairCount:     user.PairCount,
		Progress:      domain.NextPair(q),
		Referrals:     referrals,
		Rewards:       rewards,
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, summary)
	}
	return summary, nil
}
