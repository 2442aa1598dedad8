package subscriptionservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/metrics"
	"github.com/GlebRadaev/rewardledger/internal/pg"
	"github.com/GlebRadaev/rewardledger/internal/service/referralservice"
	"github.com/GlebRadaev/rewardledger/pkg/validate"
)

//go:generate mockgen -source=subscriptionservice.go -destination=mock_subscriptionservice.go -package=subscriptionservice

type PlanRepo interface {
	FindByCode(ctx context.Context, code domain.PlanType) (*domain.Plan, error)
	List(ctx context.Context) ([]domain.Plan, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	FindForUpdate(ctx context.Context, id int) (*domain.Payment, error)
	FindByGatewayOrderForUpdate(ctx context.Context, orderID string) (*domain.Payment, error)
	MarkSuccess(ctx context.Context, id int, gatewayPaymentID *string, approvedBy *int, at time.Time) error
}

type SubscriptionRepo interface {
	FindActive(ctx context.Context, userID int) (*domain.UserSubscription, error)
	FindActiveForUpdate(ctx context.Context, userID int) (*domain.UserSubscription, error)
	Expire(ctx context.Context, id int, at time.Time) error
	Create(ctx context.Context, sub *domain.UserSubscription) (*domain.UserSubscription, error)
}

type UserRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	Activate(ctx context.Context, userID int, plan domain.PlanType, at time.Time) error
	AssignReferralCode(ctx context.Context, userID int, code string) (bool, error)
}

type AuditRepo interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
}

type Guard interface {
	ClaimActivationCashback(ctx context.Context, paymentID int) (bool, error)
}

type Ledger interface {
	Post(ctx context.Context, userID int, amount decimal.Decimal, action domain.Action, refID int, refKind domain.ReferenceKind, description string) (*domain.LedgerEntry, error)
	Invalidate(ctx context.Context, userIDs ...int)
}

type Referrals interface {
	OnReferredUserActivated(ctx context.Context, newUserID int) (*referralservice.Outcome, error)
	Publish(ctx context.Context, out *referralservice.Outcome)
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Gateway statuses accepted as a completed online payment.
var capturedStatuses = map[string]struct{}{
	"captured": {},
	"paid":     {},
	"success":  {},
}

// Approval identifies who settled a payment: the gateway for online payments or an admin for cash ones.
type Approval struct {
	GatewayPaymentID *string
	ApprovedBy       *int
}

type Service struct {
	plans         PlanRepo
	payments      PaymentRepo
	subscriptions SubscriptionRepo
	users         UserRepo
	audit         AuditRepo
	guard         Guard
	ledger        Ledger
	referrals     Referrals
	tx            pg.TXManager
	notifier      Notifier
	metrics       *metrics.Metrics
}

func New(plans PlanRepo, payments PaymentRepo, subscriptions SubscriptionRepo, users UserRepo, audit AuditRepo,
	guard Guard, ledger Ledger, referrals Referrals, tx pg.TXManager, notifier Notifier, m *metrics.Metrics) *Service {
	return &Service{
		plans:         plans,
		payments:      payments,
		subscriptions: subscriptions,
		users:         users,
		audit:         audit,
		guard:         guard,
		ledger:        ledger,
		referrals:     referrals,
		tx:            tx,
		notifier:      notifier,
		metrics:       m,
	}
}

func (s *Service) Plans(ctx context.Context) ([]domain.Plan, error) {
	return s.plans.List(ctx)
}

func (s *Service) ActiveSubscription(ctx context.Context, userID int) (*domain.UserSubscription, error) {
	sub, err := s.subscriptions.FindActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrSubscriptionNotFound
	}
	return sub, nil
}

// checkTransition enforces the plan ranking against the user's current subscription.
func checkTransition(current *domain.UserSubscription, next domain.PlanType) error {
	if current == nil {
		return nil
	}
	if current.PlanCode == next {
		return domain.ErrDuplicatePlan
	}
	if next.Rank() < current.PlanCode.Rank() {
		return domain.ErrDowngradeNotAllowed
	}
	return nil
}

// InitiatePayment opens a pending payment for the plan price. Online payments get a gateway order id.
func (s *Service) InitiatePayment(ctx context.Context, userID int, planCode domain.PlanType, mode domain.PaymentMode) (*domain.Payment, error) {
	if mode != domain.PaymentOnline && mode != domain.PaymentCash {
		return nil, domain.ErrInvalidPaymentMode
	}
	plan, err := s.plans.FindByCode(ctx, planCode)
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, domain.ErrInvalidPlan
	}

	current, err := s.subscriptions.FindActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := checkTransition(current, plan.Code); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		UserID:   userID,
		PlanCode: plan.Code,
		Mode:     mode,
		Amount:   plan.Price,
		Status:   domain.PaymentPending,
	}
	if mode == domain.PaymentOnline {
		orderID := "order_" + strings.ReplaceAll(uuid.NewString(), "-", "")
		payment.GatewayOrderID = &orderID
	}

	payment, err = s.payments.Create(ctx, payment)
	if err != nil {
		zap.L().Error("failed to create payment", zap.Int("userID", userID), zap.String("plan", string(planCode)), zap.Error(err))
		return nil, err
	}
	zap.L().Info("payment initiated",
		zap.Int("paymentID", payment.ID),
		zap.Int("userID", userID),
		zap.String("plan", string(plan.Code)),
		zap.String("mode", string(mode)),
	)
	return payment, nil
}

// ActivateSubscription activates the plan paid for by a pending payment.
func (s *Service) ActivateSubscription(ctx context.Context, paymentID int, approval Approval) (*domain.Activation, error) {
	return s.run(ctx, func(ctx context.Context) (*domain.Payment, error) {
		payment, err := s.payments.FindForUpdate(ctx, paymentID)
		if err != nil {
			return nil, err
		}
		if payment == nil {
			return nil, domain.ErrPaymentNotFound
		}
		return payment, nil
	}, approval, nil)
}

// ConfirmOnlinePayment activates the subscription behind a verified gateway confirmation.
func (s *Service) ConfirmOnlinePayment(ctx context.Context, userID int, conf domain.GatewayConfirmation) (*domain.Activation, error) {
	if conf.OrderID == "" || conf.PaymentID == "" {
		return nil, domain.ErrPaymentMismatch
	}
	if _, ok := capturedStatuses[strings.ToLower(conf.Status)]; !ok {
		return nil, domain.ErrPaymentMismatch
	}
	gatewayPaymentID := conf.PaymentID

	return s.run(ctx, func(ctx context.Context) (*domain.Payment, error) {
		payment, err := s.payments.FindByGatewayOrderForUpdate(ctx, conf.OrderID)
		if err != nil {
			return nil, err
		}
		if payment == nil || payment.UserID != userID {
			return nil, domain.ErrPaymentNotFound
		}
		if payment.Mode != domain.PaymentOnline || !payment.Amount.Equal(conf.Amount) {
			return nil, domain.ErrPaymentMismatch
		}
		return payment, nil
	}, Approval{GatewayPaymentID: &gatewayPaymentID}, nil)
}

// ApproveCashPayment activates the subscription behind a cash payment collected by an admin.
func (s *Service) ApproveCashPayment(ctx context.Context, paymentID int, adminID int) (*domain.Activation, error) {
	return s.run(ctx, func(ctx context.Context) (*domain.Payment, error) {
		payment, err := s.payments.FindForUpdate(ctx, paymentID)
		if err != nil {
			return nil, err
		}
		if payment == nil {
			return nil, domain.ErrPaymentNotFound
		}
		if payment.Mode != domain.PaymentCash {
			return nil, domain.ErrPaymentMismatch
		}
		return payment, nil
	}, Approval{ApprovedBy: &adminID}, func(ctx context.Context, res *domain.Activation) error {
		return s.audit.Create(ctx, &domain.AuditEntry{
			ActorID: adminID,
			Action:  "cash_payment_approved",
			Details: map[string]any{"payment_id": paymentID, "user_id": res.UserID, "plan": string(res.Plan)},
		})
	})
}

type lookupFn func(ctx context.Context) (*domain.Payment, error)

type afterFn func(ctx context.Context, res *domain.Activation) error

// run locks the payment, activates it and, once the unit of work commits, publishes the side effects.
func (s *Service) run(ctx context.Context, lookup lookupFn, approval Approval, after afterFn) (*domain.Activation, error) {
	var (
		res     *domain.Activation
		outcome *referralservice.Outcome
	)
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		payment, err := lookup(ctx)
		if err != nil {
			return err
		}
		if payment.Status != domain.PaymentPending {
			return domain.ErrPaymentProcessed
		}
		res, outcome, err = s.activate(ctx, payment, approval)
		if err != nil {
			return err
		}
		if after != nil {
			return after(ctx, res)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("subscription activation failed", zap.Error(err))
		return nil, err
	}

	s.metrics.ObserveActivation(string(res.Plan))
	s.ledger.Invalidate(ctx, res.UserID)
	s.referrals.Publish(ctx, outcome)
	zap.L().Info("subscription activated",
		zap.Int("userID", res.UserID),
		zap.String("plan", string(res.Plan)),
		zap.Int("paymentID", res.PaymentID),
		zap.String("cashback", res.Cashback.String()),
	)
	if s.notifier != nil {
		s.notifier.Notify(ctx, domain.Notification{
			UserID: res.UserID,
			Kind:   domain.NotifySubscriptionActivated,
			Payload: map[string]any{
				"plan":          string(res.Plan),
				"payment_id":    res.PaymentID,
				"referral_code": res.ReferralCode,
				"cashback":      res.Cashback.String(),
			},
		})
	}
	return res, nil
}

func (s *Service) activate(ctx context.Context, payment *domain.Payment, approval Approval) (*domain.Activation, *referralservice.Outcome, error) {
	plan, err := s.plans.FindByCode(ctx, payment.PlanCode)
	if err != nil {
		return nil, nil, err
	}
	if plan == nil {
		return nil, nil, domain.ErrInvalidPlan
	}
	user, err := s.users.FindByIDForUpdate(ctx, payment.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}

	now := time.Now().UTC()
	current, err := s.subscriptions.FindActiveForUpdate(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	if err := checkTransition(current, plan.Code); err != nil {
		return nil, nil, err
	}
	if current != nil {
		if err := s.subscriptions.Expire(ctx, current.ID, now); err != nil {
			return nil, nil, err
		}
	}

	if err := s.payments.MarkSuccess(ctx, payment.ID, approval.GatewayPaymentID, approval.ApprovedBy, now); err != nil {
		return nil, nil, err
	}
	if err := s.users.Activate(ctx, user.ID, plan.Code, now); err != nil {
		return nil, nil, err
	}

	res := &domain.Activation{
		UserID:        user.ID,
		Plan:          plan.Code,
		PaymentID:     payment.ID,
		Cashback:      decimal.Zero,
		ReferrerBonus: decimal.Zero,
	}
	if user.ReferralCode != nil {
		res.ReferralCode = *user.ReferralCode
	} else {
		code := validate.NewReferralCode()
		if _, err := s.users.AssignReferralCode(ctx, user.ID, code); err != nil {
			return nil, nil, err
		}
		res.ReferralCode = code
	}

	sub, err := s.subscriptions.Create(ctx, &domain.UserSubscription{
		UserID:      user.ID,
		PlanCode:    plan.Code,
		PaymentID:   payment.ID,
		Status:      domain.SubscriptionActive,
		ActivatedAt: &now,
	})
	if err != nil {
		return nil, nil, err
	}
	res.SubscriptionID = sub.ID

	outcome, err := s.referrals.OnReferredUserActivated(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	if outcome != nil {
		res.ReferrerID = outcome.ReferrerID
		res.ReferrerBonus = outcome.DirectBonus
		res.PairsUnlocked = outcome.PairsUnlocked
	}

	if plan.ActivationCashback.IsPositive() {
		ok, err := s.guard.ClaimActivationCashback(ctx, payment.ID)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			desc := fmt.Sprintf("Plan %s activation cashback", plan.Code)
			if _, err := s.ledger.Post(ctx, user.ID, plan.ActivationCashback, domain.ActionActivationCashback, payment.ID, domain.RefPayment, desc); err != nil {
				return nil, nil, err
			}
			res.Cashback = plan.ActivationCashback
		}
	}
	return res, outcome, nil
}
