package settlementservice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/metrics"
	"github.com/GlebRadaev/rewardledger/internal/pg"
	"github.com/GlebRadaev/rewardledger/pkg/money"
)

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

type BillRepo interface {
	Create(ctx context.Context, bill *domain.ShoppingBill) (*domain.ShoppingBill, error)
	FindByID(ctx context.Context, id int) (*domain.ShoppingBill, error)
	FindForUpdate(ctx context.Context, id int) (*domain.ShoppingBill, error)
	ListByUser(ctx context.Context, userID int) ([]domain.ShoppingBill, error)
	ListByStatus(ctx context.Context, status domain.BillStatus) ([]domain.ShoppingBill, error)
	MarkApproved(ctx context.Context, id int, cashback decimal.Decimal, approverID int, at time.Time) error
	MarkRejected(ctx context.Context, id int, approverID int, at time.Time) error
}

type ShopRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Shop, error)
}

type VendorRepo interface {
	Create(ctx context.Context, vp *domain.VendorProfit) (*domain.VendorProfit, error)
	ListByVendor(ctx context.Context, vendorID int, status domain.VendorProfitStatus) ([]domain.VendorProfit, error)
	MarkPaid(ctx context.Context, vendorID int, paidBy int, at time.Time) (int, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
}

type AuditRepo interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
}

type Guard interface {
	ClaimFirstCashback(ctx context.Context, userID int) (bool, error)
	MarkVendorProfitProcessed(ctx context.Context, billID int) (bool, error)
	MarkReferrerBonusProcessed(ctx context.Context, billID int) (bool, error)
	MarkFirstCashbackProcessed(ctx context.Context, billID int) (bool, error)
}

type Ledger interface {
	Post(ctx context.Context, userID int, amount decimal.Decimal, action domain.Action, refID int, refKind domain.ReferenceKind, description string) (*domain.LedgerEntry, error)
	CreditPlatform(ctx context.Context, amount decimal.Decimal, action domain.Action, refID int, refKind domain.ReferenceKind, description string) (*domain.LedgerEntry, error)
	PlatformAccountID() int
	Invalidate(ctx context.Context, userIDs ...int)
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

const (
	profitCapPercent     = 40
	userSharePercent     = 40
	referrerSharePercent = 20
)

var (
	firstBonusA     = decimal.NewFromInt(500)
	firstBonusOther = decimal.NewFromInt(250)
)

type Service struct {
	bills    BillRepo
	shops    ShopRepo
	vendors  VendorRepo
	users    UserRepo
	audit    AuditRepo
	guard    Guard
	ledger   Ledger
	tx       pg.TXManager
	notifier Notifier
	metrics  *metrics.Metrics
}

func New(bills BillRepo, shops ShopRepo, vendors VendorRepo, users UserRepo, audit AuditRepo,
	guard Guard, ledger Ledger, tx pg.TXManager, notifier Notifier, m *metrics.Metrics) *Service {
	return &Service{
		bills:    bills,
		shops:    shops,
		vendors:  vendors,
		users:    users,
		audit:    audit,
		guard:    guard,
		ledger:   ledger,
		tx:       tx,
		notifier: notifier,
		metrics:  m,
	}
}

// FirstBonus is the one-time first shopping bonus for a plan, before clamping to the admin share.
func FirstBonus(plan domain.PlanType) decimal.Decimal {
	if plan == domain.PlanA {
		return firstBonusA
	}
	return firstBonusOther
}

// MaxProfit is the largest profit an admin may assign to a bill.
func MaxProfit(billAmount decimal.Decimal) decimal.Decimal {
	return money.Percent(billAmount, profitCapPercent)
}

func (s *Service) UploadBill(ctx context.Context, userID, shopID int, amount decimal.Decimal) (*domain.ShoppingBill, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if !money.HasMinorScale(amount) {
		return nil, domain.ErrAmountScale
	}
	shop, err := s.shops.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrShopNotFound
	}
	if shop.Status != domain.ShopActive {
		return nil, domain.ErrShopInactive
	}

	bill, err := s.bills.Create(ctx, &domain.ShoppingBill{UserID: userID, ShopID: shopID, BillAmount: amount})
	if err != nil {
		zap.L().Error("failed to upload bill", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("bill uploaded", zap.Int("billID", bill.ID), zap.Int("userID", userID), zap.String("amount", amount.String()))
	return bill, nil
}

// SettleBill approves a pending bill and distributes the profit in one unit of work.
func (s *Service) SettleBill(ctx context.Context, billID int, profit decimal.Decimal, adminID int) (*domain.Settlement, error) {
	if !profit.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if !money.HasMinorScale(profit) {
		return nil, domain.ErrAmountScale
	}

	var (
		result  *domain.Settlement
		bill    *domain.ShoppingBill
		touched []int
	)
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		var err error
		bill, err = s.bills.FindForUpdate(ctx, billID)
		if err != nil {
			return err
		}
		if bill == nil {
			return domain.ErrBillNotFound
		}
		if bill.Status != domain.BillPending {
			return domain.ErrBillNotPending
		}
		if limit := MaxProfit(bill.BillAmount); profit.GreaterThan(limit) {
			return &domain.ProfitCapError{Max: limit}
		}

		user, err := s.users.FindByID(ctx, bill.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		shop, err := s.shops.FindByID(ctx, bill.ShopID)
		if err != nil {
			return err
		}
		if shop == nil {
			return domain.ErrShopNotFound
		}

		result, touched, err = s.distribute(ctx, bill, shop, user, profit)
		if err != nil {
			return err
		}
		if err := s.bills.MarkApproved(ctx, bill.ID, result.UserCashback, adminID, time.Now().UTC()); err != nil {
			return err
		}
		return s.audit.Create(ctx, &domain.AuditEntry{
			ActorID: adminID,
			Action:  "bill_approved",
			Details: map[string]any{"bill_id": bill.ID, "profit": profit.String(), "admin_share": result.AdminShare.String()},
		})
	})
	if err != nil {
		s.metrics.ObserveBill("failed")
		zap.L().Error("bill settlement failed", zap.Int("billID", billID), zap.String("profit", profit.String()), zap.Error(err))
		return nil, err
	}

	s.metrics.ObserveBill("approved")
	s.ledger.Invalidate(ctx, touched...)
	zap.L().Info("bill approved",
		zap.Int("billID", billID),
		zap.Int("adminID", adminID),
		zap.String("userCashback", result.UserCashback.String()),
		zap.String("referrerBonus", result.ReferrerBonus.String()),
		zap.String("firstBonus", result.FirstBonus.String()),
		zap.String("adminShare", result.AdminShare.String()),
	)
	s.notify(ctx, domain.Notification{
		UserID: bill.UserID,
		Kind:   domain.NotifyBillApproved,
		Payload: map[string]any{
			"bill_id":     billID,
			"cashback":    result.UserCashback.String(),
			"first_bonus": result.FirstBonus.String(),
		},
	})
	return result, nil
}

// posting is one ledger movement of a settlement, applied after every guard has been claimed.
type posting struct {
	account int
	amount  decimal.Decimal
	action  domain.Action
	desc    string
}

func (s *Service) distribute(ctx context.Context, bill *domain.ShoppingBill, shop *domain.Shop, user *domain.User,
	profit decimal.Decimal) (*domain.Settlement, []int, error) {
	userShare := money.Percent(profit, userSharePercent)
	referrerShare := money.Percent(profit, referrerSharePercent)
	adminShare := profit.Sub(userShare).Sub(referrerShare)

	res := &domain.Settlement{
		BillID:        bill.ID,
		UserCashback:  userShare,
		ReferrerBonus: decimal.Zero,
		FirstBonus:    decimal.Zero,
		VendorProfit:  profit,
	}
	var postings []posting

	if userShare.IsPositive() {
		desc := fmt.Sprintf("40%% cashback on bill ₹%s", bill.BillAmount.StringFixed(2))
		postings = append(postings, posting{user.ID, userShare, domain.ActionShoppingCashback, desc})
	}

	ok, err := s.guard.MarkVendorProfitProcessed(ctx, bill.ID)
	if err != nil {
		return nil, nil, err
	}
	if ok {
		vp := &domain.VendorProfit{VendorID: shop.OwnerID, BillID: bill.ID, Amount: profit, Status: domain.VendorProfitPending}
		if _, err := s.vendors.Create(ctx, vp); err != nil {
			return nil, nil, err
		}
	}

	ok, err = s.guard.MarkFirstCashbackProcessed(ctx, bill.ID)
	if err != nil {
		return nil, nil, err
	}
	if ok {
		first, err := s.guard.ClaimFirstCashback(ctx, user.ID)
		if err != nil {
			return nil, nil, err
		}
		if first {
			bonus := money.Min(adminShare, FirstBonus(user.PlanType))
			if bonus.IsPositive() {
				postings = append(postings, posting{user.ID, bonus, domain.ActionFirstShoppingCashback, "First shopping cashback reward"})
				res.FirstBonus = bonus
				adminShare = adminShare.Sub(bonus)
			}
		}
	}

	referrer, err := s.eligibleReferrer(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	if referrer != nil && referrerShare.IsPositive() {
		ok, err := s.guard.MarkReferrerBonusProcessed(ctx, bill.ID)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			desc := fmt.Sprintf("20%% referral bonus on bill ₹%s", bill.BillAmount.StringFixed(2))
			postings = append(postings, posting{referrer.ID, referrerShare, domain.ActionReferralBonus, desc})
			res.ReferrerBonus = referrerShare
		}
	}

	res.AdminShare = adminShare
	if adminShare.IsPositive() {
		desc := fmt.Sprintf("Platform share of bill #%d", bill.ID)
		postings = append(postings, posting{s.ledger.PlatformAccountID(), adminShare, domain.ActionPlatformShare, desc})
	}

	touched, err := s.apply(ctx, bill.ID, user.ID, postings)
	if err != nil {
		return nil, nil, err
	}
	return res, touched, nil
}

// apply posts in ascending account order so concurrent settlements lock account rows in the same order.
func (s *Service) apply(ctx context.Context, billID, userID int, postings []posting) ([]int, error) {
	sort.SliceStable(postings, func(i, j int) bool { return postings[i].account < postings[j].account })

	platformID := s.ledger.PlatformAccountID()
	touched := []int{userID}
	for _, p := range postings {
		var err error
		if p.account == platformID {
			_, err = s.ledger.CreditPlatform(ctx, p.amount, p.action, billID, domain.RefShoppingBill, p.desc)
		} else {
			_, err = s.ledger.Post(ctx, p.account, p.amount, p.action, billID, domain.RefShoppingBill, p.desc)
		}
		if err != nil {
			return nil, err
		}
		if p.account != userID && touched[len(touched)-1] != p.account {
			touched = append(touched, p.account)
		}
	}
	return touched, nil
}

func (s *Service) eligibleReferrer(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ReferredBy == nil || *user.ReferredBy == "" {
		return nil, nil
	}
	referrer, err := s.users.FindByReferralCode(ctx, *user.ReferredBy)
	if err != nil {
		return nil, err
	}
	if referrer == nil || referrer.ID == user.ID || referrer.PlanType != domain.PlanA {
		return nil, nil
	}
	return referrer, nil
}

// RejectBill closes a pending bill without moving money.
func (s *Service) RejectBill(ctx context.Context, billID int, adminID int, reason string) error {
	var bill *domain.ShoppingBill
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		var err error
		bill, err = s.bills.FindForUpdate(ctx, billID)
		if err != nil {
			return err
		}
		if bill == nil {
			return domain.ErrBillNotFound
		}
		if bill.Status != domain.BillPending {
			return domain.ErrBillNotPending
		}
		if err := s.bills.MarkRejected(ctx, billID, adminID, time.Now().UTC()); err != nil {
			return err
		}
		return s.audit.Create(ctx, &domain.AuditEntry{
			ActorID: adminID,
			Action:  "bill_rejected",
			Details: map[string]any{"bill_id": billID, "user_id": bill.UserID, "reason": reason},
		})
	})
	if err != nil {
		zap.L().Error("bill rejection failed", zap.Int("billID", billID), zap.Error(err))
		return err
	}

	s.metrics.ObserveBill("rejected")
	zap.L().Info("bill rejected", zap.Int("billID", billID), zap.Int("adminID", adminID))
	s.notify(ctx, domain.Notification{
		UserID:  bill.UserID,
		Kind:    domain.NotifyBillRejected,
		Payload: map[string]any{"bill_id": billID, "reason": reason},
	})
	return nil
}

func (s *Service) MyBills(ctx context.Context, userID int) ([]domain.ShoppingBill, error) {
	return s.bills.ListByUser(ctx, userID)
}

func (s *Service) PendingBills(ctx context.Context) ([]domain.ShoppingBill, error) {
	return s.bills.ListByStatus(ctx, domain.BillPending)
}

func (s *Service) VendorPayables(ctx context.Context, vendorID int) (*domain.VendorPayables, error) {
	records, err := s.vendors.ListByVendor(ctx, vendorID, domain.VendorProfitPending)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return &domain.VendorPayables{VendorID: vendorID, PendingTotal: total, Records: records}, nil
}

// MarkVendorPaid settles every pending profit record of the vendor and returns how many were paid.
func (s *Service) MarkVendorPaid(ctx context.Context, vendorID int, adminID int) (int, error) {
	var paid int
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		var err error
		paid, err = s.vendors.MarkPaid(ctx, vendorID, adminID, time.Now().UTC())
		if err != nil {
			return err
		}
		return s.audit.Create(ctx, &domain.AuditEntry{
			ActorID: adminID,
			Action:  "vendor_paid",
			Details: map[string]any{"vendor_id": vendorID, "records": paid},
		})
	})
	if err != nil {
		zap.L().Error("vendor payout failed", zap.Int("vendorID", vendorID), zap.Error(err))
		return 0, err
	}
	return paid, nil
}

func (s *Service) notify(ctx context.Context, n domain.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}
