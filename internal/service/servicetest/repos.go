package servicetest

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rewardledger/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

type Users struct{ s *Store }

func (r *Users) find(ctx context.Context, match func(domain.User) bool) (*domain.User, error) {
	var out *domain.User
	err := r.s.do(ctx, func(st *state) error {
		if err := r.s.failure("Users.Find"); err != nil {
			return err
		}
		for _, u := range st.users {
			if match(u) {
				out = ptr(u)
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *Users) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return r.find(ctx, func(u domain.User) bool { return u.Login == login })
}

func (r *Users) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return r.find(ctx, func(u domain.User) bool { return u.ID == id })
}

func (r *Users) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	return r.FindByID(ctx, id)
}

func (r *Users) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return r.find(ctx, func(u domain.User) bool { return u.ReferralCode != nil && *u.ReferralCode == code })
}

func (r *Users) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.s.do(ctx, func(st *state) error {
		user.ID = st.nextID()
		user.PlanType = domain.PlanNone
		user.FirstCashback = domain.NotClaimed
		user.CreatedAt = time.Now()
		st.users[user.ID] = *user
		return nil
	})
	return user, err
}

func (r *Users) Activate(ctx context.Context, userID int, plan domain.PlanType, at time.Time) error {
	return r.s.do(ctx, func(st *state) error {
		u, ok := st.users[userID]
		if !ok {
			return domain.ErrUserNotFound
		}
		u.PlanType = plan
		u.IsActive = true
		u.ActivatedAt = ptr(at)
		st.users[userID] = u
		return nil
	})
}

func (r *Users) AssignReferralCode(ctx context.Context, userID int, code string) (bool, error) {
	var assigned bool
	err := r.s.do(ctx, func(st *state) error {
		u, ok := st.users[userID]
		if !ok || u.ReferralCode != nil {
			return nil
		}
		u.ReferralCode = ptr(code)
		st.users[userID] = u
		assigned = true
		return nil
	})
	return assigned, err
}

func (r *Users) IncrementReferralCount(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.s.do(ctx, func(st *state) error {
		u := st.users[userID]
		u.ReferralCount++
		st.users[userID] = u
		count = u.ReferralCount
		return nil
	})
	return count, err
}

func (r *Users) AdvancePairCount(ctx context.Context, userID int, total int) (bool, error) {
	var ok bool
	err := r.s.do(ctx, func(st *state) error {
		u := st.users[userID]
		if u.PairCount < total {
			u.PairCount = total
			st.users[userID] = u
			ok = true
		}
		return nil
	})
	return ok, err
}

func (r *Users) AddReward(ctx context.Context, reward *domain.Reward) error {
	return r.s.do(ctx, func(st *state) error {
		for _, existing := range st.rewards {
			if existing.UserID == reward.UserID && existing.Type == reward.Type && existing.PairTier == reward.PairTier {
				return nil
			}
		}
		reward.ID = st.nextID()
		st.rewards = append(st.rewards, *reward)
		return nil
	})
}

func (r *Users) ListRewards(ctx context.Context, userID int) ([]domain.Reward, error) {
	var out []domain.Reward
	err := r.s.do(ctx, func(st *state) error {
		for _, rw := range st.rewards {
			if rw.UserID == userID {
				out = append(out, rw)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].PairTier < out[j].PairTier })
	return out, err
}

type Ledger struct{ s *Store }

func (r *Ledger) ApplyDelta(ctx context.Context, userID int, kind domain.AccountKind, delta decimal.Decimal) (*domain.Account, error) {
	var out *domain.Account
	err := r.s.do(ctx, func(st *state) error {
		if err := r.s.failure("Ledger.ApplyDelta"); err != nil {
			return err
		}
		acc, ok := st.accounts[userID]
		if !ok {
			acc = domain.Account{ID: st.nextID(), UserID: userID, Kind: kind, Balance: decimal.Zero}
		}
		acc.Balance = acc.Balance.Add(delta)
		acc.UpdatedAt = time.Now()
		st.accounts[userID] = acc
		out = ptr(acc)
		return nil
	})
	return out, err
}

func (r *Ledger) GetAccount(ctx context.Context, userID int) (*domain.Account, error) {
	var out *domain.Account
	err := r.s.do(ctx, func(st *state) error {
		if acc, ok := st.accounts[userID]; ok {
			out = ptr(acc)
		}
		return nil
	})
	return out, err
}

func (r *Ledger) GetAccountForUpdate(ctx context.Context, userID int) (*domain.Account, error) {
	return r.GetAccount(ctx, userID)
}

func (r *Ledger) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var out []domain.Account
	err := r.s.do(ctx, func(st *state) error {
		for _, acc := range st.accounts {
			out = append(out, acc)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, err
}

func (r *Ledger) AppendEntry(ctx context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	err := r.s.do(ctx, func(st *state) error {
		if err := r.s.failure("Ledger.AppendEntry"); err != nil {
			return err
		}
		e.ID = st.nextID()
		e.CreatedAt = time.Now()
		st.entries = append(st.entries, *e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Ledger) FindEntry(ctx context.Context, id int) (*domain.LedgerEntry, error) {
	var out *domain.LedgerEntry
	err := r.s.do(ctx, func(st *state) error {
		for _, e := range st.entries {
			if e.ID == id {
				out = ptr(e)
			}
		}
		return nil
	})
	return out, err
}

func (r *Ledger) ListEntries(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	err := r.s.do(ctx, func(st *state) error {
		for i := len(st.entries) - 1; i >= 0; i-- {
			if st.entries[i].UserID == userID {
				out = append(out, st.entries[i])
				if limit > 0 && len(out) == limit {
					break
				}
			}
		}
		return nil
	})
	return out, err
}

func (r *Ledger) SetEntryStatus(ctx context.Context, id int, from, to domain.EntryStatus) (bool, error) {
	var ok bool
	err := r.s.do(ctx, func(st *state) error {
		for i := range st.entries {
			if st.entries[i].ID == id && st.entries[i].Status == from {
				st.entries[i].Status = to
				ok = true
			}
		}
		return nil
	})
	return ok, err
}

func (r *Ledger) ReplayAccount(ctx context.Context, userID int) (balance, replayed decimal.Decimal, err error) {
	balance, replayed = decimal.Zero, decimal.Zero
	err = r.s.do(ctx, func(st *state) error {
		if acc, ok := st.accounts[userID]; ok {
			balance = acc.Balance
		}
		for _, e := range st.entries {
			if e.UserID == userID {
				replayed = replayed.Add(e.Amount)
			}
		}
		return nil
	})
	return balance, replayed, err
}

func (r *Ledger) Totals(ctx context.Context, userID int) ([]domain.ActionTotal, error) {
	type key struct {
		action    domain.Action
		direction domain.Direction
	}
	totals := map[key]*domain.ActionTotal{}
	err := r.s.do(ctx, func(st *state) error {
		for _, e := range st.entries {
			if e.UserID != userID {
				continue
			}
			k := key{e.Action, e.Direction}
			t, ok := totals[k]
			if !ok {
				t = &domain.ActionTotal{Action: e.Action, Direction: e.Direction, Total: decimal.Zero}
				totals[k] = t
			}
			t.Total = t.Total.Add(e.Amount.Abs())
			t.Count++
		}
		return nil
	})
	out := make([]domain.ActionTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Direction < out[j].Direction
	})
	return out, err
}

type Referrals struct{ s *Store }

func (r *Referrals) Create(ctx context.Context, ref *domain.Referral) (bool, error) {
	var created bool
	err := r.s.do(ctx, func(st *state) error {
		for _, existing := range st.referrals {
			if existing.ReferrerID == ref.ReferrerID && existing.ReferredUserID == ref.ReferredUserID {
				return nil
			}
		}
		ref.ID = st.nextID()
		st.referrals = append(st.referrals, *ref)
		created = true
		return nil
	})
	return created, err
}

func (r *Referrals) FindForUpdate(ctx context.Context, referrerID, referredUserID int) (*domain.Referral, error) {
	var out *domain.Referral
	err := r.s.do(ctx, func(st *state) error {
		for _, ref := range st.referrals {
			if ref.ReferrerID == referrerID && ref.ReferredUserID == referredUserID {
				out = ptr(ref)
			}
		}
		return nil
	})
	return out, err
}

func (r *Referrals) Update(ctx context.Context, ref *domain.Referral) error {
	return r.s.do(ctx, func(st *state) error {
		for i := range st.referrals {
			if st.referrals[i].ID == ref.ID {
				st.referrals[i].ReferredPlan = ref.ReferredPlan
				st.referrals[i].BonusAwarded = ref.BonusAwarded
			}
		}
		return nil
	})
}

func (r *Referrals) CountQualifying(ctx context.Context, referrerID int) (int, error) {
	var q int
	err := r.s.do(ctx, func(st *state) error {
		for _, ref := range st.referrals {
			if ref.ReferrerID == referrerID && st.users[ref.ReferredUserID].PlanType == domain.PlanA {
				q++
			}
		}
		return nil
	})
	return q, err
}

func (r *Referrals) ListByReferrer(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	var out []domain.Referral
	err := r.s.do(ctx, func(st *state) error {
		for _, ref := range st.referrals {
			if ref.ReferrerID == referrerID {
				out = append(out, ref)
			}
		}
		return nil
	})
	return out, err
}

type Bills struct{ s *Store }

func (r *Bills) Create(ctx context.Context, bill *domain.ShoppingBill) (*domain.ShoppingBill, error) {
	err := r.s.do(ctx, func(st *state) error {
		bill.ID = st.nextID()
		bill.Status = domain.BillPending
		bill.CashbackAmount = decimal.Zero
		bill.VendorProfit = domain.NotClaimed
		bill.FirstCashback = domain.NotClaimed
		bill.ReferrerBonus = domain.NotClaimed
		bill.CreatedAt = time.Now()
		st.bills[bill.ID] = *bill
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ptr(*bill), nil
}

func (r *Bills) FindByID(ctx context.Context, id int) (*domain.ShoppingBill, error) {
	var out *domain.ShoppingBill
	err := r.s.do(ctx, func(st *state) error {
		if b, ok := st.bills[id]; ok {
			out = ptr(b)
		}
		return nil
	})
	return out, err
}

func (r *Bills) FindForUpdate(ctx context.Context, id int) (*domain.ShoppingBill, error) {
	return r.FindByID(ctx, id)
}

func (r *Bills) list(ctx context.Context, match func(domain.ShoppingBill) bool) ([]domain.ShoppingBill, error) {
	var out []domain.ShoppingBill
	err := r.s.do(ctx, func(st *state) error {
		for _, b := range st.bills {
			if match(b) {
				out = append(out, b)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (r *Bills) ListByUser(ctx context.Context, userID int) ([]domain.ShoppingBill, error) {
	return r.list(ctx, func(b domain.ShoppingBill) bool { return b.UserID == userID })
}

func (r *Bills) ListByStatus(ctx context.Context, status domain.BillStatus) ([]domain.ShoppingBill, error) {
	return r.list(ctx, func(b domain.ShoppingBill) bool { return b.Status == status })
}

func (r *Bills) MarkApproved(ctx context.Context, id int, cashback decimal.Decimal, approverID int, at time.Time) error {
	return r.s.do(ctx, func(st *state) error {
		if err := r.s.failure("Bills.MarkApproved"); err != nil {
			return err
		}
		b, ok := st.bills[id]
		if !ok || b.Status != domain.BillPending {
			return domain.ErrBillNotPending
		}
		b.Status = domain.BillApproved
		b.CashbackAmount = cashback
		b.ApprovedBy = ptr(approverID)
		b.ApprovedAt = ptr(at)
		st.bills[id] = b
		return nil
	})
}

func (r *Bills) MarkRejected(ctx context.Context, id int, approverID int, at time.Time) error {
	return r.s.do(ctx, func(st *state) error {
		b, ok := st.bills[id]
		if !ok || b.Status != domain.BillPending {
			return domain.ErrBillNotPending
		}
		b.Status = domain.BillRejected
		b.ApprovedBy = ptr(approverID)
		b.ApprovedAt = ptr(at)
		st.bills[id] = b
		return nil
	})
}

type Shops struct{ s *Store }

func (r *Shops) FindByID(ctx context.Context, id int) (*domain.Shop, error) {
	var out *domain.Shop
	err := r.s.do(ctx, func(st *state) error {
		if shop, ok := st.shops[id]; ok {
			out = ptr(shop)
		}
		return nil
	})
	return out, err
}

type Vendors struct{ s *Store }

func (r *Vendors) Create(ctx context.Context, vp *domain.VendorProfit) (*domain.VendorProfit, error) {
	err := r.s.do(ctx, func(st *state) error {
		for _, existing := range st.vendorProfits {
			if existing.BillID == vp.BillID {
				return domain.StoreError(ErrInjected)
			}
		}
		vp.ID = st.nextID()
		vp.CreatedAt = time.Now()
		st.vendorProfits = append(st.vendorProfits, *vp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vp, nil
}

func (r *Vendors) ListByVendor(ctx context.Context, vendorID int, status domain.VendorProfitStatus) ([]domain.VendorProfit, error) {
	var out []domain.VendorProfit
	err := r.s.do(ctx, func(st *state) error {
		for _, vp := range st.vendorProfits {
			if vp.VendorID == vendorID && vp.Status == status {
				out = append(out, vp)
			}
		}
		return nil
	})
	return out, err
}

func (r *Vendors) MarkPaid(ctx context.Context, vendorID int, paidBy int, at time.Time) (int, error) {
	var n int
	err := r.s.do(ctx, func(st *state) error {
		for i := range st.vendorProfits {
			vp := &st.vendorProfits[i]
			if vp.VendorID == vendorID && vp.Status == domain.VendorProfitPending {
				vp.Status = domain.VendorProfitPaid
				vp.PaidAt = ptr(at)
				vp.PaidBy = ptr(paidBy)
				n++
			}
		}
		return nil
	})
	return n, err
}

type Plans struct{ s *Store }

func (r *Plans) FindByCode(ctx context.Context, code domain.PlanType) (*domain.Plan, error) {
	var out *domain.Plan
	err := r.s.do(ctx, func(st *state) error {
		if p, ok := st.plans[code]; ok {
			out = ptr(p)
		}
		return nil
	})
	return out, err
}

func (r *Plans) List(ctx context.Context) ([]domain.Plan, error) {
	var out []domain.Plan
	err := r.s.do(ctx, func(st *state) error {
		for _, p := range st.plans {
			if p.IsActive {
				out = append(out, p)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	return out, err
}

type Payments struct{ s *Store }

func (r *Payments) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	err := r.s.do(ctx, func(st *state) error {
		p.ID = st.nextID()
		p.ActivationCashback = domain.NotClaimed
		p.CreatedAt = time.Now()
		st.payments[p.ID] = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ptr(*p), nil
}

func (r *Payments) FindForUpdate(ctx context.Context, id int) (*domain.Payment, error) {
	var out *domain.Payment
	err := r.s.do(ctx, func(st *state) error {
		if p, ok := st.payments[id]; ok {
			out = ptr(p)
		}
		return nil
	})
	return out, err
}

func (r *Payments) FindByGatewayOrderForUpdate(ctx context.Context, orderID string) (*domain.Payment, error) {
	var out *domain.Payment
	err := r.s.do(ctx, func(st *state) error {
		for _, p := range st.payments {
			if p.GatewayOrderID != nil && *p.GatewayOrderID == orderID {
				out = ptr(p)
			}
		}
		return nil
	})
	return out, err
}

func (r *Payments) MarkSuccess(ctx context.Context, id int, gatewayPaymentID *string, approvedBy *int, at time.Time) error {
	return r.s.do(ctx, func(st *state) error {
		p, ok := st.payments[id]
		if !ok || p.Status != domain.PaymentPending {
			return domain.ErrPaymentProcessed
		}
		p.Status = domain.PaymentSuccess
		p.GatewayPaymentID = gatewayPaymentID
		p.ApprovedBy = approvedBy
		p.ApprovedAt = ptr(at)
		st.payments[id] = p
		return nil
	})
}

type Subscriptions struct{ s *Store }

func (r *Subscriptions) FindActive(ctx context.Context, userID int) (*domain.UserSubscription, error) {
	var out *domain.UserSubscription
	err := r.s.do(ctx, func(st *state) error {
		for _, sub := range st.subscriptions {
			if sub.UserID == userID && sub.Status == domain.SubscriptionActive {
				out = ptr(sub)
			}
		}
		return nil
	})
	return out, err
}

func (r *Subscriptions) FindActiveForUpdate(ctx context.Context, userID int) (*domain.UserSubscription, error) {
	return r.FindActive(ctx, userID)
}

func (r *Subscriptions) Expire(ctx context.Context, id int, at time.Time) error {
	return r.s.do(ctx, func(st *state) error {
		for i := range st.subscriptions {
			if st.subscriptions[i].ID == id {
				st.subscriptions[i].Status = domain.SubscriptionExpired
				st.subscriptions[i].ExpiresAt = ptr(at)
			}
		}
		return nil
	})
}

func (r *Subscriptions) Create(ctx context.Context, sub *domain.UserSubscription) (*domain.UserSubscription, error) {
	err := r.s.do(ctx, func(st *state) error {
		if sub.Status == domain.SubscriptionActive {
			for _, existing := range st.subscriptions {
				if existing.UserID == sub.UserID && existing.Status == domain.SubscriptionActive {
					return domain.StoreError(ErrInjected)
				}
			}
		}
		sub.ID = st.nextID()
		st.subscriptions = append(st.subscriptions, *sub)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

type Withdrawals struct{ s *Store }

func (r *Withdrawals) CreateWithdrawal(ctx context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error) {
	err := r.s.do(ctx, func(st *state) error {
		wd.ID = st.nextID()
		wd.RequestedAt = time.Now()
		st.withdrawals[wd.ID] = *wd
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wd, nil
}

func (r *Withdrawals) AttachEntry(ctx context.Context, id int, entryID int) error {
	return r.s.do(ctx, func(st *state) error {
		wd, ok := st.withdrawals[id]
		if !ok {
			return domain.ErrWithdrawalNotFound
		}
		wd.LedgerEntryID = entryID
		st.withdrawals[id] = wd
		return nil
	})
}

func (r *Withdrawals) FindForUpdate(ctx context.Context, id int) (*domain.Withdrawal, error) {
	var out *domain.Withdrawal
	err := r.s.do(ctx, func(st *state) error {
		if wd, ok := st.withdrawals[id]; ok {
			out = ptr(wd)
		}
		return nil
	})
	return out, err
}

func (r *Withdrawals) GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	var out []domain.Withdrawal
	err := r.s.do(ctx, func(st *state) error {
		for _, wd := range st.withdrawals {
			if wd.UserID == userID {
				out = append(out, wd)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, err
}

func (r *Withdrawals) SetStatus(ctx context.Context, id int, status domain.WithdrawalStatus, at time.Time) error {
	return r.s.do(ctx, func(st *state) error {
		wd, ok := st.withdrawals[id]
		if !ok || wd.Status != domain.WithdrawalPending {
			return domain.ErrWithdrawalProcessed
		}
		wd.Status = status
		wd.ProcessedAt = ptr(at)
		st.withdrawals[id] = wd
		return nil
	})
}

type Audit struct{ s *Store }

func (r *Audit) Create(ctx context.Context, entry *domain.AuditEntry) error {
	return r.s.do(ctx, func(st *state) error {
		entry.ID = st.nextID()
		entry.CreatedAt = time.Now()
		st.audit = append(st.audit, *entry)
		return nil
	})
}

type Guard struct{ s *Store }

func (r *Guard) ClaimUserFirstCashback(ctx context.Context, userID int) (bool, error) {
	var ok bool
	err := r.s.do(ctx, func(st *state) error {
		u, found := st.users[userID]
		if found && u.FirstCashback == domain.NotClaimed {
			u.FirstCashback = domain.Claimed
			st.users[userID] = u
			ok = true
		}
		return nil
	})
	return ok, err
}

func (r *Guard) ClaimBillFlag(ctx context.Context, billID int, flag domain.BillFlag) (bool, error) {
	var ok bool
	err := r.s.do(ctx, func(st *state) error {
		b, found := st.bills[billID]
		if !found {
			return nil
		}
		var field *domain.ClaimState
		switch flag {
		case domain.FlagVendorProfit:
			field = &b.VendorProfit
		case domain.FlagFirstCashback:
			field = &b.FirstCashback
		case domain.FlagReferrerBonus:
			field = &b.ReferrerBonus
		default:
			return domain.ErrValidation
		}
		if *field == domain.NotClaimed {
			*field = domain.Claimed
			st.bills[billID] = b
			ok = true
		}
		return nil
	})
	return ok, err
}

func (r *Guard) ClaimPaymentCashback(ctx context.Context, paymentID int) (bool, error) {
	var ok bool
	err := r.s.do(ctx, func(st *state) error {
		p, found := st.payments[paymentID]
		if found && p.ActivationCashback == domain.NotClaimed {
			p.ActivationCashback = domain.Claimed
			st.payments[paymentID] = p
			ok = true
		}
		return nil
	})
	return ok, err
}
