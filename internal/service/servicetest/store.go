// Package servicetest provides an in-memory implementation of every repository the services consume.
// Transactions are serialized by a single mutex and rolled back by restoring a snapshot,
// which makes it suitable for scenario and concurrency tests without Postgres.
package servicetest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/pg"
)

type txMarker struct{}

type state struct {
	seq           int
	users         map[int]domain.User
	rewards       []domain.Reward
	accounts      map[int]domain.Account
	entries       []domain.LedgerEntry
	referrals     []domain.Referral
	shops         map[int]domain.Shop
	bills         map[int]domain.ShoppingBill
	vendorProfits []domain.VendorProfit
	plans         map[domain.PlanType]domain.Plan
	payments      map[int]domain.Payment
	subscriptions []domain.UserSubscription
	withdrawals   map[int]domain.Withdrawal
	audit         []domain.AuditEntry
}

func newState() *state {
	return &state{
		users:       map[int]domain.User{},
		accounts:    map[int]domain.Account{},
		shops:       map[int]domain.Shop{},
		bills:       map[int]domain.ShoppingBill{},
		plans:       map[domain.PlanType]domain.Plan{},
		payments:    map[int]domain.Payment{},
		withdrawals: map[int]domain.Withdrawal{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *state) clone() *state {
	return &state{
		seq:           s.seq,
		users:         cloneMap(s.users),
		rewards:       append([]domain.Reward(nil), s.rewards...),
		accounts:      cloneMap(s.accounts),
		entries:       append([]domain.LedgerEntry(nil), s.entries...),
		referrals:     append([]domain.Referral(nil), s.referrals...),
		shops:         cloneMap(s.shops),
		bills:         cloneMap(s.bills),
		vendorProfits: append([]domain.VendorProfit(nil), s.vendorProfits...),
		plans:         cloneMap(s.plans),
		payments:      cloneMap(s.payments),
		subscriptions: append([]domain.UserSubscription(nil), s.subscriptions...),
		withdrawals:   cloneMap(s.withdrawals),
		audit:         append([]domain.AuditEntry(nil), s.audit...),
	}
}

func (s *state) nextID() int {
	s.seq++
	return s.seq
}

// Store owns the shared state. Use the typed views (Users, Ledger, ...) as repositories.
type Store struct {
	mu       sync.Mutex
	st       *state
	failures map[string]error

	Users         *Users
	Ledger        *Ledger
	Referrals     *Referrals
	Bills         *Bills
	Shops         *Shops
	Vendors       *Vendors
	Plans         *Plans
	Payments      *Payments
	Subscriptions *Subscriptions
	Withdrawals   *Withdrawals
	Audit         *Audit
	Guard         *Guard
}

func New() *Store {
	s := &Store{st: newState(), failures: map[string]error{}}
	s.Users = &Users{s}
	s.Ledger = &Ledger{s}
	s.Referrals = &Referrals{s}
	s.Bills = &Bills{s}
	s.Shops = &Shops{s}
	s.Vendors = &Vendors{s}
	s.Plans = &Plans{s}
	s.Payments = &Payments{s}
	s.Subscriptions = &Subscriptions{s}
	s.Withdrawals = &Withdrawals{s}
	s.Audit = &Audit{s}
	s.Guard = &Guard{s}
	return s
}

// TXManager returns a transaction manager over the store.
func (s *Store) TXManager() pg.TXManager {
	return &txManager{s}
}

type txManager struct {
	s *Store
}

func (m *txManager) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(txMarker{}) == m.s {
		return fn(ctx)
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	snapshot := m.s.st.clone()
	if err := fn(context.WithValue(ctx, txMarker{}, m.s)); err != nil {
		m.s.st = snapshot
		return err
	}
	return nil
}

// Fail makes the named repository method return err until Recover is called.
func (s *Store) Fail(method string, err error) {
	s.do(context.Background(), func(*state) error {
		s.failures[method] = err
		return nil
	})
}

func (s *Store) Recover() {
	s.do(context.Background(), func(*state) error {
		s.failures = map[string]error{}
		return nil
	})
}

// do runs fn with exclusive access to the state. Inside a transaction the lock is already held.
func (s *Store) do(ctx context.Context, fn func(st *state) error) error {
	if ctx.Value(txMarker{}) != s {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.st)
}

func (s *Store) failure(method string) error {
	if err := s.failures[method]; err != nil {
		return domain.StoreError(err)
	}
	return nil
}

// ErrInjected is a convenient error for Fail.
var ErrInjected = errors.New("injected store failure")

// Seeding and inspection helpers.

func (s *Store) AddUser(u domain.User) domain.User {
	_ = s.do(context.Background(), func(st *state) error {
		if u.ID == 0 {
			u.ID = st.nextID()
		} else if u.ID > st.seq {
			st.seq = u.ID
		}
		if u.Role == "" {
			u.Role = domain.RoleUser
		}
		if u.PlanType == "" {
			u.PlanType = domain.PlanNone
		}
		if u.FirstCashback == "" {
			u.FirstCashback = domain.NotClaimed
		}
		st.users[u.ID] = u
		return nil
	})
	return u
}

func (s *Store) AddShop(shop domain.Shop) domain.Shop {
	_ = s.do(context.Background(), func(st *state) error {
		if shop.ID == 0 {
			shop.ID = st.nextID()
		}
		st.shops[shop.ID] = shop
		return nil
	})
	return shop
}

func (s *Store) AddPlan(p domain.Plan) {
	_ = s.do(context.Background(), func(st *state) error {
		st.plans[p.Code] = p
		return nil
	})
}

func (s *Store) User(id int) domain.User {
	var u domain.User
	_ = s.do(context.Background(), func(st *state) error {
		u = st.users[id]
		return nil
	})
	return u
}

func (s *Store) Bill(id int) domain.ShoppingBill {
	var b domain.ShoppingBill
	_ = s.do(context.Background(), func(st *state) error {
		b = st.bills[id]
		return nil
	})
	return b
}

func (s *Store) Balance(userID int) decimal.Decimal {
	balance := decimal.Zero
	_ = s.do(context.Background(), func(st *state) error {
		if acc, ok := st.accounts[userID]; ok {
			balance = acc.Balance
		}
		return nil
	})
	return balance
}

// Entries returns the user's entries oldest first.
func (s *Store) Entries(userID int) []domain.LedgerEntry {
	var out []domain.LedgerEntry
	_ = s.do(context.Background(), func(st *state) error {
		for _, e := range st.entries {
			if e.UserID == userID {
				out = append(out, e)
			}
		}
		return nil
	})
	return out
}

// EntriesByAction filters Entries by action.
func (s *Store) EntriesByAction(userID int, action domain.Action) []domain.LedgerEntry {
	var out []domain.LedgerEntry
	for _, e := range s.Entries(userID) {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

// AccountIDs lists every user holding an account.
func (s *Store) AccountIDs() []int {
	var ids []int
	_ = s.do(context.Background(), func(st *state) error {
		for id := range st.accounts {
			ids = append(ids, id)
		}
		return nil
	})
	sort.Ints(ids)
	return ids
}

func (s *Store) VendorProfits() []domain.VendorProfit {
	var out []domain.VendorProfit
	_ = s.do(context.Background(), func(st *state) error {
		out = append(out, st.vendorProfits...)
		return nil
	})
	return out
}

func (s *Store) AuditEntries() []domain.AuditEntry {
	var out []domain.AuditEntry
	_ = s.do(context.Background(), func(st *state) error {
		out = append(out, st.audit...)
		return nil
	})
	return out
}

func (s *Store) SubscriptionsOf(userID int) []domain.UserSubscription {
	var out []domain.UserSubscription
	_ = s.do(context.Background(), func(st *state) error {
		for _, sub := range st.subscriptions {
			if sub.UserID == userID {
				out = append(out, sub)
			}
		}
		return nil
	})
	return out
}
