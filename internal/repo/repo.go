package repo

import (
	"github.com/GlebRadaev/rewardledger/internal/pg"
	"github.com/GlebRadaev/rewardledger/internal/reconcile"
	auditrepo "github.com/GlebRadaev/rewardledger/internal/repo/audit-repo"
	billrepo "github.com/GlebRadaev/rewardledger/internal/repo/bill-repo"
	guardrepo "github.com/GlebRadaev/rewardledger/internal/repo/guard-repo"
	ledgerrepo "github.com/GlebRadaev/rewardledger/internal/repo/ledger-repo"
	paymentrepo "github.com/GlebRadaev/rewardledger/internal/repo/payment-repo"
	planrepo "github.com/GlebRadaev/rewardledger/internal/repo/plan-repo"
	referralrepo "github.com/GlebRadaev/rewardledger/internal/repo/referral-repo"
	shoprepo "github.com/GlebRadaev/rewardledger/internal/repo/shop-repo"
	subscriptionrepo "github.com/GlebRadaev/rewardledger/internal/repo/subscription-repo"
	userrepo "github.com/GlebRadaev/rewardledger/internal/repo/user-repo"
	vendorrepo "github.com/GlebRadaev/rewardledger/internal/repo/vendor-repo"
	withdrawalrepo "github.com/GlebRadaev/rewardledger/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/rewardledger/internal/service/authservice"
	"github.com/GlebRadaev/rewardledger/internal/service/balanceservice"
	"github.com/GlebRadaev/rewardledger/internal/service/guardservice"
	"github.com/GlebRadaev/rewardledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/rewardledger/internal/service/referralservice"
	"github.com/GlebRadaev/rewardledger/internal/service/settlementservice"
	"github.com/GlebRadaev/rewardledger/internal/service/subscriptionservice"
)

// UserRepo is everything the services need from the users table.
type UserRepo interface {
	authservice.Repo
	referralservice.UserRepo
	settlementservice.UserRepo
	subscriptionservice.UserRepo
}

type LedgerRepo interface {
	ledgerservice.Repo
	reconcile.Repo
}

type Repositories struct {
	Users         UserRepo
	Ledger        LedgerRepo
	Referrals     referralservice.ReferralRepo
	Bills         settlementservice.BillRepo
	Shops         settlementservice.ShopRepo
	Vendors       settlementservice.VendorRepo
	Plans         subscriptionservice.PlanRepo
	Payments      subscriptionservice.PaymentRepo
	Subscriptions subscriptionservice.SubscriptionRepo
	Withdrawals   balanceservice.WithdrawalRepo
	Audit         settlementservice.AuditRepo
	Guard         guardservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Users:         userrepo.New(conn),
		Ledger:        ledgerrepo.New(conn),
		Referrals:     referralrepo.New(conn),
		Bills:         billrepo.New(conn),
		Shops:         shoprepo.New(conn),
		Vendors:       vendorrepo.New(conn),
		Plans:         planrepo.New(conn),
		Payments:      paymentrepo.New(conn),
		Subscriptions: subscriptionrepo.New(conn),
		Withdrawals:   withdrawalrepo.New(conn),
		Audit:         auditrepo.New(conn),
		Guard:         guardrepo.New(conn),
	}
}
