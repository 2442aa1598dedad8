package service

import (
	"github.com/GlebRadaev/rewardledger/internal/handlers/auth"
	"github.com/GlebRadaev/rewardledger/internal/handlers/balance"
	"github.com/GlebRadaev/rewardledger/internal/handlers/bills"
	"github.com/GlebRadaev/rewardledger/internal/handlers/referrals"
	"github.com/GlebRadaev/rewardledger/internal/handlers/subscriptions"
	"github.com/GlebRadaev/rewardledger/internal/metrics"
	"github.com/GlebRadaev/rewardledger/internal/pg"
	"github.com/GlebRadaev/rewardledger/internal/repo"
	"github.com/GlebRadaev/rewardledger/internal/service/authservice"
	"github.com/GlebRadaev/rewardledger/internal/service/balanceservice"
	"github.com/GlebRadaev/rewardledger/internal/service/guardservice"
	"github.com/GlebRadaev/rewardledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/rewardledger/internal/service/referralservice"
	"github.com/GlebRadaev/rewardledger/internal/service/settlementservice"
	"github.com/GlebRadaev/rewardledger/internal/service/subscriptionservice"
	pkgauth "github.com/GlebRadaev/rewardledger/pkg/auth"
)

// Deps are the collaborators shared by every service.
type Deps struct {
	TX                pg.TXManager
	Cache             ledgerservice.Cache
	Metrics           *metrics.Metrics
	Notifier          settlementservice.Notifier
	Hash              pkgauth.HashServiceInterface
	JWT               pkgauth.JWTServiceInterface
	PlatformAccountID int
}

type Services struct {
	AuthService         auth.Service
	BalanceService      balance.Service
	SettlementService   bills.Service
	ReferralService     referrals.Service
	SubscriptionService subscriptions.Service
}

func New(repos *repo.Repositories, deps Deps) *Services {
	hash := deps.Hash
	if hash == nil {
		hash = &pkgauth.HashService{}
	}

	ledger := ledgerservice.New(repos.Ledger, deps.TX, deps.Cache, deps.Metrics, deps.PlatformAccountID)
	guard := guardservice.New(repos.Guard)
	referralService := referralservice.New(repos.Users, repos.Referrals, ledger, deps.TX, deps.Cache, deps.Notifier, deps.Metrics)
	settlementService := settlementservice.New(repos.Bills, repos.Shops, repos.Vendors, repos.Users, repos.Audit,
		guard, ledger, deps.TX, deps.Notifier, deps.Metrics)
	subscriptionService := subscriptionservice.New(repos.Plans, repos.Payments, repos.Subscriptions, repos.Users, repos.Audit,
		guard, ledger, referralService, deps.TX, deps.Notifier, deps.Metrics)
	balanceService := balanceservice.New(ledger, repos.Withdrawals, repos.Audit, deps.TX, deps.Notifier)
	authService := authservice.New(repos.Users, hash, deps.JWT)

	return &Services{
		AuthService:         authService,
		BalanceService:      balanceService,
		SettlementService:   settlementService,
		ReferralService:     referralService,
		SubscriptionService: subscriptionService,
	}
}
