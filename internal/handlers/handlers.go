package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/rewardledger/docs"
	"github.com/GlebRadaev/rewardledger/internal/domain"
	authhandlers "github.com/GlebRadaev/rewardledger/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/rewardledger/internal/handlers/balance"
	billshandlers "github.com/GlebRadaev/rewardledger/internal/handlers/bills"
	referralshandlers "github.com/GlebRadaev/rewardledger/internal/handlers/referrals"
	subscriptionshandlers "github.com/GlebRadaev/rewardledger/internal/handlers/subscriptions"
	"github.com/GlebRadaev/rewardledger/internal/metrics"
	"github.com/GlebRadaev/rewardledger/internal/service"
	"github.com/GlebRadaev/rewardledger/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetAnalytics(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	ApproveWithdrawal(w http.ResponseWriter, r *http.Request)
	RejectWithdrawal(w http.ResponseWriter, r *http.Request)
}

type BillsHandler interface {
	UploadBill(w http.ResponseWriter, r *http.Request)
	GetBills(w http.ResponseWriter, r *http.Request)
	GetPendingBills(w http.ResponseWriter, r *http.Request)
	ApproveBill(w http.ResponseWriter, r *http.Request)
	RejectBill(w http.ResponseWriter, r *http.Request)
	GetVendorPayables(w http.ResponseWriter, r *http.Request)
	MarkVendorPaid(w http.ResponseWriter, r *http.Request)
}

type ReferralsHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	RecomputePairs(w http.ResponseWriter, r *http.Request)
}

type SubscriptionsHandler interface {
	GetPlans(w http.ResponseWriter, r *http.Request)
	InitiatePayment(w http.ResponseWriter, r *http.Request)
	ConfirmPayment(w http.ResponseWriter, r *http.Request)
	GetSubscription(w http.ResponseWriter, r *http.Request)
	ApproveCashPayment(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler          AuthHandler
	BalanceHandler       BalanceHandler
	BillsHandler         BillsHandler
	ReferralsHandler     ReferralsHandler
	SubscriptionsHandler SubscriptionsHandler

	jwt     auth.JWTServiceInterface
	metrics *metrics.Metrics
}

func New(s *service.Services, jwt auth.JWTServiceInterface, m *metrics.Metrics) *Handlers {
	return &Handlers{
		AuthHandler:          authhandlers.New(s.AuthService),
		BalanceHandler:       balancehandlers.New(s.BalanceService),
		BillsHandler:         billshandlers.New(s.SettlementService),
		ReferralsHandler:     referralshandlers.New(s.ReferralService),
		SubscriptionsHandler: subscriptionshandlers.New(s.SubscriptionService),
		jwt:                  jwt,
		metrics:              m,
	}
}

// observe records the latency of every request by method and status code.
func (h *Handlers) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.ObserveRequest(r.Method, status, time.Since(start))
	})
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		h.observe,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/plans", h.SubscriptionsHandler.GetPlans)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwt))
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetWallet)
				r.Get("/analytics", h.BalanceHandler.GetAnalytics)
				r.Post("/withdraw", h.BalanceHandler.Withdraw)
			})
			r.Get("/withdrawals", h.BalanceHandler.GetWithdrawals)
			r.Get("/referrals", h.ReferralsHandler.GetSummary)
			r.Route("/bills", func(r chi.Router) {
				r.Post("/", h.BillsHandler.UploadBill)
				r.Get("/", h.BillsHandler.GetBills)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.SubscriptionsHandler.InitiatePayment)
				r.Post("/confirm", h.SubscriptionsHandler.ConfirmPayment)
			})
			r.Get("/subscription", h.SubscriptionsHandler.GetSubscription)
		})
	})

	r.Route("/api/vendor", func(r chi.Router) {
		r.Use(auth.Middleware(h.jwt), auth.RequireRole(string(domain.RoleVendor)))
		r.Get("/payables", h.BillsHandler.GetVendorPayables)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.Middleware(h.jwt), auth.RequireRole(string(domain.RoleAdmin)))
		r.Get("/bills/pending", h.BillsHandler.GetPendingBills)
		r.Post("/bills/{billID}/approve", h.BillsHandler.ApproveBill)
		r.Post("/bills/{billID}/reject", h.BillsHandler.RejectBill)
		r.Post("/payments/{paymentID}/approve", h.SubscriptionsHandler.ApproveCashPayment)
		r.Post("/withdrawals/{id}/approve", h.BalanceHandler.ApproveWithdrawal)
		r.Post("/withdrawals/{id}/reject", h.BalanceHandler.RejectWithdrawal)
		r.Post("/referrals/{userID}/recompute", h.ReferralsHandler.RecomputePairs)
		r.Post("/vendors/{vendorID}/paid", h.BillsHandler.MarkVendorPaid)
	})

	return r
}
