package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/cache"
	"github.com/GlebRadaev/rewardledger/internal/config"
	"github.com/GlebRadaev/rewardledger/internal/handlers"
	"github.com/GlebRadaev/rewardledger/internal/metrics"
	"github.com/GlebRadaev/rewardledger/internal/notify"
	"github.com/GlebRadaev/rewardledger/internal/pg"
	"github.com/GlebRadaev/rewardledger/internal/reconcile"
	"github.com/GlebRadaev/rewardledger/internal/repo"
	"github.com/GlebRadaev/rewardledger/internal/service"
	"github.com/GlebRadaev/rewardledger/internal/workerpool"
	"github.com/GlebRadaev/rewardledger/pkg/auth"
	"github.com/GlebRadaev/rewardledger/pkg/clients"
	"github.com/GlebRadaev/rewardledger/pkg/logger"
)

const reconcileWorkers = 4

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	metrics   *metrics.Metrics
	reconcile *reconcile.Service

	pools   []workerpool.WorkerPoolI
	closers []io.Closer

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	a.cfg = cfg
	a.metrics = metrics.Ledger()
	a.repo = repo.New(pg.New(pool))

	jwt := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(a.repo, a.buildDeps(pg.NewTXManager(pool), jwt))
	a.api = handlers.New(a.srv, jwt, a.metrics)

	reconcilePool := workerpool.New("reconcile", reconcileWorkers)
	a.pools = append(a.pools, reconcilePool)
	a.reconcile = reconcile.New(a.repo.Ledger, reconcilePool, a.metrics, cfg.ReconcileInterval)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startReconciler(ctx)
	a.releaseOnShutdown(ctx, pool)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildDeps wires the optional cache and notification sinks from config.
func (a *Application) buildDeps(tx pg.TXManager, jwt auth.JWTServiceInterface) service.Deps {
	deps := service.Deps{
		TX:                tx,
		Metrics:           a.metrics,
		JWT:               jwt,
		PlatformAccountID: a.cfg.PlatformAccountID,
	}
	if c := newCache(a.cfg); c != nil {
		deps.Cache = c
	}
	deps.Notifier = a.newNotifier()
	return deps
}

func newCache(cfg *config.Config) *cache.Cache {
	if cfg.RedisAddr == "" {
		return nil
	}
	zap.L().Info("summary cache enabled", zap.String("redis", cfg.RedisAddr), zap.Duration("ttl", cfg.SummaryCacheTTL))
	return cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.SummaryCacheTTL)
}

func (a *Application) newNotifier() *notify.Dispatcher {
	sinks := []notify.Sink{notify.LogSink{}}
	if len(a.cfg.KafkaBrokers) > 0 {
		writer := notify.NewKafkaWriter(a.cfg.KafkaBrokers, a.cfg.KafkaTopic)
		a.closers = append(a.closers, writer)
		sinks = append(sinks, notify.NewKafkaSink(writer))
	}
	if a.cfg.WebhookURL != "" {
		sinks = append(sinks, notify.NewWebhookSink(a.cfg.WebhookURL, clients.NewHTTPClient()))
	}

	notifyPool := workerpool.New("notify", a.cfg.NotifyWorkers)
	a.pools = append(a.pools, notifyPool)
	return notify.New(notifyPool, a.metrics, sinks...)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startReconciler(ctx context.Context) {
	if a.cfg.ReconcileInterval <= 0 {
		zap.L().Info("balance reconciliation disabled")
		return
	}
	a.reconcile.Start(ctx)
}

// releaseOnShutdown drains worker pools and closes external writers once ctx is done.
func (a *Application) releaseOnShutdown(ctx context.Context, pool *pgxpool.Pool) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.release()
		if pool != nil {
			pool.Close()
		}
	}()
}

func (a *Application) release() {
	for _, p := range a.pools {
		p.Close()
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			zap.L().Warn("failed to close resource", zap.Error(err))
		}
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
