package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/rewardledger/internal/config"
	"github.com/GlebRadaev/rewardledger/internal/service/servicetest"
	"github.com/GlebRadaev/rewardledger/internal/workerpool"
	"github.com/GlebRadaev/rewardledger/pkg/auth"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
	s.app.cfg = &config.Config{
		PlatformAccountID: 1,
		KafkaTopic:        "reward-notifications",
		NotifyWorkers:     2,
		SummaryCacheTTL:   time.Second,
	}
}

func (s *ApplicationSuite) TearDownTest() {
	s.app.release()
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestBuildDeps_Defaults() {
	store := servicetest.New()
	jwt := auth.NewJWTService("secret")

	deps := s.app.buildDeps(store.TXManager(), jwt)

	s.Nil(deps.Cache)
	s.NotNil(deps.Notifier)
	s.Equal(1, deps.PlatformAccountID)
	s.Equal(jwt, deps.JWT)
	s.Len(s.app.pools, 1)
	s.Empty(s.app.closers)
}

func (s *ApplicationSuite) TestBuildDeps_AllSinks() {
	s.app.cfg.KafkaBrokers = []string{"localhost:9092"}
	s.app.cfg.WebhookURL = "http://localhost:9999/hook"
	s.app.cfg.RedisAddr = "localhost:6379"

	deps := s.app.buildDeps(servicetest.New().TXManager(), auth.NewJWTService("secret"))

	s.NotNil(deps.Cache)
	s.NotNil(deps.Notifier)
	s.Len(s.app.closers, 1)
}

func (s *ApplicationSuite) TestRelease() {
	pool := workerpool.New("test", 1)
	closed := 0
	s.app.pools = []workerpool.WorkerPoolI{pool}
	s.app.closers = []io.Closer{
		closerFunc(func() error { closed++; return nil }),
		closerFunc(func() error { closed++; return errors.New("already closed") }),
	}

	s.app.release()

	s.Equal(2, closed)
	err := pool.AddTask(context.Background(), func() error { return nil })
	s.ErrorIs(err, workerpool.ErrClosed)
	s.app.pools, s.app.closers = nil, nil
}

func (s *ApplicationSuite) TestStartReconciler_Disabled() {
	s.app.cfg.ReconcileInterval = 0
	s.NotPanics(func() { s.app.startReconciler(context.Background()) })
}
