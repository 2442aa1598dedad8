// Package notify delivers user notifications after a unit of work has committed.
// Delivery is fire-and-forget: failures are logged and counted, never returned to the caller.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/metrics"
	"github.com/GlebRadaev/rewardledger/internal/workerpool"
)

const (
	enqueueTimeout = time.Second
	sendTimeout    = 10 * time.Second
)

type Sink interface {
	Name() string
	Send(ctx context.Context, n domain.Notification) error
}

type Dispatcher struct {
	pool    workerpool.WorkerPoolI
	sinks   []Sink
	metrics *metrics.Metrics
}

func New(pool workerpool.WorkerPoolI, m *metrics.Metrics, sinks ...Sink) *Dispatcher {
	return &Dispatcher{
		pool:    pool,
		sinks:   sinks,
		metrics: m,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, n domain.Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	enqueueCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
	defer cancel()

	err := d.pool.AddTask(enqueueCtx, func() error {
		return d.deliver(n)
	})
	if err != nil {
		d.metrics.ObserveNotifyFailure("queue")
		zap.L().Warn("notification dropped",
			zap.String("id", n.ID),
			zap.String("kind", string(n.Kind)),
			zap.Int("userID", n.UserID),
			zap.Error(err),
		)
	}
}

func (d *Dispatcher) deliver(n domain.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	var errs error
	for _, sink := range d.sinks {
		if err := sink.Send(ctx, n); err != nil {
			d.metrics.ObserveNotifyFailure(sink.Name())
			errs = errors.Join(errs, fmt.Errorf("%s sink: %w", sink.Name(), err))
		}
	}
	return errs
}

// LogSink writes notifications to the application log.
type LogSink struct{}

func (LogSink) Name() string { return "log" }

func (LogSink) Send(_ context.Context, n domain.Notification) error {
	zap.L().Info("notification",
		zap.String("id", n.ID),
		zap.String("kind", string(n.Kind)),
		zap.Int("userID", n.UserID),
		zap.Any("payload", n.Payload),
	)
	return nil
}
