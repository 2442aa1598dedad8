package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/workerpool"
)

type recordingSink struct {
	mu   sync.Mutex
	name string
	err  error
	got  []domain.Notification
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Send(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	return s.err
}

func TestDispatcher_Notify(t *testing.T) {
	pool := workerpool.New("notify-test", 2)
	ok := &recordingSink{name: "ok"}
	failing := &recordingSink{name: "failing", err: errors.New("down")}
	d := New(pool, nil, ok, failing)

	d.Notify(context.Background(), domain.Notification{
		UserID:  7,
		Kind:    domain.NotifyBillApproved,
		Payload: map[string]any{"billID": 3},
	})
	pool.Close()

	require.Len(t, ok.got, 1)
	require.Len(t, failing.got, 1)
	n := ok.got[0]
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.CreatedAt.IsZero())
	assert.Equal(t, 7, n.UserID)
	assert.Equal(t, domain.NotifyBillApproved, n.Kind)
}

func TestDispatcher_NotifyIgnoresCanceledRequest(t *testing.T) {
	pool := workerpool.New("notify-test", 1)
	sink := &recordingSink{name: "ok"}
	d := New(pool, nil, sink)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Notify(ctx, domain.Notification{UserID: 1, Kind: domain.NotifyWithdrawalApproved})
	pool.Close()

	assert.Len(t, sink.got, 1)
}

func TestDispatcher_QueueFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool := workerpool.NewMockWorkerPoolI(ctrl)
	pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(workerpool.ErrClosed)

	d := New(pool, nil, LogSink{})
	assert.NotPanics(t, func() {
		d.Notify(context.Background(), domain.Notification{UserID: 1, Kind: domain.NotifyBillRejected})
	})
}

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaSink_Send(t *testing.T) {
	w := &fakeWriter{}
	sink := NewKafkaSink(w)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	err := sink.Send(context.Background(), domain.Notification{
		ID:        "n-1",
		UserID:    42,
		Kind:      domain.NotifyPairUnlocked,
		Payload:   map[string]any{"pair": 2},
		CreatedAt: created,
	})

	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, created, msg.Time)
	assert.Equal(t, "kind", msg.Headers[0].Key)
	assert.Equal(t, "pair_unlocked", string(msg.Headers[0].Value))

	var decoded domain.Notification
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "n-1", decoded.ID)
	assert.Equal(t, float64(2), decoded.Payload["pair"])

	require.NoError(t, sink.Close())
	assert.True(t, w.closed)
}

type fakePoster struct {
	status  int
	err     error
	url     string
	headers http.Header
	body    []byte
}

func (p *fakePoster) Post(_ context.Context, url string, headers http.Header, body []byte) (int, []byte, error) {
	p.url, p.headers, p.body = url, headers, body
	return p.status, nil, p.err
}

func TestWebhookSink_Send(t *testing.T) {
	tests := []struct {
		name      string
		poster    *fakePoster
		expectErr bool
	}{
		{name: "Accepted", poster: &fakePoster{status: http.StatusAccepted}},
		{name: "Server error", poster: &fakePoster{status: http.StatusBadGateway}, expectErr: true},
		{name: "Transport error", poster: &fakePoster{err: errors.New("refused")}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := NewWebhookSink("http://hooks.local/rewards", tt.poster)
			err := sink.Send(context.Background(), domain.Notification{ID: "n-2", UserID: 1, Kind: domain.NotifyBillApproved})
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "http://hooks.local/rewards", tt.poster.url)
			assert.Equal(t, "application/json", tt.poster.headers.Get("Content-Type"))
			assert.Equal(t, "n-2", tt.poster.headers.Get("X-Notification-Id"))
			assert.Contains(t, string(tt.poster.body), `"kind":"bill_approved"`)
		})
	}
}
