package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObservePosting("shopping_cashback", decimal.NewFromInt(1))
		m.ObserveBill("approved")
		m.ObservePairsUnlocked(2)
		m.ObserveActivation("A")
		m.ObserveNotifyFailure("kafka")
		m.ObserveReconcile(1)
		m.ObserveRequest("GET", 200, time.Millisecond)
	})
}

func TestLedgerCounters(t *testing.T) {
	m := Ledger()
	assert.Same(t, m, Ledger())

	before := testutil.ToFloat64(m.postings.WithLabelValues("pair_bonus"))
	beforeAmount := testutil.ToFloat64(m.postedAmount.WithLabelValues("pair_bonus"))
	m.ObservePosting("pair_bonus", decimal.RequireFromString("-1000.50"))
	assert.Equal(t, before+1, testutil.ToFloat64(m.postings.WithLabelValues("pair_bonus")))
	assert.InDelta(t, beforeAmount+1000.5, testutil.ToFloat64(m.postedAmount.WithLabelValues("pair_bonus")), 0.001)

	pairs := testutil.ToFloat64(m.pairsUnlocked)
	m.ObservePairsUnlocked(0)
	m.ObservePairsUnlocked(3)
	assert.Equal(t, pairs+3, testutil.ToFloat64(m.pairsUnlocked))

	m.ObserveReconcile(4)
	assert.Equal(t, float64(4), testutil.ToFloat64(m.mismatches))
}
