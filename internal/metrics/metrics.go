package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

type Metrics struct {
	postings         *prometheus.CounterVec
	postedAmount     *prometheus.CounterVec
	bills            *prometheus.CounterVec
	pairsUnlocked    prometheus.Counter
	activations      *prometheus.CounterVec
	notifyFailures   *prometheus.CounterVec
	reconcileRuns    prometheus.Counter
	mismatches       prometheus.Gauge
	requestDurations *prometheus.HistogramVec
}

var (
	once     sync.Once
	registry *Metrics
)

// Ledger returns the process-wide metrics, registering them on first use.
func Ledger() *Metrics {
	once.Do(func() {
		registry = &Metrics{
			postings: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "rewardledger_postings_total",
				Help: "Ledger entries written by action.",
			}, []string{"action"}),
			postedAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "rewardledger_posted_amount_total",
				Help: "Absolute amount moved through the ledger by action.",
			}, []string{"action"}),
			bills: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "rewardledger_bills_total",
				Help: "Bill decisions by outcome.",
			}, []string{"outcome"}),
			pairsUnlocked: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "rewardledger_pairs_unlocked_total",
				Help: "Pair tiers unlocked across all referrers.",
			}),
			activations: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "rewardledger_activations_total",
				Help: "Subscription activations by plan.",
			}, []string{"plan"}),
			notifyFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "rewardledger_notification_failures_total",
				Help: "Notifications that could not be delivered by sink.",
			}, []string{"sink"}),
			reconcileRuns: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "rewardledger_reconcile_runs_total",
				Help: "Completed balance reconciliation passes.",
			}),
			mismatches: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "rewardledger_balance_mismatches",
				Help: "Accounts whose balance differed from their entries in the last pass.",
			}),
			requestDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "rewardledger_http_request_duration_seconds",
				Help:    "HTTP request latency by method and status code.",
				Buckets: prometheus.DefBuckets,
			}, []string{"method", "code"}),
		}
		prometheus.MustRegister(
			registry.postings,
			registry.postedAmount,
			registry.bills,
			registry.pairsUnlocked,
			registry.activations,
			registry.notifyFailures,
			registry.reconcileRuns,
			registry.mismatches,
			registry.requestDurations,
		)
	})
	return registry
}

func (m *Metrics) ObservePosting(action string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.postings.WithLabelValues(action).Inc()
	m.postedAmount.WithLabelValues(action).Add(amount.Abs().InexactFloat64())
}

func (m *Metrics) ObserveBill(outcome string) {
	if m == nil {
		return
	}
	m.bills.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObservePairsUnlocked(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.pairsUnlocked.Add(float64(n))
}

func (m *Metrics) ObserveActivation(plan string) {
	if m == nil {
		return
	}
	m.activations.WithLabelValues(plan).Inc()
}

func (m *Metrics) ObserveNotifyFailure(sink string) {
	if m == nil {
		return
	}
	m.notifyFailures.WithLabelValues(sink).Inc()
}

func (m *Metrics) ObserveReconcile(mismatches int) {
	if m == nil {
		return
	}
	m.reconcileRuns.Inc()
	m.mismatches.Set(float64(mismatches))
}

func (m *Metrics) ObserveRequest(method string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestDurations.WithLabelValues(method, strconv.Itoa(code)).Observe(elapsed.Seconds())
}
