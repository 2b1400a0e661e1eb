// Package metrics defines the Prometheus collectors exported by the server.
//
// A nil *Recorder is valid and records nothing, so components can take one
// unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "billease"

// Mutation results recorded by LedgerMutation.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Recorder owns the collectors and registers them on construction.
type Recorder struct {
	rpcRequests    *prometheus.CounterVec
	rpcDuration    *prometheus.HistogramVec
	recomputations prometheus.Counter
	outstanding    prometheus.Gauge
	mutations      *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors with reg.
// It panics if a collector with the same name is already registered.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Connect RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Connect RPC latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		recomputations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_recomputations_total",
			Help:      "Times the active group's balances were recomputed.",
		}),
		outstanding: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "outstanding_transfers",
			Help:      "Transfers needed to settle the active group.",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_mutations_total",
			Help:      "Ledger mutations, by operation and result.",
		}, []string{"op", "result"}),
	}

	reg.MustRegister(r.rpcRequests, r.rpcDuration, r.recomputations, r.outstanding, r.mutations)
	return r
}

// ObserveRPC records one finished RPC. code is "ok" on success.
func (r *Recorder) ObserveRPC(procedure, code string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.rpcRequests.WithLabelValues(procedure, code).Inc()
	r.rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}

// BalancesRecomputed records a recomputation that produced transfers transfers.
func (r *Recorder) BalancesRecomputed(transfers int) {
	if r == nil {
		return
	}
	r.recomputations.Inc()
	r.outstanding.Set(float64(transfers))
}

// LedgerMutation records the outcome of a ledger mutation.
func (r *Recorder) LedgerMutation(op, result string) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(op, result).Inc()
}
