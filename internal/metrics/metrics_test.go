package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.ObserveRPC("/billease.v1.LedgerService/AddExpense", "ok", 5*time.Millisecond)
	r.ObserveRPC("/billease.v1.LedgerService/AddExpense", "invalid_argument", time.Millisecond)
	r.BalancesRecomputed(2)
	r.BalancesRecomputed(3)
	r.LedgerMutation("add_expense", ResultOK)
	r.LedgerMutation("add_expense", ResultRejected)
	r.LedgerMutation("add_expense", ResultRejected)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.rpcRequests.WithLabelValues("/billease.v1.LedgerService/AddExpense", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.recomputations))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.outstanding))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.mutations.WithLabelValues("add_expense", ResultRejected)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveRPC("p", "ok", time.Second)
		r.BalancesRecomputed(1)
		r.LedgerMutation("op", ResultOK)
	})
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
