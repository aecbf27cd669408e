package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.StatementsCreated.WithLabelValues("deposit").Inc()
	m.StatementsCreated.WithLabelValues("withdraw").Add(2)
	m.BalanceQueries.Inc()

	if got := testutil.ToFloat64(m.StatementsCreated.WithLabelValues("deposit")); got != 1 {
		t.Fatalf("expected 1 deposit created, got %v", got)
	}
	if got := testutil.ToFloat64(m.StatementsCreated.WithLabelValues("withdraw")); got != 2 {
		t.Fatalf("expected 2 withdrawals created, got %v", got)
	}
	if got := testutil.ToFloat64(m.BalanceQueries); got != 1 {
		t.Fatalf("expected 1 balance query, got %v", got)
	}
}

func TestNewDoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	defer func() {
		if recover() == nil {
			t.Fatal("expected duplicate registration to panic")
		}
	}()
	New(reg)
}
