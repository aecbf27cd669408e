package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the statement service.
type Metrics struct {
	// Statement metrics
	StatementsCreated *prometheus.CounterVec
	StatementAmount   *prometheus.HistogramVec
	StatementErrors   *prometheus.CounterVec
	BalanceQueries    prometheus.Counter

	// User metrics
	UsersCreated prometheus.Counter
	AuthFailures prometheus.Counter
}

// New creates and registers all Prometheus metrics on the given
// registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		StatementsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finstatement_statements_created_total",
				Help: "Total number of statement operations created, by type",
			},
			[]string{"type"},
		),
		StatementAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finstatement_statement_amount",
				Help:    "Statement operation amounts, by type",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
			},
			[]string{"type"},
		),
		StatementErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finstatement_statement_errors_total",
				Help: "Total number of rejected statement operations, by reason",
			},
			[]string{"reason"},
		),
		BalanceQueries: factory.NewCounter(prometheus.CounterOpts{
			Name: "finstatement_balance_queries_total",
			Help: "Total number of balance queries",
		}),
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "finstatement_users_created_total",
			Help: "Total number of users registered",
		}),
		AuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "finstatement_auth_failures_total",
			Help: "Total number of failed authentication attempts",
		}),
	}
}
