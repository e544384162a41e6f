package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "credit_ledger"

// Conservation guard

var GuardChecks = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "guard",
	Name:      "checks_total",
	Help:      "Conservation guard evaluations by result (pass, fail).",
}, []string{"result"})

var GuardViolations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "guard",
	Name:      "violations_total",
	Help:      "Conservation invariant violations by invariant.",
}, []string{"invariant"})

// Ledger

var Finalizations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "finalizations_total",
	Help:      "Finalize calls by outcome (settled, replayed, rejected).",
}, []string{"outcome"})

var Overruns = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "overruns_total",
	Help:      "Finalizations whose actual cost exceeded the reserved amount.",
})

var ReservationsExpired = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "reservations_expired_total",
	Help:      "Reservations moved to expired by the hygiene sweeper.",
})

var LotsBurnedMicro = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "expired_lots_burned_micro_total",
	Help:      "Micro-units burned from expired lots.",
})

// Budget

var BudgetCacheDegraded = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Subsystem: "budget",
	Name:      "cache_degraded",
	Help:      "1 when the budget cache runs on the in-process fallback, 0 on Redis.",
})

var BudgetCacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "budget",
	Name:      "cache_errors_total",
	Help:      "Budget cache errors by operation.",
}, []string{"op"})

var BudgetDenials = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "budget",
	Name:      "denials_total",
	Help:      "Agent reservations denied by the daily cap.",
})

// DLQ

var DLQProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "dlq",
	Name:      "processed_total",
	Help:      "DLQ entries processed by operation and resulting status.",
}, []string{"operation", "status"})

var DLQEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "dlq",
	Name:      "enqueued_total",
	Help:      "DLQ entries enqueued by operation.",
}, []string{"operation"})

var DLQBatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "dlq",
	Name:      "batch_duration_seconds",
	Help:      "Time spent processing one claimed DLQ batch.",
	Buckets:   prometheus.DefBuckets,
})

// Alerts

var AlertsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "alert",
	Name:      "emitted_total",
	Help:      "Operational alerts emitted by kind.",
}, []string{"kind"})

var AlertPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "alert",
	Name:      "publish_failures_total",
	Help:      "Alerts that could not be published to NATS.",
})

// HTTP

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "API request latency by method, route and status.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})
