// Package metrics provides Prometheus instrumentation for asyncflow components.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeCanceled  = "canceled"
	OutcomeFired     = "fired"
	OutcomeSkipped   = "skipped"
)

// Registry holds all metric instances for asyncflow components.
type Registry struct {
	// Task Metrics
	TasksTotal *prometheus.CounterVec
	TaskDelay  prometheus.Histogram

	// Batch Metrics
	BatchesTotal  *prometheus.CounterVec
	BatchSeconds  *prometheus.HistogramVec
	ActiveBatches *prometheus.GaugeVec

	// Strategy Metrics
	StrategyRuns     *prometheus.CounterVec
	StrategyDuration *prometheus.HistogramVec
	DetachedFailures prometheus.Counter

	// Trigger Metrics
	TriggerFirings *prometheus.CounterVec
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry bound to prometheus.DefaultRegisterer,
// creating it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
	})
	return defaultRegistry
}

// New creates a registry from cfg. It returns nil when metrics are disabled;
// every component treats a nil *Registry as "do not record".
func New(cfg Config) *Registry {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Registry == nil {
		return Default()
	}
	reg := cfg.Registry
	if len(cfg.Labels) > 0 {
		reg = prometheus.WrapRegistererWith(cfg.Labels, reg)
	}
	return newRegistry(reg, cfg.Namespace)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return newRegistry(reg, DefaultNamespace)
}

func newRegistry(reg prometheus.Registerer, namespace string) *Registry {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)

	return &Registry{
		TasksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "runner",
				Name:      "tasks_total",
				Help:      "Total number of simulated tasks by outcome",
			},
			[]string{"outcome"},
		),

		TaskDelay: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "runner",
				Name:      "task_delay_seconds",
				Help:      "Delay waited by each simulated task",
				Buckets:   prometheus.LinearBuckets(0.05, 0.05, 12),
			},
		),

		BatchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "runner",
				Name:      "batches_total",
				Help:      "Total number of batches by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),

		BatchSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "runner",
				Name:      "batch_total_seconds",
				Help:      "Accumulated task delay reported by each batch",
				Buckets:   prometheus.LinearBuckets(0.5, 0.5, 12),
			},
			[]string{"kind"},
		),

		ActiveBatches: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "runner",
				Name:      "active_batches",
				Help:      "Number of batches currently running",
			},
			[]string{"kind"},
		),

		StrategyRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "strategy",
				Name:      "runs_total",
				Help:      "Total number of strategy invocations by outcome",
			},
			[]string{"strategy", "outcome"},
		),

		StrategyDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "strategy",
				Name:      "duration_seconds",
				Help:      "Wall time until a strategy call returned",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),

		DetachedFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "strategy",
				Name:      "detached_failures_total",
				Help:      "Failures of detached runs, never seen by their launcher",
			},
		),

		TriggerFirings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "trigger",
				Name:      "firings_total",
				Help:      "Scheduled trigger firings by trigger and outcome",
			},
			[]string{"trigger", "outcome"},
		),
	}
}
