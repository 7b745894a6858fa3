// Package metrics provides Prometheus instrumentation for asyncflow components.
//
// # Overview
//
// The registry covers:
//   - Simulated tasks (count by outcome, delay histogram)
//   - Batches (count by kind and outcome, reported totals, active batches)
//   - Strategies (invocations, wall time, failures of detached runs)
//   - Scheduled triggers (fired and skipped firings)
//
// # Quick Start
//
// Pass a registry to the runner and expose it over HTTP:
//
//	reg := metrics.New(metrics.DefaultConfig())
//	r := runner.New(runner.Config{Metrics: reg})
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":9090", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation, e.g. in tests:
//
//	promReg := prometheus.NewRegistry()
//	reg := metrics.New(metrics.Config{Enabled: true, Registry: promReg})
//
// # Disabled Metrics
//
// New returns nil when Config.Enabled is false. Components accept a nil
// *Registry and skip recording entirely.
package metrics
