package runner

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/asyncflow/pkg/delay"
	"github.com/vnykmshr/asyncflow/pkg/metrics"
)

// Zero delays isolate the orchestration overhead of each batch shape.

func BenchmarkSequentialBatch(b *testing.B) {
	r := New(Config{Generator: delay.Fixed(0)})
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := r.SequentialBatch(ctx, "a"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConcurrentBatch(b *testing.B) {
	r := New(Config{Generator: delay.Fixed(0)})
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := r.ConcurrentBatch(ctx, "a"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFullyConcurrentWithMetrics(b *testing.B) {
	reg := metrics.New(metrics.Config{Enabled: true, Registry: prometheus.NewRegistry()})
	r := New(Config{Generator: delay.Fixed(0), Metrics: reg})
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := r.FullyConcurrent(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
