package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/vnykmshr/asyncflow/internal/config"
	"github.com/vnykmshr/asyncflow/pkg/delay"
	"github.com/vnykmshr/asyncflow/pkg/logsink"
	"github.com/vnykmshr/asyncflow/pkg/metrics"
	"github.com/vnykmshr/asyncflow/pkg/runner"
)

const shutdownTimeout = 5 * time.Second

// app carries the state shared by every command. Before fills it from the
// config file and global flags; After releases it.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// generator overrides the default uniform delays.
	generator delay.Generator

	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Registry
	server  *http.Server
}

func newApp(stdout, stderr io.Writer) *cli.App {
	a := &app{stdout: stdout, stderr: stderr}
	return a.command()
}

func (a *app) command() *cli.App {
	return &cli.App{
		Name:      "asyncflow",
		Usage:     "compare sequential and concurrent batches of simulated tasks",
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"ASYNCFLOW_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable ANSI colors in the demonstration output",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "serve Prometheus metrics on `ADDR`/metrics",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "operational log level (debug, info, warn, error)",
			},
		},
		Before: a.before,
		After:  a.after,
		// Exit codes are mapped in main.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			a.runCommand(),
			a.scheduleCommand(),
			a.listCommand(),
		},
	}
}

func (a *app) before(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	var o config.Overrides
	if c.IsSet("log-level") {
		level := c.String("log-level")
		o.LogLevel = &level
	}
	if c.Bool("no-color") {
		color := false
		o.Color = &color
	}
	if c.IsSet("metrics-addr") {
		addr := c.String("metrics-addr")
		o.MetricsAddr = &addr
	}
	if a.cfg, err = cfg.Merge(o); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: a.cfg.SlogLevel()}))

	if a.cfg.MetricsAddr != "" {
		if err := a.serveMetrics(a.cfg.MetricsAddr); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	return nil
}

func (a *app) after(*cli.Context) error {
	if a.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Warn("metrics server shutdown failed", "error", err)
	}
	return nil
}

// serveMetrics registers the runner metrics on a dedicated registry and
// serves it in the background.
func (a *app) serveMetrics(addr string) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = metrics.New(metrics.Config{Enabled: true, Registry: reg})

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	a.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server failed", "error", err)
		}
	}()
	a.logger.Info("serving metrics", "addr", ln.Addr().String(), "path", "/metrics")
	return nil
}

// newRunner builds a runner writing to stdout with the app's settings.
func (a *app) newRunner() *runner.Runner {
	var sink logsink.Sink = logsink.NewWriter(a.stdout, a.cfg.Color)
	if a.logger.Enabled(context.Background(), slog.LevelDebug) {
		sink = logsink.Tee(sink, logsink.NewSlog(a.logger))
	}

	return runner.New(runner.Config{
		Generator: a.generator,
		Sink:      sink,
		Metrics:   a.metrics,
		OnDetachedError: func(label string, err error) {
			a.logger.Warn("detached batch failed", "label", label, "error", err)
		},
	})
}
