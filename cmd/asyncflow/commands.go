package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/vnykmshr/asyncflow/internal/config"
	aferrors "github.com/vnykmshr/asyncflow/pkg/common/errors"
	"github.com/vnykmshr/asyncflow/pkg/runner"
	"github.com/vnykmshr/asyncflow/pkg/scheduling/trigger"
)

func (a *app) runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "fire one trigger and wait for all of its work",
		ArgsUsage: "<trigger>",
		Action:    a.runAction,
	}
}

func (a *app) runAction(c *cli.Context) error {
	name, err := triggerArg(c)
	if err != nil {
		return err
	}

	r := a.newRunner()
	a.logger.Debug("firing trigger", "trigger", name)

	err = trigger.Fire(c.Context, r, name)
	// Detached batches keep running after Fire returns.
	r.Wait()
	if err != nil {
		if aferrors.IsCanceled(err) {
			return cli.Exit("interrupted", 130)
		}
		return cli.Exit(fmt.Sprintf("%s failed: %v", name, err), 1)
	}

	a.printStopwatch(r)
	return nil
}

func (a *app) scheduleCommand() *cli.Command {
	return &cli.Command{
		Name:      "schedule",
		Usage:     "fire a trigger on a cron schedule",
		ArgsUsage: "<trigger>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "cron",
				Usage: `cron expression with optional seconds, e.g. "*/10 * * * * *" or "@every 5s"`,
			},
			&cli.IntFlag{
				Name:  "max-runs",
				Usage: "stop after `N` firings (0 = until interrupted)",
			},
		},
		Action: a.scheduleAction,
	}
}

func (a *app) scheduleAction(c *cli.Context) error {
	name, err := triggerArg(c)
	if err != nil {
		return err
	}

	var o config.Overrides
	if c.IsSet("cron") {
		cron := c.String("cron")
		o.Cron = &cron
	}
	if c.IsSet("max-runs") {
		maxRuns := c.Int("max-runs")
		o.MaxRuns = &maxRuns
	}
	cfg, err := a.cfg.Merge(o)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if cfg.Schedule.Cron == "" {
		return cli.Exit("no schedule: pass --cron or set schedule.cron in the config file", 2)
	}

	r := a.newRunner()
	s, err := trigger.NewScheduler(trigger.Config{
		Target:  r,
		Trigger: name,
		Cron:    cfg.Schedule.Cron,
		MaxRuns: cfg.Schedule.MaxRuns,
		Metrics: a.metrics,
		OnError: func(name trigger.Name, err error) {
			a.logger.Error("trigger failed", "trigger", name, "error", err)
		},
		OnSkip: func(name trigger.Name) {
			a.logger.Warn("previous firing still running, tick skipped", "trigger", name)
		},
	})
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	if err := s.Start(); err != nil {
		return err
	}
	a.logger.Info("schedule started",
		"trigger", name,
		"cron", cfg.Schedule.Cron,
		"max_runs", cfg.Schedule.MaxRuns,
		"next", s.Next())

	select {
	case <-c.Context.Done():
		a.logger.Info("interrupted, stopping schedule")
	case <-s.Done():
	}
	<-s.Stop()
	r.Wait()

	a.logger.Info("schedule stopped", "runs", s.Runs())
	a.printStopwatch(r)
	return nil
}

func (a *app) listCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "list the available triggers",
		Action: a.listAction,
	}
}

func (a *app) listAction(*cli.Context) error {
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, name := range trigger.Names() {
		fmt.Fprintf(tw, "%s\t%s\n", name, name.Describe())
	}
	return tw.Flush()
}

func (a *app) printStopwatch(r *runner.Runner) {
	if display := r.Stopwatch().Display(); display != "" {
		fmt.Fprintf(a.stdout, "Elapsed: %s\n", display)
	}
}

func triggerArg(c *cli.Context) (trigger.Name, error) {
	if c.NArg() != 1 {
		return "", cli.Exit("expected exactly one trigger; see `asyncflow list`", 2)
	}
	name, err := trigger.Parse(c.Args().First())
	if err != nil {
		return "", cli.Exit(err.Error(), 2)
	}
	return name, nil
}
