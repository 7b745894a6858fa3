// Package scheduling groups the primitives that start and fire asynchronous work:
//
//   - launch: joined groups, ordered fan-out and detached launches with panic recovery
//   - trigger: named triggers and a cron scheduler that fires them
//
// Launching:
//
//	results, err := launch.All(ctx,
//		func(ctx context.Context) (int, error) { return 1, nil },
//		func(ctx context.Context) (int, error) { return 2, nil },
//	)
//
//	d := &launch.Detacher{OnFailure: func(res launch.Result) { log.Println(res.Error) }}
//	d.Go(ctx, "background", task)
//	d.Wait()
//
// Triggering:
//
//	s, _ := trigger.NewScheduler(trigger.Config{
//		Target:  r,
//		Trigger: trigger.Sequential,
//		Cron:    "*/10 * * * * *",
//	})
//	s.Start()
//	defer func() { <-s.Stop() }()
//
// All components are safe for concurrent use and honor context cancellation
// where they block.
package scheduling
