/*
Package trigger maps trigger names to runner strategies and fires them,
either once or on a cron schedule.

Firing once:

	name, err := trigger.Parse("parallel-await-all")
	if err != nil {
		return err
	}
	err = trigger.Fire(ctx, r, name)

Scheduling:

	s, err := trigger.NewScheduler(trigger.Config{
		Target:  r,
		Trigger: trigger.ParallelBest,
		Cron:    "@every 5s",
		MaxRuns: 3,
	})
	if err != nil {
		return err
	}
	if err := s.Start(); err != nil {
		return err
	}
	<-s.Done()
	<-s.Stop()

Cron expressions accept an optional leading seconds field and the usual
descriptors (@every, @hourly, ...). A tick that arrives while the previous
firing is still running is skipped and recorded with the "skipped" outcome.
*/
package trigger
