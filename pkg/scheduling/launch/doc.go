/*
Package launch starts concurrent work in the two shapes the demonstrations need:
joined and detached.

Joined work:

	totals, err := launch.All(ctx,
		func(ctx context.Context) (int, error) { return work(ctx, "a") },
		func(ctx context.Context) (int, error) { return work(ctx, "b") },
	)

All returns only after every function has returned. Results come back in the
order the functions were passed (initiation order), regardless of which one
finished first. The first error cancels the siblings' context and is returned.

Detached work:

	var d launch.Detacher
	d.Go(ctx, "a", launch.TaskFunc(func(ctx context.Context) error {
		return work(ctx, "a")
	}))
	// d.Go returned immediately; nobody waits for "a".

Detached tasks ignore the caller's cancellation and their results are
discarded. Errors and recovered panics are passed to Detacher.OnFailure when it
is set, which keeps failures countable without handing them back to the
launcher. Detacher.Wait exists so a process can drain detached work before it
exits.

Panics:

Every launched task runs through Run, which recovers a panic into an error
wrapping errors.ErrTaskPanicked with the stack trace attached.
*/
package launch
