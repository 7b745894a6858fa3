/*
Package delay supplies the durations of simulated tasks and the Seconds value
used to report them.

A Generator decides how long each task sleeps. Production runs use Uniform(DefaultMax),
which draws from [0, 600ms); tests substitute
Fixed or Scripted so that totals and wall times are predictable:

	gen := delay.Fixed(100 * time.Millisecond) // every task waits 100ms
	gen := delay.Scripted(10*time.Millisecond, 20*time.Millisecond)

Seconds values are rounded to millisecond precision and always print with three
decimals:

	delay.FromDuration(1234567 * time.Microsecond).String() // "1.235"
*/
package delay
