package runner_test

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vnykmshr/asyncflow/pkg/delay"
	"github.com/vnykmshr/asyncflow/pkg/logsink"
	"github.com/vnykmshr/asyncflow/pkg/runner"
)

// Example_sequentialBatch shows the output of one sequential batch with
// every task waiting 1ms.
func Example_sequentialBatch() {
	r := runner.New(runner.Config{
		Generator: delay.Fixed(time.Millisecond),
		Sink:      logsink.NewWriter(os.Stdout, false),
	})

	total, err := r.SequentialBatch(context.Background(), "a")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("returned", total)

	// Output:
	// Beginning example 1-a...
	// Waiting 0.001 seconds...
	// 1
	// Waiting 0.001 seconds...
	// 2
	// Waiting 0.001 seconds...
	// 3
	// Waiting 0.001 seconds...
	// 4
	// Waiting 0.001 seconds...
	// 5
	// Waiting 0.001 seconds...
	// 6
	// Waiting 0.001 seconds...
	// 7
	// Waiting 0.001 seconds...
	// 8
	// Waiting 0.001 seconds...
	// 9
	// Waiting 0.001 seconds...
	// 10
	// Example 1-a complete. Total seconds: 0.010
	// returned 0.010
}

// Example_joined runs two batches side by side and waits for both.
func Example_joined() {
	r := runner.New(runner.Config{Generator: delay.Fixed(10 * time.Millisecond)})

	a, b, err := r.Joined(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("totals:", a, b)
	fmt.Println("wall time under 150ms:", r.Stopwatch().Elapsed() < 0.15)
	// Output:
	// totals: 0.100 0.100
	// wall time under 150ms: true
}
