package delay

import (
	"fmt"
	"math"
	"time"
)

// Seconds is an amount of time in seconds as reported by the demonstrations.
type Seconds float64

// Round rounds s to millisecond precision (3 decimal places).
func Round(s float64) Seconds {
	return Seconds(math.Round(s*1000) / 1000)
}

// FromDuration converts d to Seconds rounded to 3 decimal places.
func FromDuration(d time.Duration) Seconds {
	return Round(d.Seconds())
}

// String formats s with exactly three decimals, e.g. "1.000".
func (s Seconds) String() string {
	return fmt.Sprintf("%.3f", float64(s))
}

// Duration converts s back to a time.Duration.
func (s Seconds) Duration() time.Duration {
	return time.Duration(math.Round(float64(s) * float64(time.Second)))
}
