package puzzle

import "time"

// WithClock substitutes the time source used to measure parts.
func WithClock(now func() time.Time) RunOption {
	return func(o *RunOptions) {
		o.now = now
	}
}
