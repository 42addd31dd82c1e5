// Package backoff provides pluggable retry delay strategies.
package backoff

import "time"

// Strategy computes the delay before retry attempt n (1-based).
type Strategy interface {
	Delay(attempt int, base, max time.Duration) time.Duration
}

// AttemptScaled grows linearly with the attempt number: base * attempt.
type AttemptScaled struct{}

func (AttemptScaled) Delay(attempt int, base, max time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base * time.Duration(attempt)
	if max > 0 && d > max {
		d = max
	}
	return d
}

// Exponential doubles the delay each attempt: base * 2^(attempt-1).
type Exponential struct{}

func (Exponential) Delay(attempt int, base, max time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if max > 0 && d >= max {
			return max
		}
	}
	if max > 0 && d > max {
		d = max
	}
	return d
}
