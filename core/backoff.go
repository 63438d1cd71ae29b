package core

import "time"

const (
	defaultBackoffBase = time.Second
	defaultBackoffMax  = 5 * time.Minute
)

// ExponentialBackoff doubles the base wait for every completed attempt:
// after attempt 1 the wait is 2x the base, after attempt 2 it is 4x, and so
// on, without jitter. The zero value uses a one second base, so the waits
// are 2s, 4s, 8s...
type ExponentialBackoff struct {
	Base time.Duration
	Max  time.Duration
}

func (b ExponentialBackoff) NextDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := b.Base
	if base <= 0 {
		base = defaultBackoffBase
	}
	max := b.Max
	if max <= 0 {
		max = defaultBackoffMax
	}

	delay := base
	for i := 0; i < attempt; i++ {
		delay *= 2
		if delay >= max {
			return max
		}
	}
	return delay
}

var _ BackoffScheduler = ExponentialBackoff{}
