package oauth1

import (
	"context"
	"fmt"
	"time"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/skuvault/etsyAccess/core"
)

const defaultMaxAttempts = 3

// ExchangeStatus is the explicit outcome variant of a retried exchange
// operation.
type ExchangeStatus string

const (
	ExchangeStatusOK        ExchangeStatus = "ok"
	ExchangeStatusExhausted ExchangeStatus = "exhausted"
	ExchangeStatusCanceled  ExchangeStatus = "canceled"
)

// ExchangeResult reports the outcome of a retried exchange operation. A
// failed handshake carries its reason, the last attempt error, and the
// number of attempts made instead of an indistinguishable empty credentials
// value.
type ExchangeResult struct {
	Status      ExchangeStatus
	State       ExchangeState
	Credentials core.Credentials
	Attempts    int
	LastErr     error
}

func (r ExchangeResult) Ok() bool {
	return r.Status == ExchangeStatusOK
}

// RetryEvent describes one scheduled retry.
type RetryEvent struct {
	Operation     string
	CorrelationID string
	Attempt       int
	Wait          time.Duration
	Err           error
}

// RetryPolicy wraps an exchange operation with bounded retries and
// exponential backoff. Attempt errors never escape Run; they are logged,
// reported through OnRetry, and folded into the result.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     core.BackoffScheduler
	Sleep       func(ctx context.Context, delay time.Duration) error
	OnRetry     func(event RetryEvent)
	Logger      core.Logger
}

type attemptFunc func(ctx context.Context, attempt int) (core.Credentials, error)

// Run executes the attempt function until it succeeds, the attempt budget is
// spent, or the context is canceled during a backoff wait.
func (p RetryPolicy) Run(ctx context.Context, operation string, correlationID string, attempt attemptFunc) ExchangeResult {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = defaultMaxAttempts
	}
	backoff := p.Backoff
	if backoff == nil {
		backoff = core.ExponentialBackoff{}
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = waitWithContext
	}
	logger := glog.Ensure(p.Logger)

	var lastErr error
	for n := 1; n <= maxAttempts; n++ {
		credentials, err := attempt(ctx, n)
		if err == nil {
			return ExchangeResult{
				Status:      ExchangeStatusOK,
				Credentials: credentials,
				Attempts:    n,
			}
		}
		lastErr = err
		if n == maxAttempts {
			break
		}

		wait := backoff.NextDelay(n)
		logger.Warn("retrying "+operation,
			"operation", operation,
			"correlation_id", correlationID,
			"attempt", n,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error(),
		)
		if p.OnRetry != nil {
			p.OnRetry(RetryEvent{
				Operation:     operation,
				CorrelationID: correlationID,
				Attempt:       n,
				Wait:          wait,
				Err:           err,
			})
		}
		if sleepErr := sleep(ctx, wait); sleepErr != nil {
			return ExchangeResult{
				Status:   ExchangeStatusCanceled,
				Attempts: n,
				LastErr:  sleepErr,
			}
		}
	}
	return ExchangeResult{
		Status:   ExchangeStatusExhausted,
		Attempts: maxAttempts,
		LastErr:  fmt.Errorf("%w: %w", ErrRetriesExhausted, lastErr),
	}
}

func waitWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
