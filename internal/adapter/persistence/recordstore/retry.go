package recordstore

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds how transient store failures are retried.
//
// The wait before retry n (0-based) is (2^n + 1) * BaseDelay.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Classify    func(error) bool
	// NewTimer builds the timer used between attempts. Nil means a real timer.
	NewTimer func() backoff.Timer
}

// DefaultRetryPolicy retries 5 times with a one second base.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 5, BaseDelay: time.Second, Classify: IsTransient}
}

func (p RetryPolicy) Backoff(attempt int) time.Duration {
	return time.Duration((1<<attempt)+1) * p.BaseDelay
}

// exponentialBackOff yields RetryPolicy.Backoff for successive attempts.
type exponentialBackOff struct {
	policy  RetryPolicy
	attempt int
}

func (b *exponentialBackOff) NextBackOff() time.Duration {
	d := b.policy.Backoff(b.attempt)
	b.attempt++
	return d
}

func (b *exponentialBackOff) Reset() { b.attempt = 0 }

// WithRetry runs op until it succeeds, fails with a non-transient error, or
// MaxAttempts is reached. Exhaustion wraps ErrRetriesExhausted and the last error.
func WithRetry[T any](ctx context.Context, p RetryPolicy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	classify := p.Classify
	if classify == nil {
		classify = IsTransient
	}
	var timer backoff.Timer
	if p.NewTimer != nil {
		timer = p.NewTimer()
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(&exponentialBackOff{policy: p}, uint64(attempts-1)),
		ctx,
	)

	calls := 0
	transient := false
	res, err := backoff.RetryNotifyWithTimerAndData(func() (T, error) {
		calls++
		res, err := op(ctx)
		if err == nil {
			return res, nil
		}
		transient = classify(err)
		if !transient {
			return zero, backoff.Permanent(err)
		}
		return zero, err
	}, b, func(err error, wait time.Duration) {
		log.Printf("[store][retry] transient failure attempt=%d/%d wait=%s err=%v", calls, attempts, wait, err)
	}, timer)
	if err == nil {
		return res, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return zero, ctxErr
	}
	if transient {
		return zero, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, calls, err)
	}
	return zero, err
}
