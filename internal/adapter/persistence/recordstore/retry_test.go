package recordstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"
)

// recordingTimer fires immediately and remembers every requested wait.
type recordingTimer struct {
	waits []time.Duration
	c     chan time.Time
}

func (r *recordingTimer) Start(d time.Duration) {
	r.waits = append(r.waits, d)
	r.c = make(chan time.Time, 1)
	r.c <- time.Time{}
}

func (r *recordingTimer) Stop() {}

func (r *recordingTimer) C() <-chan time.Time { return r.c }

func testPolicy(rec *recordingTimer) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   time.Millisecond,
		Classify:    IsTransient,
		NewTimer:    func() backoff.Timer { return rec },
	}
}

func TestWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("success first try", func(t *testing.T) {
		rec := &recordingTimer{}
		calls := 0
		got, err := WithRetry(ctx, testPolicy(rec), func(context.Context) (int, error) {
			calls++
			return 7, nil
		})
		require.NoError(t, err)
		require.Equal(t, 7, got)
		require.Equal(t, 1, calls)
		require.Empty(t, rec.waits)
	})

	t.Run("recovers after transient failures", func(t *testing.T) {
		rec := &recordingTimer{}
		calls := 0
		got, err := WithRetry(ctx, testPolicy(rec), func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", &StatusError{StatusCode: 429}
			}
			return "ok", nil
		})
		require.NoError(t, err)
		require.Equal(t, "ok", got)
		require.Equal(t, 3, calls)
		require.Equal(t, []time.Duration{2 * time.Millisecond, 3 * time.Millisecond}, rec.waits)
	})

	t.Run("permanent error is not retried", func(t *testing.T) {
		rec := &recordingTimer{}
		calls := 0
		perm := errors.New("forbidden")
		_, err := WithRetry(ctx, testPolicy(rec), func(context.Context) (int, error) {
			calls++
			return 0, perm
		})
		require.ErrorIs(t, err, perm)
		require.NotErrorIs(t, err, ErrRetriesExhausted)
		require.Equal(t, 1, calls)
		require.Empty(t, rec.waits)
	})

	t.Run("exhaustion keeps the last error", func(t *testing.T) {
		rec := &recordingTimer{}
		calls := 0
		_, err := WithRetry(ctx, testPolicy(rec), func(context.Context) (int, error) {
			calls++
			return 0, &StatusError{StatusCode: 500}
		})
		require.ErrorIs(t, err, ErrRetriesExhausted)
		var se *StatusError
		require.True(t, errors.As(err, &se))
		require.Equal(t, 5, calls)
		require.Equal(t, []time.Duration{2 * time.Millisecond, 3 * time.Millisecond, 5 * time.Millisecond, 9 * time.Millisecond}, rec.waits)
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		p := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Hour}
		_, err := WithRetry(cctx, p, func(context.Context) (int, error) {
			return 0, &StatusError{StatusCode: 503}
		})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("single attempt does not wait", func(t *testing.T) {
		rec := &recordingTimer{}
		p := testPolicy(rec)
		p.MaxAttempts = 1
		calls := 0
		_, err := WithRetry(ctx, p, func(context.Context) (int, error) {
			calls++
			return 0, &StatusError{StatusCode: 502}
		})
		require.ErrorIs(t, err, ErrRetriesExhausted)
		require.Equal(t, 1, calls)
		require.Empty(t, rec.waits)
	})
}

func TestDefaultRetryPolicy_Backoff(t *testing.T) {
	p := DefaultRetryPolicy()
	require.Equal(t, 5, p.MaxAttempts)
	require.Equal(t, 2*time.Second, p.Backoff(0))
	require.Equal(t, 17*time.Second, p.Backoff(4))
}
