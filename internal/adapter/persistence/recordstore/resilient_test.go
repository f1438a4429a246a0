package recordstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	*MemoryStore
	reads int
}

func newCountingStore() *countingStore {
	c := &countingStore{MemoryStore: NewMemoryStore()}
	return c
}

func noSleepPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   time.Millisecond,
		Classify:    IsTransient,
		NewTimer:    func() backoff.Timer { return &recordingTimer{} },
	}
}

func TestResilientStore_CachesReadsAndInvalidatesOnWrite(t *testing.T) {
	ctx := context.Background()
	inner := newCountingStore()
	inner.Fault = func(op, _ string) error {
		if op == "read" {
			inner.reads++
		}
		return nil
	}
	s := NewResilientStore(inner, noSleepPolicy(), time.Minute)

	_, err := s.EnsureTable(ctx, "quotes", []string{"visual_id", "status"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rows, err := s.ReadAll(ctx, "quotes")
		require.NoError(t, err)
		require.Empty(t, rows)
	}
	require.Equal(t, 1, inner.reads)

	require.NoError(t, s.Append(ctx, "quotes", []string{"a", "PENDING"}))
	rows, err := s.ReadAll(ctx, "quotes")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 2, inner.reads)

	found, err := s.FindAndSetCell(ctx, "quotes", "a", 1, "APPROVED")
	require.NoError(t, err)
	require.True(t, found)
	rows, err = s.ReadAll(ctx, "quotes")
	require.NoError(t, err)
	require.Equal(t, "APPROVED", rows[0]["status"])
}

func TestResilientStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewResilientStore(NewMemoryStore(), noSleepPolicy(), time.Minute)
	_, err := s.EnsureTable(ctx, "clients", []string{"name"})
	require.NoError(t, err)
	require.NoError(t, s.Append(ctx, "clients", []string{"Acme"}))

	rows, err := s.ReadAll(ctx, "clients")
	require.NoError(t, err)
	rows[0]["name"] = "mutated"

	rows, err = s.ReadAll(ctx, "clients")
	require.NoError(t, err)
	require.Equal(t, "Acme", rows[0]["name"])
}

func TestResilientStore_RetriesTransientFailures(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	_, err := inner.EnsureTable(ctx, "work_orders", []string{"id"})
	require.NoError(t, err)

	failures := 2
	inner.Fault = func(op, _ string) error {
		if op == "append" && failures > 0 {
			failures--
			return &StatusError{StatusCode: 429}
		}
		return nil
	}
	s := NewResilientStore(inner, noSleepPolicy(), time.Minute)

	require.NoError(t, s.Append(ctx, "work_orders", []string{"1710000000"}))
	rows, err := s.ReadAll(ctx, "work_orders")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestResilientStore_WrapsPermanentFailures(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	calls := 0
	inner.Fault = func(string, string) error {
		calls++
		return errors.New("permission denied")
	}
	s := NewResilientStore(inner, noSleepPolicy(), time.Minute)

	err := s.Append(ctx, "work_orders", []string{"1"})
	var se *StoreError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "append", se.Op)
	require.Equal(t, 1, calls)
}
