package recordstore

import (
	"context"
	"time"

	"gestao_integrada/internal/usecase/interfaces"
)

// ResilientStore wraps a backend with bounded retry on transient failures
// and a short-lived read cache. Every write invalidates the cached table,
// successful or not, so the next read goes back to the backend.
type ResilientStore struct {
	inner   interfaces.IRecordStore
	policy  RetryPolicy
	rows    *TTLCache[string, []interfaces.Row]
	headers *TTLCache[string, []string]
}

var _ interfaces.IRecordStore = (*ResilientStore)(nil)

func NewResilientStore(inner interfaces.IRecordStore, policy RetryPolicy, ttl time.Duration) *ResilientStore {
	return &ResilientStore{
		inner:   inner,
		policy:  policy,
		rows:    NewTTLCache[string, []interfaces.Row](ttl),
		headers: NewTTLCache[string, []string](ttl),
	}
}

func (s *ResilientStore) EnsureTable(ctx context.Context, table string, header []string) (bool, error) {
	defer s.invalidate(table)
	created, err := WithRetry(ctx, s.policy, func(ctx context.Context) (bool, error) {
		return s.inner.EnsureTable(ctx, table, header)
	})
	if err != nil {
		return false, &StoreError{Op: "ensure", Table: table, Err: err}
	}
	return created, nil
}

func (s *ResilientStore) Header(ctx context.Context, table string) ([]string, error) {
	header, err := s.headers.GetOrLoad(table, func() ([]string, error) {
		return WithRetry(ctx, s.policy, func(ctx context.Context) ([]string, error) {
			return s.inner.Header(ctx, table)
		})
	})
	if err != nil {
		return nil, &StoreError{Op: "header", Table: table, Err: err}
	}
	return append([]string(nil), header...), nil
}

func (s *ResilientStore) ReadAll(ctx context.Context, table string) ([]interfaces.Row, error) {
	rows, err := s.rows.GetOrLoad(table, func() ([]interfaces.Row, error) {
		return WithRetry(ctx, s.policy, func(ctx context.Context) ([]interfaces.Row, error) {
			return s.inner.ReadAll(ctx, table)
		})
	})
	if err != nil {
		return nil, &StoreError{Op: "read", Table: table, Err: err}
	}
	return copyRows(rows), nil
}

func (s *ResilientStore) Append(ctx context.Context, table string, row []string) error {
	defer s.invalidate(table)
	_, err := WithRetry(ctx, s.policy, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.inner.Append(ctx, table, row)
	})
	if err != nil {
		return &StoreError{Op: "append", Table: table, Err: err}
	}
	return nil
}

func (s *ResilientStore) ReplaceAll(ctx context.Context, table string, header []string, rows [][]string) error {
	defer s.invalidate(table)
	_, err := WithRetry(ctx, s.policy, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.inner.ReplaceAll(ctx, table, header, rows)
	})
	if err != nil {
		return &StoreError{Op: "replace", Table: table, Err: err}
	}
	return nil
}

func (s *ResilientStore) FindAndSetCell(ctx context.Context, table, searchValue string, column int, value string) (bool, error) {
	defer s.invalidate(table)
	found, err := WithRetry(ctx, s.policy, func(ctx context.Context) (bool, error) {
		return s.inner.FindAndSetCell(ctx, table, searchValue, column, value)
	})
	if err != nil {
		return false, &StoreError{Op: "set-cell", Table: table, Err: err}
	}
	return found, nil
}

func (s *ResilientStore) invalidate(table string) {
	s.rows.Invalidate(table)
	s.headers.Invalidate(table)
}

func copyRows(rows []interfaces.Row) []interfaces.Row {
	out := make([]interfaces.Row, len(rows))
	for i, r := range rows {
		c := make(interfaces.Row, len(r))
		for k, v := range r {
			c[k] = v
		}
		out[i] = c
	}
	return out
}
