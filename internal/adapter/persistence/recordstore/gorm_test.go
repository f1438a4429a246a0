package recordstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	s, err := NewGormStore(db)
	require.NoError(t, err)
	return s
}

func TestGormStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStore(t)

	err := s.Append(ctx, "quotes", []string{"x"})
	require.ErrorIs(t, err, ErrTableNotFound)

	created, err := s.EnsureTable(ctx, "quotes", []string{"visual_id", "client_name", "status"})
	require.NoError(t, err)
	require.True(t, created)
	created, err = s.EnsureTable(ctx, "quotes", []string{"visual_id"})
	require.NoError(t, err)
	require.False(t, created)

	require.NoError(t, s.Append(ctx, "quotes", []string{"45361-1-10032024", "Acme", "PENDING"}))
	require.NoError(t, s.Append(ctx, "quotes", []string{"45361-2-10032024", "Beta", "PENDING"}))

	found, err := s.FindAndSetCell(ctx, "quotes", "45361-2-10032024", 2, "APPROVED")
	require.NoError(t, err)
	require.True(t, found)

	rows, err := s.ReadAll(ctx, "quotes")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "PENDING", rows[0]["status"])
	require.Equal(t, "APPROVED", rows[1]["status"])

	require.NoError(t, s.ReplaceAll(ctx, "quotes", []string{"visual_id", "client_name", "status"}, [][]string{{"a", "b", "c"}}))
	rows, err = s.ReadAll(ctx, "quotes")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "b", rows[0]["client_name"])

	header, err := s.Header(ctx, "quotes")
	require.NoError(t, err)
	require.Equal(t, []string{"visual_id", "client_name", "status"}, header)
}
