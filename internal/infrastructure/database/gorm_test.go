package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gestao_integrada/internal/config"
)

func TestOpenGormSQLite(t *testing.T) {
	db, err := OpenGorm(config.DriverSQLite, ":memory:")
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	require.Equal(t, 1, one)
}

func TestOpenGormRejectsNonSQLDriver(t *testing.T) {
	_, err := OpenGorm(config.DriverDynamoDB, "")
	require.Error(t, err)
}
