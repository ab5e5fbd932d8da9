package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"darae_api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB はテストごとに独立したインメモリSQLiteを作り、スキーマを作成します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"

	db, err := repository.NewDB(repository.DriverSQLite, dsn, testLogger)
	require.NoError(t, err, "failed to connect database for testing")
	require.NoError(t, repository.AutoMigrate(db), "failed to migrate database for testing")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func ptr[T any](v T) *T {
	return &v
}

var ctx = context.Background()
