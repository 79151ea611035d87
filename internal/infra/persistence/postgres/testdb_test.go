package postgres

import (
	"io"
	"log/slog"
	"testing"

	"its/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = ":memory:"

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
