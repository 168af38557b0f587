package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	for _, stmt := range []string{
		`CREATE TABLE "user" (
			username varchar(255) PRIMARY KEY,
			password varchar(255) NOT NULL,
			bio text NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE feed (
			id integer PRIMARY KEY AUTOINCREMENT,
			username varchar(255) NOT NULL REFERENCES "user" (username),
			datetime datetime NOT NULL,
			message text NOT NULL
		)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}
