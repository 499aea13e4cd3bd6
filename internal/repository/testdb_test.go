package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"mleague-tracker/internal/config"
	"mleague-tracker/internal/database"
	"mleague-tracker/internal/db"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh in-memory database with migrations applied.
// Shared cache keeps the database alive across the pool's connections;
// a plain :memory: DSN would give every connection its own empty DB.
func newTestDB(t *testing.T) (*sql.DB, *db.Queries) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	sqlDB, err := database.New(&config.Config{DBPath: dsn}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return sqlDB, db.New(sqlDB)
}
