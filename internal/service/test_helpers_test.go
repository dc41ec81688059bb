package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/db"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hybridfit.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

// at returns a local time on the given date for deterministic day state.
func at(year int, month time.Month, dayOfMonth, hour, min int) time.Time {
	return time.Date(year, month, dayOfMonth, hour, min, 0, 0, time.Local)
}
