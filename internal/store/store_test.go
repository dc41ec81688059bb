package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/db"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hybridfit.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func TestGetSetRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, ok, err := store.Get(sqldb, store.KeyScheduleOffset); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := store.Set(sqldb, store.KeyScheduleOffset, "3"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := store.Get(sqldb, store.KeyScheduleOffset)
	if err != nil || !ok || got != "3" {
		t.Fatalf("get after set: got=%q ok=%v err=%v", got, ok, err)
	}
	if err := store.Set(sqldb, store.KeyScheduleOffset, "4"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = store.Get(sqldb, store.KeyScheduleOffset)
	if got != "4" {
		t.Fatalf("expected overwritten value 4, got %q", got)
	}
}

func TestLoadJSONTreatsMalformedAsAbsent(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := store.Set(sqldb, store.KeyHydration, `{not json`); err != nil {
		t.Fatalf("set malformed: %v", err)
	}
	var out struct {
		Glasses int `json:"glasses"`
	}
	found, err := store.LoadJSON(sqldb, store.KeyHydration, &out)
	if err != nil {
		t.Fatalf("load malformed: %v", err)
	}
	if found {
		t.Fatalf("expected malformed value to be reported as absent")
	}
}

func TestSaveJSONRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	in := map[string]bool{"2026-08-28": true, "2026-08-29": false}
	if err := store.SaveJSON(sqldb, store.KeyCompletedDays, in); err != nil {
		t.Fatalf("save json: %v", err)
	}
	out := map[string]bool{}
	found, err := store.LoadJSON(sqldb, store.KeyCompletedDays, &out)
	if err != nil || !found {
		t.Fatalf("load json: found=%v err=%v", found, err)
	}
	if len(out) != 2 || !out["2026-08-28"] || out["2026-08-29"] {
		t.Fatalf("unexpected round trip value: %v", out)
	}
}
