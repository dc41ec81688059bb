// Package store is the persistence boundary for the per-date ledgers: a
// string key-value table with JSON helpers. Malformed or missing values
// are reported as absent so callers can reseed defaults instead of
// failing a load.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// Keys used by the tracker. Per-date keys append "_<dateKey>".
const (
	KeyCompletedDays       = "completedDays"
	KeyReminderCompletions = "reminderCompletions"
	KeyDailyMacros         = "dailyMacros"
	KeyHydration           = "hydration"
	KeyScheduleOffset      = "scheduleOffset"
	KeyWorkoutShiftPrefix  = "workoutShift_"
	KeyWorkoutAskedPrefix  = "workoutCheckAsked_"
)

func Get(db *sql.DB, key string) (string, bool, error) {
	if strings.TrimSpace(key) == "" {
		return "", false, fmt.Errorf("state key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get state %q: %w", key, err)
	}
	return value, true, nil
}

func Set(db *sql.DB, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("state key is required")
	}
	_, err := db.Exec(`
INSERT INTO app_state(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set state %q: %w", key, err)
	}
	return nil
}

func Delete(db *sql.DB, key string) error {
	if _, err := db.Exec(`DELETE FROM app_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}

// LoadJSON unmarshals the stored value for key into out. A missing key or
// a value that no longer parses both report found=false; out is left
// untouched in that case.
func LoadJSON(db *sql.DB, key string, out any) (bool, error) {
	raw, ok, err := Get(db, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, nil
	}
	return true, nil
}

func SaveJSON(db *sql.DB, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal state %q: %w", key, err)
	}
	return Set(db, key, string(raw))
}
