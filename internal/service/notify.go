package service

import (
	"database/sql"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/notify"
)

// RefreshNotifications rewrites the stored notification plan from today's
// active catalog.
func RefreshNotifications(db *sql.DB, now time.Time) ([]notify.Entry, error) {
	day, err := LoadDay(db, now)
	if err != nil {
		return nil, err
	}
	if err := notify.Refresh(db, day.Catalog); err != nil {
		return nil, err
	}
	return notify.List(db)
}
