// Package notify maintains the persisted notification plan. The CLI has
// no background process, so the plan is a table an OS scheduler (cron,
// launchd, systemd timers) can be pointed at; refresh rewrites it to
// match the active reminder catalog and the hydration window.
package notify

import (
	"database/sql"
	"fmt"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/hydration"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
)

// Kind distinguishes plan entries.
type Kind string

const (
	KindReminder  Kind = "reminder"
	KindHydration Kind = "hydration"
)

// Entry is one scheduled daily notification.
type Entry struct {
	ID         int64
	Kind       Kind
	ReminderID string
	Title      string
	Body       string
	Hour       int
	Minute     int
}

// Refresh replaces the stored plan with one derived from catalog plus the
// hourly hydration window.
func Refresh(db *sql.DB, catalog []model.Reminder) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin notification refresh: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM scheduled_notifications`); err != nil {
		return fmt.Errorf("clear notification plan: %w", err)
	}

	insert, err := tx.Prepare(`
		INSERT INTO scheduled_notifications (kind, reminder_id, title, body, hour, minute)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare notification insert: %w", err)
	}
	defer insert.Close()

	for _, r := range catalog {
		mins, err := timeutil.ToMinutes(r.Time)
		if err != nil {
			return fmt.Errorf("reminder %s time: %w", r.ID, err)
		}
		title := r.Title
		if r.Icon != "" {
			title = r.Icon + " " + r.Title
		}
		if _, err := insert.Exec(string(KindReminder), r.ID, title, r.Body, mins/60, mins%60); err != nil {
			return fmt.Errorf("insert reminder notification %s: %w", r.ID, err)
		}
	}

	for hour := hydration.ReminderStartHour; hour <= hydration.ReminderEndHour; hour++ {
		body := fmt.Sprintf("Drink a glass of water (%dml). Goal: %dml today.",
			hydration.GlassSizeML, hydration.DailyGoalML)
		if _, err := insert.Exec(string(KindHydration), "", "💧 Hydration check", body, hour, 0); err != nil {
			return fmt.Errorf("insert hydration notification: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit notification refresh: %w", err)
	}
	return nil
}

// List returns the stored plan in firing order.
func List(db *sql.DB) ([]Entry, error) {
	rows, err := db.Query(`
		SELECT id, kind, reminder_id, title, body, hour, minute
		FROM scheduled_notifications
		ORDER BY hour, minute, id`)
	if err != nil {
		return nil, fmt.Errorf("query notification plan: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind string
		if err := rows.Scan(&e.ID, &kind, &e.ReminderID, &e.Title, &e.Body, &e.Hour, &e.Minute); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		e.Kind = Kind(kind)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return entries, nil
}

// Clear drops every stored notification.
func Clear(db *sql.DB) error {
	if _, err := db.Exec(`DELETE FROM scheduled_notifications`); err != nil {
		return fmt.Errorf("clear notification plan: %w", err)
	}
	return nil
}
