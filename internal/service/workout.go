package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/schedule"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/store"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
)

// ErrFutureDate rejects recording workout outcomes for days that have not
// happened yet.
var ErrFutureDate = errors.New("cannot record a workout for a future date")

// ToggleWorkoutDay flips the recorded outcome for dateKey. Only past days
// and today may be recorded. ISO date keys compare lexically.
func ToggleWorkoutDay(db *sql.DB, dateKey string, now time.Time) (bool, error) {
	if _, err := time.ParseInLocation("2006-01-02", dateKey, time.Local); err != nil {
		return false, fmt.Errorf("invalid date %q, want YYYY-MM-DD", dateKey)
	}
	if dateKey > timeutil.DateKey(now) {
		return false, ErrFutureDate
	}
	days, err := CompletedDays(db)
	if err != nil {
		return false, err
	}
	completed := !days[dateKey]
	days[dateKey] = completed
	if err := saveCompletedDays(db, days); err != nil {
		return false, err
	}
	return completed, nil
}

// RescheduleToTomorrow pushes the remaining plan back one day by bumping
// the rotation offset, so tomorrow picks up the workout today skipped.
func RescheduleToTomorrow(db *sql.DB, now time.Time) error {
	offset, err := ScheduleOffset(db)
	if err != nil {
		return err
	}
	if err := SetScheduleOffset(db, offset+1); err != nil {
		return err
	}
	return MarkWorkoutAsked(db, timeutil.DateKey(now))
}

// WorkoutAsked reports whether the end-of-day workout check already ran
// for dateKey.
func WorkoutAsked(db *sql.DB, dateKey string) (bool, error) {
	_, found, err := store.Get(db, store.KeyWorkoutAskedPrefix+dateKey)
	return found, err
}

// MarkWorkoutAsked records that the workout check ran for dateKey.
func MarkWorkoutAsked(db *sql.DB, dateKey string) error {
	return store.Set(db, store.KeyWorkoutAskedPrefix+dateKey, "1")
}

// ShouldAskPreviousDayCheck reports whether to prompt about yesterday's
// workout: yesterday resolved to a training day, its outcome was never
// recorded, and the question has not been asked. Returns yesterday's date
// key for the prompt text.
func ShouldAskPreviousDayCheck(db *sql.DB, now time.Time) (string, bool, error) {
	yesterday := now.AddDate(0, 0, -1)
	key := timeutil.DateKey(yesterday)

	offset, err := ScheduleOffset(db)
	if err != nil {
		return key, false, err
	}
	if plan.ResolveWorkout(int(yesterday.Weekday()), offset).IsRest() {
		return key, false, nil
	}
	asked, err := WorkoutAsked(db, key)
	if err != nil || asked {
		return key, false, err
	}
	days, err := CompletedDays(db)
	if err != nil {
		return key, false, err
	}
	if _, recorded := days[key]; recorded {
		return key, false, nil
	}
	return key, true, nil
}

// ShouldAskWorkoutCheck reports whether to prompt about today's workout:
// a training day whose workout reminder time has passed without being
// completed, and the prompt has not fired yet.
func ShouldAskWorkoutCheck(db *sql.DB, day *Day) (bool, error) {
	if day.Workout.IsRest() {
		return false, nil
	}
	asked, err := WorkoutAsked(db, day.DateKey)
	if err != nil || asked {
		return false, err
	}
	id := plan.IDWorkout
	if day.Shift == model.ShiftEvening {
		id = plan.IDWorkoutEvening
	}
	r, ok := plan.Find(day.Catalog, id)
	if !ok {
		return false, nil
	}
	if _, done := day.Completions.Completions[r.ID]; done {
		return false, nil
	}
	past, err := timeutil.IsPast(schedule.DisplayTime(day.Completions, r), day.Now)
	if err != nil {
		return false, err
	}
	return past, nil
}
