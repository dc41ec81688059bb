package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/hydration"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/macros"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/schedule"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/store"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
)

// Day is the fully resolved state for one calendar day: the workout on the
// rotated plan, the active shift, the matching reminder catalog, and the
// per-date ledgers after rollover and drift checks.
type Day struct {
	Now         time.Time
	DateKey     string
	Offset      int
	Workout     model.WorkoutDay
	Shift       model.Shift
	Catalog     []model.Reminder
	Completions model.CompletionData
	Macros      model.DailyMacros
	Hydration   model.HydrationData
}

// ScheduleOffset returns the stored plan rotation offset, 0 when unset.
func ScheduleOffset(db *sql.DB) (int, error) {
	var offset int
	found, err := store.LoadJSON(db, store.KeyScheduleOffset, &offset)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	return ((offset % 7) + 7) % 7, nil
}

// SetScheduleOffset stores the plan rotation offset normalized to [0,7).
func SetScheduleOffset(db *sql.DB, offset int) error {
	return store.SaveJSON(db, store.KeyScheduleOffset, ((offset%7)+7)%7)
}

// ShiftForDate returns the stored shift for dateKey, defaulting to morning.
func ShiftForDate(db *sql.DB, dateKey string) (model.Shift, error) {
	raw, found, err := store.Get(db, store.KeyWorkoutShiftPrefix+dateKey)
	if err != nil {
		return "", err
	}
	shift := model.Shift(raw)
	if !found || !shift.IsValid() {
		return model.ShiftMorning, nil
	}
	return shift, nil
}

// SetShiftForDate stores the shift choice for dateKey.
func SetShiftForDate(db *sql.DB, dateKey string, shift model.Shift) error {
	if !shift.IsValid() {
		return fmt.Errorf("invalid shift %q", shift)
	}
	return store.Set(db, store.KeyWorkoutShiftPrefix+dateKey, string(shift))
}

// LoadDay assembles the day state for now: it resolves the workout on the
// rotated plan, applies the rollover reset to every per-date ledger, runs
// the morning-to-evening auto switch, and persists whatever changed.
func LoadDay(db *sql.DB, now time.Time) (*Day, error) {
	dateKey := timeutil.DateKey(now)

	offset, err := ScheduleOffset(db)
	if err != nil {
		return nil, err
	}
	workout := plan.ResolveWorkout(int(now.Weekday()), offset)

	var completions model.CompletionData
	if found, err := store.LoadJSON(db, store.KeyReminderCompletions, &completions); err != nil {
		return nil, err
	} else if !found {
		completions = model.NewCompletionData(dateKey)
	}
	completions, completionsReset := schedule.ForDate(completions, dateKey)

	shift, err := ShiftForDate(db, dateKey)
	if err != nil {
		return nil, err
	}
	if switched := schedule.AutoSwitch(workout.IsRest(), shift, completions, now); switched != shift {
		shift = switched
		if err := SetShiftForDate(db, dateKey, shift); err != nil {
			return nil, err
		}
	}
	catalog := plan.SelectCatalog(workout.IsRest(), shift)

	var dailyMacros model.DailyMacros
	if found, err := store.LoadJSON(db, store.KeyDailyMacros, &dailyMacros); err != nil {
		return nil, err
	} else if !found {
		dailyMacros = model.NewDailyMacros(dateKey)
	}
	dailyMacros, macrosReset := macros.ForDate(dailyMacros, dateKey)

	var hydra model.HydrationData
	if found, err := store.LoadJSON(db, store.KeyHydration, &hydra); err != nil {
		return nil, err
	} else if !found {
		hydra = model.NewHydrationData(dateKey)
	}
	hydra, hydrationReset := hydration.ForDate(hydra, dateKey)

	day := &Day{
		Now:         now,
		DateKey:     dateKey,
		Offset:      offset,
		Workout:     workout,
		Shift:       shift,
		Catalog:     catalog,
		Completions: completions,
		Macros:      dailyMacros,
		Hydration:   hydra,
	}

	if completionsReset {
		if err := day.saveCompletions(db); err != nil {
			return nil, err
		}
	}
	if macrosReset {
		if err := day.saveMacros(db); err != nil {
			return nil, err
		}
	}
	if hydrationReset {
		if err := day.saveHydration(db); err != nil {
			return nil, err
		}
	}
	return day, nil
}

func (d *Day) saveCompletions(db *sql.DB) error {
	return store.SaveJSON(db, store.KeyReminderCompletions, d.Completions)
}

func (d *Day) saveMacros(db *sql.DB) error {
	return store.SaveJSON(db, store.KeyDailyMacros, d.Macros)
}

func (d *Day) saveHydration(db *sql.DB) error {
	return store.SaveJSON(db, store.KeyHydration, d.Hydration)
}

// CompletedDays returns the recorded workout-day outcomes keyed by date.
func CompletedDays(db *sql.DB) (map[string]bool, error) {
	days := map[string]bool{}
	if _, err := store.LoadJSON(db, store.KeyCompletedDays, &days); err != nil {
		return nil, err
	}
	if days == nil {
		days = map[string]bool{}
	}
	return days, nil
}

func saveCompletedDays(db *sql.DB, days map[string]bool) error {
	return store.SaveJSON(db, store.KeyCompletedDays, days)
}
