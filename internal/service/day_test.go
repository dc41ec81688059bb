package service_test

import (
	"testing"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
)

// 2026-08-31 is a Monday: a training day on the base plan.
var trainingMonday = time.Date(2026, time.August, 31, 5, 50, 0, 0, time.Local)

func TestLoadDayTrainingMorning(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	day, err := service.LoadDay(sqldb, trainingMonday)
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if day.Workout.IsRest() {
		t.Fatal("Monday resolved as a rest day")
	}
	if day.Shift != model.ShiftMorning {
		t.Errorf("shift = %s, want morning", day.Shift)
	}
	if day.DateKey != "2026-08-31" {
		t.Errorf("date key = %s", day.DateKey)
	}
	if len(day.Catalog) == 0 || day.Catalog[0].ID != "preworkout" {
		t.Errorf("catalog does not start with preworkout")
	}
	if len(day.Completions.Completions) != 0 {
		t.Errorf("fresh day has completions")
	}
}

func TestCompleteReminderLogsMealAndShiftsTail(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	day, err := service.LoadDay(sqldb, trainingMonday)
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}

	// Completed at 05:50, twenty minutes after the 05:30 nominal.
	res, err := service.CompleteReminder(sqldb, day, "preworkout", "1")
	if err != nil {
		t.Fatalf("CompleteReminder: %v", err)
	}
	if res.ShiftMinutes != 20 {
		t.Errorf("shift = %d, want 20", res.ShiftMinutes)
	}
	if !res.LoggedMeal {
		t.Error("expected a logged meal")
	}
	if got := day.Completions.AdjustedTimes[plan.IDWorkout]; got != "06:20" {
		t.Errorf("workout adjusted to %q, want 06:20", got)
	}
	if day.Macros.Consumed.Calories != 149 {
		t.Errorf("consumed calories = %d, want 149", day.Macros.Consumed.Calories)
	}

	// State survives a reload.
	again, err := service.LoadDay(sqldb, trainingMonday)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, done := again.Completions.Completions["preworkout"]; !done {
		t.Error("completion not persisted")
	}
	if again.Macros.Consumed.Calories != 149 {
		t.Errorf("persisted calories = %d, want 149", again.Macros.Consumed.Calories)
	}
}

func TestCompleteReminderRejectsDuplicates(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	day, err := service.LoadDay(sqldb, trainingMonday)
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if _, err := service.CompleteReminder(sqldb, day, "preworkout", "2"); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	if _, err := service.CompleteReminder(sqldb, day, "preworkout", "2"); err == nil {
		t.Fatal("second completion succeeded")
	}
	if _, err := service.CompleteReminder(sqldb, day, "no_such", ""); err == nil {
		t.Fatal("unknown reminder succeeded")
	}
}

func TestUndoReminderRestoresScheduleAndMacros(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	day, err := service.LoadDay(sqldb, trainingMonday)
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if _, err := service.CompleteReminder(sqldb, day, "preworkout", "1"); err != nil {
		t.Fatalf("CompleteReminder: %v", err)
	}
	if _, err := service.UndoReminder(sqldb, day, "preworkout"); err != nil {
		t.Fatalf("UndoReminder: %v", err)
	}

	if len(day.Completions.Completions) != 0 {
		t.Errorf("completions remain after undo")
	}
	if len(day.Completions.AdjustedTimes) != 0 {
		t.Errorf("adjusted times remain after undo: %v", day.Completions.AdjustedTimes)
	}
	if day.Macros.Consumed.Calories != 0 {
		t.Errorf("consumed calories = %d after undo, want 0", day.Macros.Consumed.Calories)
	}
	if len(day.Macros.Meals) != 0 {
		t.Errorf("meals remain after undo")
	}

	if _, err := service.UndoReminder(sqldb, day, "preworkout"); err == nil {
		t.Fatal("undo of pending reminder succeeded")
	}
}

func TestLoadDayAutoSwitchesToEvening(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	// 10:30 with the morning workout still pending.
	lateMorning := at(2026, time.August, 31, 10, 30)
	day, err := service.LoadDay(sqldb, lateMorning)
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if day.Shift != model.ShiftEvening {
		t.Fatalf("shift = %s, want evening", day.Shift)
	}
	if _, ok := plan.Find(day.Catalog, plan.IDWorkoutEvening); !ok {
		t.Error("evening catalog missing evening workout")
	}

	// The switch is persisted and never reverts.
	stored, err := service.ShiftForDate(sqldb, day.DateKey)
	if err != nil {
		t.Fatalf("ShiftForDate: %v", err)
	}
	if stored != model.ShiftEvening {
		t.Errorf("stored shift = %s, want evening", stored)
	}
}

func TestLoadDayRollsLedgersOver(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	day, err := service.LoadDay(sqldb, trainingMonday)
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if _, err := service.CompleteReminder(sqldb, day, "preworkout", "1"); err != nil {
		t.Fatalf("CompleteReminder: %v", err)
	}
	if _, err := service.AddWater(sqldb, day, 3); err != nil {
		t.Fatalf("AddWater: %v", err)
	}

	tuesday := at(2026, time.September, 1, 7, 0)
	next, err := service.LoadDay(sqldb, tuesday)
	if err != nil {
		t.Fatalf("LoadDay tuesday: %v", err)
	}
	if next.DateKey != "2026-09-01" {
		t.Errorf("date key = %s", next.DateKey)
	}
	if len(next.Completions.Completions) != 0 {
		t.Errorf("completions carried across days")
	}
	if next.Macros.Consumed.Calories != 0 {
		t.Errorf("macros carried across days")
	}
	if next.Hydration.Glasses != 0 {
		t.Errorf("hydration carried across days")
	}
}

func TestScheduleOffsetNormalizes(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := service.SetScheduleOffset(sqldb, 9); err != nil {
		t.Fatalf("SetScheduleOffset: %v", err)
	}
	offset, err := service.ScheduleOffset(sqldb)
	if err != nil {
		t.Fatalf("ScheduleOffset: %v", err)
	}
	if offset != 2 {
		t.Errorf("offset = %d, want 2", offset)
	}
}
