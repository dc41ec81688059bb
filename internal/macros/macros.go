// Package macros maintains the day's meal log and its consumed totals.
// Consumed is always recomputed as the full sum over the log — at a
// handful of meals per day, correctness beats incremental updates.
package macros

import (
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
)

func recompute(ledger model.DailyMacros) model.DailyMacros {
	total := model.MacroInfo{}
	for _, m := range ledger.Meals {
		total = total.Add(m.Macros)
	}
	ledger.Consumed = total
	return ledger
}

// AddMeal appends a meal entry logged at now and recomputes the totals.
func AddMeal(ledger model.DailyMacros, reminderID string, option model.MealOption, now time.Time) model.DailyMacros {
	out := ledger
	out.Meals = append(append([]model.MealEntry{}, ledger.Meals...), model.MealEntry{
		ReminderID: reminderID,
		Option:     option.Label,
		Macros:     option.Macros,
		Time:       timeutil.CurrentClock(now),
	})
	return recompute(out)
}

// RemoveMeal deletes the meal at index. Only user-added extras may be
// removed; catalog meals are withdrawn by undoing their reminder instead.
func RemoveMeal(ledger model.DailyMacros, index int) (model.DailyMacros, error) {
	if index < 0 || index >= len(ledger.Meals) {
		return ledger, fmt.Errorf("meal index %d out of range (have %d meals)", index, len(ledger.Meals))
	}
	if ledger.Meals[index].ReminderID != model.ExtraMealID {
		return ledger, fmt.Errorf("meal %d belongs to reminder %q; undo the reminder instead", index, ledger.Meals[index].ReminderID)
	}
	out := ledger
	out.Meals = append(append([]model.MealEntry{}, ledger.Meals[:index]...), ledger.Meals[index+1:]...)
	return recompute(out), nil
}

// RemoveByReminder drops every meal logged against a reminder id and
// recomputes; used when a reminder completion is undone.
func RemoveByReminder(ledger model.DailyMacros, reminderID string) model.DailyMacros {
	out := ledger
	kept := make([]model.MealEntry, 0, len(ledger.Meals))
	for _, m := range ledger.Meals {
		if m.ReminderID != reminderID {
			kept = append(kept, m)
		}
	}
	out.Meals = kept
	return recompute(out)
}

// ForDate resets the ledger when its stored date or schema no longer
// matches, and repairs the consumed cache if a stored value drifted.
func ForDate(ledger model.DailyMacros, dateKey string) (model.DailyMacros, bool) {
	if ledger.Date != dateKey || ledger.SchemaVersion != model.SchemaVersion {
		return model.NewDailyMacros(dateKey), true
	}
	repaired := recompute(ledger)
	if repaired.Consumed != ledger.Consumed {
		return repaired, true
	}
	return ledger, false
}
