package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/macros"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/schedule"
)

// ResolveOption picks a meal option by 1-based index or case-insensitive
// label prefix. An empty selector on a reminder with options is an error.
func ResolveOption(r model.Reminder, selector string) (model.MealOption, error) {
	if len(r.Options) == 0 {
		return model.MealOption{}, fmt.Errorf("reminder %q has no meal options", r.ID)
	}
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return model.MealOption{}, fmt.Errorf("reminder %q needs a meal option (1-%d)", r.ID, len(r.Options))
	}
	if idx, err := strconv.Atoi(selector); err == nil {
		if idx < 1 || idx > len(r.Options) {
			return model.MealOption{}, fmt.Errorf("option %d out of range (1-%d)", idx, len(r.Options))
		}
		return r.Options[idx-1], nil
	}
	lowered := strings.ToLower(selector)
	for _, opt := range r.Options {
		if strings.HasPrefix(strings.ToLower(opt.Label), lowered) {
			return opt, nil
		}
	}
	return model.MealOption{}, fmt.Errorf("no meal option matching %q", selector)
}

// CompleteResult reports what a completion changed.
type CompleteResult struct {
	Reminder     model.Reminder
	ShiftMinutes int
	LoggedMeal   bool
	Option       model.MealOption
}

// CompleteReminder marks id done at day.Now, propagates the time shift to
// the pending tail, and logs the chosen meal option when the reminder has
// options. optionSelector may be empty for reminders without options.
func CompleteReminder(db *sql.DB, day *Day, id, optionSelector string) (CompleteResult, error) {
	r, ok := plan.Find(day.Catalog, id)
	if !ok {
		return CompleteResult{}, fmt.Errorf("no reminder %q on today's schedule", id)
	}

	result := CompleteResult{Reminder: r}
	if len(r.Options) > 0 {
		opt, err := ResolveOption(r, optionSelector)
		if err != nil {
			return CompleteResult{}, err
		}
		result.Option = opt
		result.LoggedMeal = true
	}

	ledger, shift, changed := schedule.MarkComplete(day.Completions, day.Catalog, id, day.Now)
	if !changed {
		return CompleteResult{}, fmt.Errorf("reminder %q is already completed", id)
	}
	day.Completions = ledger
	result.ShiftMinutes = shift
	if err := day.saveCompletions(db); err != nil {
		return CompleteResult{}, err
	}

	if result.LoggedMeal {
		day.Macros = macros.AddMeal(day.Macros, id, result.Option, day.Now)
		if err := day.saveMacros(db); err != nil {
			return CompleteResult{}, err
		}
	}
	return result, nil
}

// UndoReminder reverts a completion, replays the day's adjustments from
// the remaining completions, and removes the meal logged with it.
func UndoReminder(db *sql.DB, day *Day, id string) (model.Reminder, error) {
	r, ok := plan.Find(day.Catalog, id)
	if !ok {
		return model.Reminder{}, fmt.Errorf("no reminder %q on today's schedule", id)
	}

	ledger, changed := schedule.UndoComplete(day.Completions, day.Catalog, id)
	if !changed {
		return model.Reminder{}, fmt.Errorf("reminder %q is not completed", id)
	}
	day.Completions = ledger
	if err := day.saveCompletions(db); err != nil {
		return model.Reminder{}, err
	}

	if len(r.Options) > 0 {
		day.Macros = macros.RemoveByReminder(day.Macros, id)
		if err := day.saveMacros(db); err != nil {
			return model.Reminder{}, err
		}
	}
	return r, nil
}
