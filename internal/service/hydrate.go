package service

import (
	"database/sql"
	"errors"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/hydration"
)

// AddWater logs n glasses, clamped at the daily goal. Returns the updated
// progress; hydration.ErrGoalReached signals the goal was already met.
func AddWater(db *sql.DB, day *Day, n int) (hydration.Progress, error) {
	ledger, err := hydration.AddGlasses(day.Hydration, n)
	if err != nil {
		if errors.Is(err, hydration.ErrGoalReached) {
			return hydration.ProgressOf(day.Hydration), err
		}
		return hydration.Progress{}, err
	}
	day.Hydration = ledger
	if err := day.saveHydration(db); err != nil {
		return hydration.Progress{}, err
	}
	return hydration.ProgressOf(day.Hydration), nil
}

// RemoveWater logs one glass less, floored at zero.
func RemoveWater(db *sql.DB, day *Day) (hydration.Progress, error) {
	day.Hydration = hydration.RemoveGlass(day.Hydration)
	if err := day.saveHydration(db); err != nil {
		return hydration.Progress{}, err
	}
	return hydration.ProgressOf(day.Hydration), nil
}
