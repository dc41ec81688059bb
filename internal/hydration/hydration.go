// Package hydration tracks the day's water intake in 250ml glasses
// against a fixed 4 liter goal.
package hydration

import (
	"errors"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
)

const (
	DailyGoalML = 4000
	GlassSizeML = 250
	GoalGlasses = DailyGoalML / GlassSizeML

	// Hourly reminder window (inclusive start hour, inclusive end hour).
	ReminderStartHour = 6
	ReminderEndHour   = 21
)

// ErrGoalReached signals that the goal is already met; adding more is a
// user-visible notice, not a failure.
var ErrGoalReached = errors.New("hydration goal already reached")

// AddGlasses adds n glasses, clamped to the goal. Returns ErrGoalReached
// when the counter is already full.
func AddGlasses(ledger model.HydrationData, n int) (model.HydrationData, error) {
	if n <= 0 {
		return ledger, nil
	}
	if ledger.Glasses >= GoalGlasses {
		return ledger, ErrGoalReached
	}
	out := ledger
	out.Glasses += n
	if out.Glasses > GoalGlasses {
		out.Glasses = GoalGlasses
	}
	return out, nil
}

// RemoveGlass takes one glass back, flooring at zero.
func RemoveGlass(ledger model.HydrationData) model.HydrationData {
	if ledger.Glasses <= 0 {
		return ledger
	}
	out := ledger
	out.Glasses--
	return out
}

// Progress summarizes the counter for display.
type Progress struct {
	Glasses   int
	Percent   int
	Liters    float64
	Remaining float64
}

func ProgressOf(ledger model.HydrationData) Progress {
	pct := ledger.Glasses * 100 / GoalGlasses
	if pct > 100 {
		pct = 100
	}
	return Progress{
		Glasses:   ledger.Glasses,
		Percent:   pct,
		Liters:    float64(ledger.Glasses*GlassSizeML) / 1000,
		Remaining: float64((GoalGlasses-ledger.Glasses)*GlassSizeML) / 1000,
	}
}

// ForDate resets the counter at date rollover or schema change.
func ForDate(ledger model.HydrationData, dateKey string) (model.HydrationData, bool) {
	if ledger.Date != dateKey || ledger.SchemaVersion != model.SchemaVersion {
		return model.NewHydrationData(dateKey), true
	}
	if ledger.Glasses < 0 {
		return model.NewHydrationData(dateKey), true
	}
	return ledger, false
}
