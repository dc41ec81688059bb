// Package schedule derives the day's active reminder sequence and tracks
// completion state. Completing a reminder early or late ripples the
// deviation onto every not-yet-completed reminder after it, so one slipped
// block never requires rescheduling the rest of the day by hand.
//
// All functions take ledger values and return updated ledgers; the caller
// owns persistence and session state.
package schedule

import (
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
)

// Auto-switch cutoffs: a morning plan whose key block is still untouched
// past these times is promoted to the evening variant.
const (
	trainingCutoffMinutes = 10 * 60 // 10:00
	restCutoffMinutes     = 9 * 60  // 09:00
)

func clone(ledger model.CompletionData) model.CompletionData {
	out := model.NewCompletionData(ledger.Date)
	out.SchemaVersion = ledger.SchemaVersion
	for k, v := range ledger.Completions {
		out.Completions[k] = v
	}
	for k, v := range ledger.AdjustedTimes {
		out.AdjustedTimes[k] = v
	}
	return out
}

// minutesOr parses a clock string, falling back when a stored value has
// gone bad rather than failing the whole operation.
func minutesOr(clock string, fallback int) int {
	mins, err := timeutil.ToMinutes(clock)
	if err != nil {
		return fallback
	}
	return mins
}

// scheduledMinutes is the reminder's effective time: its adjusted time if
// an upstream completion shifted it, otherwise its nominal time.
func scheduledMinutes(ledger model.CompletionData, r model.Reminder) int {
	nominal := minutesOr(r.Time, 0)
	if adj, ok := ledger.AdjustedTimes[r.ID]; ok {
		return minutesOr(adj, nominal)
	}
	return nominal
}

// MarkComplete records a completion at now and propagates the deviation
// from the reminder's effective time onto the pending tail of the catalog.
// The returned shift is in minutes, positive when late. Completing an
// unknown or already-completed id is a no-op with ok=false.
func MarkComplete(ledger model.CompletionData, catalog []model.Reminder, id string, now time.Time) (model.CompletionData, int, bool) {
	if _, done := ledger.Completions[id]; done {
		return ledger, 0, false
	}
	idx := -1
	for i, r := range catalog {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ledger, 0, false
	}

	out := clone(ledger)
	current := timeutil.CurrentClock(now)
	currentMins := minutesOr(current, 0)
	shift := currentMins - scheduledMinutes(out, catalog[idx])

	out.Completions[id] = current
	delete(out.AdjustedTimes, id)

	if shift != 0 {
		// Re-base each pending downstream reminder on whatever time it
		// already holds, so repeated small shifts compound instead of
		// resetting to nominal.
		for _, r := range catalog[idx+1:] {
			if _, done := out.Completions[r.ID]; done {
				continue
			}
			out.AdjustedTimes[r.ID] = timeutil.ToClockTime(scheduledMinutes(out, r) + shift)
		}
	}
	return out, shift, true
}

// UndoComplete removes a completion and re-derives every adjusted time
// from scratch by replaying catalog order. Removing a mid-sequence anchor
// invalidates the chained shifts built by MarkComplete, so incremental
// repair is not attempted.
//
// Each completed reminder resets the cumulative shift to its own deviation
// from nominal; it does not add to the shifts of earlier predecessors.
// Only the latest completed predecessor governs a pending reminder's
// adjustment, matching what the chained MarkComplete re-basing produces.
func UndoComplete(ledger model.CompletionData, catalog []model.Reminder, id string) (model.CompletionData, bool) {
	if _, done := ledger.Completions[id]; !done {
		return ledger, false
	}

	out := clone(ledger)
	delete(out.Completions, id)
	out.AdjustedTimes = map[string]string{}

	cumulative := 0
	for _, r := range catalog {
		nominal := minutesOr(r.Time, 0)
		if completedAt, done := out.Completions[r.ID]; done {
			cumulative = minutesOr(completedAt, nominal) - nominal
			continue
		}
		if cumulative != 0 {
			out.AdjustedTimes[r.ID] = timeutil.ToClockTime(nominal + cumulative)
		}
	}
	return out, true
}

// DisplayTime is the time a reminder should show: completion time once
// done, else any adjusted time, else nominal.
func DisplayTime(ledger model.CompletionData, r model.Reminder) string {
	if at, done := ledger.Completions[r.ID]; done {
		return at
	}
	if adj, ok := ledger.AdjustedTimes[r.ID]; ok {
		return adj
	}
	return r.Time
}

// IsAdjusted reports whether a pending reminder's display time has been
// shifted away from nominal.
func IsAdjusted(ledger model.CompletionData, id string) bool {
	if _, done := ledger.Completions[id]; done {
		return false
	}
	_, ok := ledger.AdjustedTimes[id]
	return ok
}

// AutoSwitch promotes a morning plan to the evening variant when the key
// morning block is still undone past the cutoff: the workout on training
// days (10:00), the walk and stretch on rest days (09:00). It never
// demotes an evening plan back to morning; that is a manual toggle only.
// Safe to re-evaluate on every foreground transition.
func AutoSwitch(isRestDay bool, current model.Shift, ledger model.CompletionData, now time.Time) model.Shift {
	if current != model.ShiftMorning {
		return current
	}
	nowMins := now.Hour()*60 + now.Minute()
	if isRestDay {
		_, walkDone := ledger.Completions[plan.IDRecoveryWalk]
		_, stretchDone := ledger.Completions[plan.IDRecoveryStretch]
		if nowMins >= restCutoffMinutes && !walkDone && !stretchDone {
			return model.ShiftEvening
		}
		return current
	}
	if _, workoutDone := ledger.Completions[plan.IDWorkout]; nowMins >= trainingCutoffMinutes && !workoutDone {
		return model.ShiftEvening
	}
	return current
}

// knownIDs is the union of all catalog variants; a stored ledger carrying
// an id outside it predates the current catalog definitions.
func knownIDs() map[string]bool {
	ids := map[string]bool{}
	for _, rest := range []bool{false, true} {
		for _, shift := range []model.Shift{model.ShiftMorning, model.ShiftEvening} {
			for _, r := range plan.SelectCatalog(rest, shift) {
				ids[r.ID] = true
			}
		}
	}
	return ids
}

// ForDate returns the ledger to use for dateKey. A ledger stored under a
// different date, an older schema version, or reminder ids the current
// catalogs no longer define is discarded and reseeded empty (replacement,
// not merge). The second return reports whether the ledger was replaced
// and needs persisting.
func ForDate(ledger model.CompletionData, dateKey string) (model.CompletionData, bool) {
	if ledger.Date != dateKey || ledger.SchemaVersion != model.SchemaVersion {
		return model.NewCompletionData(dateKey), true
	}
	if ledger.Completions == nil || ledger.AdjustedTimes == nil {
		return model.NewCompletionData(dateKey), true
	}
	known := knownIDs()
	for id := range ledger.Completions {
		if !known[id] {
			return model.NewCompletionData(dateKey), true
		}
	}
	for id := range ledger.AdjustedTimes {
		if !known[id] {
			return model.NewCompletionData(dateKey), true
		}
	}
	return ledger, false
}
