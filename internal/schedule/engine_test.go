package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
)

func testCatalog() []model.Reminder {
	return []model.Reminder{
		{ID: "a", Title: "A", Time: "08:00", Icon: "🍌", Color: "#fff", Body: "a"},
		{ID: "b", Title: "B", Time: "09:00", Icon: "🏋️", Color: "#fff", Body: "b"},
		{ID: "c", Title: "C", Time: "10:00", Icon: "🥚", Color: "#fff", Body: "c"},
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.Local)
}

func TestMarkCompleteShiftPropagation(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	ledger := model.NewCompletionData("2026-08-31")

	ledger, shift, ok := MarkComplete(ledger, catalog, "a", at(8, 20))
	if !ok || shift != 20 {
		t.Fatalf("mark a: ok=%v shift=%d, want +20", ok, shift)
	}
	if ledger.Completions["a"] != "08:20" {
		t.Fatalf("completion time = %q", ledger.Completions["a"])
	}
	if ledger.AdjustedTimes["b"] != "09:20" || ledger.AdjustedTimes["c"] != "10:20" {
		t.Fatalf("adjusted times = %v", ledger.AdjustedTimes)
	}

	// Completing b exactly on its adjusted time re-bases with a zero
	// shift: c keeps 10:20, demonstrating re-basing rather than summing.
	ledger, shift, ok = MarkComplete(ledger, catalog, "b", at(9, 20))
	if !ok || shift != 0 {
		t.Fatalf("mark b: ok=%v shift=%d, want 0", ok, shift)
	}
	if ledger.AdjustedTimes["c"] != "10:20" {
		t.Fatalf("c adjusted = %q, want unchanged 10:20", ledger.AdjustedTimes["c"])
	}
}

func TestMarkCompleteEarlyShiftsBackward(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	ledger := model.NewCompletionData("2026-08-31")

	ledger, shift, _ := MarkComplete(ledger, catalog, "a", at(7, 30))
	if shift != -30 {
		t.Fatalf("shift = %d, want -30", shift)
	}
	if ledger.AdjustedTimes["b"] != "08:30" || ledger.AdjustedTimes["c"] != "09:30" {
		t.Fatalf("adjusted times = %v", ledger.AdjustedTimes)
	}
}

func TestMarkCompleteCompoundsOnAdjustedTimes(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	ledger := model.NewCompletionData("2026-08-31")

	ledger, _, _ = MarkComplete(ledger, catalog, "a", at(8, 20))
	// b completes 10 minutes after its already-shifted 09:20.
	ledger, shift, _ := MarkComplete(ledger, catalog, "b", at(9, 30))
	if shift != 10 {
		t.Fatalf("shift = %d, want +10 relative to adjusted time", shift)
	}
	if ledger.AdjustedTimes["c"] != "10:30" {
		t.Fatalf("c adjusted = %q, want 10:30 (20+10 compounded)", ledger.AdjustedTimes["c"])
	}
}

func TestMarkCompleteGuards(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	ledger := model.NewCompletionData("2026-08-31")

	ledger, _, _ = MarkComplete(ledger, catalog, "a", at(8, 0))
	if _, _, ok := MarkComplete(ledger, catalog, "a", at(8, 5)); ok {
		t.Fatalf("second completion of a should be a no-op")
	}
	if _, _, ok := MarkComplete(ledger, catalog, "nope", at(8, 5)); ok {
		t.Fatalf("unknown id should be a no-op")
	}
	if _, ok := UndoComplete(ledger, catalog, "b"); ok {
		t.Fatalf("undo of never-completed id should be a no-op")
	}
}

func TestUndoRestoresPreCompletionState(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	ledger := model.NewCompletionData("2026-08-31")
	ledger, _, _ = MarkComplete(ledger, catalog, "a", at(8, 20))

	before := clone(ledger)
	ledger, _, _ = MarkComplete(ledger, catalog, "b", at(9, 45))
	ledger, ok := UndoComplete(ledger, catalog, "b")
	if !ok {
		t.Fatalf("undo b failed")
	}
	if !reflect.DeepEqual(ledger.Completions, before.Completions) {
		t.Fatalf("completions after undo = %v, want %v", ledger.Completions, before.Completions)
	}
	if !reflect.DeepEqual(ledger.AdjustedTimes, before.AdjustedTimes) {
		t.Fatalf("adjusted after undo = %v, want %v", ledger.AdjustedTimes, before.AdjustedTimes)
	}
}

func TestUndoLatestPredecessorWins(t *testing.T) {
	t.Parallel()

	// a completes +20 late, b completes +5 late relative to nominal.
	// After undoing c-side state, the replay bases c only on b's own
	// deviation from nominal (+5), discarding a's +20. This preserves the
	// source behavior: a completed predecessor resets the cumulative
	// shift, it does not accumulate.
	catalog := testCatalog()
	ledger := model.NewCompletionData("2026-08-31")
	ledger, _, _ = MarkComplete(ledger, catalog, "a", at(8, 20))
	ledger, _, _ = MarkComplete(ledger, catalog, "b", at(9, 5)) // 15 min before its adjusted 09:20

	ledger, _, _ = MarkComplete(ledger, catalog, "c", at(10, 0))
	ledger, _ = UndoComplete(ledger, catalog, "c")

	if got := ledger.AdjustedTimes["c"]; got != "10:05" {
		t.Fatalf("c adjusted = %q, want 10:05 (b's +5 only, not +25)", got)
	}
}

func TestForDateRollover(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	ledger := model.NewCompletionData("2026-08-30")
	ledger, _, _ = MarkComplete(ledger, catalog, "a", at(8, 0))

	reset, changed := ForDate(ledger, "2026-08-31")
	if !changed {
		t.Fatalf("expected rollover to replace the ledger")
	}
	if reset.Date != "2026-08-31" || len(reset.Completions) != 0 || len(reset.AdjustedTimes) != 0 {
		t.Fatalf("reset ledger = %+v", reset)
	}

	same, changed := ForDate(reset, "2026-08-31")
	if changed || !reflect.DeepEqual(same, reset) {
		t.Fatalf("same-date ledger should pass through unchanged")
	}
}

func TestForDateDiscardsUnknownIDs(t *testing.T) {
	t.Parallel()

	ledger := model.NewCompletionData("2026-08-31")
	ledger.Completions["retired_reminder"] = "08:00"

	reset, changed := ForDate(ledger, "2026-08-31")
	if !changed || len(reset.Completions) != 0 {
		t.Fatalf("expected shape drift to reseed the ledger, got %+v", reset)
	}
}

func TestAutoSwitchTrainingDay(t *testing.T) {
	t.Parallel()

	ledger := model.NewCompletionData("2026-08-31")

	if got := AutoSwitch(false, model.ShiftMorning, ledger, at(9, 59)); got != model.ShiftMorning {
		t.Fatalf("before cutoff: %v", got)
	}
	if got := AutoSwitch(false, model.ShiftMorning, ledger, at(10, 0)); got != model.ShiftEvening {
		t.Fatalf("at cutoff with workout undone: %v", got)
	}

	catalog := plan.SelectCatalog(false, model.ShiftMorning)
	done, _, _ := MarkComplete(ledger, catalog, plan.IDWorkout, at(6, 30))
	if got := AutoSwitch(false, model.ShiftMorning, done, at(11, 0)); got != model.ShiftMorning {
		t.Fatalf("workout done should keep morning: %v", got)
	}

	// Once evening, never auto-reverts.
	if got := AutoSwitch(false, model.ShiftEvening, done, at(11, 0)); got != model.ShiftEvening {
		t.Fatalf("evening should stay evening: %v", got)
	}
}

func TestAutoSwitchRestDay(t *testing.T) {
	t.Parallel()

	ledger := model.NewCompletionData("2026-08-31")

	if got := AutoSwitch(true, model.ShiftMorning, ledger, at(8, 59)); got != model.ShiftMorning {
		t.Fatalf("before cutoff: %v", got)
	}
	if got := AutoSwitch(true, model.ShiftMorning, ledger, at(9, 0)); got != model.ShiftEvening {
		t.Fatalf("at cutoff with neither recovery task done: %v", got)
	}

	catalog := plan.SelectCatalog(true, model.ShiftMorning)
	walked, _, _ := MarkComplete(ledger, catalog, plan.IDRecoveryWalk, at(7, 40))
	if got := AutoSwitch(true, model.ShiftMorning, walked, at(9, 30)); got != model.ShiftMorning {
		t.Fatalf("one recovery task done should keep morning: %v", got)
	}
}

func TestDisplayTimePrecedence(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	ledger := model.NewCompletionData("2026-08-31")
	ledger, _, _ = MarkComplete(ledger, catalog, "a", at(8, 20))

	if got := DisplayTime(ledger, catalog[0]); got != "08:20" {
		t.Fatalf("completed display time = %q", got)
	}
	if got := DisplayTime(ledger, catalog[1]); got != "09:20" {
		t.Fatalf("adjusted display time = %q", got)
	}
	if IsAdjusted(ledger, "a") {
		t.Fatalf("completed reminder should not report adjusted")
	}
	if !IsAdjusted(ledger, "b") {
		t.Fatalf("shifted pending reminder should report adjusted")
	}
}
