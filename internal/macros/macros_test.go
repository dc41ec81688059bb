package macros

import (
	"testing"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
)

func sumOf(meals []model.MealEntry) model.MacroInfo {
	total := model.MacroInfo{}
	for _, m := range meals {
		total = total.Add(m.Macros)
	}
	return total
}

func option(label string, cal, p, c, f int) model.MealOption {
	return model.MealOption{Label: label, Macros: model.MacroInfo{Calories: cal, Protein: p, Carbs: c, Fats: f}}
}

func TestConsumedAlwaysMatchesMealSum(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 31, 13, 30, 0, 0, time.Local)
	ledger := model.NewDailyMacros("2026-08-31")

	ledger = AddMeal(ledger, "lunch", option("chicken curry", 836, 72, 87, 20), now)
	ledger = AddMeal(ledger, model.ExtraMealID, option("protein bar", 220, 20, 24, 7), now)
	ledger = AddMeal(ledger, "snack", option("paneer", 321, 21, 3, 25), now)

	if ledger.Consumed != sumOf(ledger.Meals) {
		t.Fatalf("consumed %+v != sum %+v", ledger.Consumed, sumOf(ledger.Meals))
	}
	if ledger.Consumed.Calories != 1377 || ledger.Consumed.Protein != 113 {
		t.Fatalf("unexpected totals: %+v", ledger.Consumed)
	}

	ledger, err := RemoveMeal(ledger, 1)
	if err != nil {
		t.Fatalf("remove extra: %v", err)
	}
	if ledger.Consumed != sumOf(ledger.Meals) {
		t.Fatalf("consumed %+v != sum %+v after removal", ledger.Consumed, sumOf(ledger.Meals))
	}
	if len(ledger.Meals) != 2 || ledger.Consumed.Calories != 1157 {
		t.Fatalf("unexpected state after removal: %+v", ledger)
	}
}

func TestRemoveMealOnlyExtras(t *testing.T) {
	t.Parallel()

	now := time.Now()
	ledger := model.NewDailyMacros("2026-08-31")
	ledger = AddMeal(ledger, "lunch", option("chicken curry", 836, 72, 87, 20), now)

	if _, err := RemoveMeal(ledger, 0); err == nil {
		t.Fatalf("expected removal of catalog meal to be rejected")
	}
	if _, err := RemoveMeal(ledger, 5); err == nil {
		t.Fatalf("expected out-of-range index to be rejected")
	}
}

func TestRemoveByReminder(t *testing.T) {
	t.Parallel()

	now := time.Now()
	ledger := model.NewDailyMacros("2026-08-31")
	ledger = AddMeal(ledger, "lunch", option("chicken curry", 836, 72, 87, 20), now)
	ledger = AddMeal(ledger, "snack", option("paneer", 321, 21, 3, 25), now)

	ledger = RemoveByReminder(ledger, "lunch")
	if len(ledger.Meals) != 1 || ledger.Meals[0].ReminderID != "snack" {
		t.Fatalf("unexpected meals after removal: %+v", ledger.Meals)
	}
	if ledger.Consumed != sumOf(ledger.Meals) {
		t.Fatalf("consumed drifted after RemoveByReminder")
	}
}

func TestForDateRepairsDriftedCache(t *testing.T) {
	t.Parallel()

	ledger := model.NewDailyMacros("2026-08-31")
	ledger = AddMeal(ledger, "lunch", option("chicken curry", 836, 72, 87, 20), time.Now())
	ledger.Consumed.Calories = 9999 // simulate a stored value with a stale cache

	repaired, changed := ForDate(ledger, "2026-08-31")
	if !changed || repaired.Consumed.Calories != 836 {
		t.Fatalf("expected cache repair, got changed=%v consumed=%+v", changed, repaired.Consumed)
	}

	reset, changed := ForDate(repaired, "2026-09-01")
	if !changed || len(reset.Meals) != 0 || reset.Consumed != (model.MacroInfo{}) {
		t.Fatalf("expected rollover reset, got %+v", reset)
	}
}
