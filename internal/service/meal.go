package service

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/macros"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/provider/groq"
)

// LogExtraMeal records a meal outside the reminder catalog.
func LogExtraMeal(db *sql.DB, day *Day, label string, m model.MacroInfo) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("meal description is required")
	}
	if m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fats < 0 {
		return fmt.Errorf("macro values must be >= 0")
	}
	day.Macros = macros.AddMeal(day.Macros, model.ExtraMealID, model.MealOption{Label: label, Macros: m}, day.Now)
	return day.saveMacros(db)
}

// RemoveExtraMeal deletes the extra meal at the given 1-based position in
// the day's meal list. Catalog meals are removed by undoing the reminder.
func RemoveExtraMeal(db *sql.DB, day *Day, position int) (model.MealEntry, error) {
	idx := position - 1
	if idx < 0 || idx >= len(day.Macros.Meals) {
		return model.MealEntry{}, fmt.Errorf("no meal at position %d", position)
	}
	removed := day.Macros.Meals[idx]
	ledger, err := macros.RemoveMeal(day.Macros, idx)
	if err != nil {
		return model.MealEntry{}, err
	}
	day.Macros = ledger
	if err := day.saveMacros(db); err != nil {
		return model.MealEntry{}, err
	}
	return removed, nil
}

// NutritionClient looks up macro estimates for a free-text meal.
type NutritionClient interface {
	Lookup(ctx context.Context, query string) (groq.NutritionResult, error)
}

// NewNutritionClient builds a Groq client from stored config. The
// HYBRIDFIT_GROQ_API_KEY environment variable is the fallback credential
// when none is configured.
func NewNutritionClient(db *sql.DB) (*groq.Client, error) {
	apiKey, _, err := GetConfig(db, ConfigGroqAPIKey)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(apiKey) == "" {
		apiKey = os.Getenv("HYBRIDFIT_GROQ_API_KEY")
	}
	modelName, _, err := GetConfig(db, ConfigGroqModel)
	if err != nil {
		return nil, err
	}
	return &groq.Client{APIKey: apiKey, Model: modelName}, nil
}

// LookupAndLogMeal estimates macros for query and records the meal. When
// the lookup cannot produce an estimate the caller gets the classified
// error so it can fall back to manual entry.
func LookupAndLogMeal(ctx context.Context, db *sql.DB, day *Day, client NutritionClient, query string) (groq.NutritionResult, error) {
	result, err := client.Lookup(ctx, query)
	if err != nil {
		return groq.NutritionResult{}, err
	}
	m := model.MacroInfo{
		Calories: result.Calories,
		Protein:  result.Protein,
		Carbs:    result.Carbs,
		Fats:     result.Fats,
	}
	if err := LogExtraMeal(db, day, result.Label, m); err != nil {
		return groq.NutritionResult{}, err
	}
	return result, nil
}
