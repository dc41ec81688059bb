// Package plan holds the static weekly workout table and the four
// reminder catalogs, plus the lookups that select from them.
package plan

import "github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"

// weeklyPlan is indexed by effective day of week (0 = Sunday).
var weeklyPlan = [7]model.WorkoutDay{
	{Type: model.WorkoutRest, Name: "Rest Day", Exercises: []string{}},
	{Type: model.WorkoutGym, Name: "Upper Focus", Exercises: []string{
		"Incline DB Press 3×10", "Weighted Pull-ups 3×Max", "DB Lateral Raises 4×20", "DB Bicep Curls 3×12",
	}},
	{Type: model.WorkoutAthletic, Name: "Power & Rear Delts", Exercises: []string{
		"KB/DB Swings 4×20", "Box Jumps 4×5", "Face Pulls 3×20", "100m Sprints ×5",
	}},
	{Type: model.WorkoutGym, Name: "Lower Focus", Exercises: []string{
		"Back Squat 3×8", "Romanian DL 3×12", "Leg Extension 3×15", "Seated Calf Raises 4×15",
	}},
	{Type: model.WorkoutAthletic, Name: "Engine & Core", Exercises: []string{
		"Skipping 10min", "3km Brisk Run", "Burpees 3×15", "Plank 3×1min",
	}},
	{Type: model.WorkoutGym, Name: "Symmetry", Exercises: []string{
		"Weighted Dips 3×12", "Seated Rows 3×12", "Overhead Press 3×10", "Hanging Leg Raises 3×15",
	}},
	{Type: model.WorkoutRest, Name: "Rest Day", Exercises: []string{}},
}

// ResolveWorkout maps a day of week (0..6, Sunday first) and the schedule
// offset to the effective workout. A positive offset pushes every day's
// plan forward: offset 1 makes Monday resolve to the base Sunday entry.
func ResolveWorkout(dayOfWeek, offset int) model.WorkoutDay {
	idx := ((dayOfWeek-offset%7)%7 + 7) % 7
	return weeklyPlan[idx]
}
