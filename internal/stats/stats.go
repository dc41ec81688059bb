// Package stats computes streak and adherence figures from the recorded
// workout-day outcomes.
package stats

import (
	"math"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
)

// streakCap bounds the backward walk; beyond it the figure is meaningless
// anyway.
const streakCap = 100

// trainingDaysPerWeek converts a day streak into whole plan weeks.
const trainingDaysPerWeek = 5

// Compute summarizes completedDays as of now. The streak walks backward
// one calendar day at a time: rest days (under the current schedule
// offset) are skipped without breaking the run; a training day extends the
// streak only when marked complete.
func Compute(completedDays map[string]bool, offset int, now time.Time) model.Stats {
	completed := 0
	for _, done := range completedDays {
		if done {
			completed++
		}
	}
	total := len(completedDays)
	if total < 1 {
		total = 1
	}
	rate := int(math.Round(float64(completed) / float64(total) * 100))

	streak := 0
	check := now
	for streak < streakCap {
		workout := plan.ResolveWorkout(int(check.Weekday()), offset)
		if workout.IsRest() {
			check = check.AddDate(0, 0, -1)
			continue
		}
		if !completedDays[timeutil.DateKey(check)] {
			break
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}

	return model.Stats{
		Completed:  completed,
		Rate:       rate,
		Streak:     streak,
		WeekStreak: streak / trainingDaysPerWeek,
	}
}
