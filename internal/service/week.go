package service

import (
	"database/sql"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/stats"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
)

// BuildWeek assembles the Sunday-start calendar grid for the week holding
// now, with each day's workout resolved on the rotated plan and its
// recorded outcome attached.
func BuildWeek(db *sql.DB, now time.Time) ([]model.WeekDay, error) {
	offset, err := ScheduleOffset(db)
	if err != nil {
		return nil, err
	}
	days, err := CompletedDays(db)
	if err != nil {
		return nil, err
	}

	sunday := now.AddDate(0, 0, -int(now.Weekday()))
	todayKey := timeutil.DateKey(now)

	week := make([]model.WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := sunday.AddDate(0, 0, i)
		key := timeutil.DateKey(date)
		workout := plan.ResolveWorkout(int(date.Weekday()), offset)
		completed, recorded := days[key]
		week = append(week, model.WeekDay{
			Name:        date.Format("Mon"),
			Num:         date.Day(),
			DateKey:     key,
			Workout:     workout,
			IsToday:     key == todayKey,
			IsCompleted: completed,
			IsRecorded:  recorded,
			IsRest:      workout.IsRest(),
		})
	}
	return week, nil
}

// ComputeStats derives completion stats from the recorded workout days.
func ComputeStats(db *sql.DB, now time.Time) (model.Stats, error) {
	offset, err := ScheduleOffset(db)
	if err != nil {
		return model.Stats{}, err
	}
	days, err := CompletedDays(db)
	if err != nil {
		return model.Stats{}, err
	}
	return stats.Compute(days, offset, now), nil
}
