package hybridfit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/hydration"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/schedule"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/ui"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's schedule, macros, and hydration",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, now)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			icon := ui.IconWorkout
			if day.Workout.IsRest() {
				icon = ui.IconRest
			}
			fmt.Fprintf(out, "%s, %s\n", timeutil.Greeting(now), timeutil.FormatDateLong(day.DateKey))
			fmt.Fprintln(out, ui.Heading(icon, day.Workout.Name)+"  "+ui.Muted.Render(string(day.Shift)+" shift"))
			for _, ex := range day.Workout.Exercises {
				fmt.Fprintf(out, "  - %s\n", ex)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.H2.Render("Schedule"))
			for _, r := range day.Catalog {
				_, done := day.Completions.Completions[r.ID]
				clock := timeutil.Format12Hour(schedule.DisplayTime(day.Completions, r))
				suffix := ""
				if !done && schedule.IsAdjusted(day.Completions, r.ID) {
					suffix = " " + ui.Warn.Render("(adjusted)")
				}
				fmt.Fprintf(out, "  %s %s  %s %s%s\n", ui.CheckIcon(done), clock, r.Icon, r.Title, suffix)
			}

			goals := plan.DailyMacroGoals
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.H2.Render("Macros"))
			fmt.Fprintln(out, "  "+ui.MacroLine("Calories", day.Macros.Consumed.Calories, goals.Calories, ""))
			fmt.Fprintln(out, "  "+ui.MacroLine("Protein", day.Macros.Consumed.Protein, goals.Protein, "g"))
			fmt.Fprintln(out, "  "+ui.MacroLine("Carbs", day.Macros.Consumed.Carbs, goals.Carbs, "g"))
			fmt.Fprintln(out, "  "+ui.MacroLine("Fats", day.Macros.Consumed.Fats, goals.Fats, "g"))

			progress := hydration.ProgressOf(day.Hydration)
			fmt.Fprintf(out, "\n%s %d/%d glasses %s %.1fL of %.1fL\n",
				ui.IconWater, progress.Glasses, hydration.GoalGlasses,
				ui.ProgressBar(progress.Glasses, hydration.GoalGlasses, 14),
				progress.Liters, float64(hydration.DailyGoalML)/1000)

			stats, err := service.ComputeStats(sqldb, now)
			if err != nil {
				return err
			}
			if stats.Streak > 0 {
				fmt.Fprintf(out, "%s %d-day streak (%d%% completion)\n", ui.IconFire, stats.Streak, stats.Rate)
			}

			ask, err := service.ShouldAskWorkoutCheck(sqldb, day)
			if err != nil {
				return err
			}
			if ask {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.Warn.Render("Did you train today?")+
					ui.Dim.Render(" Record it with 'hybridfit workout done' or push the plan with 'hybridfit workout skip'."))
			}

			yesterdayKey, askPrev, err := service.ShouldAskPreviousDayCheck(sqldb, now)
			if err != nil {
				return err
			}
			if askPrev {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("Did you train yesterday (%s)?", yesterdayKey))+
					ui.Dim.Render(fmt.Sprintf(" Record it with 'hybridfit workout done --date %s'.", yesterdayKey)))
				if err := service.MarkWorkoutAsked(sqldb, yesterdayKey); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
