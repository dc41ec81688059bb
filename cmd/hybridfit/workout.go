package hybridfit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/ui"
	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Show today's workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if day.Workout.IsRest() {
				fmt.Fprintln(out, ui.Heading(ui.IconRest, "Rest Day"))
				fmt.Fprintln(out, "Active recovery: walk, stretch, eat well.")
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconWorkout, day.Workout.Name)+"  "+ui.Muted.Render(string(day.Workout.Type)))
			for _, ex := range day.Workout.Exercises {
				fmt.Fprintf(out, "  - %s\n", ex)
			}
			return nil
		})
	},
}

var workoutDoneDate string

var workoutDoneCmd = &cobra.Command{
	Use:   "done",
	Short: "Toggle the workout outcome for a day (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateKey, err := parseDateOrToday(workoutDoneDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			completed, err := service.ToggleWorkoutDay(sqldb, dateKey, time.Now())
			if err != nil {
				return err
			}
			if completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Recorded %s as trained\n", ui.IconDone, dateKey)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s as missed\n", dateKey)
			}
			if err := service.MarkWorkoutAsked(sqldb, dateKey); err != nil {
				return err
			}
			return nil
		})
	},
}

var workoutSkipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Push today's workout to tomorrow",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.RescheduleToTomorrow(sqldb, time.Now()); err != nil {
				return err
			}
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan pushed back a day. Today is now: %s\n", day.Workout.Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutDoneCmd, workoutSkipCmd)

	workoutDoneCmd.Flags().StringVar(&workoutDoneDate, "date", "", "Date YYYY-MM-DD (default today)")
}
