package hybridfit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/schedule"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/ui"
	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Work with today's reminder schedule",
}

var remindListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's reminders with their effective times",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tTIME\tSTATUS\tTITLE")
			for _, r := range day.Catalog {
				completedAt, done := day.Completions.Completions[r.ID]
				status := "pending"
				if done {
					status = "done " + timeutil.Format12Hour(completedAt)
				} else if schedule.IsAdjusted(day.Completions, r.ID) {
					status = "adjusted"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n",
					r.ID, timeutil.Format12Hour(schedule.DisplayTime(day.Completions, r)), status, r.Title)
			}
			return nil
		})
	},
}

var remindShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a reminder's details and meal options",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			r, ok := plan.Find(day.Catalog, args[0])
			if !ok {
				return fmt.Errorf("no reminder %q on today's schedule", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(r.Icon, r.Detail.Heading))
			fmt.Fprintln(out, ui.LabelValue("Time", timeutil.Format12Hour(schedule.DisplayTime(day.Completions, r))))
			for _, item := range r.Detail.Items {
				fmt.Fprintf(out, "  - %s\n", item)
			}
			if r.Detail.Tip != "" {
				fmt.Fprintln(out, ui.Dim.Render("Tip: "+r.Detail.Tip))
			}
			if len(r.Options) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.H2.Render("Options"))
				for i, opt := range r.Options {
					fmt.Fprintf(out, "  %d. %s (%d kcal, P %dg / C %dg / F %dg)\n",
						i+1, opt.Label, opt.Macros.Calories, opt.Macros.Protein, opt.Macros.Carbs, opt.Macros.Fats)
				}
			}
			if len(r.Detail.VegAlternatives) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.H2.Render("Veg Alternatives"))
				for _, alt := range r.Detail.VegAlternatives {
					fmt.Fprintf(out, "  - %s\n", alt)
				}
			}
			return nil
		})
	},
}

var remindOption string

var remindDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a reminder complete, shifting the rest of today to match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			res, err := service.CompleteReminder(sqldb, day, args[0], remindOption)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s completed\n", ui.IconDone, res.Reminder.Title)
			if res.LoggedMeal && res.Option.Macros.Calories > 0 {
				fmt.Fprintf(out, "Logged: %s (%d kcal)\n", res.Option.Label, res.Option.Macros.Calories)
			}
			if res.ShiftMinutes != 0 {
				fmt.Fprintf(out, "Remaining reminders shifted by %+d min\n", res.ShiftMinutes)
			}
			return nil
		})
	},
}

var remindUndoCmd = &cobra.Command{
	Use:   "undo <id>",
	Short: "Revert a completion and replay today's time adjustments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			r, err := service.UndoReminder(sqldb, day, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Undid %s; schedule recalculated\n", r.Title)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.AddCommand(remindListCmd, remindShowCmd, remindDoneCmd, remindUndoCmd)

	remindDoneCmd.Flags().StringVar(&remindOption, "option", "", "Meal option number or label prefix")
}
