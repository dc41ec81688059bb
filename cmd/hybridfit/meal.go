package hybridfit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/plan"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and review today's meals",
}

var (
	mealCalories int
	mealProtein  int
	mealCarbs    int
	mealFats     int
)

var mealLogCmd = &cobra.Command{
	Use:   "log <description>",
	Short: "Log an extra meal with manual macros",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			label := args[0]
			for _, a := range args[1:] {
				label += " " + a
			}
			m := model.MacroInfo{Calories: mealCalories, Protein: mealProtein, Carbs: mealCarbs, Fats: mealFats}
			if err := service.LogExtraMeal(sqldb, day, label, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %q (%d kcal). Today: %d kcal\n",
				label, m.Calories, day.Macros.Consumed.Calories)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's logged meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(day.Macros.Meals) == 0 {
				fmt.Fprintln(out, "No meals logged today.")
				return nil
			}
			fmt.Fprintln(out, "#\tTIME\tKCAL\tSOURCE\tMEAL")
			for i, meal := range day.Macros.Meals {
				source := meal.ReminderID
				if source == model.ExtraMealID {
					source = "extra"
				}
				fmt.Fprintf(out, "%d\t%s\t%d\t%s\t%s\n",
					i+1, timeutil.Format12Hour(meal.Time), meal.Macros.Calories, source, meal.Option)
			}
			goals := plan.DailyMacroGoals
			c := day.Macros.Consumed
			fmt.Fprintf(out, "\nTotal: %d/%d kcal | P %d/%dg | C %d/%dg | F %d/%dg\n",
				c.Calories, goals.Calories, c.Protein, goals.Protein, c.Carbs, goals.Carbs, c.Fats, goals.Fats)
			return nil
		})
	},
}

var mealRemoveCmd = &cobra.Command{
	Use:   "remove <position>",
	Short: "Remove an extra meal by its list position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		position, err := parsePositionArg("position", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			removed, err := service.RemoveExtraMeal(sqldb, day, position)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q (%d kcal). Today: %d kcal\n",
				removed.Option, removed.Macros.Calories, day.Macros.Consumed.Calories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealLogCmd, mealListCmd, mealRemoveCmd)

	mealLogCmd.Flags().IntVar(&mealCalories, "cal", 0, "Calories")
	mealLogCmd.Flags().IntVar(&mealProtein, "protein", 0, "Protein grams")
	mealLogCmd.Flags().IntVar(&mealCarbs, "carbs", 0, "Carb grams")
	mealLogCmd.Flags().IntVar(&mealFats, "fats", 0, "Fat grams")
}
