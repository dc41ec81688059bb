package hybridfit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/ui"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show workout completion stats and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			stats, err := service.ComputeStats(sqldb, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Training Stats"))
			fmt.Fprintln(out, ui.LabelValue("Workouts completed", stats.Completed))
			fmt.Fprintln(out, ui.LabelValue("Completion rate", fmt.Sprintf("%d%%", stats.Rate)))
			fmt.Fprintln(out, ui.LabelValue("Current streak", fmt.Sprintf("%s %d training days", ui.IconFire, stats.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Week streak", fmt.Sprintf("%d full weeks", stats.WeekStreak)))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
