package hybridfit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/ui"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show this week's plan with recorded outcomes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			week, err := service.BuildWeek(sqldb, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range week {
				marker := "  "
				if d.IsToday {
					marker = ui.SelectedRow.Render("> ")
				}
				status := " "
				switch {
				case d.IsRest:
					status = ui.Dim.Render("rest")
				case d.IsRecorded && d.IsCompleted:
					status = ui.Good.Render("done")
				case d.IsRecorded:
					status = ui.Bad.Render("missed")
				default:
					status = ui.Muted.Render("-")
				}
				name := d.Workout.Name
				fmt.Fprintf(out, "%s%s %2d  %-20s %s\n", marker, d.Name, d.Num, name, status)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
