package hybridfit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/notify"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage the daily notification plan",
}

var notifyRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the notification plan from today's schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.RefreshNotifications(sqldb, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planned %d daily notifications\n", len(entries))
			return nil
		})
	},
}

var notifyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the planned notifications in firing order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := notify.List(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No notifications planned. Run 'hybridfit notify refresh'.")
				return nil
			}
			fmt.Fprintln(out, "TIME\tKIND\tTITLE")
			for _, e := range entries {
				fmt.Fprintf(out, "%02d:%02d\t%s\t%s\n", e.Hour, e.Minute, e.Kind, e.Title)
			}
			return nil
		})
	},
}

var notifyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the stored notification plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := notify.Clear(sqldb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Notification plan cleared")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifyRefreshCmd, notifyListCmd, notifyClearCmd)
}
