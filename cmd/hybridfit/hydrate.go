package hybridfit

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/hydration"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/ui"
	"github.com/spf13/cobra"
)

var hydrateCmd = &cobra.Command{
	Use:   "hydrate [glasses]",
	Short: "Log glasses of water (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		glasses := 1
		if len(args) == 1 {
			n, err := parsePositionArg("glasses", args[0])
			if err != nil {
				return err
			}
			glasses = n
		}
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			progress, err := service.AddWater(sqldb, day, glasses)
			if err != nil {
				if errors.Is(err, hydration.ErrGoalReached) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s Daily goal already reached (%d glasses, %.1fL)\n",
						ui.IconDone, progress.Glasses, progress.Liters)
					return nil
				}
				return err
			}
			printHydration(cmd, progress)
			return nil
		})
	},
}

var hydrateRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove one logged glass",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			progress, err := service.RemoveWater(sqldb, day)
			if err != nil {
				return err
			}
			printHydration(cmd, progress)
			return nil
		})
	},
}

var hydrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's hydration progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			day, err := service.LoadDay(sqldb, time.Now())
			if err != nil {
				return err
			}
			printHydration(cmd, hydration.ProgressOf(day.Hydration))
			return nil
		})
	},
}

func printHydration(cmd *cobra.Command, p hydration.Progress) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d/%d glasses %s %.1fL down, %.1fL to go\n",
		ui.IconWater, p.Glasses, hydration.GoalGlasses,
		ui.ProgressBar(p.Glasses, hydration.GoalGlasses, 16), p.Liters, p.Remaining)
}

func init() {
	rootCmd.AddCommand(hydrateCmd)
	hydrateCmd.AddCommand(hydrateRemoveCmd, hydrateStatusCmd)
}
