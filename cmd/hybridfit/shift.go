package hybridfit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/timeutil"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [morning|evening]",
	Short: "Show or set today's schedule shift",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		dateKey := timeutil.DateKey(now)
		return withDB(func(sqldb *sql.DB) error {
			if len(args) == 0 {
				shift, err := service.ShiftForDate(sqldb, dateKey)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Today's shift: %s\n", shift)
				return nil
			}
			shift := model.Shift(args[0])
			if !shift.IsValid() {
				return fmt.Errorf("invalid shift %q, want morning or evening", args[0])
			}
			if err := service.SetShiftForDate(sqldb, dateKey, shift); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shift set to %s for %s\n", shift, dateKey)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(shiftCmd)
}
