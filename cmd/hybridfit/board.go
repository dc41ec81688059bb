package hybridfit

import (
	"database/sql"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/tui"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive daily board",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			return tui.RunBoard(sqldb, cmd.OutOrStdout())
		})
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
