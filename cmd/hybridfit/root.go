package hybridfit

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "hybridfit",
	Short: "hybridfit tracks your daily training routine from the terminal",
	Long:  "hybridfit is a local-first daily routine tracker: reminder schedule with completion time shifting, meal and macro logging, hydration, and workout streaks.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
