package hybridfit

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/provider/groq"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/ui"
	"github.com/spf13/cobra"
)

var lookupLog bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <meal description>",
	Short: "Estimate macros for a meal via the Groq API",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withDB(func(sqldb *sql.DB) error {
			client, err := service.NewNutritionClient(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if lookupLog {
				day, err := service.LoadDay(sqldb, time.Now())
				if err != nil {
					return err
				}
				result, err := service.LookupAndLogMeal(cmd.Context(), sqldb, day, client, query)
				if err != nil {
					return lookupFallback(cmd, err)
				}
				fmt.Fprintf(out, "Logged %q: %d kcal, P %dg / C %dg / F %dg. Today: %d kcal\n",
					result.Label, result.Calories, result.Protein, result.Carbs, result.Fats,
					day.Macros.Consumed.Calories)
				return nil
			}

			result, err := client.Lookup(cmd.Context(), query)
			if err != nil {
				return lookupFallback(cmd, err)
			}
			fmt.Fprintf(out, "%s: %d kcal, P %dg / C %dg / F %dg\n",
				result.Label, result.Calories, result.Protein, result.Carbs, result.Fats)
			return nil
		})
	},
}

// lookupFallback turns a classified lookup failure into a hint pointing
// at manual entry, so a flaky or unconfigured API never blocks logging.
func lookupFallback(cmd *cobra.Command, err error) error {
	var hint string
	switch groq.KindOf(err) {
	case groq.FailureInvalidCredential:
		hint = "Set a key with 'hybridfit config set --groq-api-key <key>'."
	case groq.FailureRateLimited:
		hint = "The API is rate limited; try again in a minute."
	case groq.FailureTimeout, groq.FailureNetwork:
		hint = "Check your connection and retry."
	case groq.FailureNoData:
		hint = "No estimate for that description; try rephrasing."
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Lookup failed: ")+err.Error())
	if hint != "" {
		fmt.Fprintln(cmd.OutOrStdout(), hint)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Log manually with 'hybridfit meal log <desc> --cal N --protein N --carbs N --fats N'.")
	return nil
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolVar(&lookupLog, "log", false, "Log the estimate as an extra meal")
}
