package hybridfit

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hybridfit local configuration",
}

var (
	cfgGroqAPIKey string
	cfgGroqModel  string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			if cmd.Flags().Changed("groq-api-key") {
				if err := service.SetConfig(sqldb, service.ConfigGroqAPIKey, cfgGroqAPIKey); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("groq-model") {
				if err := service.SetConfig(sqldb, service.ConfigGroqModel, cfgGroqModel); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(cfg))
			for k := range cfg {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			for _, k := range keys {
				value := cfg[k]
				if k == service.ConfigGroqAPIKey && value != "" {
					value = maskSecret(value)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, value)
			}
			return nil
		})
	},
}

func maskSecret(v string) string {
	if len(v) <= 4 {
		return strings.Repeat("*", len(v))
	}
	return strings.Repeat("*", len(v)-4) + v[len(v)-4:]
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd)

	configSetCmd.Flags().StringVar(&cfgGroqAPIKey, "groq-api-key", "", "Groq API key for nutrition lookups")
	configSetCmd.Flags().StringVar(&cfgGroqModel, "groq-model", "", "Groq model override")
}
