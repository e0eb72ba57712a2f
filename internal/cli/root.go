package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/drillkit/drillkit/internal/tables"
)

var (
	tablesPath string
	jsonOutput bool
	logLevel   string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "drillkit",
	Short: "Drilling parameter calculator",
	Long: `drillkit computes machining control parameters for drilling operations:
risk-based strategy selection, spindle speed and feed rate, peck-depth
sequences, a relative tool-life index and exit-breakthrough Z compensation.

All empirical constants ship built in; pass --tables to override them
from a YAML file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablesPath, "tables", "", "YAML file overriding the built-in empirical tables")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug | info | warn | error")
}

// loadTables returns the effective tables: the built-in defaults, or
// the --tables file merged over them.
func loadTables() (*tables.Tables, error) {
	if tablesPath == "" {
		return tables.Default(), nil
	}
	return tables.Load(tablesPath)
}
