package cli

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/drillkit/drillkit/internal/engine"
	"github.com/drillkit/drillkit/internal/tables"
)

var watchFile string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute a batch whenever the tables file changes",
	Long: `watch computes the jobs in --file once, then monitors the --tables
file and recomputes whenever it is rewritten. Useful while tuning
empirical constants: edit the tables file and read the new parameters
immediately. Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFile, "file", "f", "", "YAML file with a jobs list (required)")
	_ = watchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if tablesPath == "" {
		return fmt.Errorf("watch requires --tables: there is nothing to watch without a tables file")
	}

	specs, err := readJobsFile(watchFile)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	recompute := func(tb *tables.Tables) {
		results, err := engine.New(tb).ComputeBatch(ctx, specs)
		if err != nil {
			slog.Error("recompute failed", "err", err)
			return
		}
		if err := writeResults(cmd.OutOrStdout(), results); err != nil {
			slog.Error("write results", "err", err)
		}
	}

	tb, err := loadTables()
	if err != nil {
		return err
	}
	recompute(tb)

	return tables.Watch(ctx, tablesPath, recompute)
}
