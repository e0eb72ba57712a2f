package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the effective empirical tables",
	Long: `tables prints the lookup constants the calculator will use: the
built-in defaults with any --tables file overrides merged in. The YAML
output is itself a valid tables file.`,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	tb, err := loadTables()
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(tb)
	}

	data, err := yaml.Marshal(tb)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
