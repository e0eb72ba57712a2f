package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/drillkit/drillkit/internal/engine"
	"github.com/drillkit/drillkit/pkg/types"
)

var (
	planFile    string
	diameter    float64
	depth       float64
	materialStr string
	coolantStr  string
	toolStr     string
	tipAngle    float64
	chamfer     float64
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute drilling parameters for one job or a batch file",
	Long: `plan runs the full calculation chain: risk assessment, strategy
selection, spindle/feed optimization, peck sequencing, tool-life
estimation and geometry compensation.

Describe a single job with flags, or pass --file with a YAML batch:

  jobs:
    - diameter_mm: 6
      depth_mm: 60
      material: steel
      coolant: waterjet
      tool: carbide
      tip_angle_deg: 118
      exit_chamfer_mm: 0.4`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFile, "file", "f", "", "YAML file with a jobs list")
	planCmd.Flags().Float64VarP(&diameter, "diameter", "d", 0, "Hole diameter in mm")
	planCmd.Flags().Float64VarP(&depth, "depth", "l", 0, "Hole depth in mm")
	planCmd.Flags().StringVarP(&materialStr, "material", "m", "", "Workpiece material: aluminum | steel | sus304 | titanium | ceramic")
	planCmd.Flags().StringVarP(&coolantStr, "coolant", "c", "", "Coolant method: internal | waterjet | oilmist | dry")
	planCmd.Flags().StringVarP(&toolStr, "tool", "t", "carbide", "Tool material: carbide | hss")
	planCmd.Flags().Float64Var(&tipAngle, "tip-angle", 118, "Tip included angle in degrees")
	planCmd.Flags().Float64Var(&chamfer, "chamfer", 0, "Exit chamfer size in mm")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	tb, err := loadTables()
	if err != nil {
		return err
	}

	specs, err := collectJobs()
	if err != nil {
		return err
	}

	results, err := engine.New(tb).ComputeBatch(cmd.Context(), specs)
	if err != nil {
		return err
	}

	return writeResults(cmd.OutOrStdout(), results)
}

// collectJobs builds the job list from --file or from the single-job
// flags.
func collectJobs() ([]types.JobSpec, error) {
	if planFile != "" {
		return readJobsFile(planFile)
	}

	spec := types.JobSpec{
		DiameterMm:    diameter,
		DepthMm:       depth,
		TipAngleDeg:   tipAngle,
		ExitChamferMm: chamfer,
	}
	var err error
	if spec.Material, err = types.ParseMaterial(materialStr); err != nil {
		return nil, err
	}
	if spec.Coolant, err = types.ParseCoolant(coolantStr); err != nil {
		return nil, err
	}
	if spec.Tool, err = types.ParseToolMaterial(toolStr); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return []types.JobSpec{spec}, nil
}

// jobsFile is the on-disk batch format.
type jobsFile struct {
	Jobs []types.JobSpec `yaml:"jobs"`
}

func readJobsFile(path string) ([]types.JobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jobs: read file: %w", err)
	}
	return parseJobs(data)
}

func parseJobs(data []byte) ([]types.JobSpec, error) {
	var f jobsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("jobs: parse yaml: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("jobs: file contains no jobs")
	}
	for i, spec := range f.Jobs {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
	}
	return f.Jobs, nil
}

func writeResults(w io.Writer, results []*types.Result) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeResult(w, res)
	}
	return nil
}

func writeResult(w io.Writer, res *types.Result) {
	fmt.Fprintf(w, "job: D=%.3gmm L=%.4gmm %s / %s / %s\n",
		res.Job.DiameterMm, res.Job.DepthMm, res.Job.Material, res.Job.Coolant, res.Job.Tool)
	fmt.Fprintf(w, "  risk:     DRI %.1f -> %s\n", res.Risk.DRI, res.Risk.Strategy)

	limited := ""
	if res.Params.RPMLimited {
		limited = " (machine ceiling)"
	}
	fmt.Fprintf(w, "  cutting:  S %.0f rpm%s, F %.1f mm/min (%.4f mm/rev)\n",
		res.Params.SpindleRPM, limited, res.Params.FeedMmMin, res.Params.FeedPerRev())

	depths := []float64{res.Job.DepthMm}
	if res.Peck != nil {
		depths = res.Peck.Depths
		fmt.Fprintf(w, "  pecks:    %d passes (I=%.3f J=%.3f K=%.3f): %s\n",
			len(res.Peck.Depths), res.Peck.I, res.Peck.J, res.Peck.K, formatDepths(res.Peck.Depths))
	}

	if minutes, err := engine.EstimateCycleTime(depths,
		res.Params.FeedMmMin, engine.DefaultG0MmMin, engine.DefaultClearanceMm); err == nil {
		fmt.Fprintf(w, "  cycle:    %.2f min\n", minutes)
	}

	fmt.Fprintf(w, "  life:     index %.2f\n", res.LifeIndex)
	fmt.Fprintf(w, "  geometry: dZ +%.3f mm\n", res.DeltaZMm)
}

// formatDepths renders a peck sequence compactly, eliding long runs.
func formatDepths(depths []float64) string {
	const head = 8
	parts := make([]string, 0, head+1)
	for i, d := range depths {
		if i == head && len(depths) > head+1 {
			parts = append(parts, fmt.Sprintf("... +%d more", len(depths)-head))
			break
		}
		parts = append(parts, fmt.Sprintf("%.3f", d))
	}
	return strings.Join(parts, " ")
}
