package engine

import (
	"fmt"
	"math"

	"github.com/drillkit/drillkit/internal/tables"
	"github.com/drillkit/drillkit/pkg/types"
)

// Tool-life penalty coefficients.
const (
	heatDepthCoeff    = 0.08
	heatDepthExponent = 1.3
	loadExponent      = 0.4
)

// EstimateLife computes the dimensionless relative tool-life index for
// the job at the given realized spindle speed and feed rate.
//
// Three factors compose multiplicatively:
//   - Taylor speed factor (V_ref/V_c)^(1/n) — running below the
//     reference surface speed extends life, above it shortens life
//     steeply;
//   - heat-accumulation penalty 1/(1 + 0.08*(L/D)^1.3) — deep holes
//     retain heat;
//   - feed-load penalty (1/f_ratio)^0.4, where f_ratio is the realized
//     mm/rev feed normalized against the material/tool reference feed.
//
// Holding S and F fixed, the index strictly decreases as L/D grows.
func EstimateLife(spec types.JobSpec, params types.CuttingParameters, tb *tables.Tables) (float64, error) {
	if spec.DiameterMm <= 0 || spec.DepthMm <= 0 {
		return 0, fmt.Errorf(
			"life: diameter and depth must be positive (D=%v L=%v): %w",
			spec.DiameterMm, spec.DepthMm, types.ErrInvalidGeometry)
	}
	if params.SpindleRPM <= 0 || params.FeedMmMin <= 0 {
		return 0, fmt.Errorf(
			"life: spindle speed and feed must be positive (S=%v F=%v): %w",
			params.SpindleRPM, params.FeedMmMin, types.ErrInvalidGeometry)
	}

	vcRef, err := tb.ReferenceVelocity(spec.Material)
	if err != nil {
		return 0, err
	}
	speedRatio, err := tb.ToolSpeedRatio(spec.Tool)
	if err != nil {
		return 0, err
	}
	n, err := tb.TaylorExponent(spec.Tool)
	if err != nil {
		return 0, err
	}
	feedFactor, err := tb.ReferenceFeedFactor(spec.Material)
	if err != nil {
		return 0, err
	}
	feedRatio, err := tb.ToolFeedRatio(spec.Tool)
	if err != nil {
		return 0, err
	}

	// Realized surface speed from the optimized RPM.
	vc := math.Pi * spec.DiameterMm * params.SpindleRPM / 1000
	speedTerm := math.Pow(vcRef*speedRatio/vc, 1/n)

	ld := spec.AspectRatio()
	heatTerm := 1 / (1 + heatDepthCoeff*math.Pow(ld, heatDepthExponent))

	fRatio := params.FeedPerRev() / (feedFactor * spec.DiameterMm * feedRatio)
	loadTerm := math.Pow(1/fRatio, loadExponent)

	return speedTerm * heatTerm * loadTerm, nil
}
