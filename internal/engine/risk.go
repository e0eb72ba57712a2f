package engine

import (
	"fmt"
	"math"

	"github.com/drillkit/drillkit/internal/tables"
	"github.com/drillkit/drillkit/pkg/types"
)

// Depth risk constants: every hole carries the baseline offset even as
// L/D approaches zero, and risk worsens non-linearly with aspect ratio.
const (
	depthRiskFloor    = 1.2
	depthRiskExponent = 1.4
)

// Strategy band boundaries over the drilling risk index. Bands are
// half-open [lo, hi) with the last band open-ended, so exactly one
// strategy applies to any DRI.
const (
	driQMode       = 6.0
	driIJKDynamic  = 18.0
	driDeepProtect = 40.0
)

// StrategyFor maps a drilling risk index to its strategy band.
func StrategyFor(dri float64) types.Strategy {
	switch {
	case dri < driQMode:
		return types.StrategyDirect
	case dri < driIJKDynamic:
		return types.StrategyQMode
	case dri < driDeepProtect:
		return types.StrategyIJKDynamic
	default:
		return types.StrategyDeepProtect
	}
}

// Assess computes the drilling risk index for the job and classifies it
// into a strategy.
//
// DRI = (1.2 + (L/D)^1.4) * materialRisk * coolantRisk * toolRisk
func Assess(spec types.JobSpec, tb *tables.Tables) (types.RiskAssessment, error) {
	if spec.DiameterMm <= 0 || spec.DepthMm <= 0 {
		return types.RiskAssessment{}, fmt.Errorf(
			"risk: diameter and depth must be positive (D=%v L=%v): %w",
			spec.DiameterMm, spec.DepthMm, types.ErrInvalidGeometry)
	}

	matRisk, err := tb.MaterialRisk(spec.Material)
	if err != nil {
		return types.RiskAssessment{}, err
	}
	coolRisk, err := tb.CoolantRisk(spec.Coolant)
	if err != nil {
		return types.RiskAssessment{}, err
	}
	toolRisk, err := tb.ToolRisk(spec.Tool)
	if err != nil {
		return types.RiskAssessment{}, err
	}

	factors := types.RiskFactors{
		Depth:    depthRiskFloor + math.Pow(spec.AspectRatio(), depthRiskExponent),
		Material: matRisk,
		Coolant:  coolRisk,
		Tool:     toolRisk,
	}
	dri := factors.Depth * factors.Material * factors.Coolant * factors.Tool

	return types.RiskAssessment{
		DRI:      dri,
		Factors:  factors,
		Strategy: StrategyFor(dri),
	}, nil
}
