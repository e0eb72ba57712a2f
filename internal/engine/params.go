package engine

import (
	"fmt"
	"math"

	"github.com/drillkit/drillkit/internal/tables"
	"github.com/drillkit/drillkit/pkg/types"
)

// Second-order depth correction coefficients: deeper holes lose spindle
// speed (deflection, chip evacuation) faster than they lose feed.
const (
	speedDepthCoeff = 0.035
	feedDepthCoeff  = 0.02
)

// Optimize computes the spindle speed and feed rate for the job.
//
// The spindle speed is derived first from the reference cutting speed,
// scaled by the coolant and tool factors, corrected for aspect ratio,
// and truncated at the machine RPM ceiling. The feed rate is then
// derived from the realized spindle speed — changing anything that
// moves S also moves F.
func Optimize(spec types.JobSpec, tb *tables.Tables) (types.CuttingParameters, error) {
	if spec.DiameterMm <= 0 || spec.DepthMm <= 0 {
		return types.CuttingParameters{}, fmt.Errorf(
			"params: diameter and depth must be positive (D=%v L=%v): %w",
			spec.DiameterMm, spec.DepthMm, types.ErrInvalidGeometry)
	}

	vcRef, err := tb.ReferenceVelocity(spec.Material)
	if err != nil {
		return types.CuttingParameters{}, err
	}
	coolFactor, err := tb.CoolantSpeedFactor(spec.Coolant)
	if err != nil {
		return types.CuttingParameters{}, err
	}
	speedRatio, err := tb.ToolSpeedRatio(spec.Tool)
	if err != nil {
		return types.CuttingParameters{}, err
	}
	feedFactor, err := tb.ReferenceFeedFactor(spec.Material)
	if err != nil {
		return types.CuttingParameters{}, err
	}
	feedRatio, err := tb.ToolFeedRatio(spec.Tool)
	if err != nil {
		return types.CuttingParameters{}, err
	}

	ld := spec.AspectRatio()

	// Spindle speed: Vc (m/min) -> rev/min, then second-order depth
	// correction, then machine ceiling.
	sCalc := vcRef * speedRatio * coolFactor * 1000 / (math.Pi * spec.DiameterMm)
	s := sCalc / (1 + speedDepthCoeff*ld)
	limited := false
	if s > tb.Limits.MaxRPM {
		s = tb.Limits.MaxRPM
		limited = true
	}

	// Feed: mm/rev from the reference factor, micro-drilling penalty
	// below the threshold diameter, then mm/min via the realized S.
	frBase := feedFactor * spec.DiameterMm * feedRatio
	if spec.DiameterMm < tb.Limits.MicroThresholdMm {
		frBase *= tb.Limits.MicroPenalty
	}
	f := s * frBase / (1 + feedDepthCoeff*ld)

	return types.CuttingParameters{
		SpindleRPM: s,
		FeedMmMin:  f,
		RPMLimited: limited,
	}, nil
}
