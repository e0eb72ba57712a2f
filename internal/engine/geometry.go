package engine

import (
	"fmt"
	"math"

	"github.com/drillkit/drillkit/pkg/types"
)

// breakthroughMm is the fixed extra plunge added on top of the conical
// tip compensation so the full diameter clears the exit face.
const breakthroughMm = 0.2

// Compensate computes the extra Z plunge depth required for the drill
// to fully break through at the hole exit, given the tip included angle
// and the exit chamfer size:
//
//	dZ = (chamfer/2) / tan(tipAngle/2) + 0.2
//
// A tip angle of 0 or 180 degrees has no defined cone and is rejected.
func Compensate(tipAngleDeg, exitChamferMm float64) (float64, error) {
	if tipAngleDeg <= 0 || tipAngleDeg >= 180 {
		return 0, fmt.Errorf("geometry: tip angle %v deg is degenerate: %w",
			tipAngleDeg, types.ErrInvalidGeometry)
	}
	if exitChamferMm < 0 {
		return 0, fmt.Errorf("geometry: exit chamfer %v mm is negative: %w",
			exitChamferMm, types.ErrInvalidGeometry)
	}

	halfAngle := tipAngleDeg / 2 * math.Pi / 180
	return exitChamferMm/2/math.Tan(halfAngle) + breakthroughMm, nil
}
