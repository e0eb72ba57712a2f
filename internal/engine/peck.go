package engine

import (
	"fmt"
	"math"

	"github.com/drillkit/drillkit/pkg/types"
)

// Peck model constants.
const (
	// rEffCap bounds the aspect ratio used for base-value derivation so
	// extreme L/D cannot drive the linear terms degenerate.
	rEffCap = 10.0

	// peckDecayPower shapes the depth-position power law.
	peckDecayPower = 0.6

	// minQPeckMm is the floor for the fixed Q_MODE peck depth.
	minQPeckMm = 0.05

	// coverageEps terminates accumulation; it matches the tolerance the
	// plan's total-coverage guarantee is stated with.
	coverageEps = 1e-9
)

// BaseValues derives the peck cycle base parameters I (initial depth),
// J (decrement shaping) and K (minimum depth) from the tool diameter,
// the stability-capped aspect ratio and the selected strategy. It is
// the primary tunable of the peck model; DefaultBaseValues is the
// built-in policy. The returned values are millimeters.
type BaseValues func(diameterMm, rEff float64, strategy types.Strategy) (i, j, k float64)

// DefaultBaseValues is the built-in base-value policy: linear in the
// capped aspect ratio, clamped to fixed diameter fractions, with
// additional shrink for DEEP_PROTECT and near-constant pecks for
// Q_MODE.
//
//	I(R) = D * clamp(1.2  - 0.08*R, 0.40, 1.20)
//	J(R) = D * clamp(0.18 - 0.01*R, 0.04, 0.18)
//	K(R) = D * clamp(0.25 - 0.01*R, 0.08, 0.25)
func DefaultBaseValues(diameterMm, rEff float64, strategy types.Strategy) (i, j, k float64) {
	if strategy == types.StrategyQMode {
		// Fixed-depth pecking: I == K yields a constant sequence.
		q := math.Max(0.8*diameterMm, minQPeckMm)
		return q, 0, q
	}

	i = diameterMm * clamp(1.2-0.08*rEff, 0.4, 1.2)
	j = diameterMm * clamp(0.18-0.01*rEff, 0.04, 0.18)
	k = diameterMm * clamp(0.25-0.01*rEff, 0.08, 0.25)

	if strategy == types.StrategyDeepProtect {
		i *= 0.8
		k *= 0.8
	}
	return i, j, k
}

// GeneratePecks builds the ordered peck-depth sequence for a job whose
// strategy requires pecking.
//
// Each peck depth is evaluated from the power law
//
//	P(z) = K + (I-K) * (1 - (z/L)^0.6)
//
// at the cumulative depth z already drilled, floored at K, then clamped
// against the previous peck so the sequence never increases. The final
// peck is clipped to the remaining depth, so the plan covers L exactly.
func GeneratePecks(spec types.JobSpec, strategy types.Strategy, bv BaseValues) (*types.PeckPlan, error) {
	if !strategy.Pecks() {
		return nil, fmt.Errorf("peck: strategy %s does not peck", strategy)
	}
	if spec.DiameterMm <= 0 || spec.DepthMm <= 0 {
		return nil, fmt.Errorf(
			"peck: diameter and depth must be positive (D=%v L=%v): %w",
			spec.DiameterMm, spec.DepthMm, types.ErrInvalidGeometry)
	}
	if bv == nil {
		bv = DefaultBaseValues
	}

	depth := spec.DepthMm
	rEff := math.Min(spec.AspectRatio(), rEffCap)
	i, j, k := bv(spec.DiameterMm, rEff, strategy)
	if i <= 0 || k <= 0 {
		return nil, fmt.Errorf("peck: base values I=%v K=%v: %w", i, k, types.ErrDegeneratePeckPlan)
	}

	plan := &types.PeckPlan{I: i, J: j, K: k}
	var drilled float64
	prev := math.Inf(1)

	for drilled < depth-coverageEps {
		decay := 1 - math.Pow(drilled/depth, peckDecayPower)
		p := k + (i-k)*decay
		p = math.Max(p, k)
		p = math.Min(p, prev)
		if p <= 0 {
			return nil, fmt.Errorf("peck: depth %v at z=%v: %w", p, drilled, types.ErrDegeneratePeckPlan)
		}
		// Last peck: clip to the remainder, which may undercut K.
		if drilled+p > depth {
			p = depth - drilled
		}
		plan.Depths = append(plan.Depths, p)
		drilled += p
		prev = p
	}

	return plan, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
