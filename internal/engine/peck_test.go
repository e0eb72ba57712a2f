package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/drillkit/drillkit/pkg/types"
)

func peckSpec(d, l float64) types.JobSpec {
	return types.JobSpec{
		DiameterMm:  d,
		DepthMm:     l,
		Material:    types.MaterialSteel,
		Coolant:     types.CoolantWaterJet,
		Tool:        types.ToolCarbide,
		TipAngleDeg: 118,
	}
}

// checkPlan asserts the two hard invariants of every peck plan:
// per-index monotonic non-increase and exact depth coverage.
func checkPlan(t *testing.T, plan *types.PeckPlan, depth float64) {
	t.Helper()
	if len(plan.Depths) == 0 {
		t.Fatal("empty peck plan")
	}
	for i, p := range plan.Depths {
		if p <= 0 {
			t.Errorf("peck %d = %v, want > 0", i, p)
		}
		if p > depth {
			t.Errorf("peck %d = %v exceeds hole depth %v", i, p, depth)
		}
		if i > 0 && p > plan.Depths[i-1]+1e-12 {
			t.Errorf("peck %d = %v increases over peck %d = %v", i, p, i-1, plan.Depths[i-1])
		}
	}
	if !almostEqual(plan.Total(), depth, 1e-9) {
		t.Errorf("plan total = %.12f, want %.12f", plan.Total(), depth)
	}
}

func TestGeneratePecks_Invariants(t *testing.T) {
	tests := []struct {
		name     string
		d, l     float64
		strategy types.Strategy
	}{
		{"q-mode shallow", 6, 18, types.StrategyQMode},
		{"ijk deep hole", 6, 60, types.StrategyIJKDynamic},
		{"deep protect extreme", 3, 90, types.StrategyDeepProtect},
		{"micro drill", 0.8, 8, types.StrategyIJKDynamic},
		{"depth shorter than first peck", 10, 2, types.StrategyIJKDynamic},
		{"aspect ratio beyond the stability cap", 2, 80, types.StrategyDeepProtect},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := GeneratePecks(peckSpec(tc.d, tc.l), tc.strategy, DefaultBaseValues)
			if err != nil {
				t.Fatalf("GeneratePecks: %v", err)
			}
			checkPlan(t, plan, tc.l)
		})
	}
}

func TestGeneratePecks_FirstPeckIsI(t *testing.T) {
	plan, err := GeneratePecks(peckSpec(6, 60), types.StrategyIJKDynamic, DefaultBaseValues)
	if err != nil {
		t.Fatalf("GeneratePecks: %v", err)
	}
	// At z=0 the power law yields exactly I.
	if !almostEqual(plan.Depths[0], plan.I, 1e-12) {
		t.Errorf("first peck = %v, want I = %v", plan.Depths[0], plan.I)
	}
	// The body of the sequence stays at or above K; only the final
	// clipped peck may undercut it.
	for i, p := range plan.Depths[:len(plan.Depths)-1] {
		if p < plan.K-1e-12 {
			t.Errorf("peck %d = %v below K = %v", i, p, plan.K)
		}
	}
}

func TestGeneratePecks_QModeConstantDepth(t *testing.T) {
	plan, err := GeneratePecks(peckSpec(6, 18), types.StrategyQMode, DefaultBaseValues)
	if err != nil {
		t.Fatalf("GeneratePecks: %v", err)
	}
	// Q_MODE pecks at a fixed 0.8*D; only the last peck may be shorter.
	want := 0.8 * 6
	for i, p := range plan.Depths[:len(plan.Depths)-1] {
		if !almostEqual(p, want, 1e-12) {
			t.Errorf("peck %d = %v, want constant %v", i, p, want)
		}
	}
	checkPlan(t, plan, 18)
}

func TestGeneratePecks_DeepProtectShrinks(t *testing.T) {
	spec := peckSpec(6, 60)
	ijk, err := GeneratePecks(spec, types.StrategyIJKDynamic, DefaultBaseValues)
	if err != nil {
		t.Fatalf("GeneratePecks(ijk): %v", err)
	}
	deep, err := GeneratePecks(spec, types.StrategyDeepProtect, DefaultBaseValues)
	if err != nil {
		t.Fatalf("GeneratePecks(deep): %v", err)
	}
	if !almostEqual(deep.I, 0.8*ijk.I, 1e-12) {
		t.Errorf("deep-protect I = %v, want 0.8 * %v", deep.I, ijk.I)
	}
	if !almostEqual(deep.K, 0.8*ijk.K, 1e-12) {
		t.Errorf("deep-protect K = %v, want 0.8 * %v", deep.K, ijk.K)
	}
}

// The monotonicity guard must hold for any base-value policy, including
// one whose raw power law rises with depth (I < K).
func TestGeneratePecks_MonotonicUnderAdversarialPolicy(t *testing.T) {
	rising := func(d, rEff float64, strategy types.Strategy) (float64, float64, float64) {
		return 0.2 * d, 0, 0.5 * d
	}
	plan, err := GeneratePecks(peckSpec(6, 30), types.StrategyIJKDynamic, rising)
	if err != nil {
		t.Fatalf("GeneratePecks: %v", err)
	}
	checkPlan(t, plan, 30)
}

func TestGeneratePecks_DegeneratePolicy(t *testing.T) {
	zeroI := func(d, rEff float64, strategy types.Strategy) (float64, float64, float64) {
		return 0, 0, 0.5
	}
	_, err := GeneratePecks(peckSpec(6, 30), types.StrategyIJKDynamic, zeroI)
	if !errors.Is(err, types.ErrDegeneratePeckPlan) {
		t.Errorf("zero I: err = %v, want ErrDegeneratePeckPlan", err)
	}

	negK := func(d, rEff float64, strategy types.Strategy) (float64, float64, float64) {
		return 0.5, 0, -1
	}
	_, err = GeneratePecks(peckSpec(6, 30), types.StrategyIJKDynamic, negK)
	if !errors.Is(err, types.ErrDegeneratePeckPlan) {
		t.Errorf("negative K: err = %v, want ErrDegeneratePeckPlan", err)
	}
}

func TestGeneratePecks_DirectRejected(t *testing.T) {
	if _, err := GeneratePecks(peckSpec(6, 6), types.StrategyDirect, DefaultBaseValues); err == nil {
		t.Error("expected error for DIRECT strategy, got nil")
	}
}

func TestDefaultBaseValues_Clamps(t *testing.T) {
	// At the stability cap the linear terms sit on their lower clamps.
	i, j, k := DefaultBaseValues(10, rEffCap, types.StrategyIJKDynamic)
	if !almostEqual(i, 10*0.4, 1e-12) {
		t.Errorf("I at cap = %v, want %v", i, 10*0.4)
	}
	if !almostEqual(j, 10*0.08, 1e-12) {
		t.Errorf("J at cap = %v, want %v", j, 10*0.08)
	}
	if !almostEqual(k, 10*0.15, 1e-12) {
		t.Errorf("K at cap = %v, want %v", k, 10*0.15)
	}

	// A shallow hole sits on the upper clamps.
	i, j, k = DefaultBaseValues(10, 0, types.StrategyIJKDynamic)
	if !almostEqual(i, 10*1.2, 1e-12) || !almostEqual(j, 10*0.18, 1e-12) || !almostEqual(k, 10*0.25, 1e-12) {
		t.Errorf("shallow base values = %v %v %v, want upper clamps", i, j, k)
	}
}

func TestGeneratePecks_PeckCountBounded(t *testing.T) {
	plan, err := GeneratePecks(peckSpec(2, 80), types.StrategyDeepProtect, DefaultBaseValues)
	if err != nil {
		t.Fatalf("GeneratePecks: %v", err)
	}
	// Every non-final peck is >= K, so the count is bounded by L/K + 1.
	bound := int(math.Ceil(80/plan.K)) + 1
	if len(plan.Depths) > bound {
		t.Errorf("peck count = %d exceeds bound %d", len(plan.Depths), bound)
	}
}
