package engine

import (
	"fmt"
	"math"
)

// Cycle-time model defaults: typical rapid traverse and the clearance a
// peck cycle re-approaches the previous bottom with.
const (
	DefaultG0MmMin     = 5000.0
	DefaultClearanceMm = 0.1
)

// EstimateCycleTime returns the estimated minutes to drill one hole
// with the given peck depths. The first peck feeds from the R plane to
// its bottom; every later peck rapids down to just above the previous
// bottom, feeds through the clearance to its own bottom, and every peck
// ends with a rapid retract to R. Distances are measured from R, so the
// R-plane height itself cancels out of the model.
//
// A single-element depths slice models a DIRECT plunge.
func EstimateCycleTime(depths []float64, feedMmMin, g0MmMin, clearanceMm float64) (float64, error) {
	if feedMmMin <= 0 {
		return 0, fmt.Errorf("cycletime: feed rate must be positive, got %v", feedMmMin)
	}
	if g0MmMin <= 0 {
		return 0, fmt.Errorf("cycletime: rapid speed must be positive, got %v", g0MmMin)
	}
	if clearanceMm < 0 {
		return 0, fmt.Errorf("cycletime: clearance must not be negative, got %v", clearanceMm)
	}

	var minutes, bottom float64
	for idx, p := range depths {
		if idx == 0 {
			minutes += p / feedMmMin
		} else {
			minutes += math.Abs(bottom-clearanceMm) / g0MmMin
			minutes += (p + clearanceMm) / feedMmMin
		}
		bottom += p
		minutes += bottom / g0MmMin
	}
	return minutes, nil
}

// EfficiencyReport compares the cycle time of two peck plans for the
// same hole.
type EfficiencyReport struct {
	BaselineMinutes  float64 `json:"baseline_minutes"`
	CandidateMinutes float64 `json:"candidate_minutes"`
	BaselinePecks    int     `json:"baseline_pecks"`
	CandidatePecks   int     `json:"candidate_pecks"`

	// TimeSavedPct is positive when the candidate is faster.
	TimeSavedPct float64 `json:"time_saved_pct"`
}

// CompareEfficiency estimates both plans at their respective feed rates
// and reports the relative time saving of the candidate over the
// baseline.
func CompareEfficiency(baseline, candidate []float64, baselineFeed, candidateFeed, g0MmMin, clearanceMm float64) (EfficiencyReport, error) {
	baseMin, err := EstimateCycleTime(baseline, baselineFeed, g0MmMin, clearanceMm)
	if err != nil {
		return EfficiencyReport{}, err
	}
	candMin, err := EstimateCycleTime(candidate, candidateFeed, g0MmMin, clearanceMm)
	if err != nil {
		return EfficiencyReport{}, err
	}

	rep := EfficiencyReport{
		BaselineMinutes:  baseMin,
		CandidateMinutes: candMin,
		BaselinePecks:    len(baseline),
		CandidatePecks:   len(candidate),
	}
	if baseMin > 0 {
		rep.TimeSavedPct = (baseMin - candMin) / baseMin * 100
	}
	return rep, nil
}
