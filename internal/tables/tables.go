package tables

import (
	"fmt"

	"github.com/drillkit/drillkit/pkg/types"
)

// MaterialEntry holds the empirical constants for one workpiece material.
type MaterialEntry struct {
	// RiskFactor is the multiplicative DRI contribution.
	RiskFactor float64 `yaml:"risk_factor"`

	// CuttingSpeed is the reference surface speed Vc in m/min for a
	// carbide tool under neutral coolant.
	CuttingSpeed float64 `yaml:"cutting_speed"`

	// FeedFactor is the reference feed in mm/rev per mm of tool
	// diameter.
	FeedFactor float64 `yaml:"feed_factor"`
}

// CoolantEntry holds the empirical constants for one coolant method.
type CoolantEntry struct {
	RiskFactor float64 `yaml:"risk_factor"`

	// SpeedFactor scales the reference cutting speed. Internal coolant
	// allows running above reference; dry cutting well below it.
	SpeedFactor float64 `yaml:"speed_factor"`
}

// ToolEntry holds the empirical constants for one tool material.
type ToolEntry struct {
	RiskFactor float64 `yaml:"risk_factor"`

	// TaylorExponent is the n in Taylor's tool-life equation.
	TaylorExponent float64 `yaml:"taylor_exponent"`

	// SpeedRatio and FeedRatio scale the material reference speed and
	// feed for this tool material (carbide is the 1.0 baseline).
	SpeedRatio float64 `yaml:"speed_ratio"`
	FeedRatio  float64 `yaml:"feed_ratio"`
}

// Limits holds machine and safety ceilings applied during optimization.
type Limits struct {
	// MaxRPM is the spindle ceiling; calculated speeds are truncated
	// to it.
	MaxRPM float64 `yaml:"max_rpm"`

	// MicroThresholdMm is the diameter below which the micro-drilling
	// feed penalty applies. The boundary is exclusive: a drill exactly
	// at the threshold is not penalized.
	MicroThresholdMm float64 `yaml:"micro_threshold_mm"`

	// MicroPenalty is the feed multiplier applied below the threshold.
	MicroPenalty float64 `yaml:"micro_penalty"`
}

// Tables bundles every empirical lookup the calculation core consumes.
// A Tables value is immutable after Validate; share it freely across
// goroutines.
type Tables struct {
	Materials map[types.Material]MaterialEntry `yaml:"materials"`
	Coolants  map[types.Coolant]CoolantEntry   `yaml:"coolants"`
	Tools     map[types.ToolMaterial]ToolEntry `yaml:"tools"`
	Limits    Limits                           `yaml:"limits"`
}

// Default returns the built-in reference tables.
//
// The waterjet speed factor has no published reference value; 1.0 is a
// working default pending domain review and can be overridden from a
// tables file.
func Default() *Tables {
	return &Tables{
		Materials: map[types.Material]MaterialEntry{
			types.MaterialAluminum: {RiskFactor: 0.8, CuttingSpeed: 100.0, FeedFactor: 0.015},
			types.MaterialSteel:    {RiskFactor: 1.0, CuttingSpeed: 35.0, FeedFactor: 0.009},
			types.MaterialSUS304:   {RiskFactor: 1.4, CuttingSpeed: 25.0, FeedFactor: 0.008},
			types.MaterialTitanium: {RiskFactor: 1.6, CuttingSpeed: 18.0, FeedFactor: 0.006},
			types.MaterialCeramic:  {RiskFactor: 2.0, CuttingSpeed: 15.0, FeedFactor: 0.003},
		},
		Coolants: map[types.Coolant]CoolantEntry{
			types.CoolantInternal: {RiskFactor: 0.75, SpeedFactor: 1.1},
			types.CoolantWaterJet: {RiskFactor: 1.0, SpeedFactor: 1.0},
			types.CoolantOilMist:  {RiskFactor: 1.2, SpeedFactor: 0.8},
			types.CoolantDry:      {RiskFactor: 1.6, SpeedFactor: 0.6},
		},
		Tools: map[types.ToolMaterial]ToolEntry{
			types.ToolCarbide: {RiskFactor: 0.9, TaylorExponent: 0.22, SpeedRatio: 1.0, FeedRatio: 1.0},
			types.ToolHSS:     {RiskFactor: 1.4, TaylorExponent: 0.10, SpeedRatio: 0.4, FeedRatio: 0.8},
		},
		Limits: Limits{
			MaxRPM:           40000,
			MicroThresholdMm: 1.0,
			MicroPenalty:     0.8,
		},
	}
}

// Validate checks that the tables cover every defined enum value with
// positive constants. Call it once at startup; lookups afterwards can
// only fail on categories outside the defined enums.
func (t *Tables) Validate() error {
	for _, m := range types.AllMaterials() {
		e, ok := t.Materials[m]
		if !ok {
			return fmt.Errorf("tables: material %q missing", m)
		}
		if e.RiskFactor <= 0 || e.CuttingSpeed <= 0 || e.FeedFactor <= 0 {
			return fmt.Errorf("tables: material %q: all constants must be positive, got %+v", m, e)
		}
	}
	for _, c := range types.AllCoolants() {
		e, ok := t.Coolants[c]
		if !ok {
			return fmt.Errorf("tables: coolant %q missing", c)
		}
		if e.RiskFactor <= 0 || e.SpeedFactor <= 0 {
			return fmt.Errorf("tables: coolant %q: all constants must be positive, got %+v", c, e)
		}
	}
	for _, tm := range types.AllTools() {
		e, ok := t.Tools[tm]
		if !ok {
			return fmt.Errorf("tables: tool %q missing", tm)
		}
		if e.RiskFactor <= 0 || e.TaylorExponent <= 0 || e.SpeedRatio <= 0 || e.FeedRatio <= 0 {
			return fmt.Errorf("tables: tool %q: all constants must be positive, got %+v", tm, e)
		}
	}
	if t.Limits.MaxRPM <= 0 {
		return fmt.Errorf("tables: limits.max_rpm must be positive, got %v", t.Limits.MaxRPM)
	}
	if t.Limits.MicroThresholdMm < 0 {
		return fmt.Errorf("tables: limits.micro_threshold_mm must not be negative, got %v", t.Limits.MicroThresholdMm)
	}
	if t.Limits.MicroPenalty <= 0 || t.Limits.MicroPenalty > 1 {
		return fmt.Errorf("tables: limits.micro_penalty must be in (0, 1], got %v", t.Limits.MicroPenalty)
	}
	return nil
}

func (t *Tables) material(m types.Material) (MaterialEntry, error) {
	e, ok := t.Materials[m]
	if !ok {
		return MaterialEntry{}, fmt.Errorf("tables: material %q: %w", m, types.ErrUnknownCategory)
	}
	return e, nil
}

func (t *Tables) coolant(c types.Coolant) (CoolantEntry, error) {
	e, ok := t.Coolants[c]
	if !ok {
		return CoolantEntry{}, fmt.Errorf("tables: coolant %q: %w", c, types.ErrUnknownCategory)
	}
	return e, nil
}

func (t *Tables) tool(tm types.ToolMaterial) (ToolEntry, error) {
	e, ok := t.Tools[tm]
	if !ok {
		return ToolEntry{}, fmt.Errorf("tables: tool %q: %w", tm, types.ErrUnknownCategory)
	}
	return e, nil
}

// MaterialRisk returns the DRI factor for the workpiece material.
func (t *Tables) MaterialRisk(m types.Material) (float64, error) {
	e, err := t.material(m)
	return e.RiskFactor, err
}

// CoolantRisk returns the DRI factor for the coolant method.
func (t *Tables) CoolantRisk(c types.Coolant) (float64, error) {
	e, err := t.coolant(c)
	return e.RiskFactor, err
}

// ToolRisk returns the DRI factor for the tool material.
func (t *Tables) ToolRisk(tm types.ToolMaterial) (float64, error) {
	e, err := t.tool(tm)
	return e.RiskFactor, err
}

// ReferenceVelocity returns the reference cutting speed Vc in m/min.
func (t *Tables) ReferenceVelocity(m types.Material) (float64, error) {
	e, err := t.material(m)
	return e.CuttingSpeed, err
}

// ReferenceFeedFactor returns the reference feed factor in mm/rev per
// mm of diameter.
func (t *Tables) ReferenceFeedFactor(m types.Material) (float64, error) {
	e, err := t.material(m)
	return e.FeedFactor, err
}

// CoolantSpeedFactor returns the cutting-speed multiplier for the
// coolant method.
func (t *Tables) CoolantSpeedFactor(c types.Coolant) (float64, error) {
	e, err := t.coolant(c)
	return e.SpeedFactor, err
}

// TaylorExponent returns the tool-life exponent n for the tool material.
func (t *Tables) TaylorExponent(tm types.ToolMaterial) (float64, error) {
	e, err := t.tool(tm)
	return e.TaylorExponent, err
}

// ToolSpeedRatio returns the cutting-speed multiplier for the tool
// material.
func (t *Tables) ToolSpeedRatio(tm types.ToolMaterial) (float64, error) {
	e, err := t.tool(tm)
	return e.SpeedRatio, err
}

// ToolFeedRatio returns the feed multiplier for the tool material.
func (t *Tables) ToolFeedRatio(tm types.ToolMaterial) (float64, error) {
	e, err := t.tool(tm)
	return e.FeedRatio, err
}
