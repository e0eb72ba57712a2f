package types

import "fmt"

// Material identifies the workpiece material of a drilling job.
type Material string

const (
	MaterialAluminum Material = "aluminum"
	MaterialSteel    Material = "steel"
	MaterialSUS304   Material = "sus304"
	MaterialTitanium Material = "titanium"
	MaterialCeramic  Material = "ceramic"
)

// AllMaterials lists every defined Material. Lookup tables must cover
// each entry; the tables package validates this at construction time.
func AllMaterials() []Material {
	return []Material{
		MaterialAluminum, MaterialSteel, MaterialSUS304,
		MaterialTitanium, MaterialCeramic,
	}
}

// Coolant identifies the coolant delivery method.
type Coolant string

const (
	CoolantInternal Coolant = "internal"
	CoolantWaterJet Coolant = "waterjet"
	CoolantOilMist  Coolant = "oilmist"
	CoolantDry      Coolant = "dry"
)

// AllCoolants lists every defined Coolant.
func AllCoolants() []Coolant {
	return []Coolant{CoolantInternal, CoolantWaterJet, CoolantOilMist, CoolantDry}
}

// ToolMaterial identifies the drill material.
type ToolMaterial string

const (
	ToolCarbide ToolMaterial = "carbide"
	ToolHSS     ToolMaterial = "hss"
)

// AllTools lists every defined ToolMaterial.
func AllTools() []ToolMaterial {
	return []ToolMaterial{ToolCarbide, ToolHSS}
}

// Strategy is the drilling strategy selected from the risk index.
// Values use the machine-side naming so they can be passed through to
// G-code post-processors unchanged.
type Strategy string

const (
	// StrategyDirect drills in a single plunge — no pecking.
	StrategyDirect Strategy = "DIRECT"

	// StrategyQMode pecks with a fixed depth per pass (G83-style Q).
	StrategyQMode Strategy = "Q_MODE"

	// StrategyIJKDynamic pecks with a decreasing depth sequence.
	StrategyIJKDynamic Strategy = "IJK_DYNAMIC"

	// StrategyDeepProtect is IJK pecking with additionally reduced
	// depths for very high risk holes.
	StrategyDeepProtect Strategy = "DEEP_PROTECT"
)

// Pecks reports whether the strategy requires a peck sequence.
func (s Strategy) Pecks() bool {
	return s != StrategyDirect
}

// ParseMaterial converts a user-supplied string into a Material.
func ParseMaterial(s string) (Material, error) {
	m := Material(s)
	for _, known := range AllMaterials() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("material %q: %w", s, ErrUnknownCategory)
}

// ParseCoolant converts a user-supplied string into a Coolant.
func ParseCoolant(s string) (Coolant, error) {
	c := Coolant(s)
	for _, known := range AllCoolants() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("coolant %q: %w", s, ErrUnknownCategory)
}

// ParseToolMaterial converts a user-supplied string into a ToolMaterial.
func ParseToolMaterial(s string) (ToolMaterial, error) {
	t := ToolMaterial(s)
	for _, known := range AllTools() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("tool material %q: %w", s, ErrUnknownCategory)
}

// JobSpec is the immutable description of one drilling job. All
// dimensions are millimeters. A JobSpec is a plain value; copy it
// freely.
type JobSpec struct {
	// DiameterMm is the hole (tool) diameter, > 0.
	DiameterMm float64 `yaml:"diameter_mm" json:"diameter_mm" validate:"gt=0"`

	// DepthMm is the hole depth, > 0.
	DepthMm float64 `yaml:"depth_mm" json:"depth_mm" validate:"gt=0"`

	// Material is the workpiece material.
	Material Material `yaml:"material" json:"material" validate:"oneof=aluminum steel sus304 titanium ceramic"`

	// Coolant is the coolant delivery method.
	Coolant Coolant `yaml:"coolant" json:"coolant" validate:"oneof=internal waterjet oilmist dry"`

	// Tool is the drill material.
	Tool ToolMaterial `yaml:"tool" json:"tool" validate:"oneof=carbide hss"`

	// TipAngleDeg is the included angle of the drill tip, strictly
	// between 0 and 180 degrees. 118 is the common general-purpose
	// grind.
	TipAngleDeg float64 `yaml:"tip_angle_deg" json:"tip_angle_deg" validate:"gt=0,lt=180"`

	// ExitChamferMm is the chamfer size required at the hole exit,
	// >= 0. Zero means a plain through/blind hole.
	ExitChamferMm float64 `yaml:"exit_chamfer_mm" json:"exit_chamfer_mm" validate:"gte=0"`
}

// AspectRatio returns the L/D ratio of the hole.
// Callers must validate the spec first; DiameterMm is assumed > 0.
func (j JobSpec) AspectRatio() float64 {
	return j.DepthMm / j.DiameterMm
}

// RiskFactors holds the four multiplicative components of the drilling
// risk index. All factors are > 0 for a valid job.
type RiskFactors struct {
	Depth    float64 `json:"depth"`
	Material float64 `json:"material"`
	Coolant  float64 `json:"coolant"`
	Tool     float64 `json:"tool"`
}

// RiskAssessment is the outcome of risk scoring: the composite index
// with its factor breakdown and the strategy it selects.
type RiskAssessment struct {
	DRI      float64     `json:"dri"`
	Factors  RiskFactors `json:"factors"`
	Strategy Strategy    `json:"strategy"`
}

// CuttingParameters are the optimized spindle and feed values.
type CuttingParameters struct {
	// SpindleRPM is the spindle speed in rev/min.
	SpindleRPM float64 `json:"spindle_rpm"`

	// FeedMmMin is the feed rate in mm/min.
	FeedMmMin float64 `json:"feed_mm_min"`

	// RPMLimited is true when the machine RPM ceiling truncated the
	// calculated spindle speed.
	RPMLimited bool `json:"rpm_limited,omitempty"`
}

// FeedPerRev returns the realized feed in mm/rev.
func (c CuttingParameters) FeedPerRev() float64 {
	if c.SpindleRPM <= 0 {
		return 0
	}
	return c.FeedMmMin / c.SpindleRPM
}

// PeckPlan is an ordered sequence of peck depths for one hole.
// Depths are positive, non-increasing by index, and sum to the hole
// depth. I, J, K are the base cycle parameters the sequence was
// derived from, reported for G83/G66-style consumers.
type PeckPlan struct {
	Depths []float64 `json:"depths"`
	I      float64   `json:"i"`
	J      float64   `json:"j"`
	K      float64   `json:"k"`
}

// Total returns the cumulative depth covered by the plan.
func (p *PeckPlan) Total() float64 {
	var sum float64
	for _, d := range p.Depths {
		sum += d
	}
	return sum
}

// Result aggregates every derived output for one JobSpec.
type Result struct {
	Job    JobSpec           `json:"job"`
	Risk   RiskAssessment    `json:"risk"`
	Params CuttingParameters `json:"params"`

	// Peck is nil when Risk.Strategy is DIRECT.
	Peck *PeckPlan `json:"peck,omitempty"`

	// LifeIndex is the dimensionless relative tool-life estimate;
	// larger means longer expected life.
	LifeIndex float64 `json:"life_index"`

	// DeltaZMm is the extra plunge depth needed for full breakthrough
	// at the hole exit, including the fixed breakthrough allowance.
	DeltaZMm float64 `json:"delta_z_mm"`
}
