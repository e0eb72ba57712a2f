package tables

import (
	"errors"
	"testing"

	"github.com/drillkit/drillkit/pkg/types"
)

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("built-in tables must validate: %v", err)
	}
}

func TestDefault_ReferenceConstants(t *testing.T) {
	tb := Default()

	matRisk := map[types.Material]float64{
		types.MaterialAluminum: 0.8,
		types.MaterialSteel:    1.0,
		types.MaterialSUS304:   1.4,
		types.MaterialTitanium: 1.6,
		types.MaterialCeramic:  2.0,
	}
	for m, want := range matRisk {
		got, err := tb.MaterialRisk(m)
		if err != nil {
			t.Fatalf("MaterialRisk(%s): %v", m, err)
		}
		if got != want {
			t.Errorf("MaterialRisk(%s) = %v, want %v", m, got, want)
		}
	}

	coolRisk := map[types.Coolant]float64{
		types.CoolantInternal: 0.75,
		types.CoolantWaterJet: 1.0,
		types.CoolantOilMist:  1.2,
		types.CoolantDry:      1.6,
	}
	for c, want := range coolRisk {
		got, err := tb.CoolantRisk(c)
		if err != nil {
			t.Fatalf("CoolantRisk(%s): %v", c, err)
		}
		if got != want {
			t.Errorf("CoolantRisk(%s) = %v, want %v", c, got, want)
		}
	}

	speedFactor := map[types.Coolant]float64{
		types.CoolantInternal: 1.1,
		types.CoolantWaterJet: 1.0,
		types.CoolantOilMist:  0.8,
		types.CoolantDry:      0.6,
	}
	for c, want := range speedFactor {
		got, err := tb.CoolantSpeedFactor(c)
		if err != nil {
			t.Fatalf("CoolantSpeedFactor(%s): %v", c, err)
		}
		if got != want {
			t.Errorf("CoolantSpeedFactor(%s) = %v, want %v", c, got, want)
		}
	}

	if n, _ := tb.TaylorExponent(types.ToolCarbide); n != 0.22 {
		t.Errorf("TaylorExponent(carbide) = %v, want 0.22", n)
	}
	if n, _ := tb.TaylorExponent(types.ToolHSS); n != 0.10 {
		t.Errorf("TaylorExponent(hss) = %v, want 0.10", n)
	}
	if r, _ := tb.ToolRisk(types.ToolCarbide); r != 0.9 {
		t.Errorf("ToolRisk(carbide) = %v, want 0.9", r)
	}
	if r, _ := tb.ToolRisk(types.ToolHSS); r != 1.4 {
		t.Errorf("ToolRisk(hss) = %v, want 1.4", r)
	}
}

func TestLookup_UnknownCategory(t *testing.T) {
	tb := Default()

	if _, err := tb.MaterialRisk("wood"); !errors.Is(err, types.ErrUnknownCategory) {
		t.Errorf("MaterialRisk(wood): err = %v, want ErrUnknownCategory", err)
	}
	if _, err := tb.CoolantSpeedFactor("flood"); !errors.Is(err, types.ErrUnknownCategory) {
		t.Errorf("CoolantSpeedFactor(flood): err = %v, want ErrUnknownCategory", err)
	}
	if _, err := tb.TaylorExponent("diamond"); !errors.Is(err, types.ErrUnknownCategory) {
		t.Errorf("TaylorExponent(diamond): err = %v, want ErrUnknownCategory", err)
	}
}

func TestValidate_MissingEntry(t *testing.T) {
	tb := Default()
	delete(tb.Materials, types.MaterialCeramic)
	if err := tb.Validate(); err == nil {
		t.Error("expected error for missing material entry, got nil")
	}
}

func TestValidate_NonPositiveConstant(t *testing.T) {
	tb := Default()
	e := tb.Tools[types.ToolHSS]
	e.TaylorExponent = 0
	tb.Tools[types.ToolHSS] = e
	if err := tb.Validate(); err == nil {
		t.Error("expected error for zero taylor exponent, got nil")
	}
}

func TestValidate_BadLimits(t *testing.T) {
	tb := Default()
	tb.Limits.MicroPenalty = 1.5
	if err := tb.Validate(); err == nil {
		t.Error("expected error for micro penalty > 1, got nil")
	}
}
