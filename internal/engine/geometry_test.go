package engine

import (
	"errors"
	"testing"

	"github.com/drillkit/drillkit/pkg/types"
)

func TestCompensate_ChamferedHole(t *testing.T) {
	// dZ = (0.4/2)/tan(59 deg) + 0.2 ≈ 0.2/1.6643 + 0.2 ≈ 0.3201
	got, err := Compensate(118, 0.4)
	if err != nil {
		t.Fatalf("Compensate: %v", err)
	}
	if !almostEqual(got, 0.3201, 1e-4) {
		t.Errorf("dZ = %.6f, want ≈ 0.3201", got)
	}
}

// With no exit chamfer the compensation is exactly the breakthrough
// allowance, whatever the (non-degenerate) tip angle.
func TestCompensate_Floor(t *testing.T) {
	for _, angle := range []float64{30, 90, 118, 135, 179.9} {
		got, err := Compensate(angle, 0)
		if err != nil {
			t.Fatalf("Compensate(%v, 0): %v", angle, err)
		}
		if got != 0.2 {
			t.Errorf("Compensate(%v, 0) = %v, want exactly 0.2", angle, got)
		}
	}
}

// A blunter tip needs less extra plunge for the same chamfer.
func TestCompensate_AngleMonotonic(t *testing.T) {
	sharp, err := Compensate(90, 0.4)
	if err != nil {
		t.Fatalf("Compensate(90): %v", err)
	}
	blunt, err := Compensate(140, 0.4)
	if err != nil {
		t.Fatalf("Compensate(140): %v", err)
	}
	if blunt >= sharp {
		t.Errorf("blunt tip dZ (%v) should be below sharp tip dZ (%v)", blunt, sharp)
	}
}

func TestCompensate_DegenerateAngles(t *testing.T) {
	for _, angle := range []float64{0, 180, -10, 200} {
		_, err := Compensate(angle, 0.4)
		if !errors.Is(err, types.ErrInvalidGeometry) {
			t.Errorf("Compensate(%v): err = %v, want ErrInvalidGeometry", angle, err)
		}
	}
}

func TestCompensate_NegativeChamfer(t *testing.T) {
	_, err := Compensate(118, -0.1)
	if !errors.Is(err, types.ErrInvalidGeometry) {
		t.Errorf("negative chamfer: err = %v, want ErrInvalidGeometry", err)
	}
}
