package types

import "errors"

// Sentinel errors returned by the calculation core. Callers match them
// with errors.Is; the wrapped message carries the offending value.
var (
	// ErrInvalidGeometry reports a non-positive diameter or depth, or a
	// degenerate tip angle (0 or 180 degrees).
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrUnknownCategory reports a material/coolant/tool value with no
	// lookup-table entry. With the built-in tables this is unreachable
	// for the defined enums; it guards user-supplied table overrides.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrDegeneratePeckPlan reports a computed peck depth <= 0, which
	// indicates a misconfigured base-value derivation.
	ErrDegeneratePeckPlan = errors.New("degenerate peck plan")
)
