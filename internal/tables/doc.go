// Package tables holds the empirical lookup constants the calculation
// core depends on: per-material reference speeds and feeds, per-coolant
// and per-tool factors, Taylor exponents, and machine limits.
//
// The built-in defaults (Default) are complete; an optional YAML file
// can override any section (Load) and be hot-reloaded while running
// (Watch). Validate enforces at startup that every defined enum value
// has a positive entry, so a category miss at lookup time is a typed
// ErrUnknownCategory rather than a silent default.
package tables
