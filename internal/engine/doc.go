// Package engine implements the drilling calculation chain.
//
// risk.go scores the drilling risk index (DRI) and selects the strategy
// band. params.go derives spindle speed and feed rate with second-order
// depth corrections — S is computed first and F from the realized S.
// peck.go generates the power-law peck sequence with a hard
// monotonic-decrease guarantee and exact depth coverage. life.go
// estimates the Taylor-based relative tool-life index. geometry.go
// computes the exit-breakthrough Z compensation. cycletime.go estimates
// wall-clock drilling time for a peck plan.
//
// Engine ties the stages together: Compute runs the chain for one
// JobSpec, ComputeBatch fans out over independent specs. Everything is
// pure and deterministic; the only data dependencies are S before F and
// strategy before peck sequencing.
package engine
