package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/drillkit/drillkit/internal/tables"
	"github.com/drillkit/drillkit/pkg/types"
)

// Engine binds the lookup tables and the peck base-value policy and
// runs the full calculation chain for a job. It holds no mutable state;
// one Engine may be shared across goroutines.
type Engine struct {
	tables     *tables.Tables
	baseValues BaseValues
}

// New returns an Engine over the given tables using the default peck
// base-value policy.
func New(tb *tables.Tables) *Engine {
	return &Engine{tables: tb, baseValues: DefaultBaseValues}
}

// WithBaseValues replaces the peck base-value derivation policy and
// returns the engine for chaining.
func (e *Engine) WithBaseValues(bv BaseValues) *Engine {
	e.baseValues = bv
	return e
}

// Compute runs the whole chain for one job: validation, risk
// assessment, parameter optimization, peck sequencing (when the
// strategy pecks), tool-life estimation and geometry compensation.
// On any failure it returns the typed error and no partial result.
func (e *Engine) Compute(spec types.JobSpec) (*types.Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	risk, err := Assess(spec, e.tables)
	if err != nil {
		return nil, err
	}

	params, err := Optimize(spec, e.tables)
	if err != nil {
		return nil, err
	}

	res := &types.Result{Job: spec, Risk: risk, Params: params}

	if risk.Strategy.Pecks() {
		res.Peck, err = GeneratePecks(spec, risk.Strategy, e.baseValues)
		if err != nil {
			return nil, err
		}
	}

	res.LifeIndex, err = EstimateLife(spec, params, e.tables)
	if err != nil {
		return nil, err
	}

	res.DeltaZMm, err = Compensate(spec.TipAngleDeg, spec.ExitChamferMm)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// ComputeBatch runs Compute for every spec concurrently and returns the
// results in input order. The first failure cancels the remaining work
// and is returned.
func (e *Engine) ComputeBatch(ctx context.Context, specs []types.JobSpec) ([]*types.Result, error) {
	results := make([]*types.Result, len(specs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.Compute(spec)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
