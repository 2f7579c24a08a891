// Package investment builds the firm investment problem: a firm chooses an
// investment rate each period subject to fixed, proportional and convex
// capital adjustment costs, with AR(1) log productivity. The result is a
// ddp.Problem ready for a dynamic-programming solver.
package investment

import (
	"fmt"

	"firm-investment/internal/grid"
	"firm-investment/internal/model"
	"firm-investment/internal/steadystate"
	"firm-investment/pkg/ddp"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Model is a built problem together with the steady states that bound it.
type Model struct {
	Params  model.Params
	Problem *ddp.Problem

	// Stdev is the stationary standard deviation of log productivity.
	Stdev float64

	// Low and High bound the capital grid. Mean is reported for reference
	// only; it locates the economic center of the grid.
	Mean steadystate.Solution
	Low  steadystate.Solution
	High steadystate.Solution
}

// SteadyStateCapital is the steady-state capital at mean productivity.
func (m *Model) SteadyStateCapital() float64 { return m.Mean.K }

func (m *Model) Capital() []float64 { return m.Problem.StateGrid(0) }
func (m *Model) Productivity() []float64 { return m.Problem.StateGrid(1) }
func (m *Model) Rates() []float64 { return m.Problem.Choices()[0] }

// Build validates p and constructs the problem. Nothing is returned on error.
func Build(p model.Params, opts ...Option) (*Model, error) {
	o := buildOptions(opts)
	log := o.logger

	if err := p.Validate(); err != nil {
		return nil, err
	}

	stdev := p.StationaryStdev()
	productivity := grid.Productivity(stdev, p.NA)

	refs := []struct {
		level steadystate.Level
		a     float64
	}{
		{steadystate.LevelMean, stdev * stdev / 2},
		{steadystate.LevelLow, -2 * stdev},
		{steadystate.LevelHigh, 3 * stdev},
	}
	sols := make([]steadystate.Solution, len(refs))
	var g errgroup.Group
	for i, ref := range refs {
		g.Go(func() error {
			sol, err := steadystate.Solve(p, ref.level, ref.a, o.solver)
			if err != nil {
				return err
			}
			log.Debug("steady state solved",
				zap.String("level", string(ref.level)),
				zap.Float64("a", ref.a),
				zap.Float64("q", sol.Q),
				zap.Float64("k", sol.K),
				zap.Int("iterations", sol.Iterations))
			sols[i] = sol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	mean, low, high := sols[0], sols[1], sols[2]

	capital, err := capitalGrid(low, high, p.NK)
	if err != nil {
		return nil, err
	}
	rates, err := grid.Choice(p.MinI, p.MaxI, p.NI)
	if err != nil {
		return nil, err
	}

	prob, err := ddp.NewProblem(
		[][]float64{capital, productivity},
		[][]float64{rates},
		Reward(p),
		Transition(p),
		ddp.StandardNormal(),
		p.Beta,
		// Fixed costs make the rate choice non-separable.
		ddp.All,
	)
	if err != nil {
		return nil, fmt.Errorf("bundle problem: %w", err)
	}

	log.Info("investment model built",
		zap.Float64("k_min", capital[0]),
		zap.Float64("k_max", capital[len(capital)-1]),
		zap.Float64("k_ss", mean.K),
		zap.Int("nk", p.NK),
		zap.Int("na", p.NA),
		zap.Int("ni", p.NI))

	return &Model{
		Params:  p,
		Problem: prob,
		Stdev:   stdev,
		Mean:    mean,
		Low:     low,
		High:    high,
	}, nil
}

// capitalGrid spans the low and high steady states. Bounds that overflow or
// collapse mean the steady-state system has no usable solution.
func capitalGrid(low, high steadystate.Solution, n int) ([]float64, error) {
	g, err := grid.Capital(low.LogK, high.LogK, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", steadystate.ErrConvergence, err)
	}
	return g, nil
}

// Reward adapts Params.Reward to the solver's state-slice signature.
// State is (capital, log productivity).
func Reward(p model.Params) ddp.RewardFunc {
	return func(state []float64, i float64) float64 {
		return p.Reward(state[0], state[1], i)
	}
}

// Transition adapts Params.Transition to the solver's state-slice signature.
func Transition(p model.Params) ddp.TransitionFunc {
	return func(state []float64, i, eps float64) []float64 {
		k, a := p.Transition(state[0], state[1], i, eps)
		return []float64{k, a}
	}
}
