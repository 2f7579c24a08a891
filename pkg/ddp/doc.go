// Package ddp defines the construction contract of a discrete dynamic problem:
// the bundle a dynamic-programming solver consumes to iterate a Bellman
// equation over discretized states and choices.
//
// A Problem aggregates:
//
//   - State grids: one ascending grid per state dimension
//   - Choice grids: one grid per choice dimension
//   - Reward: single-period payoff of a choice at a state
//   - Transition: next state given state, choice and a shock draw
//   - Shock: the shock distribution, with quadrature and sampling
//   - Discount: per-period discount factor in (0, 1)
//   - Mode: how the solver searches the choice dimensions
//
// Example usage:
//
//	prob, err := ddp.NewProblem(
//	    [][]float64{capital, productivity},
//	    [][]float64{rates},
//	    reward, transition,
//	    ddp.StandardNormal(), 0.9, ddp.All,
//	)
//	if err != nil {
//	    return err
//	}
//
// Problems are immutable after construction; accessors return copies.
package ddp
