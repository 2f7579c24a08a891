package ddp

import (
	"errors"
	"fmt"
)

// RewardFunc is the single-period payoff of choice at state.
type RewardFunc func(state []float64, choice float64) float64

// TransitionFunc maps state, choice and a shock draw to the next state.
type TransitionFunc func(state []float64, choice, shock float64) []float64

// Problem is a fully specified discrete dynamic problem.
type Problem struct {
	stateGrids  [][]float64
	choiceGrids [][]float64
	reward      RewardFunc
	transition  TransitionFunc
	shock       Shock
	discount    float64
	mode        IntegrationMode
}

// NewProblem validates and bundles the inputs. Grids are copied.
func NewProblem(
	stateGrids, choiceGrids [][]float64,
	reward RewardFunc,
	transition TransitionFunc,
	shock Shock,
	discount float64,
	mode IntegrationMode,
) (*Problem, error) {
	if len(stateGrids) == 0 {
		return nil, errors.New("no state grids")
	}
	for d, g := range stateGrids {
		if len(g) < 2 {
			return nil, fmt.Errorf("state grid %d has %d nodes, need >= 2", d, len(g))
		}
		for j := 1; j < len(g); j++ {
			if !(g[j] > g[j-1]) {
				return nil, fmt.Errorf("state grid %d not strictly increasing at node %d", d, j)
			}
		}
	}
	if len(choiceGrids) == 0 {
		return nil, errors.New("no choice grids")
	}
	for d, g := range choiceGrids {
		if len(g) == 0 {
			return nil, fmt.Errorf("choice grid %d is empty", d)
		}
	}
	if reward == nil {
		return nil, errors.New("reward is nil")
	}
	if transition == nil {
		return nil, errors.New("transition is nil")
	}
	if discount <= 0 || discount >= 1 {
		return nil, fmt.Errorf("discount %g not in (0, 1)", discount)
	}
	if mode != All && mode != Separable {
		return nil, fmt.Errorf("unsupported integration mode %v", mode)
	}

	return &Problem{
		stateGrids:  cloneGrids(stateGrids),
		choiceGrids: cloneGrids(choiceGrids),
		reward:      reward,
		transition:  transition,
		shock:       shock,
		discount:    discount,
		mode:        mode,
	}, nil
}

// States returns a copy of the state grids.
func (p *Problem) States() [][]float64 { return cloneGrids(p.stateGrids) }

// Choices returns a copy of the choice grids.
func (p *Problem) Choices() [][]float64 { return cloneGrids(p.choiceGrids) }

// Reward evaluates the one-period payoff of choice in state.
func (p *Problem) Reward(state []float64, choice float64) float64 {
	return p.reward(state, choice)
}

// Transition returns the next state for a choice and shock draw.
func (p *Problem) Transition(state []float64, choice, shock float64) []float64 {
	return p.transition(state, choice, shock)
}

// Shock is the innovation distribution the solver integrates over.
func (p *Problem) Shock() Shock { return p.shock }

func (p *Problem) Discount() float64 { return p.discount }
func (p *Problem) Mode() IntegrationMode { return p.mode }
func (p *Problem) StateDims() int { return len(p.stateGrids) }

// StateGrid returns a copy of state dimension d. It panics if d is out of range.
func (p *Problem) StateGrid(d int) []float64 { return append([]float64(nil), p.stateGrids[d]...) }

func cloneGrids(gs [][]float64) [][]float64 {
	out := make([][]float64, len(gs))
	for i, g := range gs {
		out[i] = append([]float64(nil), g...)
	}
	return out
}
