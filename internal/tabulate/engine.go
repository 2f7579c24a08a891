// Package tabulate evaluates a built problem's reward and transition over
// every grid node and choice.
package tabulate

import (
	"errors"
	"math"

	"firm-investment/internal/investment"
	"firm-investment/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run tabulates all (capital, productivity, rate) triples in grid order:
// capital outermost, rate innermost.
func (e *Engine) Run(m *investment.Model) (*Result, error) {
	if m == nil || m.Problem == nil {
		return nil, errors.New("model is nil")
	}

	capital := m.Capital()
	prod := m.Productivity()
	rates := m.Rates()
	kMin, kMax := capital[0], capital[len(capital)-1]

	rows := make([]Row, 0, len(capital)*len(prod)*len(rates))
	best := make([][]float64, len(capital))
	offGrid := 0
	state := make([]float64, 2)

	for ki, k := range capital {
		best[ki] = make([]float64, len(prod))
		for ai, a := range prod {
			state[0], state[1] = k, a
			bestReward := math.Inf(-1)
			for ri, i := range rates {
				r := m.Problem.Reward(state, i)
				next := m.Problem.Transition(state, i, 0)
				onGrid := next[0] >= kMin && next[0] <= kMax
				if !onGrid {
					offGrid++
				}
				if r > bestReward {
					bestReward = r
					best[ki][ai] = i
				}
				rows = append(rows, Row{
					Index:            len(rows),
					CapitalIdx:       ki,
					ProductivityIdx:  ai,
					RateIdx:          ri,
					Capital:          k,
					Productivity:     a,
					Rate:             i,
					Action:           model.ActionFromRate(i),
					Reward:           r,
					NextCapital:      next[0],
					NextProductivity: next[1],
					NextOnGrid:       onGrid,
				})
			}
		}
	}

	return &Result{Rows: rows, BestRate: best, OffGrid: offGrid}, nil
}
