package tabulate

import "firm-investment/internal/model"

// Row is one (state, choice) evaluation of the bundled reward and transition.
// This is the primary artifact for checking "what the solver will see".
type Row struct {
	Index int

	CapitalIdx      int
	ProductivityIdx int
	RateIdx         int

	Capital      float64
	Productivity float64
	Rate         float64

	Action model.Action

	Reward float64

	// Next state under a zero shock.
	NextCapital      float64
	NextProductivity float64

	// NextOnGrid is true when NextCapital lies within the capital grid.
	NextOnGrid bool
}

type Result struct {
	Rows []Row

	// BestRate is the reward-maximizing rate per state, indexed [k][a].
	BestRate [][]float64

	// OffGrid counts rows whose next capital leaves the grid.
	OffGrid int
}
