package models

import (
	"firm-investment/internal/analysis"
	"firm-investment/internal/steadystate"
)

// ModelResponse represents a built model.
type ModelResponse struct {
	ID           string               `json:"id"`
	Status       string               `json:"status"`
	Mode         string               `json:"integration_mode"`
	Discount     float64              `json:"discount"`
	SteadyStates SteadyStates         `json:"steady_states"`
	Summary      analysis.GridSummary `json:"summary"`
	Grids        *Grids               `json:"grids,omitempty"`
}

// SteadyStates are the three reference solves.
type SteadyStates struct {
	Mean steadystate.Solution `json:"mean"`
	Low  steadystate.Solution `json:"low"`
	High steadystate.Solution `json:"high"`
}

// Grids holds the state and choice grids.
type Grids struct {
	Capital      []float64 `json:"capital"`
	Productivity []float64 `json:"productivity"`
	Rates        []float64 `json:"rates"`
}

// TableResponse is one page of a diagnostic table.
type TableResponse struct {
	ID      string     `json:"id"`
	Total   int        `json:"total"`
	OffGrid int        `json:"off_grid"`
	Offset  int        `json:"offset"`
	Rows    []TableRow `json:"rows"`
}

// TableRow is one (state, rate) evaluation.
type TableRow struct {
	Index            int     `json:"index"`
	Capital          float64 `json:"capital"`
	Productivity     float64 `json:"productivity"`
	Rate             float64 `json:"rate"`
	Action           string  `json:"action"` // "INVEST", "INACTION", "DISINVEST"
	Reward           float64 `json:"reward"`
	NextCapital      float64 `json:"next_capital"`
	NextProductivity float64 `json:"next_productivity"`
	NextOnGrid       bool    `json:"next_on_grid"`
}

// CompareResponse represents the response from a comparison.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation.
type ComparisonResult struct {
	Rank    int                   `json:"rank,omitempty"`
	Name    string                `json:"name"`
	Summary *analysis.GridSummary `json:"summary,omitempty"`
	Error   *ErrorDetail          `json:"error,omitempty"`
}

// ParameterInfo describes a model parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int"
	Description string      `json:"description"`
	Default     interface{} `json:"default"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
