package models

import (
	"firm-investment/internal/model"
	"firm-investment/internal/rootfind"
)

// ModelRequest represents the request body for building a model.
// Handlers decode it onto model.Default, so omitted parameters keep their
// defaults and explicit zeros are preserved.
type ModelRequest struct {
	Params  model.Params     `json:"params"`
	Solver  *rootfind.Config `json:"solver,omitempty"`
	Options ModelOptions     `json:"options,omitempty"`
}

// ModelOptions controls the response size.
type ModelOptions struct {
	IncludeGrids bool `json:"include_grids,omitempty"` // default: false
}

// CompareRequest builds several variations of a base calibration.
type CompareRequest struct {
	Base       model.Params `json:"base"`
	Variations []Variation  `json:"variations" binding:"required,min=1,max=20"`
}

// Variation defines one calibration to compare. Non-zero fields override the base.
type Variation struct {
	Name   string       `json:"name" binding:"required"`
	Params model.Params `json:"params"`
}

// TableQuery pages through a cached model's diagnostic table.
type TableQuery struct {
	Offset int    `form:"offset"`
	Limit  int    `form:"limit"`  // default: 100
	Format string `form:"format"` // "json" (default) or "csv"
}
