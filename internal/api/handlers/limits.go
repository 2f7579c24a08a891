package handlers

import (
	"fmt"

	"firm-investment/internal/model"
)

// Request-size limits for the HTTP surface. The library itself only bounds
// grid sizes from below.
const (
	maxNK = 1000
	maxNA = 51
	maxNI = 501

	// maxTableRows bounds nk*na*ni for the diagnostic table.
	maxTableRows = 1_000_000
)

// checkLimits rejects grids too large to build per request.
func checkLimits(p model.Params) error {
	for _, l := range []struct {
		field string
		v     int
		max   int
	}{
		{"nk", p.NK, maxNK},
		{"na", p.NA, maxNA},
		{"ni", p.NI, maxNI},
	} {
		if l.v > l.max {
			return &model.ParameterError{Field: l.field, Value: float64(l.v), Reason: fmt.Sprintf("must be <= %d", l.max)}
		}
	}
	return nil
}
