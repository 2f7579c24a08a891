package analysis

import (
	"sort"

	"firm-investment/internal/investment"
	"firm-investment/internal/model"
)

// Variation is a named parameter override of a base calibration.
type Variation struct {
	Name   string
	Params model.Params
}

// SweepResult is the outcome of building one variation. Err is set when the
// build failed; Summary is zero in that case.
type SweepResult struct {
	Name    string
	Params  model.Params
	Summary GridSummary
	Err     error
}

// Merge overlays a variation on a base calibration.
type Merge func(base, override model.Params) model.Params

// Sweep builds every variation and sorts successes by steady-state capital,
// descending. Failures keep their input order after the successes.
func Sweep(base model.Params, vars []Variation, merge Merge, opts ...investment.Option) []SweepResult {
	out := make([]SweepResult, 0, len(vars))
	for _, v := range vars {
		p := merge(base, v.Params)
		r := SweepResult{Name: v.Name, Params: p}
		m, err := investment.Build(p, opts...)
		if err != nil {
			r.Err = err
		} else {
			r.Summary = Summarize(m)
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if (out[i].Err == nil) != (out[j].Err == nil) {
			return out[i].Err == nil
		}
		return out[i].Summary.KSteadyState > out[j].Summary.KSteadyState
	})
	return out
}
