// Package grid builds the discretized state and choice grids of the model.
package grid

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrChoiceGrid is returned when a choice grid cannot be made to contain
// zero exactly once.
var ErrChoiceGrid = errors.New("choice grid construction failed")

// ErrCapitalGrid is returned when the steady-state bounds do not give a
// finite, strictly increasing, positive capital grid.
var ErrCapitalGrid = errors.New("capital grid construction failed")

// zeroULPs is how many units of roundoff, relative to the largest |node|,
// a rate may sit from zero and still be treated as zero.
const zeroULPs = 16

// epsilon is the spacing of float64 values at 1.
const epsilon = 0x1p-52

// Linspace returns n equally spaced points over [lo, hi]. n == 1 yields {lo}.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Logspace returns exp of n equally spaced points over [logLo, logHi]: a
// geometric grid between e^logLo and e^logHi.
func Logspace(logLo, logHi float64, n int) []float64 {
	out := Linspace(logLo, logHi, n)
	for i, v := range out {
		out[i] = math.Exp(v)
	}
	return out
}

// Productivity spans +/- 3 stationary standard deviations of log productivity.
func Productivity(stdev float64, n int) []float64 {
	return Linspace(-3*stdev, 3*stdev, n)
}

// Capital is geometric between e^logLo and e^logHi.
func Capital(logLo, logHi float64, n int) ([]float64, error) {
	if !(logLo < logHi) {
		return nil, fmt.Errorf("%w: log low %g >= log high %g", ErrCapitalGrid, logLo, logHi)
	}
	g := Logspace(logLo, logHi, n)
	if !StrictlyIncreasing(g) || g[0] <= 0 || math.IsInf(g[len(g)-1], 1) {
		return nil, fmt.Errorf("%w: degenerate over [%g, %g] in logs", ErrCapitalGrid, logLo, logHi)
	}
	return g, nil
}

// Choice returns n investment rates over [lo, hi] that include zero exactly
// once. Adjustment costs jump at zero, so inaction has to be a grid node.
func Choice(lo, hi float64, n int) ([]float64, error) {
	scale := math.Max(math.Abs(lo), math.Abs(hi))
	g := SnapZero(Linspace(lo, hi, n), scale)
	if CountZeros(g) == 0 {
		g = IncludeZero(SnapZero(Linspace(lo, hi, n-1), scale))
	}
	if err := ValidateChoice(g, n); err != nil {
		return nil, err
	}
	return g, nil
}

// SnapZero sets nodes within roundoff of zero to exactly zero, in place.
// scale is the magnitude the nodes were computed from, usually max(|lo|, |hi|).
// -0.1 + 0.3/3 lands on 1.4e-17, not 0.
func SnapZero(g []float64, scale float64) []float64 {
	for i, v := range g {
		if nearZero(v, scale) {
			g[i] = 0
		}
	}
	return g
}

func nearZero(v, scale float64) bool {
	return math.Abs(v) <= zeroULPs*epsilon*scale
}

// IncludeZero prepends zero and sorts. The input is not modified.
func IncludeZero(g []float64) []float64 {
	out := make([]float64, 0, len(g)+1)
	out = append(out, 0)
	out = append(out, g...)
	sort.Float64s(out)
	return out
}

// ValidateChoice checks size, order and the single zero node. A nonzero node
// within roundoff of zero would be a second inaction choice and is rejected.
func ValidateChoice(g []float64, n int) error {
	if len(g) != n {
		return fmt.Errorf("%w: %d nodes, want %d", ErrChoiceGrid, len(g), n)
	}
	if !sort.Float64sAreSorted(g) {
		return fmt.Errorf("%w: not sorted", ErrChoiceGrid)
	}
	if z := CountZeros(g); z != 1 {
		return fmt.Errorf("%w: zero appears %d times", ErrChoiceGrid, z)
	}
	var scale float64
	for _, v := range g {
		scale = math.Max(scale, math.Abs(v))
	}
	for _, v := range g {
		if v != 0 && nearZero(v, scale) {
			return fmt.Errorf("%w: rate %g is zero up to roundoff", ErrChoiceGrid, v)
		}
	}
	return nil
}

// CountZeros counts nodes exactly equal to zero.
func CountZeros(g []float64) int {
	n := 0
	for _, v := range g {
		if v == 0 {
			n++
		}
	}
	return n
}

// StrictlyIncreasing reports whether every node exceeds its predecessor.
func StrictlyIncreasing(g []float64) bool {
	for i := 1; i < len(g); i++ {
		if !(g[i] > g[i-1]) {
			return false
		}
	}
	return true
}
