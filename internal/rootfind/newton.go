// Package rootfind solves square nonlinear systems F(x) = 0.
package rootfind

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrNoConvergence is returned when Newton iteration cannot reach the
// tolerance within the iteration budget.
var ErrNoConvergence = errors.New("root finder did not converge")

// Func writes F(x) into y. len(y) == len(x).
type Func func(y, x []float64)

// Result is a converged root.
type Result struct {
	X          []float64
	Residual   float64 // max-norm of F(X)
	Iterations int
}

// Newton runs Newton's method from x0 with a central-difference Jacobian.
// x0 is not modified.
func Newton(f Func, x0 []float64, cfg Config) (Result, error) {
	n := len(x0)
	if n == 0 {
		return Result{}, errors.New("empty initial guess")
	}
	cfg = cfg.withDefaults()

	x := append([]float64(nil), x0...)
	y := make([]float64, n)
	jac := mat.NewDense(n, n, nil)
	settings := &fd.JacobianSettings{Formula: fd.Central, Step: cfg.Step}

	for iter := 0; iter <= cfg.MaxIterations; iter++ {
		f(y, x)
		if !allFinite(y) {
			return Result{}, fmt.Errorf("%w: non-finite residual at iteration %d (x=%v)", ErrNoConvergence, iter, x)
		}
		res := floats.Norm(y, math.Inf(1))
		if res < cfg.Tolerance {
			return Result{X: x, Residual: res, Iterations: iter}, nil
		}
		if iter == cfg.MaxIterations {
			return Result{}, fmt.Errorf("%w: residual %g after %d iterations", ErrNoConvergence, res, iter)
		}

		fd.Jacobian(jac, f, x, settings)

		// Solve J*dx = -F(x).
		rhs := mat.NewVecDense(n, nil)
		for i, v := range y {
			rhs.SetVec(i, -v)
		}
		var dx mat.VecDense
		if err := dx.SolveVec(jac, rhs); err != nil {
			return Result{}, fmt.Errorf("%w: singular jacobian at iteration %d: %v", ErrNoConvergence, iter, err)
		}
		for i := range x {
			x[i] += cfg.Damping * dx.AtVec(i)
		}
		if !allFinite(x) {
			return Result{}, fmt.Errorf("%w: iterate diverged at iteration %d", ErrNoConvergence, iter)
		}
	}
	// unreachable: the loop returns on its last pass
	return Result{}, ErrNoConvergence
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
