// Package steadystate solves the deterministic steady state of the firm
// investment problem at a fixed log productivity.
//
// At a steady state the firm invests exactly its depreciation (i = delta) and
// capital is constant. The unknowns are q, the marginal value of installed
// capital, and log capital. Two conditions pin them down:
//
//	q = price_buy + gamma*delta
//	q = beta * (theta*(1-lambda)*e^a*K^(theta-1) - delta*price_buy - F - gamma/2*delta^2 + q)
//
// The first equates q to the marginal adjustment cost at i = delta. The
// second is the capital Euler equation: marginal revenue net of the flow cost
// of replacing depreciation, plus the retained value q, discounted.
package steadystate

import (
	"errors"
	"fmt"
	"math"

	"firm-investment/internal/model"
	"firm-investment/internal/rootfind"
)

// ErrConvergence is returned when a steady state cannot be found.
var ErrConvergence = errors.New("steady state did not converge")

// InitialGuess seeds every solve at (q, log K). A fixed seed keeps the solve
// deterministic.
var InitialGuess = [2]float64{1, 1}

// Level names a reference productivity.
type Level string

const (
	LevelMean Level = "mean"
	LevelLow  Level = "low"
	LevelHigh Level = "high"
)

// ConvergenceError reports which reference solve failed.
type ConvergenceError struct {
	Level Level
	A     float64
	Err   error
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s at %s productivity (a=%g): %v", ErrConvergence, e.Level, e.A, e.Err)
}

func (e *ConvergenceError) Is(target error) bool { return target == ErrConvergence }

func (e *ConvergenceError) Unwrap() error { return e.Err }

// Solution is a steady state at log productivity A.
type Solution struct {
	Level      Level   `json:"level"`
	A          float64 `json:"a"`
	Q          float64 `json:"q"`
	LogK       float64 `json:"log_k"`
	K          float64 `json:"k"`
	Iterations int     `json:"iterations"`
	Residual   float64 `json:"residual"`
}

// Residuals returns the steady-state system at log productivity a.
// x = (q, log K).
func Residuals(p model.Params, a float64) rootfind.Func {
	qTarget := p.PriceBuy + p.Gamma*p.Delta
	flow := p.Delta*p.PriceBuy + p.F + p.Gamma/2*p.Delta*p.Delta
	mpkScale := p.Theta * (1 - p.Lambda) * math.Exp(a)
	return func(y, x []float64) {
		q, logK := x[0], x[1]
		mpk := mpkScale * math.Exp((p.Theta-1)*logK)
		y[0] = q - qTarget
		y[1] = p.Beta*(mpk-flow+q) - q
	}
}

// Solve finds the steady state at log productivity a from InitialGuess.
func Solve(p model.Params, level Level, a float64, cfg rootfind.Config) (Solution, error) {
	res, err := rootfind.Newton(Residuals(p, a), InitialGuess[:], cfg)
	if err != nil {
		return Solution{}, &ConvergenceError{Level: level, A: a, Err: err}
	}
	q, logK := res.X[0], res.X[1]
	return Solution{
		Level:      level,
		A:          a,
		Q:          q,
		LogK:       logK,
		K:          math.Exp(logK),
		Iterations: res.Iterations,
		Residual:   res.Residual,
	}, nil
}

// ClosedFormLogK is the analytic solution of the system, used to check the
// numerical solve. ok is false when no positive steady state exists.
func ClosedFormLogK(p model.Params, a float64) (logK float64, ok bool) {
	q := p.PriceBuy + p.Gamma*p.Delta
	mpk := q*(1/p.Beta-1) + p.Delta*p.PriceBuy + p.F + p.Gamma/2*p.Delta*p.Delta
	scale := p.Theta * (1 - p.Lambda)
	if mpk <= 0 || scale <= 0 || p.Theta >= 1 {
		return 0, false
	}
	return (math.Log(scale) + a - math.Log(mpk)) / (1 - p.Theta), true
}
