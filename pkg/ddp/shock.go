package ddp

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

// Shock is a normally distributed innovation.
type Shock struct {
	dist distuv.Normal
}

// StandardNormal returns the N(0, 1) shock.
func StandardNormal() Shock {
	return Shock{dist: distuv.Normal{Mu: 0, Sigma: 1}}
}

func (s Shock) Mean() float64 { return s.dist.Mean() }
func (s Shock) StdDev() float64 { return s.dist.StdDev() }

// Quantile returns the inverse CDF at p.
func (s Shock) Quantile(p float64) float64 { return s.dist.Quantile(p) }

// Nodes returns n Gauss-Hermite nodes and weights such that
// sum(w[j] * f(x[j])) approximates E[f(eps)]. Weights sum to one.
func (s Shock) Nodes(n int) (x, w []float64) {
	if n < 1 {
		return nil, nil
	}
	x = make([]float64, n)
	w = make([]float64, n)
	// Hermite integrates against exp(-z^2); substitute eps = mu + sqrt(2)*sigma*z.
	quad.Hermite{}.FixedLocations(x, w, math.Inf(-1), math.Inf(1))
	for j := range x {
		x[j] = s.dist.Mu + math.Sqrt2*s.dist.Sigma*x[j]
		w[j] /= math.SqrtPi
	}
	return x, w
}

// Expect approximates E[f(eps)] with an n-point rule.
func (s Shock) Expect(f func(eps float64) float64, n int) float64 {
	x, w := s.Nodes(n)
	sum := 0.0
	for j := range x {
		sum += w[j] * f(x[j])
	}
	return sum
}

// Sample draws n shocks from src. The same source state yields the same draws.
func (s Shock) Sample(n int, src rand.Source) []float64 {
	d := s.dist
	d.Src = src
	out := make([]float64, n)
	for j := range out {
		out[j] = d.Rand()
	}
	return out
}
