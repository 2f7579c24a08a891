package model

import "math"

// Reward is the single-period payoff of choosing investment rate i at
// capital k and log productivity a:
//
//	k^theta * e^a * (1 - lambda*adj) - i*k*price - F*k*adj - gamma/2 * i^2 * k
//
// where adj is 1 for any nonzero rate and price is PriceBuy for i >= 0 and
// PriceSell for i < 0.
func (p Params) Reward(k, a, i float64) float64 {
	adj := 0.0
	if ActionFromRate(i).Adjusting() {
		adj = 1
	}
	price := p.PriceBuy
	if i < 0 {
		price = p.PriceSell
	}

	revenue := math.Pow(k, p.Theta) * math.Exp(a) * (1 - p.Lambda*adj)
	expenditure := i * k * price
	fixed := p.F * k * adj
	convex := p.Gamma / 2 * i * i * k
	return revenue - expenditure - fixed - convex
}

// Transition maps (k, a) under rate i and standard-normal shock eps to the
// next-period state. Capital evolves multiplicatively since i is a rate.
func (p Params) Transition(k, a, i, eps float64) (nextK, nextA float64) {
	nextK = (1 - p.Delta + i) * k
	nextA = p.Rho*a + p.Sigma*eps
	return nextK, nextA
}
