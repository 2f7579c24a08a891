package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFromRate(t *testing.T) {
	assert.Equal(t, ActionInvest, ActionFromRate(0.1))
	assert.Equal(t, ActionDisinvest, ActionFromRate(-0.1))
	assert.Equal(t, ActionInaction, ActionFromRate(0))
	assert.False(t, ActionInaction.Adjusting())
	assert.True(t, ActionInvest.Adjusting())
}

func TestRewardInactionHasNoAdjustmentCosts(t *testing.T) {
	p := Default()
	p.F = 0.5
	p.Lambda = 0.3
	p.PriceSell = 2

	for _, k := range []float64{0.1, 1, 7.5, 300} {
		for _, a := range []float64{-1.1, 0, 0.4} {
			want := math.Pow(k, p.Theta) * math.Exp(a)
			assert.InDelta(t, want, p.Reward(k, a, 0), 1e-12, "k=%g a=%g", k, a)
		}
	}
}

func TestRewardPriceRegimes(t *testing.T) {
	p := Default()
	p.PriceBuy = 1
	p.PriceSell = 2
	k, a, eps := 4.0, 0.2, 0.01

	up := p.Reward(k, a, eps)
	down := p.Reward(k, a, -eps)

	// Fixed and convex costs are symmetric in the rate, so only the price
	// term differs: -eps*k*1 versus +eps*k*2.
	assert.InDelta(t, eps*k*(p.PriceBuy+p.PriceSell), down-up, 1e-12)
	assert.Greater(t, down, up)
}

func TestRewardComponents(t *testing.T) {
	p := Params{Theta: 0.5, Gamma: 2, F: 0.1, Lambda: 0.2, PriceBuy: 1, PriceSell: 0.8}
	k, a, i := 4.0, 0.0, 0.5

	// 2*(1-0.2) - 0.5*4*1 - 0.1*4 - 1*0.25*4
	want := 1.6 - 2 - 0.4 - 1
	assert.InDelta(t, want, p.Reward(k, a, i), 1e-12)
}

func TestTransition(t *testing.T) {
	p := Default()
	k, a := 3.0, 0.25

	nk, na := p.Transition(k, a, 0, 0)
	assert.Equal(t, (1-p.Delta)*k, nk)
	assert.Equal(t, p.Rho*a, na)

	nk, na = p.Transition(k, a, 0.2, 1.5)
	assert.InDelta(t, (1-p.Delta+0.2)*k, nk, 1e-12)
	assert.InDelta(t, p.Rho*a+p.Sigma*1.5, na, 1e-12)
}
