package analysis

import (
	"errors"
	"math"
	"testing"

	"firm-investment/internal/config"
	"firm-investment/internal/investment"
	"firm-investment/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	p := model.Default()
	m, err := investment.Build(p)
	require.NoError(t, err)

	s := Summarize(m)
	assert.Equal(t, p.NK, s.NK)
	assert.Equal(t, p.NA, s.NA)
	assert.Equal(t, p.NI, s.NI)
	assert.Less(t, s.KMin, s.KP05)
	assert.Less(t, s.KP05, s.KGeoMean)
	assert.Less(t, s.KGeoMean, s.KP95)
	assert.Less(t, s.KP95, s.KMax)
	assert.True(t, s.SteadyStateInGrid)
	assert.Less(t, math.Abs(s.LogGap), 0.5)
	assert.Greater(t, s.RateStep, 0.0)

	// E[e^(rho*a + sigma*eps)] = e^(rho*a + sigma^2/2)
	want := math.Pow(s.KSteadyState, p.Theta) * math.Exp(p.Rho*m.Mean.A+p.Sigma*p.Sigma/2)
	assert.InDelta(t, want, s.ExpectedRevenue, 1e-9*want)
}

func TestSummarizeNil(t *testing.T) {
	assert.Equal(t, GridSummary{}, Summarize(nil))
}

func TestSweep(t *testing.T) {
	base := model.Default()
	vars := []Variation{
		{Name: "theta-0.5", Params: model.Params{Theta: 0.5}},
		{Name: "unit-root", Params: model.Params{Rho: 1}},
		{Name: "theta-0.7", Params: model.Params{Theta: 0.7}},
		{Name: "patient", Params: model.Params{Beta: 0.95}},
	}
	res := Sweep(base, vars, config.MergeParams)
	require.Len(t, res, 4)

	for i := 0; i < 2; i++ {
		require.NoError(t, res[i].Err)
		assert.GreaterOrEqual(t, res[i].Summary.KSteadyState, res[i+1].Summary.KSteadyState)
	}
	assert.Equal(t, "unit-root", res[3].Name)
	assert.True(t, errors.Is(res[3].Err, model.ErrInvalidParameter))
}
