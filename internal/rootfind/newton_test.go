package rootfind

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewtonLinear(t *testing.T) {
	// x + y = 3, x - y = 1
	f := func(y, x []float64) {
		y[0] = x[0] + x[1] - 3
		y[1] = x[0] - x[1] - 1
	}
	res, err := Newton(f, []float64{0, 0}, DefaultConfig)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 1}, res.X, 1e-9)
	assert.LessOrEqual(t, res.Iterations, 2)
}

func TestNewtonNonlinear(t *testing.T) {
	// Unit circle meets the line y = x in the first quadrant.
	f := func(y, x []float64) {
		y[0] = x[0]*x[0] + x[1]*x[1] - 1
		y[1] = x[0] - x[1]
	}
	x0 := []float64{1, 0.5}
	res, err := Newton(f, x0, DefaultConfig)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, res.X[0], 1e-9)
	assert.InDelta(t, math.Sqrt2/2, res.X[1], 1e-9)
	assert.Less(t, res.Residual, DefaultConfig.Tolerance)
	assert.Equal(t, []float64{1, 0.5}, x0, "initial guess must not be modified")
}

func TestNewtonDeterministic(t *testing.T) {
	f := func(y, x []float64) {
		y[0] = math.Exp(x[0]) - 2
	}
	a, err := Newton(f, []float64{0}, DefaultConfig)
	require.NoError(t, err)
	b, err := Newton(f, []float64{0}, DefaultConfig)
	require.NoError(t, err)
	assert.Equal(t, a.X, b.X)
}

func TestNewtonFailures(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		x0   []float64
		cfg  Config
	}{
		{
			name: "no root",
			f:    func(y, x []float64) { y[0] = x[0]*x[0] + 1 },
			x0:   []float64{0.5},
			cfg:  Config{MaxIterations: 50},
		},
		{
			name: "singular jacobian",
			f: func(y, x []float64) {
				y[0] = x[0] + x[1] - 1
				y[1] = 2*x[0] + 2*x[1] - 5
			},
			x0:  []float64{0, 0},
			cfg: DefaultConfig,
		},
		{
			name: "iteration cap",
			f:    func(y, x []float64) { y[0] = math.Exp(x[0]) - 1e6 },
			x0:   []float64{0},
			cfg:  Config{MaxIterations: 1},
		},
		{
			name: "non-finite residual",
			f:    func(y, x []float64) { y[0] = math.Log(x[0]) },
			x0:   []float64{-1},
			cfg:  DefaultConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Newton(tt.f, tt.x0, tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNoConvergence))
		})
	}
}

func TestNewtonEmptyGuess(t *testing.T) {
	_, err := Newton(func(y, x []float64) {}, nil, DefaultConfig)
	assert.Error(t, err)
}
