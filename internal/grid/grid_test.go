package grid

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	assert.Nil(t, Linspace(0, 1, 0))
	assert.Equal(t, []float64{-2}, Linspace(-2, 3, 1))

	g := Linspace(0, 1, 5)
	require.Len(t, g, 5)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, g, 1e-15)
}

func TestLogspace(t *testing.T) {
	g := Logspace(0, math.Log(8), 4)
	require.Len(t, g, 4)
	assert.InDeltaSlice(t, []float64{1, 2, 4, 8}, g, 1e-12)
}

func TestProductivitySymmetric(t *testing.T) {
	for _, n := range []int{2, 3, 5, 10, 21} {
		g := Productivity(0.375, n)
		require.Len(t, g, n)
		assert.True(t, StrictlyIncreasing(g))
		assert.InDelta(t, -3*0.375, g[0], 1e-15)
		for j := range g {
			assert.InDelta(t, -g[n-1-j], g[j], 1e-12, "n=%d j=%d", n, j)
		}
	}
}

func TestCapital(t *testing.T) {
	g, err := Capital(-1, 2, 50)
	require.NoError(t, err)
	require.Len(t, g, 50)
	assert.True(t, StrictlyIncreasing(g))
	assert.Greater(t, g[0], 0.0)
	assert.InDelta(t, math.Exp(-1), g[0], 1e-12)

	// Geometric spacing: constant ratio between neighbours.
	r := g[1] / g[0]
	for j := 2; j < len(g); j++ {
		assert.InDelta(t, r, g[j]/g[j-1], 1e-9)
	}

	_, err = Capital(2, 2, 10)
	assert.ErrorIs(t, err, ErrCapitalGrid)

	// The upper node overflows exp even though the lower ones do not.
	_, err = Capital(1, 800, 3)
	assert.ErrorIs(t, err, ErrCapitalGrid)
}

func TestChoice(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		n      int
	}{
		{"default range", -0.5, 2.0, 50},
		{"zero already a node", -1, 1, 5},
		{"two nodes", -0.5, 2.0, 2},
		{"positive range", 0.1, 1, 6},
		{"negative range", -1, -0.2, 4},
		{"zero at lower end", 0, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Choice(tt.lo, tt.hi, tt.n)
			require.NoError(t, err)
			assert.Len(t, g, tt.n)
			assert.Equal(t, 1, CountZeros(g))
			assert.True(t, sort.Float64sAreSorted(g))
		})
	}
}

func TestChoiceDuplicateZero(t *testing.T) {
	// Four nodes over [-1, 1] miss zero, but three nodes hit it, so the
	// correction would insert a second zero.
	_, err := Choice(-1, 1, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChoiceGrid))
}

func TestChoiceRoundoffZero(t *testing.T) {
	// -0.1 + 0.3/3 rounds to 1.4e-17; the node is still inaction.
	g, err := Choice(-0.1, 0.2, 4)
	require.NoError(t, err)
	require.Len(t, g, 4)
	assert.Equal(t, -0.1, g[0])
	assert.Equal(t, 0.0, g[1])
	assert.InDelta(t, 0.1, g[2], 1e-15)
	assert.Equal(t, 0.2, g[3])

	g, err = Choice(-0.3, 0.6, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, CountZeros(g))
	for _, v := range g {
		if v != 0 {
			assert.Greater(t, math.Abs(v), 1e-3)
		}
	}
}

func TestChoiceRoundoffDuplicateZero(t *testing.T) {
	// n nodes miss zero but n-1 nodes hit it up to roundoff, so inserting
	// zero would leave two inaction choices.
	for _, c := range []struct {
		lo, hi float64
		n      int
	}{
		{-0.1, 0.2, 5},
		{-0.1, 0.5, 8},
		{-0.1, 0.6, 9},
	} {
		_, err := Choice(c.lo, c.hi, c.n)
		assert.ErrorIs(t, err, ErrChoiceGrid, "lo=%g hi=%g n=%d", c.lo, c.hi, c.n)
	}
}

func TestSnapZero(t *testing.T) {
	g := SnapZero([]float64{-0.1, 1.3877787807814457e-17, 0.1}, 0.2)
	assert.Equal(t, []float64{-0.1, 0, 0.1}, g)

	g = SnapZero([]float64{-1e-9, 1e-9}, 1)
	assert.Equal(t, []float64{-1e-9, 1e-9}, g, "genuine small rates are kept")
}

func TestIncludeZero(t *testing.T) {
	in := []float64{-0.5, 0.25, 1}
	out := IncludeZero(in)
	assert.Equal(t, []float64{-0.5, 0, 0.25, 1}, out)
	assert.Equal(t, []float64{-0.5, 0.25, 1}, in)
}

func TestValidateChoice(t *testing.T) {
	assert.NoError(t, ValidateChoice([]float64{-1, 0, 1}, 3))
	assert.ErrorIs(t, ValidateChoice([]float64{-1, 0, 1}, 4), ErrChoiceGrid)
	assert.ErrorIs(t, ValidateChoice([]float64{0, -1, 1}, 3), ErrChoiceGrid)
	assert.ErrorIs(t, ValidateChoice([]float64{-1, 0.5, 1}, 3), ErrChoiceGrid)
	assert.ErrorIs(t, ValidateChoice([]float64{-0.1, 0, 1.3877787807814457e-17, 0.1, 0.2}, 5), ErrChoiceGrid)
}
