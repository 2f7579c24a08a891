package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"firm-investment/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "model.yaml", `
name: low-returns
params:
  theta: 0.5
  nk: 40
solver:
  tolerance: 1.0e-9
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "low-returns", c.Name)
	assert.Equal(t, 0.5, c.Params.Theta)
	assert.Equal(t, 40, c.Params.NK)
	assert.Equal(t, model.Default().Beta, c.Params.Beta)
	assert.Equal(t, 1e-9, c.Solver.Tolerance)
}

func TestLoadKeepsExplicitZero(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(writeFile(t, dir, "iid.yaml", "params:\n  rho: 0\n  gamma: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Params.Rho)
	assert.Equal(t, 0.0, c.Params.Gamma)

	c, err = Load(writeFile(t, dir, "empty.yaml", "name: defaults\n"))
	require.NoError(t, err)
	assert.Equal(t, model.Default(), c.Params)
}

func TestLoadParamsFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "calibrations"), 0o755))
	writeFile(t, dir, "calibrations/base.yaml", `
params:
  beta: 0.95
  theta: 0.6
  gamma: 1.5
  f: 0.02
`)
	path := writeFile(t, dir, "model.yaml", `
params_file: calibrations/base.yaml
params:
  theta: 0.7
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.95, c.Params.Beta)
	assert.Equal(t, 0.7, c.Params.Theta, "inline params override the file")
	assert.Equal(t, 1.5, c.Params.Gamma)
	assert.Equal(t, 0.02, c.Params.F)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "model.yaml", `
params:
  rho: 1.0
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidParameter))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	dir := t.TempDir()
	_, err = Load(writeFile(t, dir, "bad.yaml", "params: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "ref.yaml", "params_file: nope.yaml\n"))
	assert.Error(t, err)
}

func TestMergeParams(t *testing.T) {
	base := model.Default()
	out := MergeParams(base, model.Params{Rho: 0.9, NK: 11, MinI: -0.2})

	assert.Equal(t, 0.9, out.Rho)
	assert.Equal(t, 11, out.NK)
	assert.Equal(t, -0.2, out.MinI)
	assert.Equal(t, base.Theta, out.Theta)
	assert.Equal(t, base.MaxI, out.MaxI)
}

func TestSetParam(t *testing.T) {
	p := model.Default()
	require.NoError(t, SetParam(&p, "theta", 0.5))
	require.NoError(t, SetParam(&p, "Price_Sell", 0.7))
	require.NoError(t, SetParam(&p, "nk", 40))
	require.NoError(t, SetParam(&p, "rho", 0))

	assert.Equal(t, 0.5, p.Theta)
	assert.Equal(t, 0.7, p.PriceSell)
	assert.Equal(t, 40, p.NK)
	assert.Equal(t, 0.0, p.Rho)

	assert.Error(t, SetParam(&p, "nk", 10.5))
	assert.Error(t, SetParam(&p, "kappa", 1))
}

func TestParseSweep(t *testing.T) {
	name, values, err := ParseSweep("theta=0.5, 0.6,0.7")
	require.NoError(t, err)
	assert.Equal(t, "theta", name)
	assert.Equal(t, []float64{0.5, 0.6, 0.7}, values)

	for _, bad := range []string{"theta", "=0.5", "theta=", "theta=abc", "kappa=1"} {
		_, _, err := ParseSweep(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadExampleConfig(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "examples", "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "lumpy-investment", c.Name)
	assert.Equal(t, 0.05, c.Params.F)
	assert.Equal(t, 0.02, c.Params.Lambda)
	assert.Equal(t, 0.67, c.Params.Theta)
	assert.Equal(t, 100, c.Solver.MaxIterations)
}
