package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"firm-investment/internal/model"
	"firm-investment/internal/rootfind"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load a calibration from a separate YAML (e.g. examples/calibrations/baseline.yaml).
	// If both ParamsFile and Params are provided, Params overrides ParamsFile.
	ParamsFile string          `yaml:"params_file"`
	Name       string          `yaml:"name"`
	Params     model.Params    `yaml:"params"`
	Solver     rootfind.Config `yaml:"solver"`
}

// Load reads and validates path. Parameters missing from the file take
// their model.Default values.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.ParamsFile == "" {
		// Decode again onto the defaults so explicit zeros (rho: 0) survive.
		c = Config{Params: model.Default()}
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		paramsPath := c.ParamsFile
		if !filepath.IsAbs(paramsPath) {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), paramsPath)
			if _, err := os.Stat(cand); err == nil {
				paramsPath = cand
			}
		}
		loaded, err := loadParamsFile(paramsPath)
		if err != nil {
			return nil, err
		}
		c.Params = MergeParams(loaded, c.Params)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("params invalid: %w", err)
	}
	if c.Solver.MaxIterations < 0 {
		return errors.New("solver.max_iterations must be >= 0")
	}
	return nil
}

type paramsFileWrapper struct {
	Params model.Params `yaml:"params"`
}

func loadParamsFile(path string) (model.Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Params{}, err
	}
	w := paramsFileWrapper{Params: model.Default()}
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return model.Params{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Params, nil
}

// MergeParams overlays non-zero fields from override onto base.
// Used when loading a params file and then applying inline or request overrides.
// A zero override cannot clear a base value; set it in the base file instead.
func MergeParams(base, override model.Params) model.Params {
	out := base
	overlay := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	overlay(&out.Beta, override.Beta)
	overlay(&out.Theta, override.Theta)
	overlay(&out.Rho, override.Rho)
	overlay(&out.Sigma, override.Sigma)
	overlay(&out.Delta, override.Delta)
	overlay(&out.Gamma, override.Gamma)
	overlay(&out.F, override.F)
	overlay(&out.Lambda, override.Lambda)
	overlay(&out.PriceBuy, override.PriceBuy)
	overlay(&out.PriceSell, override.PriceSell)
	overlay(&out.MinI, override.MinI)
	overlay(&out.MaxI, override.MaxI)
	if override.NK != 0 {
		out.NK = override.NK
	}
	if override.NA != 0 {
		out.NA = override.NA
	}
	if override.NI != 0 {
		out.NI = override.NI
	}
	return out
}
