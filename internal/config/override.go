package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"firm-investment/internal/model"
)

// SetParam assigns v to the parameter named by its YAML key (e.g. "theta").
func SetParam(p *model.Params, name string, v float64) error {
	floats := map[string]*float64{
		"beta":       &p.Beta,
		"theta":      &p.Theta,
		"rho":        &p.Rho,
		"sigma":      &p.Sigma,
		"delta":      &p.Delta,
		"gamma":      &p.Gamma,
		"f":          &p.F,
		"lambda":     &p.Lambda,
		"price_buy":  &p.PriceBuy,
		"price_sell": &p.PriceSell,
		"min_i":      &p.MinI,
		"max_i":      &p.MaxI,
	}
	ints := map[string]*int{
		"nk": &p.NK,
		"na": &p.NA,
		"ni": &p.NI,
	}

	key := strings.ToLower(strings.TrimSpace(name))
	if dst, ok := floats[key]; ok {
		*dst = v
		return nil
	}
	if dst, ok := ints[key]; ok {
		if v != math.Trunc(v) {
			return fmt.Errorf("parameter %q needs an integer, got %g", key, v)
		}
		*dst = int(v)
		return nil
	}
	return fmt.Errorf("unknown parameter %q", name)
}

// ParseSweep parses "name=v1,v2,..." into a parameter name and its values.
func ParseSweep(arg string) (string, []float64, error) {
	name, list, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("sweep %q: want name=v1,v2,...", arg)
	}
	var values []float64
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", nil, fmt.Errorf("sweep %q: %w", arg, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return "", nil, fmt.Errorf("sweep %q: no values", arg)
	}
	// Reject unknown names before any build runs.
	var probe model.Params
	if err := SetParam(&probe, name, values[0]); err != nil {
		return "", nil, err
	}
	return name, values, nil
}
