package model

import (
	"fmt"
	"math"
)

// Params defines the economic and discretization parameters of the firm
// investment problem. Investment is expressed as a rate of the capital stock.
//
// Units:
// - Beta: per-period discount factor in (0,1)
// - Theta: returns to scale of capital in (0,1)
// - Rho, Sigma: AR(1) persistence and innovation volatility of log productivity
// - Delta: depreciation rate per period
// - Gamma: curvature of the convex (quadratic) adjustment cost
// - F: fixed cost per unit of capital, paid when the rate is nonzero
// - Lambda: share of revenue lost in any period with nonzero investment
// - PriceBuy / PriceSell: unit price of capital purchased / sold
type Params struct {
	Beta      float64 `yaml:"beta" json:"beta"`
	Theta     float64 `yaml:"theta" json:"theta"`
	Rho       float64 `yaml:"rho" json:"rho"`
	Sigma     float64 `yaml:"sigma" json:"sigma"`
	Delta     float64 `yaml:"delta" json:"delta"`
	Gamma     float64 `yaml:"gamma" json:"gamma"`
	F         float64 `yaml:"f" json:"f"`
	Lambda    float64 `yaml:"lambda" json:"lambda"`
	PriceBuy  float64 `yaml:"price_buy" json:"price_buy"`
	PriceSell float64 `yaml:"price_sell" json:"price_sell"`

	// Grid sizes: capital, productivity, investment rate.
	NK int `yaml:"nk" json:"nk"`
	NA int `yaml:"na" json:"na"`
	NI int `yaml:"ni" json:"ni"`

	// Investment-rate range of the choice grid.
	MinI float64 `yaml:"min_i" json:"min_i"`
	MaxI float64 `yaml:"max_i" json:"max_i"`
}

// Default returns the reference calibration.
func Default() Params {
	return Params{
		Beta:      0.9,
		Theta:     0.67,
		Rho:       0.6,
		Sigma:     0.3,
		Delta:     0.15,
		Gamma:     2.0,
		F:         0.01,
		Lambda:    0.0,
		PriceBuy:  1.0,
		PriceSell: 0.9,
		NK:        100,
		NA:        5,
		NI:        50,
		MinI:      -0.5,
		MaxI:      2.0,
	}
}

// Validate checks the domain assumptions the grid construction and the
// steady-state equations rely on.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"beta", p.Beta}, {"theta", p.Theta}, {"rho", p.Rho}, {"sigma", p.Sigma},
		{"delta", p.Delta}, {"gamma", p.Gamma}, {"f", p.F}, {"lambda", p.Lambda},
		{"price_buy", p.PriceBuy}, {"price_sell", p.PriceSell},
		{"min_i", p.MinI}, {"max_i", p.MaxI},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ParameterError{Field: f.name, Value: f.v, Reason: "must be finite"}
		}
	}

	switch {
	case math.Abs(p.Rho) >= 1:
		return &ParameterError{Field: "rho", Value: p.Rho, Reason: "|rho| must be < 1 for a stationary productivity process"}
	case p.Beta <= 0 || p.Beta >= 1:
		return &ParameterError{Field: "beta", Value: p.Beta, Reason: "must be in (0, 1)"}
	case p.Theta <= 0 || p.Theta >= 1:
		return &ParameterError{Field: "theta", Value: p.Theta, Reason: "must be in (0, 1) for a concave revenue function"}
	case p.Sigma <= 0:
		return &ParameterError{Field: "sigma", Value: p.Sigma, Reason: "must be > 0"}
	case p.Delta < 0 || p.Delta > 1:
		return &ParameterError{Field: "delta", Value: p.Delta, Reason: "must be in [0, 1]"}
	case p.Gamma < 0:
		return &ParameterError{Field: "gamma", Value: p.Gamma, Reason: "must be >= 0"}
	case p.F < 0:
		return &ParameterError{Field: "f", Value: p.F, Reason: "must be >= 0"}
	case p.Lambda < 0 || p.Lambda >= 1:
		return &ParameterError{Field: "lambda", Value: p.Lambda, Reason: "must be in [0, 1)"}
	case p.PriceBuy <= 0:
		return &ParameterError{Field: "price_buy", Value: p.PriceBuy, Reason: "must be > 0"}
	case p.PriceSell <= 0:
		return &ParameterError{Field: "price_sell", Value: p.PriceSell, Reason: "must be > 0"}
	case p.NK < 2:
		return &ParameterError{Field: "nk", Value: float64(p.NK), Reason: "must be >= 2"}
	case p.NA < 2:
		return &ParameterError{Field: "na", Value: float64(p.NA), Reason: "must be >= 2"}
	case p.NI < 2:
		return &ParameterError{Field: "ni", Value: float64(p.NI), Reason: "must be >= 2"}
	case p.MinI >= p.MaxI:
		return &ParameterError{Field: "min_i", Value: p.MinI, Reason: fmt.Sprintf("must be < max_i (%g)", p.MaxI)}
	}
	return nil
}

// StationaryStdev is the unconditional standard deviation of log productivity,
// sigma / sqrt(1 - rho^2). Callers must have validated |rho| < 1.
func (p Params) StationaryStdev() float64 {
	return p.Sigma / math.Sqrt(1-p.Rho*p.Rho)
}
