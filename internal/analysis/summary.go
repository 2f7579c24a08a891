package analysis

import (
	"math"
	"sort"

	"firm-investment/internal/investment"

	"gonum.org/v1/gonum/stat"
)

// QuadratureNodes is the Gauss-Hermite order used for shock expectations.
const QuadratureNodes = 15

// GridSummary describes where a built capital grid sits relative to the
// model's steady states. It is what you look at before handing the problem
// to a solver.
type GridSummary struct {
	NK int `json:"nk"`
	NA int `json:"na"`
	NI int `json:"ni"`

	KMin     float64 `json:"k_min"`
	KMax     float64 `json:"k_max"`
	KGeoMean float64 `json:"k_geo_mean"`
	KP05     float64 `json:"k_p05"`
	KP95     float64 `json:"k_p95"`

	// KSteadyState is the steady-state capital at mean productivity.
	KSteadyState float64 `json:"k_steady_state"`
	// SteadyStateInGrid is true when KSteadyState lies inside [KMin, KMax].
	SteadyStateInGrid bool `json:"steady_state_in_grid"`
	// LogGap is ln(KGeoMean) - ln(KSteadyState).
	LogGap float64 `json:"log_gap"`

	ProductivityStdev float64 `json:"productivity_stdev"`
	ProductivityMin   float64 `json:"productivity_min"`
	ProductivityMax   float64 `json:"productivity_max"`

	// RateStep is the smallest spacing between neighbouring rates.
	RateStep float64 `json:"rate_step"`

	// ExpectedRevenue is E[K^theta * e^a'] at steady-state capital with
	// a' drawn from mean productivity, by quadrature.
	ExpectedRevenue float64 `json:"expected_revenue"`
}

func Summarize(m *investment.Model) GridSummary {
	s := GridSummary{}
	if m == nil || m.Problem == nil {
		return s
	}
	capital := m.Capital()
	prod := m.Productivity()
	rates := m.Rates()

	s.NK, s.NA, s.NI = len(capital), len(prod), len(rates)
	s.KMin = capital[0]
	s.KMax = capital[len(capital)-1]

	logs := make([]float64, len(capital))
	for i, k := range capital {
		logs[i] = math.Log(k)
	}
	s.KGeoMean = math.Exp(stat.Mean(logs, nil))

	sorted := append([]float64(nil), capital...)
	sort.Float64s(sorted)
	s.KP05 = stat.Quantile(0.05, stat.LinInterp, sorted, nil)
	s.KP95 = stat.Quantile(0.95, stat.LinInterp, sorted, nil)

	s.KSteadyState = m.SteadyStateCapital()
	s.SteadyStateInGrid = s.KSteadyState >= s.KMin && s.KSteadyState <= s.KMax
	s.LogGap = math.Log(s.KGeoMean) - math.Log(s.KSteadyState)

	s.ProductivityStdev = m.Stdev
	s.ProductivityMin = prod[0]
	s.ProductivityMax = prod[len(prod)-1]

	s.RateStep = math.Inf(1)
	for i := 1; i < len(rates); i++ {
		s.RateStep = math.Min(s.RateStep, rates[i]-rates[i-1])
	}

	p := m.Params
	kTheta := math.Pow(s.KSteadyState, p.Theta)
	s.ExpectedRevenue = m.Problem.Shock().Expect(func(eps float64) float64 {
		_, next := p.Transition(s.KSteadyState, m.Mean.A, 0, eps)
		return kTheta * math.Exp(next)
	}, QuadratureNodes)

	return s
}
