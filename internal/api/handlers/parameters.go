package handlers

import (
	"net/http"

	"firm-investment/internal/api/models"
	"firm-investment/internal/model"
	"firm-investment/internal/rootfind"

	"github.com/gin-gonic/gin"
)

// ParameterHandler describes the accepted model parameters.
type ParameterHandler struct{}

// NewParameterHandler creates a new parameter handler
func NewParameterHandler() *ParameterHandler {
	return &ParameterHandler{}
}

// ListParameters handles GET /api/v1/parameters
func (h *ParameterHandler) ListParameters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"params": parameterInfo(model.Default()),
		"solver": solverInfo(rootfind.DefaultConfig),
	})
}

func parameterInfo(d model.Params) []models.ParameterInfo {
	return []models.ParameterInfo{
		{Name: "beta", Type: "float", Description: "Discount factor, in (0, 1)", Default: d.Beta},
		{Name: "theta", Type: "float", Description: "Returns to scale of capital, in (0, 1)", Default: d.Theta},
		{Name: "rho", Type: "float", Description: "Autocorrelation of log productivity, |rho| < 1", Default: d.Rho},
		{Name: "sigma", Type: "float", Description: "Volatility of productivity innovations, > 0", Default: d.Sigma},
		{Name: "delta", Type: "float", Description: "Depreciation rate per period, in [0, 1]", Default: d.Delta},
		{Name: "gamma", Type: "float", Description: "Convex adjustment cost curvature, >= 0", Default: d.Gamma},
		{Name: "f", Type: "float", Description: "Fixed adjustment cost per unit of capital, >= 0", Default: d.F},
		{Name: "lambda", Type: "float", Description: "Share of revenue lost when adjusting, in [0, 1)", Default: d.Lambda},
		{Name: "price_buy", Type: "float", Description: "Unit price of purchased capital", Default: d.PriceBuy},
		{Name: "price_sell", Type: "float", Description: "Unit price of sold capital", Default: d.PriceSell},
		{Name: "nk", Type: "int", Description: "Number of capital grid points, >= 2", Default: d.NK},
		{Name: "na", Type: "int", Description: "Number of productivity grid points, >= 2", Default: d.NA},
		{Name: "ni", Type: "int", Description: "Number of investment rate choices, >= 2 (always contains 0)", Default: d.NI},
		{Name: "min_i", Type: "float", Description: "Lowest investment rate", Default: d.MinI},
		{Name: "max_i", Type: "float", Description: "Highest investment rate", Default: d.MaxI},
	}
}

func solverInfo(d rootfind.Config) []models.ParameterInfo {
	return []models.ParameterInfo{
		{Name: "tolerance", Type: "float", Description: "Residual max-norm at which the steady-state solve stops", Default: d.Tolerance},
		{Name: "max_iterations", Type: "int", Description: "Newton iteration cap", Default: d.MaxIterations},
		{Name: "damping", Type: "float", Description: "Newton step scale in (0, 1]", Default: d.Damping},
		{Name: "step", Type: "float", Description: "Finite-difference step for the Jacobian (0 = automatic)", Default: d.Step},
	}
}
