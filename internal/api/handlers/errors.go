package handlers

import (
	"errors"
	"net/http"

	"firm-investment/internal/api/models"
	"firm-investment/internal/grid"
	"firm-investment/internal/model"
	"firm-investment/internal/steadystate"
)

// buildError maps a model build failure to an HTTP status and error body.
func buildError(err error) (int, models.ErrorDetail) {
	var pe *model.ParameterError
	var ce *steadystate.ConvergenceError
	switch {
	case errors.As(err, &pe):
		return http.StatusBadRequest, models.ErrorDetail{
			Code:    "INVALID_PARAMETER",
			Message: err.Error(),
			Details: map[string]interface{}{
				"field": pe.Field,
				"value": pe.Value,
			},
		}
	case errors.Is(err, model.ErrInvalidParameter):
		return http.StatusBadRequest, models.ErrorDetail{Code: "INVALID_PARAMETER", Message: err.Error()}
	case errors.As(err, &ce):
		return http.StatusUnprocessableEntity, models.ErrorDetail{
			Code:    "STEADY_STATE_FAILURE",
			Message: err.Error(),
			Details: map[string]interface{}{
				"level": string(ce.Level),
				"a":     ce.A,
			},
		}
	case errors.Is(err, steadystate.ErrConvergence):
		return http.StatusUnprocessableEntity, models.ErrorDetail{Code: "STEADY_STATE_FAILURE", Message: err.Error()}
	case errors.Is(err, grid.ErrChoiceGrid):
		return http.StatusUnprocessableEntity, models.ErrorDetail{Code: "CHOICE_GRID_ERROR", Message: err.Error()}
	default:
		return http.StatusInternalServerError, models.ErrorDetail{Code: "BUILD_ERROR", Message: err.Error()}
	}
}

func badRequest(code string, err error) models.ErrorResponse {
	return models.ErrorResponse{Error: models.ErrorDetail{Code: code, Message: err.Error()}}
}
