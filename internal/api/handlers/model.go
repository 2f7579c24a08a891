package handlers

import (
	"fmt"
	"net/http"

	"firm-investment/internal/analysis"
	"firm-investment/internal/api/models"
	"firm-investment/internal/cache"
	"firm-investment/internal/config"
	"firm-investment/internal/investment"
	"firm-investment/internal/model"
	"firm-investment/internal/tabulate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultTableLimit = 100

// ModelHandler handles model build requests.
type ModelHandler struct {
	cache  *cache.Models
	logger *zap.Logger
}

// NewModelHandler creates a new model handler. A nil cache disables
// follow-up lookups by id.
func NewModelHandler(c *cache.Models, logger *zap.Logger) *ModelHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModelHandler{cache: c, logger: logger}
}

// BuildModel handles POST /api/v1/model
func (h *ModelHandler) BuildModel(c *gin.Context) {
	req := models.ModelRequest{Params: model.Default()}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, badRequest("INVALID_REQUEST", err))
		return
	}

	if err := checkLimits(req.Params); err != nil {
		status, detail := buildError(err)
		c.JSON(status, models.ErrorResponse{Error: detail})
		return
	}

	opts := []investment.Option{investment.WithLogger(h.logger)}
	if req.Solver != nil {
		opts = append(opts, investment.WithSolverConfig(*req.Solver))
	}
	m, err := investment.Build(req.Params, opts...)
	if err != nil {
		status, detail := buildError(err)
		h.logger.Warn("model build failed", zap.Error(err), zap.Int("status", status))
		c.JSON(status, models.ErrorResponse{Error: detail})
		return
	}

	id := h.cache.Put(m)
	c.JSON(http.StatusOK, buildResponse(id, m, req.Options.IncludeGrids))
}

// GetModel handles GET /api/v1/model/:id
func (h *ModelHandler) GetModel(c *gin.Context) {
	m, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, buildResponse(c.Param("id"), m, true))
}

// GetTable handles GET /api/v1/model/:id/table
func (h *ModelHandler) GetTable(c *gin.Context) {
	var q models.TableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, badRequest("INVALID_REQUEST", err))
		return
	}
	m, ok := h.lookup(c)
	if !ok {
		return
	}

	if rows := len(m.Capital()) * len(m.Productivity()) * len(m.Rates()); rows > maxTableRows {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: models.ErrorDetail{
			Code:    "TABLE_TOO_LARGE",
			Message: fmt.Sprintf("table has %d rows, limit is %d", rows, maxTableRows),
		}})
		return
	}

	res, err := tabulate.New().Run(m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, badRequest("TABLE_ERROR", err))
		return
	}

	if q.Format == "csv" {
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.Param("id")+".csv"))
		if err := tabulate.Write(c.Writer, res.Rows); err != nil {
			h.logger.Error("write table csv", zap.Error(err))
		}
		return
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultTableLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(res.Rows) {
		offset = len(res.Rows)
	}
	end := offset + limit
	if end > len(res.Rows) {
		end = len(res.Rows)
	}

	c.JSON(http.StatusOK, models.TableResponse{
		ID:      c.Param("id"),
		Total:   len(res.Rows),
		OffGrid: res.OffGrid,
		Offset:  offset,
		Rows:    convertRows(res.Rows[offset:end]),
	})
}

// CompareModels handles POST /api/v1/model/compare
func (h *ModelHandler) CompareModels(c *gin.Context) {
	req := models.CompareRequest{Base: model.Default()}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, badRequest("INVALID_REQUEST", err))
		return
	}

	vars := make([]analysis.Variation, 0, len(req.Variations))
	for _, v := range req.Variations {
		if err := checkLimits(config.MergeParams(req.Base, v.Params)); err != nil {
			status, detail := buildError(err)
			detail.Message = fmt.Sprintf("variation %q: %s", v.Name, detail.Message)
			c.JSON(status, models.ErrorResponse{Error: detail})
			return
		}
		vars = append(vars, analysis.Variation{Name: v.Name, Params: v.Params})
	}
	results := analysis.Sweep(req.Base, vars, config.MergeParams, investment.WithLogger(h.logger))

	out := models.CompareResponse{Comparison: make([]models.ComparisonResult, 0, len(results))}
	for i, r := range results {
		cr := models.ComparisonResult{Name: r.Name}
		if r.Err != nil {
			_, detail := buildError(r.Err)
			cr.Error = &detail
		} else {
			summary := r.Summary
			cr.Rank = i + 1
			cr.Summary = &summary
		}
		out.Comparison = append(out.Comparison, cr)
	}
	c.JSON(http.StatusOK, out)
}

func (h *ModelHandler) lookup(c *gin.Context) (*investment.Model, bool) {
	id := c.Param("id")
	m, ok := h.cache.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("model %q not found or expired; build it again with POST /api/v1/model", id),
			},
		})
		return nil, false
	}
	return m, true
}

func buildResponse(id string, m *investment.Model, includeGrids bool) models.ModelResponse {
	resp := models.ModelResponse{
		ID:       id,
		Status:   "built",
		Mode:     m.Problem.Mode().String(),
		Discount: m.Problem.Discount(),
		SteadyStates: models.SteadyStates{
			Mean: m.Mean,
			Low:  m.Low,
			High: m.High,
		},
		Summary: analysis.Summarize(m),
	}
	if includeGrids {
		resp.Grids = &models.Grids{
			Capital:      m.Capital(),
			Productivity: m.Productivity(),
			Rates:        m.Rates(),
		}
	}
	return resp
}

func convertRows(rows []tabulate.Row) []models.TableRow {
	out := make([]models.TableRow, len(rows))
	for i, r := range rows {
		out[i] = models.TableRow{
			Index:            r.Index,
			Capital:          r.Capital,
			Productivity:     r.Productivity,
			Rate:             r.Rate,
			Action:           string(r.Action),
			Reward:           r.Reward,
			NextCapital:      r.NextCapital,
			NextProductivity: r.NextProductivity,
			NextOnGrid:       r.NextOnGrid,
		}
	}
	return out
}
