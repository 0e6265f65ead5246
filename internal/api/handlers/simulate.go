package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sgm-simulator/internal/analysis"
	"sgm-simulator/internal/api/middleware"
	"sgm-simulator/internal/api/models"
	"sgm-simulator/internal/config"
	"sgm-simulator/internal/model"
	"sgm-simulator/internal/sgm"
)

// SimulateHandler handles simulation requests.
type SimulateHandler struct {
	runner *sgm.Runner
	store  *ResultStore
}

func NewSimulateHandler(store *ResultStore) *SimulateHandler {
	return &SimulateHandler{runner: sgm.NewRunner(), store: store}
}

// RunSimulation handles POST /api/v1/simulate.
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	sc, errResp := buildScenario(req.Config)
	if errResp != nil {
		middleware.SimulationsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, *errResp)
		return
	}

	res, err := h.runner.Run(sc)
	if err != nil {
		middleware.SimulationsTotal.WithLabelValues("error").Inc()
		if inv, ok := err.(*sgm.InvariantError); ok {
			// Engine bug, not bad input. Surface the partial trajectory
			// for diagnosis.
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "ENGINE_INVARIANT",
					Message: inv.Error(),
					Details: map[string]interface{}{
						"period":             inv.Period,
						"partial_trajectory": models.RowsFromTrajectory(res.Trajectory),
					},
				},
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()},
		})
		return
	}

	middleware.SimulationsTotal.WithLabelValues("ok").Inc()
	middleware.SimulationPeriods.Observe(float64(sc.Periods))

	summary := models.SummaryFromAnalysis(analysis.Summarize(sc, res))
	rows := models.RowsFromTrajectory(res.Trajectory)
	id := h.store.Put(storedRun{Summary: summary, Trajectory: rows})

	resp := models.SimulateResponse{
		ID:      id,
		Status:  "completed",
		Summary: summary,
	}
	if req.Options.IncludeTrajectory {
		resp.Trajectory = rows
	}
	if n := req.Options.BillingCycleLength; n > 0 {
		resp.Invoices = models.InvoicesFromAnalysis(analysis.BuildInvoices(res.Trajectory, n))
	}
	c.JSON(http.StatusOK, resp)
}

// GetTrajectory handles GET /api/v1/simulate/:id/trajectory.
func (h *SimulateHandler) GetTrajectory(c *gin.Context) {
	id := c.Param("id")
	run, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "RUN_NOT_FOUND", Message: "no run with id " + id},
		})
		return
	}
	c.JSON(http.StatusOK, models.SimulateResponse{
		ID:         id,
		Status:     "completed",
		Summary:    run.Summary,
		Trajectory: run.Trajectory,
	})
}

// CompareSimulations handles POST /api/v1/simulate/compare.
func (h *SimulateHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	base, err := req.BaseConfig.ToConfig()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		overlay, err := variation.Config.ToConfig()
		if err != nil {
			continue // Skip invalid variations
		}
		merged := config.Merge(base, overlay)
		sc, err := merged.ToScenario()
		if err != nil {
			continue
		}
		res, err := h.runner.Run(sc)
		if err != nil {
			continue
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: models.SummaryFromAnalysis(analysis.Summarize(sc, res)),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// buildScenario converts a request spec into a validated scenario, mapping
// validation failures onto the error envelope. A ConfigError lists every
// violation in the details so a form can surface all of them at once.
func buildScenario(spec models.ScenarioSpec) (*model.Scenario, *models.ErrorResponse) {
	cfg, err := spec.ToConfig()
	if err != nil {
		return nil, &models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()},
		}
	}
	sc, err := cfg.ToScenario()
	if err != nil {
		detail := models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()}
		if ce, ok := model.AsConfigError(err); ok {
			detail.Details = map[string]interface{}{"violations": ce.Violations}
		}
		return nil, &models.ErrorResponse{Error: detail}
	}
	return sc, nil
}
