package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sgm-simulator/internal/api/models"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSimulateHandler(NewResultStore())

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		v1.POST("/simulate", h.RunSimulation)
		v1.POST("/simulate/compare", h.CompareSimulations)
		v1.GET("/simulate/:id/trajectory", h.GetTrajectory)
		v1.GET("/scenarios", ListScenarios)
	}
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func validSpec() models.ScenarioSpec {
	return models.ScenarioSpec{
		Name:    "api-run",
		Periods: 3,
		Policy: models.PolicySpec{
			Growth:         "multiplicative",
			GrowthRate:     0.10,
			BootstrapLimit: 100,
			MaxLimit:       1000,
		},
		Usage: models.UsageSpec{Series: []float64{0, 150, 50}},
	}
}

func TestRunSimulation_ReturnsSummary(t *testing.T) {
	r := newTestRouter()
	w := postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{Config: validSpec()})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 3, resp.Summary.Periods)
	assert.InDelta(t, 121, resp.Summary.FinalLimit, 1e-9)
	assert.Empty(t, resp.Trajectory, "trajectory is opt-in")
}

func TestRunSimulation_IncludesTrajectoryWhenAsked(t *testing.T) {
	r := newTestRouter()
	w := postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{
		Config:  validSpec(),
		Options: models.SimulateOptions{IncludeTrajectory: true},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Trajectory, 3)
	assert.Equal(t, "BANKING", resp.Trajectory[0].Action)
	assert.Equal(t, "DRAWING", resp.Trajectory[1].Action)
}

func TestRunSimulation_AttachesInvoices(t *testing.T) {
	r := newTestRouter()
	spec := validSpec()
	spec.Periods = 4
	spec.Usage.Series = []float64{30, 80, 50, 10}
	spec.Reserved = models.ReservedSpec{Constant: 50}

	w := postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{
		Config:  spec,
		Options: models.SimulateOptions{BillingCycleLength: 2},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Invoices, 2)
	assert.InDelta(t, 100, resp.Invoices[0].PrepaidReserved, 1e-9)
	assert.InDelta(t, 30, resp.Invoices[0].MeteredUsage, 1e-9)
}

func TestRunSimulation_InvalidConfigEnvelope(t *testing.T) {
	r := newTestRouter()
	spec := validSpec()
	spec.Policy.GrowthRate = 3.0
	spec.Policy.BootstrapLimit = 9999

	w := postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{Config: spec})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_CONFIG", resp.Error.Code)

	violations, ok := resp.Error.Details["violations"].([]interface{})
	require.True(t, ok, "details carry the violation list")
	assert.Len(t, violations, 2)
}

func TestRunSimulation_MalformedBody(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestGetTrajectory_RoundTrip(t *testing.T) {
	r := newTestRouter()
	w := postJSON(t, r, "/api/v1/simulate", models.SimulateRequest{Config: validSpec()})
	require.Equal(t, http.StatusOK, w.Code)

	var run models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/simulate/"+run.ID+"/trajectory", nil)
	r.ServeHTTP(w2, req)

	require.Equal(t, http.StatusOK, w2.Code)

	var fetched models.SimulateResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &fetched))
	assert.Equal(t, run.ID, fetched.ID)
	require.Len(t, fetched.Trajectory, 3)
	assert.InDelta(t, 121, fetched.Trajectory[2].LimitAfter, 1e-9)
}

func TestGetTrajectory_UnknownID(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/simulate/nope/trajectory", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RUN_NOT_FOUND", resp.Error.Code)
}

func TestCompareSimulations_MergesVariations(t *testing.T) {
	r := newTestRouter()
	req := models.CompareRequest{
		BaseConfig: validSpec(),
		Variations: []models.Variation{
			{
				Name:   "higher growth",
				Config: models.ScenarioSpec{Policy: models.PolicySpec{GrowthRate: 0.5}},
			},
			{
				Name:   "broken",
				Config: models.ScenarioSpec{Policy: models.PolicySpec{GrowthRate: 9}},
			},
		},
	}

	w := postJSON(t, r, "/api/v1/simulate/compare", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Comparison, 1, "invalid variations are skipped")
	assert.Equal(t, "higher growth", resp.Comparison[0].Name)
	// base rate 0.10 replaced by 0.5: limits 100, 150, 225.
	assert.InDelta(t, 225, resp.Comparison[0].Summary.FinalLimit, 1e-9)
}

func TestListScenarios_ReturnsAllPresets(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ScenariosResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Presets, 7)
	assert.Equal(t, "developer_mistake", resp.Presets[0].Name)
	assert.Equal(t, 30, resp.Presets[0].Periods)
}
