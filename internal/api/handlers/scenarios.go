package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"sgm-simulator/internal/api/models"
	"sgm-simulator/internal/data"
	"sgm-simulator/internal/scenario"
)

// ListScenarios handles GET /api/v1/scenarios.
func ListScenarios(c *gin.Context) {
	presets := scenario.Presets()
	infos := make([]models.PresetInfo, 0, len(presets))
	for _, name := range scenario.PresetNames() {
		infos = append(infos, models.PresetInfo{Name: name, Periods: len(presets[name])})
	}
	c.JSON(http.StatusOK, models.ScenariosResponse{Presets: infos})
}

// ListDatasets handles GET /api/v1/datasets.
func ListDatasets(c *gin.Context) {
	dir := os.Getenv("DATASET_DIR")
	if dir == "" {
		dir = "examples/datasets"
	}
	paths, err := data.ListDatasets(dir)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"datasets": []string{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"datasets": paths})
}
