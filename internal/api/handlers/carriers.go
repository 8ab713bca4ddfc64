package handlers

import (
	"net/http"

	"bill-forecast/internal/api/models"
	"bill-forecast/internal/model"
	"bill-forecast/internal/scenario"

	"github.com/gin-gonic/gin"
)

// ListCarriers handles GET /api/v1/carriers
func ListCarriers(c *gin.Context) {
	carriers := make([]models.CarrierInfo, 0, len(model.Carriers()))
	for _, carrier := range model.Carriers() {
		carriers = append(carriers, models.CarrierInfo{
			ID:                   string(carrier),
			Label:                carrier.Label(),
			DefaultEscalationPct: carrier.DefaultEscalationPct(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"carriers": carriers})
}

// ListPresets handles GET /api/v1/scenarios
func ListPresets(c *gin.Context) {
	presets := make([]models.PresetInfo, 0, len(scenario.All()))
	for _, p := range scenario.All() {
		rates := make(map[string]float64, len(p.Rates))
		for carrier, pct := range p.Rates {
			rates[string(carrier)] = pct
		}
		presets = append(presets, models.PresetInfo{
			Name:        p.Name,
			Description: p.Description,
			Rates:       rates,
		})
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": presets})
}
