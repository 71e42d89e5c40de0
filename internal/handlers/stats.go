package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Running prediction metrics
// @Description  Session-scoped counters: prediction count, total and average latency.
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.RunningMetrics
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/stats [get]
// @Security     BearerAuth
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Metrics.Stats())
}

// @Summary      Model metadata
// @Description  The metadata document the export toolchain ships next to the artifact. Degraded (available=false) when the file failed to load; the model itself may still be serving.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "available, info"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/model [get]
// @Security     BearerAuth
func (h *Handler) getModelInfo(c *gin.Context) {
	if h.info == nil {
		c.JSON(http.StatusOK, gin.H{"available": false, "model_ready": h.services.Inference.Ready()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available":   true,
		"model_ready": h.services.Inference.Ready(),
		"info":        h.info,
	})
}
