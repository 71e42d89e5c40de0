package handlers

import (
	"net/http"

	"edgenudge/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Current sensor reading
// @Tags         sensors
// @Produce      json
// @Success      200  {object}  models.SensorReading
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/sensors [get]
// @Security     BearerAuth
func (h *Handler) getSensors(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Sensors.Get())
}

// @Summary      Set the sensor reading
// @Description  Replaces the current reading. Values are not clamped; out-of-range inputs pass through.
// @Tags         sensors
// @Accept       json
// @Produce      json
// @Param        body  body   models.SensorReading  true  "New reading"
// @Success      200   {object}  models.SensorReading
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/sensors [put]
// @Security     BearerAuth
func (h *Handler) putSensors(c *gin.Context) {
	var reading models.SensorReading
	if err := c.ShouldBindJSON(&reading); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	h.services.Sensors.Set(reading)
	c.JSON(http.StatusOK, reading)
}

// @Summary      List demo presets
// @Tags         presets
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, presets"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/presets [get]
// @Security     BearerAuth
func (h *Handler) listPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count":   len(models.Presets),
		"presets": models.Presets,
	})
}

// @Summary      Apply a preset and predict
// @Description  Writes the named preset's reading into the sensor state and runs the full pipeline.
// @Tags         presets
// @Produce      json
// @Param        name  path  string  true  "Preset name"  Enums(empty,morning,evening,weekend)
// @Success      200  {object}  models.Snapshot
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/presets/{name} [post]
// @Security     BearerAuth
func (h *Handler) applyPreset(c *gin.Context) {
	name := c.Param("name")
	p := models.PresetByName(name)
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown preset: " + name})
		return
	}

	snap, err := h.services.Pipeline.Run(c.Request.Context(), p.Reading, sourcePreset+p.Name)
	if err != nil {
		h.predictError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
