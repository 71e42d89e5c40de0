package handlers

import (
	"errors"
	"net/http"

	"edgenudge/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusDemoStarted = "demo_started"
	statusDemoStopped = "demo_stopped"
)

// @Summary      Start the auto-demo carousel
// @Description  Fires the "empty" preset immediately, then advances through the fixed preset cycle on a timer.
// @Tags         demo
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, demo"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/demo/start [post]
// @Security     BearerAuth
func (h *Handler) startDemo(c *gin.Context) {
	if err := h.services.Demo.Start(); err != nil {
		if errors.Is(err, service.ErrDemoRunning) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to start demo", "demo_start_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDemoStarted, "demo": h.services.Demo.Status()})
}

// @Summary      Stop the auto-demo carousel
// @Description  Cancels the timer and resets the carousel to idle; a restart begins at "empty" again.
// @Tags         demo
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, demo"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/demo/stop [post]
// @Security     BearerAuth
func (h *Handler) stopDemo(c *gin.Context) {
	h.services.Demo.Stop()
	c.JSON(http.StatusOK, gin.H{"status": statusDemoStopped, "demo": h.services.Demo.Status()})
}

// @Summary      Auto-demo status
// @Tags         demo
// @Produce      json
// @Success      200  {object}  service.DemoStatus
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/demo/status [get]
// @Security     BearerAuth
func (h *Handler) demoStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Demo.Status())
}
