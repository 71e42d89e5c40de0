package handlers

import (
	"errors"
	"io"
	"net/http"

	"edgenudge/internal/classifier"
	"edgenudge/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errPredictFailed   = "prediction failed"
	errModelNotReady   = "model not loaded"
	errNoSnapshotYet   = "no prediction has run yet"
	errInvalidBodyPref = "invalid body: "

	sourceManual = "manual"
	sourcePreset = "preset:"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// predictError maps pipeline errors onto status codes: model missing
// is 503, an engine failure is 502.
func (h *Handler) predictError(c *gin.Context, err error) {
	var infErr *classifier.InferenceError
	switch {
	case errors.Is(err, classifier.ErrModelNotLoaded):
		h.logAndJSONError(c, http.StatusServiceUnavailable, errModelNotReady, "predict_model_not_loaded", err)
	case errors.As(err, &infErr):
		h.logAndJSONError(c, http.StatusBadGateway, errPredictFailed, "predict_inference_failed", err)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errPredictFailed, "predict_failed", err)
	}
}

// predictRequest carries an optional explicit reading; when absent the
// current sensor state is used.
type predictRequest struct {
	Reading *models.SensorReading `json:"reading,omitempty"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, model_ready"
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      statusOK,
		"model_ready": h.services.Inference.Ready(),
	})
}

// @Summary      Run one occupancy prediction
// @Description  Predicts from the request reading, or the current sensor state when no body is sent. Empty rooms include a savings estimate and campus projection.
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        body  body   predictRequest  false  "Optional explicit reading"
// @Success      200   {object}  models.Snapshot
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/v1/predict [post]
// @Security     BearerAuth
func (h *Handler) predict(c *gin.Context) {
	ctx := c.Request.Context()

	// io.EOF means no body was sent; chunked requests report an
	// unknown ContentLength, so the length is not checked.
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	var (
		snap models.Snapshot
		err  error
	)
	if req.Reading != nil {
		snap, err = h.services.Pipeline.Run(ctx, *req.Reading, sourceManual)
	} else {
		snap, err = h.services.Pipeline.RunCurrent(ctx, sourceManual)
	}
	if err != nil {
		h.predictError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Latest pipeline snapshot
// @Tags         predict
// @Produce      json
// @Success      200  {object}  models.Snapshot
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/snapshot [get]
// @Security     BearerAuth
func (h *Handler) getSnapshot(c *gin.Context) {
	snap, ok := h.services.Pipeline.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": errNoSnapshotYet})
		return
	}
	c.JSON(http.StatusOK, snap)
}
