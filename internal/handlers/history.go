package handlers

import (
	"net/http"
	"strings"
	"time"

	"edgenudge/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string has no time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// parseQueryTime accepts RFC3339, "YYYY-MM-DD HH:MM:SS", or "YYYY-MM-DD".
func parseQueryTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(layoutDateTime, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// @Summary      List prediction history
// @Description  Filter the persisted prediction log by date range and label. If 'to' is date-only it is treated as end-of-day inclusive.
// @Tags         history
// @Produce      json
// @Param        from   query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-01)
// @Param        to     query   string  false  "End of range; date-only treated as end of day"  example(2025-08-31)
// @Param        label  query   string  false  "Predicted label"  Enums(EMPTY,OCCUPIED)
// @Success      200   {object}  map[string]interface{}  "count, predictions"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/predictions [get]
// @Security     BearerAuth
func (h *Handler) getPredictions(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		from time.Time
		to   time.Time
		err  error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return
	}

	records, err := h.services.History.List(ctx, service.HistoryFilter{
		From:  from,
		To:    to,
		Label: c.Query("label"),
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load predictions", "history_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(records),
		"predictions": records,
	})
}
