// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/statistics/model"
	"github.com/antonk9218/standup-bot/internal/statistics/service"
	"github.com/antonk9218/standup-bot/pkg/timeutil"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetMetrics handles GET /admin/metrics request. Optional from/to query
// parameters (YYYY-MM-DD) default to today.
func (h *Handler) GetMetrics(c *gin.Context) {
	today := timeutil.DateOf(time.Now().UTC())

	from, ok := dateParam(c, "from", today)
	if !ok {
		return
	}
	to, ok := dateParam(c, "to", today)
	if !ok {
		return
	}

	summary, err := h.service.GetSummary(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, model.ErrInvalidDateRange) {
			errorResponse(c, "INVALID_REQUEST", "from must not be after to", http.StatusBadRequest)
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func dateParam(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}

	date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid "+name+" date, expected YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, false
	}
	return date, true
}

func errorResponse(c *gin.Context, code, message string, status int) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
