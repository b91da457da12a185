package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/standup/model"
	"github.com/antonk9218/standup-bot/internal/standup/repository"
	"github.com/antonk9218/standup-bot/pkg/timeutil"
)

// AdminHandler handles HTTP requests for report admin endpoints.
type AdminHandler struct {
	reports repository.ReportRepository
	logger  *zap.SugaredLogger
}

// NewAdmin creates a new report admin handler instance.
func NewAdmin(reports repository.ReportRepository, logger *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{reports: reports, logger: logger}
}

// ListReports handles GET /admin/reports request. The optional date query
// parameter (YYYY-MM-DD) defaults to today; completed=true narrows the
// listing to completed reports.
func (h *AdminHandler) ListReports(c *gin.Context) {
	date := timeutil.DateOf(time.Now().UTC())
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{"code": "INVALID_REQUEST", "message": "invalid date, expected YYYY-MM-DD"},
			})
			return
		}
		date = parsed
	}

	var (
		reports []model.StandupReport
		err     error
	)
	if c.Query("completed") == "true" {
		reports, err = h.reports.ListCompletedForDate(c.Request.Context(), date)
	} else {
		reports, err = h.reports.ListForDate(c.Request.Context(), date)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    date.Format("2006-01-02"),
		"reports": reports,
		"total":   len(reports),
	})
}
