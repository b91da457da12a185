// Package router provides Slack webhook routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/standup/handler"
	"github.com/antonk9218/standup-bot/internal/standup/repository"
	"github.com/antonk9218/standup-bot/internal/standup/service"
)

// RegisterRoutes registers the Slack webhook routes on the engine.
func RegisterRoutes(r *gin.Engine, svc service.Service, n service.Notifier, signingSecret string, logger *zap.SugaredLogger) {
	h := handler.New(svc, n, signingSecret, logger)

	slack := r.Group("/slack")
	slack.POST("/events", h.Events)
	slack.POST("/interactions", h.Interactions)
}

// RegisterAdminRoutes registers report admin routes on the given group.
func RegisterAdminRoutes(admin *gin.RouterGroup, reports repository.ReportRepository, logger *zap.SugaredLogger) {
	h := handler.NewAdmin(reports, logger)

	admin.GET("/reports", h.ListReports)
}
