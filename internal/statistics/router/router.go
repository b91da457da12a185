// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antonk9218/standup-bot/internal/statistics/handler"
	"github.com/antonk9218/standup-bot/internal/statistics/repository"
	"github.com/antonk9218/standup-bot/internal/statistics/service"
)

// RegisterRoutes registers statistics routes on the given group.
func RegisterRoutes(admin *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	admin.GET("/metrics", h.GetMetrics)
}
