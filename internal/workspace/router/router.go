// Package router provides workspace module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antonk9218/standup-bot/internal/workspace/handler"
	"github.com/antonk9218/standup-bot/internal/workspace/repository"
	"github.com/antonk9218/standup-bot/internal/workspace/service"
)

// RegisterRoutes registers workspace admin routes on the given group.
// onSettingsChanged is invoked after a successful settings update.
func RegisterRoutes(admin *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger, onSettingsChanged func()) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger, onSettingsChanged)

	admin.GET("/workspaces", h.List)
	admin.PATCH("/workspaces/:id/settings", h.UpdateSettings)
}
