// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antonk9218/standup-bot/internal/user/handler"
	"github.com/antonk9218/standup-bot/internal/user/repository"
	"github.com/antonk9218/standup-bot/internal/user/service"
)

// RegisterRoutes registers user admin routes on the given group.
func RegisterRoutes(admin *gin.RouterGroup, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	admin.POST("/users", h.Create)
	admin.GET("/users", h.List)
	admin.GET("/users/:id", h.Get)
	admin.PATCH("/users/:id", h.Update)
	admin.POST("/users/:id/unsubscribe", h.Unsubscribe)
	admin.DELETE("/users/:id", h.Delete)
}
