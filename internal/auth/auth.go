// Package auth provides the admin login endpoint. A static admin token
// from the environment is exchanged for a short-lived JWT accepted by the
// AdminAuth middleware.
package auth

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/config"
	"github.com/antonk9218/standup-bot/internal/middleware"
)

// Handler handles admin authentication requests.
type Handler struct {
	cfg    config.AdminConfig
	logger *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(cfg config.AdminConfig, logger *zap.SugaredLogger) *Handler {
	return &Handler{cfg: cfg, logger: logger}
}

type loginRequest struct {
	Token string `json:"token" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Login handles POST /admin/login request.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "INVALID_REQUEST", "message": "token is required"},
		})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Token), []byte(h.cfg.Token)) != 1 {
		h.logger.Warnw("admin login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": gin.H{"code": "UNAUTHORIZED", "message": "invalid admin token"},
		})
		return
	}

	jwt, err := middleware.IssueAdminToken(h.cfg, time.Now())
	if err != nil {
		h.logger.Errorw("admin token issue failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
		})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccessToken: jwt,
		ExpiresIn:   int64(h.cfg.TokenTTL.Seconds()),
	})
}

// RegisterRoutes registers the login route on the engine.
func RegisterRoutes(r *gin.Engine, cfg config.AdminConfig, logger *zap.SugaredLogger) {
	h := New(cfg, logger)
	r.POST("/admin/login", h.Login)
}
