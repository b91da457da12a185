// Package handler provides HTTP handlers for workspace admin endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/workspace/model"
	"github.com/antonk9218/standup-bot/internal/workspace/service"
)

// Handler handles HTTP requests for workspace endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger

	// onSettingsChanged runs after a successful settings update so the
	// dispatch schedule can pick up a new time or timezone.
	onSettingsChanged func()
}

// New creates a new workspace handler instance.
func New(svc service.Service, logger *zap.SugaredLogger, onSettingsChanged func()) *Handler {
	return &Handler{service: svc, logger: logger, onSettingsChanged: onSettingsChanged}
}

// List handles GET /admin/workspaces request.
func (h *Handler) List(c *gin.Context) {
	workspaces, err := h.service.List(c.Request.Context())
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workspaces": workspaces})
}

// UpdateSettings handles PATCH /admin/workspaces/:id/settings request.
func (h *Handler) UpdateSettings(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid workspace id", http.StatusBadRequest)
		return
	}

	var req model.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	ws, err := h.service.UpdateSettings(c.Request.Context(), uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrWorkspaceNotFound):
			errorResponse(c, "NOT_FOUND", "workspace not found", http.StatusNotFound)
		case errors.Is(err, model.ErrInvalidDispatchTime), errors.Is(err, model.ErrInvalidTimezone):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	if h.onSettingsChanged != nil {
		h.onSettingsChanged()
	}

	c.JSON(http.StatusOK, model.SettingsResponse{Workspace: *ws})
}

func errorResponse(c *gin.Context, code, message string, status int) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
