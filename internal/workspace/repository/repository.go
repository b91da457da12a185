// Package repository provides data access layer for workspace module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antonk9218/standup-bot/internal/workspace/model"
)

// Repository defines the interface for workspace data access operations.
type Repository interface {
	// GetByID finds a workspace by primary key.
	GetByID(ctx context.Context, id uint) (*model.Workspace, error)

	// GetByTeamID finds a workspace by Slack team ID.
	GetByTeamID(ctx context.Context, slackTeamID string) (*model.Workspace, error)

	// GetOrCreate returns the workspace for slackTeamID, creating it on first install.
	GetOrCreate(ctx context.Context, ws *model.Workspace) (*model.Workspace, error)

	// ListAll returns every installed workspace.
	ListAll(ctx context.Context) ([]model.Workspace, error)

	// Update persists changed workspace settings.
	Update(ctx context.Context, ws *model.Workspace) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new workspace repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*model.Workspace, error) {
	var ws model.Workspace
	err := r.db.WithContext(ctx).First(&ws, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrWorkspaceNotFound
		}
		r.logger.Errorw("GetByID database error", "workspace_id", id, "error", err)
		return nil, err
	}
	return &ws, nil
}

func (r *repository) GetByTeamID(ctx context.Context, slackTeamID string) (*model.Workspace, error) {
	var ws model.Workspace
	err := r.db.WithContext(ctx).
		Where("slack_team_id = ?", slackTeamID).
		First(&ws).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrWorkspaceNotFound
		}
		r.logger.Errorw("GetByTeamID database error", "slack_team_id", slackTeamID, "error", err)
		return nil, err
	}
	return &ws, nil
}

// GetOrCreate returns the existing workspace for the team or inserts ws.
// A duplicate-key error means another caller installed concurrently; the
// winner's row is refetched.
func (r *repository) GetOrCreate(ctx context.Context, ws *model.Workspace) (*model.Workspace, error) {
	existing, err := r.GetByTeamID(ctx, ws.SlackTeamID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrWorkspaceNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(ws).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.GetByTeamID(ctx, ws.SlackTeamID)
		}
		r.logger.Errorw("GetOrCreate create failed", "slack_team_id", ws.SlackTeamID, "error", err)
		return nil, err
	}

	r.logger.Infow("workspace created", "slack_team_id", ws.SlackTeamID)
	return ws, nil
}

func (r *repository) ListAll(ctx context.Context) ([]model.Workspace, error) {
	var workspaces []model.Workspace
	err := r.db.WithContext(ctx).Order("id").Find(&workspaces).Error
	if err != nil {
		r.logger.Errorw("ListAll database error", "error", err)
		return nil, err
	}
	if workspaces == nil {
		workspaces = []model.Workspace{}
	}
	return workspaces, nil
}

func (r *repository) Update(ctx context.Context, ws *model.Workspace) error {
	result := r.db.WithContext(ctx).Save(ws)
	if result.Error != nil {
		r.logger.Errorw("Update database error", "workspace_id", ws.ID, "error", result.Error)
		return result.Error
	}
	return nil
}
