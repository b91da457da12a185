// Package service provides business logic layer for workspace module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/workspace/model"
	"github.com/antonk9218/standup-bot/internal/workspace/repository"
	"github.com/antonk9218/standup-bot/pkg/timeutil"
)

// Service defines the interface for workspace business logic operations.
type Service interface {
	// GetOrCreate returns the workspace for a Slack team, creating it on install.
	GetOrCreate(ctx context.Context, slackTeamID, reportChannelID string) (*model.Workspace, error)

	// Get returns a workspace by ID.
	Get(ctx context.Context, id uint) (*model.Workspace, error)

	// List returns all installed workspaces.
	List(ctx context.Context) ([]model.Workspace, error)

	// UpdateSettings applies a partial settings update to a workspace.
	UpdateSettings(ctx context.Context, id uint, req *model.UpdateSettingsRequest) (*model.Workspace, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new workspace service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetOrCreate(ctx context.Context, slackTeamID, reportChannelID string) (*model.Workspace, error) {
	s.logger.Debugw("GetOrCreate called", "slack_team_id", slackTeamID)

	ws := &model.Workspace{
		SlackTeamID:     slackTeamID,
		ReportChannelID: reportChannelID,
		DefaultTime:     "09:00",
		Timezone:        "America/New_York",
	}

	return s.repo.GetOrCreate(ctx, ws)
}

func (s *service) Get(ctx context.Context, id uint) (*model.Workspace, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]model.Workspace, error) {
	return s.repo.ListAll(ctx)
}

// UpdateSettings validates and applies a partial settings update.
func (s *service) UpdateSettings(ctx context.Context, id uint, req *model.UpdateSettingsRequest) (*model.Workspace, error) {
	s.logger.Debugw("UpdateSettings called", "workspace_id", id)

	ws, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DefaultTime != nil {
		if _, _, err := timeutil.ParseClock(*req.DefaultTime); err != nil {
			s.logger.Debugw("UpdateSettings validation failed", "default_time", *req.DefaultTime)
			return nil, model.ErrInvalidDispatchTime
		}
		ws.DefaultTime = *req.DefaultTime
	}

	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			s.logger.Debugw("UpdateSettings validation failed", "timezone", *req.Timezone)
			return nil, model.ErrInvalidTimezone
		}
		ws.Timezone = *req.Timezone
	}

	if req.ReportChannelID != nil {
		ws.ReportChannelID = *req.ReportChannelID
	}

	if err := s.repo.Update(ctx, ws); err != nil {
		s.logger.Errorw("UpdateSettings failed", "workspace_id", id, "error", err)
		return nil, err
	}

	s.logger.Infow("UpdateSettings completed", "workspace_id", id)
	return ws, nil
}
