// Package service provides business logic layer for user module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/user/model"
	"github.com/antonk9218/standup-bot/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// Subscribe creates a user, or re-activates an existing inactive one.
	Subscribe(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)

	// Get returns a user by ID.
	Get(ctx context.Context, id uint) (*model.User, error)

	// List returns all users.
	List(ctx context.Context) ([]model.User, error)

	// Update applies a partial update to a user.
	Update(ctx context.Context, id uint, req *model.UpdateUserRequest) (*model.User, error)

	// Unsubscribe clears the active flag (soft delete).
	Unsubscribe(ctx context.Context, id uint) (*model.User, error)

	// Delete hard-deletes a user. Admin-only; reports cascade away with it.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// Subscribe creates a user. A previously unsubscribed user is re-activated
// rather than duplicated; an already-active user is a conflict.
func (s *service) Subscribe(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	s.logger.Debugw("Subscribe called", "slack_user_id", req.SlackUserID)

	if req.SlackUserID == "" {
		return nil, model.ErrInvalidSlackUserID
	}

	existing, err := s.repo.GetBySlackID(ctx, req.SlackUserID)
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.Active {
			s.logger.Warnw("Subscribe: user already active", "slack_user_id", req.SlackUserID)
			return nil, model.ErrUserAlreadyExists
		}
		s.logger.Infow("Subscribe: re-activating user", "slack_user_id", req.SlackUserID)
		return s.repo.SetActive(ctx, existing.ID, true)
	}

	user := &model.User{
		WorkspaceID: req.WorkspaceID,
		SlackUserID: req.SlackUserID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Timezone:    req.Timezone,
		Active:      true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Errorw("Subscribe failed", "slack_user_id", req.SlackUserID, "error", err)
		return nil, err
	}

	s.logger.Infow("Subscribe completed", "slack_user_id", req.SlackUserID, "user_id", user.ID)
	return user, nil
}

func (s *service) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]model.User, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Update(ctx context.Context, id uint, req *model.UpdateUserRequest) (*model.User, error) {
	s.logger.Debugw("Update called", "user_id", id)

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Timezone != nil {
		user.Timezone = req.Timezone
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Errorw("Update failed", "user_id", id, "error", err)
		return nil, err
	}

	s.logger.Infow("Update completed", "user_id", id)
	return user, nil
}

func (s *service) Unsubscribe(ctx context.Context, id uint) (*model.User, error) {
	s.logger.Infow("Unsubscribe called", "user_id", id)
	return s.repo.SetActive(ctx, id, false)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Infow("Delete called", "user_id", id)
	return s.repo.Delete(ctx, id)
}
