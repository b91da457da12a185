// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antonk9218/standup-bot/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByID finds a user by primary key.
	GetByID(ctx context.Context, id uint) (*model.User, error)

	// GetBySlackID finds a user by Slack user ID.
	GetBySlackID(ctx context.Context, slackUserID string) (*model.User, error)

	// ListActiveByWorkspace returns all subscribed users in a workspace.
	ListActiveByWorkspace(ctx context.Context, workspaceID uint) ([]model.User, error)

	// ListAll returns every user regardless of active flag.
	ListAll(ctx context.Context) ([]model.User, error)

	// Update persists changed user fields.
	Update(ctx context.Context, user *model.User) error

	// SetActive flips the subscription flag.
	SetActive(ctx context.Context, id uint, active bool) (*model.User, error)

	// Delete removes a user (cascade deletes reports and state).
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.ErrUserAlreadyExists
		}
		r.logger.Errorw("Create database error", "slack_user_id", user.SlackUserID, "error", err)
		return err
	}
	r.logger.Infow("user created", "slack_user_id", user.SlackUserID, "user_id", user.ID)
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", id, "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetBySlackID(ctx context.Context, slackUserID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("slack_user_id = ?", slackUserID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetBySlackID database error", "slack_user_id", slackUserID, "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *repository) ListActiveByWorkspace(ctx context.Context, workspaceID uint) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND active = ?", workspaceID, true).
		Order("id").
		Find(&users).Error
	if err != nil {
		r.logger.Errorw("ListActiveByWorkspace database error", "workspace_id", workspaceID, "error", err)
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (r *repository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	if err != nil {
		r.logger.Errorw("ListAll database error", "error", err)
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (r *repository) Update(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		r.logger.Errorw("Update database error", "user_id", user.ID, "error", err)
		return err
	}
	return nil
}

func (r *repository) SetActive(ctx context.Context, id uint, active bool) (*model.User, error) {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		r.logger.Errorw("SetActive database error", "user_id", id, "error", result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		r.logger.Errorw("Delete database error", "user_id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrUserNotFound
	}
	r.logger.Infow("user deleted", "user_id", id)
	return nil
}
