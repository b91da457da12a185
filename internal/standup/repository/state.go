package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antonk9218/standup-bot/internal/standup/model"
)

// StateRepository defines in-progress standup state persistence.
type StateRepository interface {
	// GetByUser returns the live state for a user, or ErrStateNotFound.
	GetByUser(ctx context.Context, userID uint) (*model.StandupState, error)

	// Create inserts a fresh state at question index 0. Fails with
	// ErrStateAlreadyExists if the user already has a live state.
	Create(ctx context.Context, userID uint, pendingDate time.Time) (*model.StandupState, error)

	// Replace atomically swaps a user's state for a fresh one at index 0
	// with a new pending date. Used when a stale flow is superseded.
	Replace(ctx context.Context, userID uint, pendingDate time.Time) (*model.StandupState, error)

	// Advance increments the question index and returns the updated state.
	Advance(ctx context.Context, state *model.StandupState) (*model.StandupState, error)

	// Delete removes a user's state. Deleting an absent state is a no-op.
	Delete(ctx context.Context, userID uint) error
}

type stateRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewStateRepository creates a state repository instance.
func NewStateRepository(db *gorm.DB, logger *zap.SugaredLogger) StateRepository {
	return &stateRepository{db: db, logger: logger}
}

func (r *stateRepository) GetByUser(ctx context.Context, userID uint) (*model.StandupState, error) {
	var state model.StandupState
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrStateNotFound
		}
		r.logger.Errorw("GetByUser database error", "user_id", userID, "error", err)
		return nil, err
	}
	return &state, nil
}

func (r *stateRepository) Create(ctx context.Context, userID uint, pendingDate time.Time) (*model.StandupState, error) {
	state := &model.StandupState{
		UserID:               userID,
		PendingReportDate:    pendingDate,
		CurrentQuestionIndex: 0,
	}

	if err := r.db.WithContext(ctx).Create(state).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrStateAlreadyExists
		}
		r.logger.Errorw("Create database error", "user_id", userID, "error", err)
		return nil, err
	}

	r.logger.Infow("state created", "user_id", userID, "pending_report_date", pendingDate)
	return state, nil
}

func (r *stateRepository) Replace(ctx context.Context, userID uint, pendingDate time.Time) (*model.StandupState, error) {
	state := &model.StandupState{
		UserID:               userID,
		PendingReportDate:    pendingDate,
		CurrentQuestionIndex: 0,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.StandupState{}).Error; err != nil {
			return err
		}
		return tx.Create(state).Error
	})
	if err != nil {
		r.logger.Errorw("Replace database error", "user_id", userID, "error", err)
		return nil, err
	}

	r.logger.Infow("state replaced", "user_id", userID, "pending_report_date", pendingDate)
	return state, nil
}

func (r *stateRepository) Advance(ctx context.Context, state *model.StandupState) (*model.StandupState, error) {
	state.CurrentQuestionIndex++
	if err := r.db.WithContext(ctx).Save(state).Error; err != nil {
		r.logger.Errorw("Advance database error", "user_id", state.UserID, "error", err)
		return nil, err
	}
	return state, nil
}

func (r *stateRepository) Delete(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.StandupState{})
	if result.Error != nil {
		r.logger.Errorw("Delete database error", "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected > 0 {
		r.logger.Infow("state deleted", "user_id", userID)
	}
	return nil
}
