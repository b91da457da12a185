// Package service provides business logic for statistics module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/statistics/model"
	"github.com/antonk9218/standup-bot/internal/statistics/repository"
)

// Service defines the interface for statistics business logic.
type Service interface {
	// GetSummary returns completion metrics over [from, to].
	GetSummary(ctx context.Context, from, to time.Time) (*model.Summary, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetSummary returns completion metrics over [from, to].
func (s *service) GetSummary(ctx context.Context, from, to time.Time) (*model.Summary, error) {
	if to.Before(from) {
		return nil, model.ErrInvalidDateRange
	}

	days, err := s.repo.GetDailyMetrics(ctx, from, to)
	if err != nil {
		return nil, err
	}

	activeUsers, err := s.repo.CountActiveUsers(ctx)
	if err != nil {
		return nil, err
	}

	summary := &model.Summary{
		From:        from,
		To:          to,
		ActiveUsers: activeUsers,
		Days:        days,
	}

	for _, day := range days {
		summary.Completed += day.Completed
		summary.Skipped += day.Skipped
		summary.InProgress += day.InProgress
	}

	if total := summary.Completed + summary.Skipped + summary.InProgress; total > 0 {
		summary.CompletionRate = float64(summary.Completed) / float64(total)
	}

	s.logger.Debugw("summary computed",
		"from", from,
		"to", to,
		"completed", summary.Completed,
		"skipped", summary.Skipped,
	)
	return summary, nil
}
