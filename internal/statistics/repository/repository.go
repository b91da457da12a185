// Package repository provides data access layer for statistics module.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antonk9218/standup-bot/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetDailyMetrics returns per-date report counts over [from, to].
	GetDailyMetrics(ctx context.Context, from, to time.Time) ([]model.DailyMetrics, error)

	// CountActiveUsers returns the number of active users.
	CountActiveUsers(ctx context.Context) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetDailyMetrics returns per-date report counts over [from, to].
func (r *repository) GetDailyMetrics(ctx context.Context, from, to time.Time) ([]model.DailyMetrics, error) {
	r.logger.Debugw("GetDailyMetrics called", "from", from, "to", to)

	var metrics []model.DailyMetrics

	err := r.db.WithContext(ctx).
		Table("standup_reports").
		Select(`
			report_date,
			COALESCE(SUM(CASE WHEN completed_at IS NOT NULL AND NOT skipped THEN 1 ELSE 0 END), 0) as completed,
			COALESCE(SUM(CASE WHEN skipped THEN 1 ELSE 0 END), 0) as skipped,
			COALESCE(SUM(CASE WHEN completed_at IS NULL AND NOT skipped THEN 1 ELSE 0 END), 0) as in_progress
		`).
		Where("report_date BETWEEN ? AND ?", from, to).
		Group("report_date").
		Order("report_date ASC").
		Scan(&metrics).Error

	if err != nil {
		r.logger.Errorw("GetDailyMetrics database error", "error", err)
		return nil, err
	}

	if metrics == nil {
		metrics = []model.DailyMetrics{}
	}

	r.logger.Debugw("GetDailyMetrics completed", "days", len(metrics))
	return metrics, nil
}

// CountActiveUsers returns the number of active users.
func (r *repository) CountActiveUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("active = ?", true).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("CountActiveUsers database error", "error", err)
		return 0, err
	}
	return count, nil
}
