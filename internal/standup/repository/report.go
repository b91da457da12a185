// Package repository provides data access layer for standup reports and
// in-progress state. The unique indexes on (user_id, report_date) and on
// standup_states.user_id are the correctness backstop against concurrent
// writers; both stores resolve duplicate-key errors rather than racing on
// application-level checks alone.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/antonk9218/standup-bot/internal/standup/model"
)

// ReportRepository defines report persistence operations.
type ReportRepository interface {
	// GetOrCreate returns the report for (userID, date), creating an empty
	// in-progress row if none exists. Concurrent calls for the same pair
	// converge on a single row.
	GetOrCreate(ctx context.Context, userID uint, date time.Time) (*model.StandupReport, error)

	// GetByUserDate returns the report for (userID, date) or ErrReportNotFound.
	GetByUserDate(ctx context.Context, userID uint, date time.Time) (*model.StandupReport, error)

	// LatestTerminalForUser returns the user's most recent completed or
	// skipped report by date, or ErrReportNotFound. In-progress partial
	// reports do not count as "last" for gap detection.
	LatestTerminalForUser(ctx context.Context, userID uint) (*model.StandupReport, error)

	// SetAnswer writes one answer slot on a report.
	SetAnswer(ctx context.Context, reportID uint, slot model.AnswerSlot, text string) error

	// MarkCompleted sets completed_at. Fails with ErrAlreadyCompleted if set,
	// ErrAlreadySkipped if the report was skipped.
	MarkCompleted(ctx context.Context, reportID uint) (*model.StandupReport, error)

	// MarkSkipped sets skipped=true. Returns ErrAlreadySkipped on a duplicate
	// skip and ErrAlreadyCompleted if the report was already completed.
	MarkSkipped(ctx context.Context, reportID uint) (*model.StandupReport, error)

	// ListForDate returns all reports for a date, oldest first.
	ListForDate(ctx context.Context, date time.Time) ([]model.StandupReport, error)

	// ListCompletedForDate returns completed, non-skipped reports for a date.
	ListCompletedForDate(ctx context.Context, date time.Time) ([]model.StandupReport, error)
}

type reportRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewReportRepository creates a report repository instance.
func NewReportRepository(db *gorm.DB, logger *zap.SugaredLogger) ReportRepository {
	return &reportRepository{db: db, logger: logger}
}

func (r *reportRepository) GetOrCreate(ctx context.Context, userID uint, date time.Time) (*model.StandupReport, error) {
	report, err := r.GetByUserDate(ctx, userID, date)
	if err == nil {
		return report, nil
	}
	if !errors.Is(err, model.ErrReportNotFound) {
		return nil, err
	}

	report = &model.StandupReport{UserID: userID, ReportDate: date}
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		// Lost the insert race; the winner's row is the report.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.GetByUserDate(ctx, userID, date)
		}
		r.logger.Errorw("GetOrCreate create failed", "user_id", userID, "report_date", date, "error", err)
		return nil, err
	}

	r.logger.Infow("report created", "user_id", userID, "report_date", date, "report_id", report.ID)
	return report, nil
}

func (r *reportRepository) GetByUserDate(ctx context.Context, userID uint, date time.Time) (*model.StandupReport, error) {
	var report model.StandupReport
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND report_date = ?", userID, date).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrReportNotFound
		}
		r.logger.Errorw("GetByUserDate database error", "user_id", userID, "report_date", date, "error", err)
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) LatestTerminalForUser(ctx context.Context, userID uint) (*model.StandupReport, error) {
	var report model.StandupReport
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND (completed_at IS NOT NULL OR skipped = ?)", userID, true).
		Order("report_date DESC").
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrReportNotFound
		}
		r.logger.Errorw("LatestTerminalForUser database error", "user_id", userID, "error", err)
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) SetAnswer(ctx context.Context, reportID uint, slot model.AnswerSlot, text string) error {
	column, ok := slotColumn(slot)
	if !ok {
		return fmt.Errorf("unknown answer slot: %s", slot)
	}

	result := r.db.WithContext(ctx).
		Model(&model.StandupReport{}).
		Where("id = ?", reportID).
		Update(column, text)
	if result.Error != nil {
		r.logger.Errorw("SetAnswer database error", "report_id", reportID, "slot", slot, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrReportNotFound
	}
	return nil
}

func (r *reportRepository) MarkCompleted(ctx context.Context, reportID uint) (*model.StandupReport, error) {
	var report model.StandupReport
	if err := r.db.WithContext(ctx).First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrReportNotFound
		}
		return nil, err
	}

	if report.CompletedAt != nil {
		return nil, model.ErrAlreadyCompleted
	}
	if report.Skipped {
		return nil, model.ErrAlreadySkipped
	}

	now := time.Now().UTC()
	report.CompletedAt = &now
	if err := r.db.WithContext(ctx).Save(&report).Error; err != nil {
		r.logger.Errorw("MarkCompleted database error", "report_id", reportID, "error", err)
		return nil, err
	}

	r.logger.Infow("report completed", "report_id", reportID, "user_id", report.UserID)
	return &report, nil
}

func (r *reportRepository) MarkSkipped(ctx context.Context, reportID uint) (*model.StandupReport, error) {
	var report model.StandupReport
	if err := r.db.WithContext(ctx).First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrReportNotFound
		}
		return nil, err
	}

	if report.Skipped {
		return nil, model.ErrAlreadySkipped
	}
	if report.CompletedAt != nil {
		return nil, model.ErrAlreadyCompleted
	}

	report.Skipped = true
	if err := r.db.WithContext(ctx).Save(&report).Error; err != nil {
		r.logger.Errorw("MarkSkipped database error", "report_id", reportID, "error", err)
		return nil, err
	}

	r.logger.Infow("report skipped", "report_id", reportID, "user_id", report.UserID)
	return &report, nil
}

func (r *reportRepository) ListForDate(ctx context.Context, date time.Time) ([]model.StandupReport, error) {
	var reports []model.StandupReport
	err := r.db.WithContext(ctx).
		Where("report_date = ?", date).
		Order("created_at").
		Find(&reports).Error
	if err != nil {
		r.logger.Errorw("ListForDate database error", "report_date", date, "error", err)
		return nil, err
	}
	if reports == nil {
		reports = []model.StandupReport{}
	}
	return reports, nil
}

func (r *reportRepository) ListCompletedForDate(ctx context.Context, date time.Time) ([]model.StandupReport, error) {
	var reports []model.StandupReport
	err := r.db.WithContext(ctx).
		Where("report_date = ? AND completed_at IS NOT NULL AND skipped = ?", date, false).
		Order("completed_at").
		Find(&reports).Error
	if err != nil {
		r.logger.Errorw("ListCompletedForDate database error", "report_date", date, "error", err)
		return nil, err
	}
	if reports == nil {
		reports = []model.StandupReport{}
	}
	return reports, nil
}

func slotColumn(slot model.AnswerSlot) (string, bool) {
	switch slot {
	case model.SlotFeeling:
		return "feeling", true
	case model.SlotYesterday:
		return "yesterday", true
	case model.SlotToday:
		return "today", true
	case model.SlotBlockers:
		return "blockers", true
	}
	return "", false
}
