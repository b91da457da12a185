package model

import (
	"time"

	"gorm.io/gorm"
)

// StandupState tracks a user's in-progress interactive flow. The unique
// user_id index guarantees at most one live state per user; the state
// existing implies the report for PendingReportDate is neither completed
// nor skipped.
type StandupState struct {
	ID                   uint      `gorm:"primaryKey"                                                json:"id"`
	UserID               uint      `gorm:"column:user_id;not null;uniqueIndex"                       json:"user_id"`
	PendingReportDate    time.Time `gorm:"column:pending_report_date;type:date;not null"             json:"pending_report_date"`
	CurrentQuestionIndex int       `gorm:"column:current_question_index;not null;default:0"          json:"current_question_index"`
	CreatedAt            time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt            time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (StandupState) TableName() string {
	return "standup_states"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (s *StandupState) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return nil
}

// IsStaleFor reports whether the state belongs to a day earlier than today:
// the user never finished a prior flow and a new dispatch tick has arrived.
func (s *StandupState) IsStaleFor(today time.Time) bool {
	return s.PendingReportDate.Before(today)
}
