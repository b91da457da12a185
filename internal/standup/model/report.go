// Package model defines standup domain entities: reports, in-progress
// state, the question sequence and the outbound message variants.
package model

import (
	"time"

	"gorm.io/gorm"
)

// StandupReport holds one user's answers for one calendar date.
// Matches the standup_reports table schema. Reports are permanent records;
// nothing in the application deletes them.
type StandupReport struct {
	ID          uint       `gorm:"primaryKey"                                                                        json:"id"`
	UserID      uint       `gorm:"column:user_id;not null;uniqueIndex:uq_standup_reports_user_date"                  json:"user_id"`
	ReportDate  time.Time  `gorm:"column:report_date;type:date;not null;uniqueIndex:uq_standup_reports_user_date"    json:"report_date"`
	Feeling     *string    `gorm:"column:feeling;type:text"                                                          json:"feeling"`
	Yesterday   *string    `gorm:"column:yesterday;type:text"                                                        json:"yesterday"`
	Today       *string    `gorm:"column:today;type:text"                                                            json:"today"`
	Blockers    *string    `gorm:"column:blockers;type:text"                                                         json:"blockers"`
	Skipped     bool       `gorm:"column:skipped;not null;default:false"                                             json:"skipped"`
	CompletedAt *time.Time `gorm:"column:completed_at;type:timestamptz"                                              json:"completed_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"                         json:"-"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;type:timestamptz;not null;default:now()"                         json:"-"`
}

// TableName specifies the table name for GORM.
func (StandupReport) TableName() string {
	return "standup_reports"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (r *StandupReport) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}

// IsTerminal reports whether the report counts as handled for its date:
// either completed or explicitly skipped.
func (r *StandupReport) IsTerminal() bool {
	return r.Skipped || r.CompletedAt != nil
}

// Answer returns the text recorded in the given slot, or "".
func (r *StandupReport) Answer(slot AnswerSlot) string {
	var v *string
	switch slot {
	case SlotFeeling:
		v = r.Feeling
	case SlotYesterday:
		v = r.Yesterday
	case SlotToday:
		v = r.Today
	case SlotBlockers:
		v = r.Blockers
	}
	if v == nil {
		return ""
	}
	return *v
}
