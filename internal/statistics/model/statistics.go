// Package model defines statistics domain models.
package model

import (
	"errors"
	"time"
)

// ErrInvalidDateRange indicates a malformed or inverted from/to range.
var ErrInvalidDateRange = errors.New("invalid date range")

// DailyMetrics holds report counts for one date.
type DailyMetrics struct {
	Date       time.Time `gorm:"column:report_date" json:"date"`
	Completed  int64     `gorm:"column:completed"   json:"completed"`
	Skipped    int64     `gorm:"column:skipped"     json:"skipped"`
	InProgress int64     `gorm:"column:in_progress" json:"in_progress"`
}

// Summary aggregates completion metrics over a date range. All counts are
// derived from standup_reports at query time; nothing is maintained
// separately.
type Summary struct {
	From           time.Time      `json:"from"`
	To             time.Time      `json:"to"`
	ActiveUsers    int64          `json:"active_users"`
	Completed      int64          `json:"completed"`
	Skipped        int64          `json:"skipped"`
	InProgress     int64          `json:"in_progress"`
	CompletionRate float64        `json:"completion_rate"`
	Days           []DailyMetrics `json:"days"`
}
