package model

import (
	"time"

	"gorm.io/gorm"
)

// Workspace represents a Slack workspace (tenant boundary).
// Matches the workspaces table schema.
type Workspace struct {
	ID              uint      `gorm:"primaryKey"                                                     json:"id"`
	SlackTeamID     string    `gorm:"column:slack_team_id;type:varchar(255);not null;uniqueIndex"    json:"slack_team_id"`
	ReportChannelID string    `gorm:"column:report_channel_id;type:varchar(255);not null"            json:"report_channel_id"`
	DefaultTime     string    `gorm:"column:default_time;type:varchar(10);not null;default:09:00"    json:"default_time"`
	Timezone        string    `gorm:"column:timezone;type:varchar(50);not null;default:America/New_York" json:"timezone"`
	BotToken        string    `gorm:"column:bot_token;type:varchar(255);not null;default:''"         json:"-"`
	BotUserID       string    `gorm:"column:bot_user_id;type:varchar(255);not null;default:''"       json:"bot_user_id"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"      json:"-"`
	UpdatedAt       time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"      json:"-"`
}

// TableName specifies the table name for GORM.
func (Workspace) TableName() string {
	return "workspaces"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (w *Workspace) BeforeUpdate(tx *gorm.DB) error {
	w.UpdatedAt = time.Now()
	return nil
}
