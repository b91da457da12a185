package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a workspace member eligible for standups.
// Matches the users table schema.
type User struct {
	ID          uint      `gorm:"primaryKey"                                                  json:"id"`
	WorkspaceID uint      `gorm:"column:workspace_id;not null;index:ix_users_workspace_id"    json:"workspace_id"`
	SlackUserID string    `gorm:"column:slack_user_id;type:varchar(255);not null;uniqueIndex" json:"slack_user_id"`
	DisplayName string    `gorm:"column:display_name;type:varchar(255);not null"              json:"display_name"`
	Email       *string   `gorm:"column:email;type:varchar(255)"                              json:"email"`
	Timezone    *string   `gorm:"column:timezone;type:varchar(50)"                            json:"timezone"`
	Active      bool      `gorm:"column:active;not null;default:true;index:ix_users_active"   json:"active"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"   json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"   json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

// NotificationTimezone returns the user's timezone, or "" when the
// workspace default should apply.
func (u *User) NotificationTimezone() string {
	if u.Timezone == nil {
		return ""
	}
	return *u.Timezone
}
