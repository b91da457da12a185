package model

// UpdateSettingsRequest is the payload for PATCH /admin/settings.
// Nil fields are left unchanged.
type UpdateSettingsRequest struct {
	DefaultTime     *string `json:"default_time"`
	Timezone        *string `json:"timezone"`
	ReportChannelID *string `json:"report_channel_id"`
}

// SettingsResponse is returned after reading or updating workspace settings.
type SettingsResponse struct {
	Workspace Workspace `json:"workspace"`
}
