package model

// CreateUserRequest is the payload for POST /admin/users.
type CreateUserRequest struct {
	WorkspaceID uint    `json:"workspace_id" binding:"required"`
	SlackUserID string  `json:"slack_user_id" binding:"required"`
	DisplayName string  `json:"display_name" binding:"required"`
	Email       *string `json:"email"`
	Timezone    *string `json:"timezone"`
}

// UpdateUserRequest is the payload for PATCH /admin/users/:id.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
	Timezone    *string `json:"timezone"`
	Active      *bool   `json:"active"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User User `json:"user"`
}

// ListUsersResponse wraps a user listing.
type ListUsersResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}
