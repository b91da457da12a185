package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists indicates a subscribe attempt for an already-active user.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidSlackUserID indicates that the provided Slack user ID is invalid (e.g., empty).
	ErrInvalidSlackUserID = errors.New("invalid slack user ID")
)
