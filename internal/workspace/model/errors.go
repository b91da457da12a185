package model

import "errors"

var (
	// ErrWorkspaceNotFound indicates that the requested workspace does not exist.
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrInvalidDispatchTime indicates that default_time is not a valid HH:MM string.
	ErrInvalidDispatchTime = errors.New("invalid dispatch time")
	// ErrInvalidTimezone indicates that the provided timezone name is unknown.
	ErrInvalidTimezone = errors.New("invalid timezone")
)
