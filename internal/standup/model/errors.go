package model

import "errors"

var (
	// ErrNoActiveStandup indicates a reply arrived with no live state for the user.
	ErrNoActiveStandup = errors.New("no standup in progress")
	// ErrStateAlreadyExists indicates an attempt to create a second live state for a user.
	ErrStateAlreadyExists = errors.New("standup state already exists")
	// ErrStateNotFound indicates no live state exists for the user.
	ErrStateNotFound = errors.New("standup state not found")
	// ErrReportNotFound indicates the requested report does not exist.
	ErrReportNotFound = errors.New("standup report not found")
	// ErrAlreadyCompleted guards against completing a report twice.
	ErrAlreadyCompleted = errors.New("standup report already completed")
	// ErrAlreadySkipped marks a duplicate skip; callers treat it as a no-op.
	ErrAlreadySkipped = errors.New("standup report already skipped")
	// ErrNotifierFailure wraps transport-layer send failures.
	ErrNotifierFailure = errors.New("notifier send failed")
)
