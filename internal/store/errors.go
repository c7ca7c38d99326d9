package store

import "errors"

// Sentinel errors for repository operations.
var (
	ErrNotFound         = errors.New("record not found")
	ErrNoActiveTask     = errors.New("no active task")
	ErrTaskEnded        = errors.New("task already has an end time")
	ErrInvalidRange     = errors.New("start time must stay before end time")
	ErrEmptyDescription = errors.New("description must not be empty")
)
