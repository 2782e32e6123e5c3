package scheduler

import "errors"

// Domain-specific errors for the scheduler package.
var (
	ErrMissingDate    = errors.New("focus date is required")
	ErrInvalidSlot    = errors.New("slot id is not in the catalog")
	ErrEmptySelection = errors.New("selection is empty")
	ErrCommitFailed   = errors.New("one or more assignment updates failed")
)
