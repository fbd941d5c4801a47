package errs

import "errors"

// Usecase-level markers layered on top of the queue taxonomy
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrInvalidOutcome   = errors.New("invalid completion outcome")
	ErrPastDay          = errors.New("requested day is in the past")

	// Authorization errors
	ErrAccessDenied = errors.New("access denied")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrSequenceUnavailable     = errors.New("token sequence unavailable")
)
