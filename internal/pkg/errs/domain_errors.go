package errs

import "errors"

// Domain-specific sentinel errors for the trip flow usecase layers
var (
	// Trip / resolution errors
	ErrTripNotFound        = errors.New("trip not found")
	ErrUpstreamUnavailable = errors.New("marketplace unavailable")
	ErrUpstreamAuth        = errors.New("marketplace authentication failed")

	// Session errors
	ErrSessionNotFound = errors.New("trip session not found")

	// Workflow errors
	ErrInvalidStep   = errors.New("invalid workflow step")
	ErrOfferNotFound = errors.New("offer not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
