package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrLeadNotFound indicates the target lead is missing from the
	// freshly fetched collection. Fatal to that operation only.
	ErrLeadNotFound = errors.New("lead not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidStatus indicates an unknown lead status value.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidOutcome indicates an unknown call outcome value.
	ErrInvalidOutcome = errors.New("invalid outcome")

	// ErrNotAuthenticated indicates the session passed to the service
	// does not allow access to the lead collection.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnsupportedFormat indicates no importer is registered for the
	// given file format.
	ErrUnsupportedFormat = errors.New("unsupported import format")

	// ErrStoreUnavailable indicates the remote store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)
