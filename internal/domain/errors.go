package domain

import "errors"

// Failure taxonomy. Services wrap these with fmt.Errorf("%w: ...") so the
// transport layer can classify with errors.Is while keeping the detail text.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("storage failure")
)
