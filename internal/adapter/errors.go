package adapter

import "errors"

// Transport errors keyed by HTTP status. The server's message is appended
// after a ": " separator.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyBaseURL = errors.New("empty server address")
)
