package service

import (
	"errors"

	"github.com/MKhiriev/go-book-share/internal/app"
)

// Error classes. Every error returned by a server-side service either wraps
// one of them or is treated as internal by the transport layer.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
)

// domainError is a specific failure with a message safe to show to clients.
// It unwraps to its class.
type domainError struct {
	class   error
	message string
}

func (e *domainError) Error() string {
	return e.message
}

func (e *domainError) Unwrap() error {
	return e.class
}

func newDomainError(class error, message string) error {
	return &domainError{class: class, message: message}
}

// PublicMessage returns the client-facing message carried by err, or an empty
// string when err holds no domain error.
func PublicMessage(err error) string {
	var de *domainError
	if errors.As(err, &de) {
		return de.message
	}
	return ""
}

var (
	ErrMissingFields       = newDomainError(ErrValidation, app.MsgAllFieldsRequired)
	ErrUsernameTooShort    = newDomainError(ErrValidation, app.MsgUsernameTooShort)
	ErrPasswordTooShort    = newDomainError(ErrValidation, app.MsgPasswordTooShort)
	ErrPasswordTooLong     = newDomainError(ErrValidation, app.MsgPasswordTooLong)
	ErrRatingOutOfRange    = newDomainError(ErrValidation, app.MsgRatingOutOfRange)
	ErrInvalidImage        = newDomainError(ErrValidation, app.MsgInvalidImage)
	ErrImageUploadDisabled = newDomainError(ErrValidation, app.MsgImageUploadDisabled)

	ErrEmailAlreadyExists    = newDomainError(ErrConflict, app.MsgEmailAlreadyExists)
	ErrUsernameAlreadyExists = newDomainError(ErrConflict, app.MsgUsernameAlreadyExists)

	ErrInvalidCredentials = newDomainError(ErrUnauthorized, app.MsgInvalidCredentials)
	ErrInvalidToken       = newDomainError(ErrUnauthorized, app.MsgInvalidAuthToken)

	ErrNotBookOwner = newDomainError(ErrForbidden, app.MsgUnauthorizedDelete)
	ErrBookNotFound = newDomainError(ErrNotFound, app.MsgBookNotFound)
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrNotLoggedIn      = errors.New("not logged in, run `login` first")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)
