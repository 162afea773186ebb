package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-book-share/internal/utils"
	"github.com/MKhiriev/go-book-share/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"

	MinUsernameLength = 3
	MinPasswordLength = 6
)

// UserValidator checks registration and login requests.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest reports a missing field before any length rule, so
// a request with an empty email and a short username yields ErrMissingField.
func (v *UserValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(req.Username) {
				return ErrMissingField
			}
		case FieldEmail:
			if isBlank(req.Email) {
				return ErrMissingField
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrMissingField
			}
		default:
			return ErrUnknownField
		}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if utf8.RuneCountInString(strings.TrimSpace(req.Username)) < MinUsernameLength {
				return ErrUsernameTooShort
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(req.Password) > utils.MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		}
	}

	return nil
}

func (v *UserValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(req.Email) {
				return ErrMissingField
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrMissingField
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
