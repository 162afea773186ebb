package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingField     = errors.New("required field is missing")
	ErrUsernameTooShort = errors.New("username is too short")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrRatingOutOfRange = errors.New("rating is out of range")
	ErrInvalidImage     = errors.New("image is neither a data URI nor an http(s) URL")
)
