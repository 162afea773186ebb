package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-share/internal/validators"
)

var validationErrors = map[error]error{
	validators.ErrMissingField:     ErrMissingFields,
	validators.ErrUsernameTooShort: ErrUsernameTooShort,
	validators.ErrPasswordTooShort: ErrPasswordTooShort,
	validators.ErrPasswordTooLong:  ErrPasswordTooLong,
	validators.ErrRatingOutOfRange: ErrRatingOutOfRange,
	validators.ErrInvalidImage:     ErrInvalidImage,
}

// mapValidationError turns a validator rule violation into the matching
// domain error. Anything else is a programming error and reported as internal.
func mapValidationError(err error) error {
	for target, mapped := range validationErrors {
		if errors.Is(err, target) {
			return mapped
		}
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
