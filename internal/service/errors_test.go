package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-book-share/internal/app"
	"github.com/MKhiriev/go-book-share/internal/validators"
)

func TestDomainError_UnwrapsToClass(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrNotBookOwner)

	assert.ErrorIs(t, wrapped, ErrForbidden)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, app.MsgUnauthorizedDelete, PublicMessage(wrapped))
}

func TestPublicMessage_PlainError(t *testing.T) {
	assert.Empty(t, PublicMessage(errors.New("boom")))
	assert.Empty(t, PublicMessage(nil))
}

func TestMapValidationError(t *testing.T) {
	assert.Equal(t, ErrPasswordTooLong, mapValidationError(validators.ErrPasswordTooLong))
	assert.Equal(t, ErrMissingFields, mapValidationError(fmt.Errorf("x: %w", validators.ErrMissingField)))
	assert.ErrorIs(t, mapValidationError(validators.ErrUnsupportedType), ErrInternal)
}
