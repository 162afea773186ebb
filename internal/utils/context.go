package utils

import (
	"context"

	"github.com/MKhiriev/go-book-share/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user in the context.
// The stored value is a [models.User] with an empty PasswordHash.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the public part of user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user.Public())
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetUserIDFromContext is a shortcut for the identifier of the authenticated
// user. A zero or negative id is reported as not found.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	user, ok := GetUserFromContext(ctx)
	if !ok || user.UserID <= 0 {
		return 0, false
	}
	return user.UserID, true
}
