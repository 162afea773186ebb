// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-book-share/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the single logged-in session of the client.
type LocalSessionRepository interface {
	// SaveSession replaces the stored session.
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns the stored session or [ErrLocalSessionNotFound].
	GetSession(ctx context.Context) (models.Session, error)
	// DeleteSession removes the stored session. Deleting a missing session
	// is not an error.
	DeleteSession(ctx context.Context) error
}
