package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-share/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// SessionRepository keeps the token of the logged-in user.
	SessionRepository LocalSessionRepository

	db *DB
}

// NewClientStorages opens the SQLite file at dsn, applies the client
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, dsn string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewLocalSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the underlying database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
