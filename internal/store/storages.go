package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-share/internal/config"
	"github.com/MKhiriev/go-book-share/internal/logger"
)

// Storages groups the server-side repositories and the image storage.
type Storages struct {
	UserRepository UserRepository
	BookRepository BookRepository
	ImageStorage   ImageStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds every
// repository. No request may be served before it returns successfully.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	images, err := NewImageStorage(ctx, cfg.Images, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("image storage error: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		BookRepository: NewBookRepository(db, logger),
		ImageStorage:   images,
		db:             db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
