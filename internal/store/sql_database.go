package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/migrations"
)

type dialect string

const (
	dialectPostgres dialect = "postgres"
	dialectSQLite   dialect = "sqlite3"
)

// DB wraps *sql.DB with the logger and the dialect used to pick migrations.
type DB struct {
	*sql.DB
	logger  *logger.Logger
	dialect dialect
}

// Migrate applies the embedded migrations that match the database dialect.
func (db *DB) Migrate() error {
	switch db.dialect {
	case dialectPostgres:
		return migrations.Migrate(db.DB)
	case dialectSQLite:
		return migrations.MigrateClient(db.DB)
	default:
		return fmt.Errorf("no migrations for dialect %q", db.dialect)
	}
}
