// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations: goose's first statement fails
	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	for name, fn := range map[string]func(*sql.DB) error{"server": Migrate, "client": MigrateClient} {
		t.Run(name, func(t *testing.T) {
			err := fn(db)
			require.Error(t, err)
			assert.ErrorIs(t, err, errNilDB)
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	server, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"postgres/00001_create_users.sql", "postgres/00002_create_books.sql"}, server)

	client, err := fs.Glob(embedMigrations, "client/*.sql")
	require.NoError(t, err)
	assert.Len(t, client, 1)

	books, err := fs.ReadFile(embedMigrations, "postgres/00002_create_books.sql")
	require.NoError(t, err)
	assert.Contains(t, string(books), "books_rating_check")
	assert.Contains(t, string(books), "ON DELETE CASCADE")

	users, err := fs.ReadFile(embedMigrations, "postgres/00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(users), "users_username_key")
	assert.Contains(t, string(users), "users_email_key")
}
