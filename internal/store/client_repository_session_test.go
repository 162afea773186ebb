package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/models"
)

func newTestSessionRepo(t *testing.T) (LocalSessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return NewLocalSessionRepository(&DB{DB: db, logger: l, dialect: dialectSQLite}, l), mock
}

func TestSaveSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	loggedAt := time.Now()

	mock.ExpectExec("INSERT INTO session").
		WithArgs(sessionRowID, "tok", int64(1), "alice", "a@example.com", "", loggedAt.UTC()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSession(context.Background(), models.Session{
		Token:    "tok",
		User:     models.User{UserID: 1, Username: "alice", Email: "a@example.com"},
		LoggedAt: loggedAt,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO session").WillReturnError(errors.New("disk full"))

	err := repo.SaveSession(context.Background(), models.Session{})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestGetSession(t *testing.T) {
	columns := []string{"token", "user_id", "username", "email", "profile_image", "logged_at"}

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		now := time.Now().UTC()
		mock.ExpectQuery("FROM session WHERE id").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("tok", 2, "bob", "b@example.com", "img", now))

		session, err := repo.GetSession(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "tok", session.Token)
		assert.Equal(t, int64(2), session.User.UserID)
		assert.Equal(t, now, session.LoggedAt)
	})

	t.Run("nobody logged in", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectQuery("FROM session").WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetSession(context.Background())

		assert.ErrorIs(t, err, ErrLocalSessionNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectQuery("FROM session").WillReturnError(errors.New("locked"))

		_, err := repo.GetSession(context.Background())

		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestDeleteSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM session WHERE id").
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteSession(context.Background()))
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "book-share.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	assert.FileExists(t, path)

	// second call leaves the existing file alone
	require.NoError(t, createLocalDBFileIfNotExists(path))
	assert.NoError(t, createLocalDBFileIfNotExists(":memory:"))
}

func TestDBMigrate_UnknownDialect(t *testing.T) {
	db := &DB{dialect: "oracle"}

	err := db.Migrate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}
