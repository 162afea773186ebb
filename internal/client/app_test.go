package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/mock"
	"github.com/MKhiriev/go-book-share/internal/service"
	"github.com/MKhiriev/go-book-share/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testMocks struct {
	auth    *mock.MockClientAuthService
	books   *mock.MockClientBookService
	adapter *mock.MockServerAdapter
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := testMocks{
		auth:    mock.NewMockClientAuthService(ctrl),
		books:   mock.NewMockClientBookService(ctrl),
		adapter: mock.NewMockServerAdapter(ctrl),
	}

	var out bytes.Buffer
	app := NewApp(&service.ClientServices{
		AuthService: mocks.auth,
		BookService: mocks.books,
		Adapter:     mocks.adapter,
	}, models.NewAppBuildInfo("1.0.0", "2026-03-01", "abc123"), &out, logger.Nop())

	return app, &out, mocks
}

var aliceSession = models.Session{
	Token:    "tok",
	User:     models.User{UserID: 7, Username: "alice", Email: "alice@example.com"},
	LoggedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
}

// ─────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"help"}, {"--help"}} {
		app, out, _ := newTestApp(t)

		require.NoError(t, app.Run(context.Background(), args))
		assert.Contains(t, out.String(), "books list|mine|add|delete")
		assert.Contains(t, out.String(), "register -u <username>")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"borrow"})

	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRun_BadFlagPrintsUsage(t *testing.T) {
	app, out, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"login", "-x"})

	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, out.String(), "usage: book-share-client login -e <email> -p <password>")
}

func TestRun_StrayArgument(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"logout", "now"})

	assert.ErrorIs(t, err, ErrUsage)
}

// ─────────────────────────────────────────────
// Auth commands
// ─────────────────────────────────────────────

func TestRegisterCommand(t *testing.T) {
	app, out, mocks := newTestApp(t)
	mocks.auth.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
	}).Return(aliceSession, nil)

	err := app.Run(context.Background(), []string{"register", "-u", "alice", "-e", "alice@example.com", "-p", "secret1"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Registered and logged in as")
	assert.Contains(t, out.String(), "alice")
}

func TestLoginCommand_ServerError(t *testing.T) {
	app, _, mocks := newTestApp(t)
	mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{}, service.ErrInvalidCredentials)

	err := app.Run(context.Background(), []string{"login", "-e", "alice@example.com", "-p", "wrong!!"})

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogoutCommand(t *testing.T) {
	app, out, mocks := newTestApp(t)
	mocks.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"logout"}))
	assert.Contains(t, out.String(), "Logged out")
}

func TestWhoamiCommand(t *testing.T) {
	t.Run("prints session", func(t *testing.T) {
		app, out, mocks := newTestApp(t)
		mocks.auth.EXPECT().CurrentSession(gomock.Any()).Return(aliceSession, nil)

		require.NoError(t, app.Run(context.Background(), []string{"whoami"}))
		assert.Contains(t, out.String(), "alice@example.com")
		assert.Contains(t, out.String(), "user id: 7")
	})

	t.Run("copies token", func(t *testing.T) {
		app, out, mocks := newTestApp(t)
		mocks.auth.EXPECT().CurrentSession(gomock.Any()).Return(aliceSession, nil)
		var copied string
		app.copyToClipboard = func(text string) error {
			copied = text
			return nil
		}

		require.NoError(t, app.Run(context.Background(), []string{"whoami", "-copy"}))
		assert.Equal(t, "tok", copied)
		assert.Contains(t, out.String(), "token copied")
	})

	t.Run("clipboard unavailable", func(t *testing.T) {
		app, _, mocks := newTestApp(t)
		mocks.auth.EXPECT().CurrentSession(gomock.Any()).Return(aliceSession, nil)
		app.copyToClipboard = func(string) error { return errors.New("no xclip") }

		assert.Error(t, app.Run(context.Background(), []string{"whoami", "-copy"}))
	})

	t.Run("not logged in", func(t *testing.T) {
		app, _, mocks := newTestApp(t)
		mocks.auth.EXPECT().CurrentSession(gomock.Any()).Return(models.Session{}, service.ErrNotLoggedIn)

		err := app.Run(context.Background(), []string{"whoami"})

		assert.ErrorIs(t, err, service.ErrNotLoggedIn)
	})
}

// ─────────────────────────────────────────────
// Book commands
// ─────────────────────────────────────────────

func TestBooksCommand_Subcommands(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"books"}), ErrUsage)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"books", "burn"}), ErrUnknownCommand)
}

func TestBooksList(t *testing.T) {
	app, out, mocks := newTestApp(t)
	mocks.books.EXPECT().List(gomock.Any(), models.ListBooksRequest{Page: 2, Limit: 1}).Return(models.BookPage{
		Books: []models.Book{{
			BookID: 3, Title: "Dune", Caption: "spice", Rating: 4.5,
			Image: "https://img.example.com/d.png", Owner: models.BookOwner{Username: "bob"},
		}},
		CurrentPage: 2, TotalBooks: 3, TotalPages: 3,
	}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"books", "list", "-page", "2", "-limit", "1"}))

	got := out.String()
	assert.Contains(t, got, "#3")
	assert.Contains(t, got, "Dune")
	assert.Contains(t, got, "rating 4.5/5")
	assert.Contains(t, got, "by bob")
	assert.Contains(t, got, "page 2 of 3, 3 books in total")
}

func TestBooksList_Empty(t *testing.T) {
	app, out, mocks := newTestApp(t)
	mocks.books.EXPECT().List(gomock.Any(), models.ListBooksRequest{}).Return(models.BookPage{Books: []models.Book{}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"books", "list"}))
	assert.Contains(t, out.String(), "No books yet")
}

func TestBooksMine(t *testing.T) {
	app, out, mocks := newTestApp(t)
	mocks.books.EXPECT().Mine(gomock.Any()).Return(nil, nil)

	require.NoError(t, app.Run(context.Background(), []string{"books", "mine"}))
	assert.Contains(t, out.String(), "not shared any books")
}

func TestBooksAdd(t *testing.T) {
	t.Run("url image", func(t *testing.T) {
		app, out, mocks := newTestApp(t)
		mocks.books.EXPECT().Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.CreateBookRequest) (models.Book, error) {
				assert.Equal(t, "Dune", req.Title)
				assert.Equal(t, "https://img.example.com/d.png", req.Image)
				require.NotNil(t, req.Rating)
				assert.Equal(t, 5.0, req.Rating.Float64())
				return models.Book{BookID: 9, Title: req.Title, Rating: 5}, nil
			})

		err := app.Run(context.Background(), []string{"books", "add",
			"-t", "Dune", "-c", "spice", "-i", "https://img.example.com/d.png", "-r", "5"})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Book shared")
		assert.Contains(t, out.String(), "#9")
	})

	t.Run("missing rating stays nil", func(t *testing.T) {
		app, _, mocks := newTestApp(t)
		mocks.books.EXPECT().Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.CreateBookRequest) (models.Book, error) {
				assert.Nil(t, req.Rating)
				return models.Book{}, service.ErrMissingFields
			})

		err := app.Run(context.Background(), []string{"books", "add", "-t", "Dune"})

		assert.ErrorIs(t, err, service.ErrMissingFields)
	})

	t.Run("rating is not a number", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		err := app.Run(context.Background(), []string{"books", "add", "-t", "Dune", "-r", "five"})

		assert.ErrorIs(t, err, ErrUsage)
	})
}

func TestBooksDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		app, out, mocks := newTestApp(t)
		mocks.books.EXPECT().Delete(gomock.Any(), int64(4)).Return("Book deleted successfully", nil)

		require.NoError(t, app.Run(context.Background(), []string{"books", "delete", "-id", "4"}))
		assert.Contains(t, out.String(), "Book deleted successfully")
	})

	t.Run("missing id", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		assert.ErrorIs(t, app.Run(context.Background(), []string{"books", "delete"}), ErrUsage)
	})

	t.Run("forbidden", func(t *testing.T) {
		app, _, mocks := newTestApp(t)
		mocks.books.EXPECT().Delete(gomock.Any(), int64(4)).Return("", service.ErrNotBookOwner)

		err := app.Run(context.Background(), []string{"books", "delete", "-id", "4"})

		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}

func TestImageFromFlag(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(png, []byte("hello"), 0o600))
	noExt := filepath.Join(dir, "cover")
	require.NoError(t, os.WriteFile(noExt, []byte("plain words"), 0o600))

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: ""},
		{name: "url", value: "https://img.example.com/a.png", want: "https://img.example.com/a.png"},
		{name: "data uri", value: "data:image/png;base64,aGVsbG8=", want: "data:image/png;base64,aGVsbG8="},
		{name: "png file", value: png, want: "data:image/png;base64,aGVsbG8="},
		{name: "sniffed file", value: noExt, want: "data:text/plain;base64,cGxhaW4gd29yZHM="},
		{name: "missing file", value: filepath.Join(dir, "nope.png"), want: filepath.Join(dir, "nope.png")},
		{name: "directory", value: dir, want: dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := imageFromFlag(tt.value)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// Version
// ─────────────────────────────────────────────

func TestVersionCommand(t *testing.T) {
	t.Run("server reachable", func(t *testing.T) {
		app, out, mocks := newTestApp(t)
		mocks.adapter.EXPECT().GetServerVersion(gomock.Any()).Return("2.0.0", nil)

		require.NoError(t, app.Run(context.Background(), []string{"version"}))
		assert.Contains(t, out.String(), "Client version: 1.0.0 (2026-03-01, abc123)")
		assert.Contains(t, out.String(), "Server version: 2.0.0")
	})

	t.Run("server down", func(t *testing.T) {
		app, out, mocks := newTestApp(t)
		mocks.adapter.EXPECT().GetServerVersion(gomock.Any()).Return("", errors.New("connection refused"))

		require.NoError(t, app.Run(context.Background(), []string{"version"}))
		assert.True(t, strings.Contains(out.String(), "unavailable"))
	})
}
