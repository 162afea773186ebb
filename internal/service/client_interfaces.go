package service

import (
	"context"

	"github.com/MKhiriev/go-book-share/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account management.
// The session obtained on register or login is persisted locally so that
// later invocations of the client stay authenticated.
type ClientAuthService interface {
	// Register creates an account on the server and saves the session.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// Login authenticates against the server and saves the session.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Logout forgets the local session. Logging out twice is not an error.
	Logout(ctx context.Context) error

	// CurrentSession returns the saved session or [ErrNotLoggedIn].
	CurrentSession(ctx context.Context) (models.Session, error)
}

// ClientBookService defines the client-side contract for book operations.
// Every call requires a saved session.
type ClientBookService interface {
	List(ctx context.Context, req models.ListBooksRequest) (models.BookPage, error)
	Mine(ctx context.Context) ([]models.Book, error)
	Add(ctx context.Context, req models.CreateBookRequest) (models.Book, error)
	// Delete returns the server's confirmation message.
	Delete(ctx context.Context, bookID int64) (string, error)
}
