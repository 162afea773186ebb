package service

import (
	"context"

	"github.com/MKhiriev/go-book-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=BookServiceWrapper

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// Authenticate resolves a bearer token to the public part of its user.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

type BookService interface {
	Create(ctx context.Context, owner models.User, req models.CreateBookRequest) (models.Book, error)
	List(ctx context.Context, req models.ListBooksRequest) (models.BookPage, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Book, error)
	Delete(ctx context.Context, requesterID, bookID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BookServiceWrapper defines middleware composition for BookService.
// Implementations wrap an existing BookService to add behavior such as
// logging or validating.
type BookServiceWrapper interface {
	Wrap(BookService) BookService // returns a decorated BookService applying additional behavior
}
