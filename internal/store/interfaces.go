package store

import (
	"context"

	"github.com/MKhiriev/go-book-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with store-assigned fields.
	// A username or email collision yields ErrUsernameAlreadyExists or
	// ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// BookRepository persists books in the "books" table. Listing methods order
// by created_at DESC, book_id DESC and fill the owner summary.
type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	ListBooks(ctx context.Context, limit, offset uint64) ([]models.Book, error)
	CountBooks(ctx context.Context) (int64, error)
	ListBooksByOwner(ctx context.Context, ownerID int64) ([]models.Book, error)
	FindBookByID(ctx context.Context, bookID int64) (models.Book, error)
	// DeleteBook removes the book only if it is owned by ownerID.
	DeleteBook(ctx context.Context, bookID, ownerID int64) error
}

// ImageStorage keeps book cover images outside the database.
type ImageStorage interface {
	// Upload stores a data URI image and returns its public URL. An http(s)
	// URL is returned unchanged.
	Upload(ctx context.Context, image string) (string, error)
	// Delete removes an image previously returned by Upload. URLs that do not
	// belong to the storage are ignored.
	Delete(ctx context.Context, imageURL string) error
}
