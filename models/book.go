package models

import "time"

// Book is a shared book recommendation created by a user.
type Book struct {
	// BookID is the store-assigned identifier of the book.
	BookID int64 `json:"id"`

	// Title, Caption and Image are required and non-empty. Image holds the URL
	// of the uploaded cover.
	Title   string `json:"title"`
	Caption string `json:"caption"`
	Image   string `json:"image"`

	// Rating is in the inclusive range [MinRating, MaxRating].
	Rating float64 `json:"rating"`

	// OwnerID references the user that created the book. It is always taken
	// from the authenticated caller, never from the request body.
	OwnerID int64 `json:"-"`

	// Owner is the summary of the owning user, filled by listing queries.
	Owner BookOwner `json:"user"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookOwner is the public part of the user who created a book.
type BookOwner struct {
	UserID       int64  `json:"id"`
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage"`
}

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// BookPage is a single pagination window of the book feed.
type BookPage struct {
	Books       []Book `json:"books"`
	CurrentPage int    `json:"currentPage"`
	TotalBooks  int64  `json:"totalBooks"`
	TotalPages  int64  `json:"totalPages"`
}
