package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-book-share/models"
)

// psql renders $n placeholders for PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"user_id",
	"username",
	"email",
	"password_hash",
	"profile_image",
	"created_at",
}

var bookColumns = []string{
	"b.book_id",
	"b.title",
	"b.caption",
	"b.image",
	"b.rating",
	"b.owner_id",
	"b.created_at",
	"b.updated_at",
	"u.username",
	"u.profile_image",
}

const (
	usersTable      = "users"
	booksTable      = "books"
	booksJoinOwners = "users u ON u.user_id = b.owner_id"

	// constraint names referenced by error translation
	usersUsernameKey = "users_username_key"
	usersEmailKey    = "users_email_key"
	booksRatingCheck = "books_rating_check"
)

func wrapBuildErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(usersTable).
		Columns("username", "email", "password_hash", "profile_image").
		Values(user.Username, user.Email, user.PasswordHash, user.ProfileImage).
		Suffix("RETURNING user_id, username, email, password_hash, profile_image, created_at").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildSelectUserQuery selects a single user matching all pairs of where.
func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

// buildUserExistsQuery renders SELECT EXISTS(SELECT 1 FROM users WHERE column = $1).
func buildUserExistsQuery(column string, value any) (string, []any, error) {
	query, args, err := psql.
		Select("1").
		From(usersTable).
		Where(sq.Eq{column: value}).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildInsertBookQuery(book models.Book) (string, []any, error) {
	query, args, err := psql.
		Insert(booksTable).
		Columns("title", "caption", "image", "rating", "owner_id").
		Values(book.Title, book.Caption, book.Image, book.Rating, book.OwnerID).
		Suffix("RETURNING book_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func selectBooks() sq.SelectBuilder {
	return psql.
		Select(bookColumns...).
		From(booksTable+" b").
		Join(booksJoinOwners).
		OrderBy("b.created_at DESC", "b.book_id DESC")
}

func buildSelectBooksPageQuery(limit, offset uint64) (string, []any, error) {
	query, args, err := selectBooks().
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildSelectBooksByOwnerQuery(ownerID int64) (string, []any, error) {
	query, args, err := selectBooks().
		Where(sq.Eq{"b.owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildSelectBookByIDQuery(bookID int64) (string, []any, error) {
	query, args, err := selectBooks().
		Where(sq.Eq{"b.book_id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildCountBooksQuery() (string, []any, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From(booksTable).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}

func buildDeleteBookQuery(bookID, ownerID int64) (string, []any, error) {
	query, args, err := psql.
		Delete(booksTable).
		Where(sq.Eq{"book_id": bookID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, wrapBuildErr(err)
	}
	return query, args, nil
}
