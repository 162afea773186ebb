package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/models"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
type bookRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBook inserts book and fills BookID, CreatedAt and UpdatedAt.
//
// Error handling:
//   - check_violation (rating outside [0, 5]) → [ErrRatingOutOfRange].
//   - foreign_key_violation (unknown owner) → [ErrOwnerNotFound].
func (b *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBookQuery(book)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.CreateBook").Msg("failed to create query")
		return models.Book{}, err
	}

	err = b.DB.QueryRowContext(ctx, query, args...).Scan(&book.BookID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.CreateBook").
			Int64("owner_id", book.OwnerID).
			Msg("failed to insert book")

		code, constraint := postgresError(err)
		switch {
		case code == pgerrcode.CheckViolation && constraint == booksRatingCheck:
			return models.Book{}, ErrRatingOutOfRange
		case code == pgerrcode.ForeignKeyViolation:
			return models.Book{}, ErrOwnerNotFound
		default:
			return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return book, nil
}

// ListBooks returns one window of the feed, newest first.
func (b *bookRepository) ListBooks(ctx context.Context, limit, offset uint64) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBooksPageQuery(limit, offset)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.ListBooks").Msg("failed to create query")
		return nil, err
	}

	return b.queryBooks(ctx, "bookRepository.ListBooks", query, args...)
}

// CountBooks returns the total number of books.
func (b *bookRepository) CountBooks(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountBooksQuery()
	if err != nil {
		log.Err(err).Str("func", "bookRepository.CountBooks").Msg("failed to create query")
		return 0, err
	}

	var total int64
	if err = b.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "bookRepository.CountBooks").Msg("failed to count books")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// ListBooksByOwner returns every book of ownerID, newest first. An owner
// without books yields an empty, non-nil slice.
func (b *bookRepository) ListBooksByOwner(ctx context.Context, ownerID int64) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBooksByOwnerQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.ListBooksByOwner").Msg("failed to create query")
		return nil, err
	}

	return b.queryBooks(ctx, "bookRepository.ListBooksByOwner", query, args...)
}

// FindBookByID returns the book or [ErrBookNotFound].
func (b *bookRepository) FindBookByID(ctx context.Context, bookID int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBookByIDQuery(bookID)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.FindBookByID").Msg("failed to create query")
		return models.Book{}, err
	}

	var book models.Book
	if err = scanBook(b.DB.QueryRowContext(ctx, query, args...), &book); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		log.Err(err).
			Str("func", "bookRepository.FindBookByID").
			Int64("book_id", bookID).
			Msg("failed to select book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return book, nil
}

// DeleteBook removes the book if it belongs to ownerID. Zero affected rows
// yields [ErrBookNotFound].
func (b *bookRepository) DeleteBook(ctx context.Context, bookID, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookQuery(bookID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.DeleteBook").Msg("failed to create query")
		return err
	}

	result, err := b.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.DeleteBook").
			Int64("book_id", bookID).
			Msg("failed to delete book")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}

func (b *bookRepository) queryBooks(ctx context.Context, funcName, query string, args ...any) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var book models.Book
		if err = scanBook(rows, &book); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner, book *models.Book) error {
	err := row.Scan(
		&book.BookID,
		&book.Title,
		&book.Caption,
		&book.Image,
		&book.Rating,
		&book.OwnerID,
		&book.CreatedAt,
		&book.UpdatedAt,
		&book.Owner.Username,
		&book.Owner.ProfileImage,
	)
	book.Owner.UserID = book.OwnerID
	return err
}
