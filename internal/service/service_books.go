package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/store"
	"github.com/MKhiriev/go-book-share/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
)

type bookService struct {
	bookRepository store.BookRepository
	imageStorage   store.ImageStorage

	logger *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, imageStorage store.ImageStorage, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		imageStorage:   imageStorage,
		logger:         logger,
	}
}

// Create uploads the image and stores a book owned by owner. The request is
// expected to be validated already.
func (b *bookService) Create(ctx context.Context, owner models.User, req models.CreateBookRequest) (models.Book, error) {
	log := logger.FromContext(ctx)

	if req.Rating == nil {
		return models.Book{}, ErrMissingFields
	}

	imageURL, err := b.imageStorage.Upload(ctx, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidImage):
			return models.Book{}, ErrInvalidImage
		case errors.Is(err, store.ErrImageUploadDisabled):
			return models.Book{}, ErrImageUploadDisabled
		}
		log.Err(err).Int64("owner_id", owner.UserID).Msg("image upload failed")
		return models.Book{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	book, err := b.bookRepository.CreateBook(ctx, models.Book{
		Title:   req.Title,
		Caption: req.Caption,
		Image:   imageURL,
		Rating:  req.Rating.Float64(),
		OwnerID: owner.UserID,
		Owner:   owner.Owner(),
	})
	if err != nil {
		b.dropImage(ctx, imageURL, req.Image)
		switch {
		case errors.Is(err, store.ErrRatingOutOfRange):
			return models.Book{}, ErrRatingOutOfRange
		case errors.Is(err, store.ErrOwnerNotFound):
			return models.Book{}, ErrInvalidToken
		}
		log.Err(err).Int64("owner_id", owner.UserID).Msg("book creation failed")
		return models.Book{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return book, nil
}

// List returns one page of the feed, newest first. Non-positive page or limit
// values fall back to DefaultPage and DefaultLimit.
func (b *bookService) List(ctx context.Context, req models.ListBooksRequest) (models.BookPage, error) {
	log := logger.FromContext(ctx)

	page, limit := req.Page, req.Limit
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	// pages whose offset does not fit into a bigint are past the end
	books := []models.Book{}
	if uint64(page-1) <= math.MaxInt64/uint64(limit) {
		var err error
		books, err = b.bookRepository.ListBooks(ctx, uint64(limit), uint64(page-1)*uint64(limit))
		if err != nil {
			log.Err(err).Int("page", page).Int("limit", limit).Msg("listing books failed")
			return models.BookPage{}, fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	total, err := b.bookRepository.CountBooks(ctx)
	if err != nil {
		log.Err(err).Msg("counting books failed")
		return models.BookPage{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return models.BookPage{
		Books:       books,
		CurrentPage: page,
		TotalBooks:  total,
		TotalPages:  totalPages(total, int64(limit)),
	}, nil
}

func (b *bookService) ListByOwner(ctx context.Context, ownerID int64) ([]models.Book, error) {
	books, err := b.bookRepository.ListBooksByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", ownerID).Msg("listing user books failed")
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return books, nil
}

// Delete removes a book owned by requesterID. The image is removed first on a
// best-effort basis: a failure is logged and does not stop the deletion.
func (b *bookService) Delete(ctx context.Context, requesterID, bookID int64) error {
	log := logger.FromContext(ctx)

	book, err := b.bookRepository.FindBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return ErrBookNotFound
		}
		log.Err(err).Int64("book_id", bookID).Msg("book search failed")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if book.OwnerID != requesterID {
		log.Warn().
			Int64("book_id", bookID).
			Int64("owner_id", book.OwnerID).
			Int64("requester_id", requesterID).
			Msg("attempt to delete a book of another user")
		return ErrNotBookOwner
	}

	if err = b.imageStorage.Delete(ctx, book.Image); err != nil {
		log.Warn().Err(err).Int64("book_id", bookID).Msg("image deletion failed, deleting book anyway")
	}

	if err = b.bookRepository.DeleteBook(ctx, bookID, requesterID); err != nil {
		// deleted concurrently
		if errors.Is(err, store.ErrBookNotFound) {
			return ErrBookNotFound
		}
		log.Err(err).Int64("book_id", bookID).Msg("book deletion failed")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return nil
}

// dropImage removes an image uploaded for a book that could not be stored.
// URLs passed in by the client are left alone.
func (b *bookService) dropImage(ctx context.Context, uploaded, original string) {
	if uploaded == original {
		return
	}
	if err := b.imageStorage.Delete(ctx, uploaded); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("image", uploaded).Msg("orphaned image was not removed")
	}
}

func totalPages(total, limit int64) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
