package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-share/internal/adapter"
	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/models"
)

type clientBookService struct {
	auth    ClientAuthService
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientBookService(auth ClientAuthService, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientBookService {
	return &clientBookService{
		auth:    auth,
		adapter: serverAdapter,
		logger:  logger,
	}
}

func (b *clientBookService) List(ctx context.Context, req models.ListBooksRequest) (models.BookPage, error) {
	if err := b.authorize(ctx); err != nil {
		return models.BookPage{}, err
	}

	page, err := b.adapter.ListBooks(ctx, req)
	if err != nil {
		return models.BookPage{}, b.fail(err, "listing books failed")
	}
	return page, nil
}

func (b *clientBookService) Mine(ctx context.Context) ([]models.Book, error) {
	if err := b.authorize(ctx); err != nil {
		return nil, err
	}

	books, err := b.adapter.ListMyBooks(ctx)
	if err != nil {
		return nil, b.fail(err, "listing own books failed")
	}
	return books, nil
}

func (b *clientBookService) Add(ctx context.Context, req models.CreateBookRequest) (models.Book, error) {
	if err := b.authorize(ctx); err != nil {
		return models.Book{}, err
	}

	book, err := b.adapter.CreateBook(ctx, req)
	if err != nil {
		return models.Book{}, b.fail(err, "creating book failed")
	}
	return book, nil
}

func (b *clientBookService) Delete(ctx context.Context, bookID int64) (string, error) {
	if err := b.authorize(ctx); err != nil {
		return "", err
	}

	msg, err := b.adapter.DeleteBook(ctx, bookID)
	if err != nil {
		return "", b.fail(err, "deleting book failed")
	}
	return msg, nil
}

// authorize loads the saved token into the adapter.
func (b *clientBookService) authorize(ctx context.Context) error {
	session, err := b.auth.CurrentSession(ctx)
	if err != nil {
		return err
	}

	b.adapter.SetToken(session.Token)
	return nil
}

// fail maps err and reports an expired token as ErrNotLoggedIn.
func (b *clientBookService) fail(err error, msg string) error {
	b.logger.Err(err).Msg(msg)

	mapped := mapAdapterError(err)
	if errors.Is(mapped, ErrUnauthorized) {
		return fmt.Errorf("%w (%w)", ErrNotLoggedIn, mapped)
	}
	return mapped
}
