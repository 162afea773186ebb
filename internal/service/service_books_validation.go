package service

import (
	"context"

	"github.com/MKhiriev/go-book-share/internal/validators"
	"github.com/MKhiriev/go-book-share/models"
)

// BookValidationService rejects malformed book requests before they reach
// the wrapped BookService.
type BookValidationService struct {
	inner     BookService
	validator validators.Validator
}

func NewBookValidationService() BookServiceWrapper {
	return &BookValidationService{
		validator: validators.NewBookValidator(),
	}
}

func (v *BookValidationService) Create(ctx context.Context, owner models.User, req models.CreateBookRequest) (models.Book, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Book{}, mapValidationError(err)
	}

	return v.inner.Create(ctx, owner, req)
}

func (v *BookValidationService) List(ctx context.Context, req models.ListBooksRequest) (models.BookPage, error) {
	return v.inner.List(ctx, req)
}

func (v *BookValidationService) ListByOwner(ctx context.Context, ownerID int64) ([]models.Book, error) {
	return v.inner.ListByOwner(ctx, ownerID)
}

func (v *BookValidationService) Delete(ctx context.Context, requesterID, bookID int64) error {
	if bookID <= 0 {
		return ErrBookNotFound
	}

	return v.inner.Delete(ctx, requesterID, bookID)
}

func (v *BookValidationService) Wrap(wrapped BookService) BookService {
	v.inner = wrapped
	return v
}
