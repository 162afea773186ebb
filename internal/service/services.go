package service

import (
	"fmt"

	"github.com/MKhiriev/go-book-share/internal/config"
	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/store"
)

type Services struct {
	AuthService    AuthService
	BookService    BookService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	bookService := NewBookService(storages.BookRepository, storages.ImageStorage, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		BookService:    NewBookValidationService().Wrap(bookService),
		AppInfoService: appInfoService,
	}, nil
}
