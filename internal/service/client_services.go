package service

import (
	"github.com/MKhiriev/go-book-share/internal/adapter"
	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	BookService ClientBookService
	Adapter     adapter.ServerAdapter
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore.SessionRepository, serverAdapter, logger)

	return &ClientServices{
		AuthService: authSvc,
		BookService: NewClientBookService(authSvc, serverAdapter, logger),
		Adapter:     serverAdapter,
	}
}
