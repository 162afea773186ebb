// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the book-share server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401). The
// server's {"message": ...} body is kept as the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-book-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the book-share
// server.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned token is also
	// stored via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login exchanges email and password for a token. On success the returned
	// token is also stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// ListBooks fetches one page of the feed.
	ListBooks(ctx context.Context, req models.ListBooksRequest) (models.BookPage, error)

	// ListMyBooks fetches every book of the token owner.
	ListMyBooks(ctx context.Context) ([]models.Book, error)

	// CreateBook publishes a new book owned by the token owner.
	CreateBook(ctx context.Context, req models.CreateBookRequest) (models.Book, error)

	// DeleteBook removes a book of the token owner and returns the server's
	// confirmation message.
	DeleteBook(ctx context.Context, bookID int64) (string, error)

	// GetServerVersion returns the version reported by GET /api/version.
	GetServerVersion(ctx context.Context) (string, error)
}
