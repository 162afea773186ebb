package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-book-share/internal/config"
	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/utils"
	"github.com/MKhiriev/go-book-share/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the request to
// POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

// Login implements [ServerAdapter]. It POSTs the request to
// POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	// the header and the body carry the same token; the header wins
	if header := resp.Header().Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("parse bearer token: %w", err)
		}
		auth.Token = token
	}
	if auth.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: server returned no token", path)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// ListBooks implements [ServerAdapter]. Zero page or limit values are left out
// of the query so the server defaults apply.
func (h *httpServerAdapter) ListBooks(ctx context.Context, req models.ListBooksRequest) (models.BookPage, error) {
	var page models.BookPage

	r := h.authedRequest(ctx).SetResult(&page)
	if req.Page > 0 {
		r.SetQueryParam("page", strconv.Itoa(req.Page))
	}
	if req.Limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(req.Limit))
	}

	resp, err := r.Get("/api/books")
	if err != nil {
		return models.BookPage{}, fmt.Errorf("list books request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BookPage{}, err
	}

	return page, nil
}

// ListMyBooks implements [ServerAdapter]. It GETs /api/books/user.
func (h *httpServerAdapter) ListMyBooks(ctx context.Context) ([]models.Book, error) {
	books := make([]models.Book, 0)

	resp, err := h.authedRequest(ctx).
		SetResult(&books).
		Get("/api/books/user")
	if err != nil {
		return nil, fmt.Errorf("list user books request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return books, nil
}

// CreateBook implements [ServerAdapter]. It POSTs the book to /api/books.
func (h *httpServerAdapter) CreateBook(ctx context.Context, req models.CreateBookRequest) (models.Book, error) {
	var book models.Book

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&book).
		Post("/api/books")
	if err != nil {
		return models.Book{}, fmt.Errorf("create book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	return book, nil
}

// DeleteBook implements [ServerAdapter]. It sends DELETE /api/books/{id}.
func (h *httpServerAdapter) DeleteBook(ctx context.Context, bookID int64) (string, error) {
	var msg models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(bookID, 10)).
		SetResult(&msg).
		Delete("/api/books/{id}")
	if err != nil {
		return "", fmt.Errorf("delete book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

// GetServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
