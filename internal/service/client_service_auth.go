package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-book-share/internal/adapter"
	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/store"
	"github.com/MKhiriev/go-book-share/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter

	// now is replaced in tests
	now func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	auth, err := a.adapter.Register(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("username", req.Username).Msg("registration failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx, auth)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	auth, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("email", req.Email).Msg("login failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx, auth)
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("error deleting local session: %w", err)
	}
	return nil
}

func (a *clientAuthService) CurrentSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.Session{}, ErrNotLoggedIn
		}
		return models.Session{}, fmt.Errorf("error reading local session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) saveSession(ctx context.Context, auth models.AuthResponse) (models.Session, error) {
	session := models.Session{
		Token:    auth.Token,
		User:     auth.User,
		LoggedAt: a.now(),
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error saving local session: %w", err)
	}

	a.logger.Info().Int64("id", session.User.UserID).Msg("session saved")
	return session, nil
}
