package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-book-share/internal/config"
	"github.com/MKhiriev/go-book-share/internal/logger"
	"github.com/MKhiriev/go-book-share/internal/store"
	"github.com/MKhiriev/go-book-share/internal/utils"
	"github.com/MKhiriev/go-book-share/internal/validators"
	"github.com/MKhiriev/go-book-share/models"
)

// defaultAvatarURL is the avatar assigned to every new account.
const defaultAvatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// passwordHashCost is the bcrypt cost used for new password hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewUserValidator(),
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Register creates a new account and logs it in.
//
// Email and username availability are checked with plain reads before the
// insert. A concurrent registration that slips between the check and the
// insert is still rejected by the unique indexes.
//
// Surrounding whitespace is stripped from the username before it is checked
// and stored.
//
// Returns the issued token with the public user fields or:
//   - a validation error for missing fields, a short username or password.
//   - [ErrEmailAlreadyExists] or [ErrUsernameAlreadyExists].
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration data")
		return models.AuthResponse{}, mapValidationError(err)
	}
	req.Username = strings.TrimSpace(req.Username)

	emailTaken, err := a.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Msg("email availability check failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if emailTaken {
		return models.AuthResponse{}, ErrEmailAlreadyExists
	}

	usernameTaken, err := a.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Msg("username availability check failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if usernameTaken {
		return models.AuthResponse{}, ErrUsernameAlreadyExists
	}

	passwordHash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		ProfileImage: defaultAvatarURL + url.QueryEscape(req.Username),
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.AuthResponse{}, ErrEmailAlreadyExists
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			return models.AuthResponse{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("%w: user creation ended with error: %w", ErrInternal, err)
	}

	return a.issue(ctx, registeredUser)
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, mapValidationError(err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Msg("login with unknown email")
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("%w: user search by email failed: %w", ErrInternal, err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, req.Password) {
		log.Debug().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.issue(ctx, foundUser)
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate verifies tokenString and re-reads its user, so tokens of
// deleted accounts stop working immediately. Every failure that is not a
// database error is reported as [ErrInvalidToken].
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, ErrInvalidToken
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Int64("id", token.UserID).Msg("token of a missing user")
			return models.User{}, ErrInvalidToken
		}
		log.Err(err).Int64("id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return user.Public(), nil
}

func (a *authService) issue(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := a.CreateToken(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Msg("creation of token failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return models.AuthResponse{
		Token: token.SignedString,
		User:  user.Public(),
	}, nil
}
