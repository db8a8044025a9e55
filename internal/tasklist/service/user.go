package service

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/aussiebroadwan/tasklist/internal/tasklist/domain"
	"github.com/aussiebroadwan/tasklist/internal/tasklist/store"
	"github.com/aussiebroadwan/tasklist/pkg/cryptox"
	"github.com/aussiebroadwan/tasklist/pkg/slogx"
)

// MinPasswordLength is the only password rule the service enforces.
const MinPasswordLength = 6

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	Store store.Store
}

// Register creates a new user account with a hashed password.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	// 2. Hash and insert. Uniqueness is enforced by the storage layer, so a
	// losing concurrent registration surfaces here as ErrAlreadyExists.
	hash := cryptox.HashPassword(password)
	if err := s.Store.Users().CreateUser(ctx, username, hash); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration attempted with taken username",
				slog.String("username", username),
			)
			return ErrUsernameTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return err
	}

	log.Info("user registered", slog.String("username", username))
	return nil
}

// Login verifies a username/password pair and returns the matching user.
// A wrong username and a wrong password both yield ErrInvalidCredentials so
// the response never reveals which accounts exist.
func (s *UserService) Login(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if username == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}

	hash := cryptox.HashPassword(password)
	user, err := s.Store.Users().GetUserByCredentials(ctx, username, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("failed login attempt", slog.String("username", username))
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to look up credentials", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}
