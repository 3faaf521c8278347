package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"petstore/internal/apperr"
	"petstore/internal/models"
	"petstore/internal/store"
)

type UserService struct {
	users  store.UserStore
	cost   int
	logger zerolog.Logger
}

func NewUserService(users store.UserStore, logger zerolog.Logger) *UserService {
	return &UserService{
		users:  users,
		cost:   bcrypt.DefaultCost,
		logger: logger,
	}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.ErrMissingCredentials
	}

	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperr.ErrUserExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// The unique index catches registrations that raced past the lookup.
	user, err := s.users.Create(ctx, req.Email, string(hashedPassword))
	if errors.Is(err, store.ErrDuplicate) {
		return nil, apperr.ErrUserExists.Wrap(err)
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("User registered successfully")
	return user, nil
}

// Authenticate returns ErrInvalidCredentials for both an unknown email and
// a wrong password.
func (s *UserService) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		s.logger.Warn().Str("user_id", user.ID).Msg("Failed authentication attempt")
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("User authenticated successfully")
	return user, nil
}
