package service

import (
	"context"
	"errors"

	"roombook/internal/auth"
	"roombook/internal/database"
	"roombook/internal/domain"
	"roombook/internal/models"

	"github.com/rs/zerolog"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password
// so login failures never reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	store      domain.Store
	issuer     *auth.TokenIssuer
	bcryptCost int
	logger     *zerolog.Logger
}

func NewUserService(store domain.Store, issuer *auth.TokenIssuer, bcryptCost int, logger *zerolog.Logger) *UserService {
	return &UserService{
		store:      store,
		issuer:     issuer,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Signup stores a new account with a salted hash; the plaintext password
// is never persisted or logged.
func (s *UserService) Signup(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, email, hash)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login verifies credentials and mints a session token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(auth.Identity{ID: user.ID, Email: user.Email})
	if err != nil {
		return "", err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return token, nil
}
