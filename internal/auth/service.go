package auth

//go:generate mockgen -source=service.go -destination=mock_service_test.go -package=auth

import (
	"context"
	"errors"
	"time"

	"bookswap/internal/apperr"
	"bookswap/internal/platform/crypto" // JWT/Password helpers
	"bookswap/internal/user"
)

var errInvalidCredentials = apperr.BadRequest("Invalid credentials")

// UserStore is the slice of the user service auth depends on.
type UserStore interface {
	Register(ctx context.Context, email, username, hashedPassword string) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

type Service struct {
	secret string
	ttl    time.Duration
	users  UserStore
}

func NewService(secret string, ttl time.Duration, users UserStore) *Service {
	return &Service{secret: secret, ttl: ttl, users: users}
}

// LoginResult is returned to the client on a successful login.
type LoginResult struct {
	AccessToken string    `json:"accessToken"`
	User        user.User `json:"user"`
}

func (s *Service) Register(ctx context.Context, username, email, password string) (user.User, error) {
	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return user.User{}, err
	}
	u, err := s.users.Register(ctx, email, username, hashed)
	if errors.Is(err, user.ErrAlreadyExists) {
		return user.User{}, apperr.BadRequest("User already exists")
	}
	return u, err
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return LoginResult{}, errInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}
	if !crypto.VerifyPassword(u.Password, password) {
		return LoginResult{}, errInvalidCredentials
	}

	token, _, err := crypto.GenerateToken(s.secret, u.ID, s.ttl)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{AccessToken: token, User: u}, nil
}
