package user

import (
	"context"
	"errors"
	"strings"

	"bookswap/internal/apperr"
	"bookswap/internal/book"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register stores a new account. hashedPassword must already be hashed.
func (s *Service) Register(ctx context.Context, email, username, hashedPassword string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return User{}, ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	newUser := &User{
		Email:    email,
		Username: strings.TrimSpace(username),
		Password: hashedPassword,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return User{}, err
	}

	return *newUser, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return User{}, apperr.NotFound("User not found")
	}
	return u, err
}

// Exists implements httpx.UserVerifier.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// ToggleDesired adds bookID to the user's desired set, or removes it if it
// is already there.
func (s *Service) ToggleDesired(ctx context.Context, userID, bookID string) (Toggle, error) {
	ok, err := s.repo.BookExists(ctx, bookID)
	if err != nil {
		return Toggle{}, err
	}
	if !ok {
		return Toggle{}, apperr.NotFound("Book not found")
	}

	removed, err := s.repo.RemoveDesired(ctx, userID, bookID)
	if err != nil {
		return Toggle{}, err
	}
	if !removed {
		if err := s.repo.AddDesired(ctx, userID, bookID); err != nil {
			return Toggle{}, err
		}
	}

	ids, err := s.repo.DesiredIDs(ctx, userID)
	if err != nil {
		return Toggle{}, err
	}
	if ids == nil {
		ids = []string{}
	}
	return Toggle{Added: !removed, DesiredBooks: ids}, nil
}

func (s *Service) ListDesired(ctx context.Context, userID string) ([]book.Book, error) {
	books, err := s.repo.DesiredBooks(ctx, userID)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []book.Book{}
	}
	return books, nil
}
