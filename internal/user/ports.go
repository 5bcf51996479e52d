package user

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=user

import (
	"context"

	"bookswap/internal/book"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Exists(ctx context.Context, id string) (bool, error)
	BookExists(ctx context.Context, bookID string) (bool, error)
	// RemoveDesired reports whether the book was in the set.
	RemoveDesired(ctx context.Context, userID, bookID string) (bool, error)
	AddDesired(ctx context.Context, userID, bookID string) error
	DesiredIDs(ctx context.Context, userID string) ([]string, error)
	DesiredBooks(ctx context.Context, userID string) ([]book.Book, error)
}
