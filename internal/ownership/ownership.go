// Package ownership keeps a book's owner reference and the owner's owned-book
// set in agreement. Every function here must run inside the caller's
// transaction.
package ownership

import (
	"context"
	"errors"
	"fmt"
)

// ErrSameOwner is returned by Swap when both holdings belong to one user.
var ErrSameOwner = errors.New("ownership: both books have the same owner")

// Store is the transactional storage both sides of ownership live in.
type Store interface {
	// SetBookOwner reassigns the book and withdraws it from the offered listing.
	SetBookOwner(ctx context.Context, bookID, ownerID string) error
	AddOwnedBook(ctx context.Context, userID, bookID string) error
	RemoveOwnedBook(ctx context.Context, userID, bookID string) error
}

// Holding pairs a book with the user currently owning it.
type Holding struct {
	BookID  string
	OwnerID string
}

// Assign records a freshly created book in its owner's set. The book row
// must already carry ownerID.
func Assign(ctx context.Context, s Store, bookID, ownerID string) error {
	if err := s.AddOwnedBook(ctx, ownerID, bookID); err != nil {
		return fmt.Errorf("assign book %s: %w", bookID, err)
	}
	return nil
}

// Release drops a book from its owner's set ahead of deletion.
func Release(ctx context.Context, s Store, bookID, ownerID string) error {
	if err := s.RemoveOwnedBook(ctx, ownerID, bookID); err != nil {
		return fmt.Errorf("release book %s: %w", bookID, err)
	}
	return nil
}

// Swap trades the owners of a and b. Both book rows and both owned sets are
// updated; a partial failure leaves the transaction to be rolled back.
func Swap(ctx context.Context, s Store, a, b Holding) error {
	if a.OwnerID == b.OwnerID {
		return ErrSameOwner
	}

	if err := s.SetBookOwner(ctx, a.BookID, b.OwnerID); err != nil {
		return fmt.Errorf("swap: move book %s: %w", a.BookID, err)
	}
	if err := s.SetBookOwner(ctx, b.BookID, a.OwnerID); err != nil {
		return fmt.Errorf("swap: move book %s: %w", b.BookID, err)
	}

	steps := []struct {
		add    bool
		userID string
		bookID string
	}{
		{false, a.OwnerID, a.BookID},
		{false, b.OwnerID, b.BookID},
		{true, a.OwnerID, b.BookID},
		{true, b.OwnerID, a.BookID},
	}
	for _, st := range steps {
		var err error
		if st.add {
			err = s.AddOwnedBook(ctx, st.userID, st.bookID)
		} else {
			err = s.RemoveOwnedBook(ctx, st.userID, st.bookID)
		}
		if err != nil {
			return fmt.Errorf("swap: sync owned books of %s: %w", st.userID, err)
		}
	}
	return nil
}
