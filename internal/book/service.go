package book

import (
	"context"
	"errors"

	"bookswap/internal/apperr"

	"go.uber.org/zap"
)

// Service provides book-related business logic.
type Service struct {
	repo   Repository
	lookup MetadataLookup
	logger *zap.Logger
}

// NewService creates a new book service. lookup may be nil.
func NewService(repo Repository, lookup MetadataLookup, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, lookup: lookup, logger: logger}
}

var errIncomplete = apperr.BadRequest("Title, author, genre, and ISBN are required.")

const msgNotOwned = "Book not found or not owned by user"

// Add registers a new book owned by ownerID.
func (s *Service) Add(ctx context.Context, ownerID string, in Input) (Book, error) {
	in = in.normalized()
	if !in.complete() {
		return Book{}, errIncomplete
	}
	in = s.enrich(ctx, in)
	return s.repo.Create(ctx, ownerID, in)
}

// Update rewrites a book the caller owns. A nil IsOffered keeps the current flag.
func (s *Service) Update(ctx context.Context, ownerID, bookID string, in Input) (Book, error) {
	in = in.normalized()
	if !in.complete() {
		return Book{}, errIncomplete
	}
	b, err := s.repo.Update(ctx, ownerID, bookID, in)
	if errors.Is(err, ErrNotFound) {
		return Book{}, apperr.NotFound(msgNotOwned)
	}
	return b, err
}

// Delete removes a book the caller owns and returns it.
func (s *Service) Delete(ctx context.Context, ownerID, bookID string) (Book, error) {
	b, err := s.repo.Delete(ctx, ownerID, bookID)
	switch {
	case errors.Is(err, ErrNotFound):
		return Book{}, apperr.NotFound(msgNotOwned)
	case errors.Is(err, ErrInPendingExchange):
		return Book{}, apperr.Conflict("Book is part of a pending exchange request")
	}
	return b, err
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Book, error) {
	books, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// ListOffered returns every offered book not owned by viewerID.
func (s *Service) ListOffered(ctx context.Context, viewerID string) ([]OfferedBook, error) {
	books, err := s.repo.ListOffered(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []OfferedBook{}
	}
	return books, nil
}

// enrich fills blank description and image from the catalog. Lookup
// failures are logged and never fail the add.
func (s *Service) enrich(ctx context.Context, in Input) Input {
	if s.lookup == nil || (in.Description != "" && in.ImageURL != "") {
		return in
	}
	md, err := s.lookup.LookupISBN(ctx, in.ISBN)
	if err != nil {
		s.logger.Warn("isbn lookup failed", zap.String("isbn", in.ISBN), zap.Error(err))
		return in
	}
	if in.Description == "" {
		in.Description = md.Description
	}
	if in.ImageURL == "" {
		in.ImageURL = md.ImageURL
	}
	return in
}
