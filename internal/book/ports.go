package book

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=book

import (
	"context"
)

// Repository defines the contract for book data storage. Every method is
// scoped to ownerID where one is given.
type Repository interface {
	Create(ctx context.Context, ownerID string, in Input) (Book, error)
	Update(ctx context.Context, ownerID, bookID string, in Input) (Book, error)
	Delete(ctx context.Context, ownerID, bookID string) (Book, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Book, error)
	ListOffered(ctx context.Context, excludeOwnerID string) ([]OfferedBook, error)
}

// MetadataLookup resolves catalog data for an ISBN.
type MetadataLookup interface {
	LookupISBN(ctx context.Context, isbn string) (Metadata, error)
}
