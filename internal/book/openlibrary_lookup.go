package book

import (
	"context"
	"errors"

	"bookswap/internal/platform/openlibrary"
)

// OpenLibraryLookup adapts the Open Library client to MetadataLookup.
type OpenLibraryLookup struct {
	Client *openlibrary.Client
}

func (l OpenLibraryLookup) LookupISBN(ctx context.Context, isbn string) (Metadata, error) {
	ed, err := l.Client.EditionByISBN(ctx, isbn)
	if errors.Is(err, openlibrary.ErrNoEdition) {
		return Metadata{}, nil
	}
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{Description: ed.Excerpt(), ImageURL: ed.CoverURL()}, nil
}
