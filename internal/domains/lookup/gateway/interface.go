package gateway

import (
	"context"

	"shelftrack-backend/internal/domains/lookup/model"
)

// Provider is the contract for an external book-metadata source.
type Provider interface {
	// Name returns the provider identifier (e.g. "openlibrary").
	Name() string

	// LookupByISBN resolves a normalized (digits-only) ISBN, optionally
	// biased by a two-letter country code for providers that support it.
	// Returns model.ErrNoMatch when the ISBN is unknown and
	// model.ErrProviderDown when the source is unreachable.
	LookupByISBN(ctx context.Context, isbn, countryCode string) (*model.BookMetadata, error)
}
