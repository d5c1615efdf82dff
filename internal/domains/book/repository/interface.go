package repository

import (
	"context"

	"github.com/google/uuid"

	"shelftrack-backend/internal/domains/book/model"
)

// RepositoryInterface is the persistence gateway for the books collection.
// Every operation is scoped to an owner; write operations do no caching and
// no retries - callers refresh or reconcile.
type RepositoryInterface interface {
	// ListBooks returns every book owned by ownerID ordered by sort_index
	// ascending, each with its copies ordered by sort_index ascending.
	ListBooks(ctx context.Context, ownerID uuid.UUID) ([]model.Book, error)

	// GetBookByID fetches one book with its copies.
	GetBookByID(ctx context.Context, ownerID, bookID uuid.UUID) (*model.Book, error)

	// GetOwner returns the owner of a book, or ErrBookNotFound.
	GetOwner(ctx context.Context, bookID uuid.UUID) (uuid.UUID, error)

	// CreateBook inserts a row, assigning sort_index = max+1 (0 when the
	// owner has no books) inside a transaction. Returns the created book
	// with an empty copies list.
	CreateBook(ctx context.Context, ownerID uuid.UUID, req model.CreateBookRequest) (*model.Book, error)

	// UpdateBookFields applies only the provided fields.
	UpdateBookFields(ctx context.Context, ownerID, bookID uuid.UUID, req model.UpdateBookRequest) (*model.Book, error)

	// DeleteBook removes the book; the storage layer cascades to copies.
	DeleteBook(ctx context.Context, ownerID, bookID uuid.UUID) error

	// ListBookIDs returns the owner's book ids in manual order.
	ListBookIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)

	// ReorderBooks bulk-writes {id, sort_index} pairs in one transaction.
	ReorderBooks(ctx context.Context, ownerID uuid.UUID, pairs []model.SortIndexPair) error

	// FindByISBN looks up a book by hyphen-insensitive ISBN match.
	// Returns (nil, nil) when no book matches.
	FindByISBN(ctx context.Context, ownerID uuid.UUID, normalizedISBN string) (*model.Book, error)
}
