package repository

import (
	"context"

	"github.com/google/uuid"

	"shelftrack-backend/internal/domains/copy/model"
)

// RepositoryInterface is the persistence gateway for the copies collection.
type RepositoryInterface interface {
	// GetCopy fetches one copy row.
	GetCopy(ctx context.Context, copyID uuid.UUID) (*model.Copy, error)

	// UpsertCopy inserts or replaces a copy by id, force-setting its owning
	// book id. A new copy with no explicit sort index gets max+1 within its
	// book. Used both for field edits and for the listed-flag toggle.
	UpsertCopy(ctx context.Context, row model.CopyRow, sortIndexProvided bool) (*model.Copy, error)

	// DeleteCopy removes a single row; sibling sort indices keep their
	// gaps.
	DeleteCopy(ctx context.Context, copyID uuid.UUID) error

	// ListCopyIDs returns a book's copy ids in manual order.
	ListCopyIDs(ctx context.Context, bookID uuid.UUID) ([]uuid.UUID, error)

	// ReorderCopies rewrites dense 0..n-1 sort indices for the given book
	// in array-position order, in one transaction.
	ReorderCopies(ctx context.Context, bookID uuid.UUID, orderedIDs []uuid.UUID) error

	// CountByBook reports how many copies reference a book.
	CountByBook(ctx context.Context, bookID uuid.UUID) (int, error)
}
