package service

import (
	"context"

	"github.com/google/uuid"

	"shelftrack-backend/internal/domains/copy/model"
)

// ServiceInterface is the business layer for per-copy inventory records.
type ServiceInterface interface {
	// UpsertCopy creates or replaces a copy under the given book.
	UpsertCopy(ctx context.Context, ownerID, bookID uuid.UUID, req model.UpsertCopyRequest) (*model.CopyResponse, error)

	// ToggleListed flips the listed-for-sale flag by rebuilding the full
	// copy value and upserting it wholesale.
	ToggleListed(ctx context.Context, ownerID, copyID uuid.UUID, listed bool) (*model.CopyResponse, error)

	// DeleteCopy removes one copy.
	DeleteCopy(ctx context.Context, ownerID, copyID uuid.UUID) error

	// ReorderCopies applies one drag move within a book and persists dense
	// indices. Returns the new ordered id list.
	ReorderCopies(ctx context.Context, ownerID, bookID, draggedID, targetID uuid.UUID) ([]uuid.UUID, error)

	// GetValuation returns the copy with its derived financials.
	GetValuation(ctx context.Context, ownerID, copyID uuid.UUID) (*model.CopyResponse, error)
}
