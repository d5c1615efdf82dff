package service

import (
	"context"

	"github.com/google/uuid"

	"shelftrack-backend/internal/domains/book/model"
)

// ServiceInterface is the business layer over the book gateway: derived
// views, cache-aside on the aggregate list, ordering orchestration.
type ServiceInterface interface {
	ListBooks(ctx context.Context, ownerID uuid.UUID, req model.ListBooksRequest) ([]model.Book, error)
	GetBook(ctx context.Context, ownerID, bookID uuid.UUID) (*model.Book, error)
	CreateBook(ctx context.Context, ownerID uuid.UUID, req model.CreateBookRequest) (*model.Book, error)
	UpdateBook(ctx context.Context, ownerID, bookID uuid.UUID, req model.UpdateBookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, ownerID, bookID uuid.UUID) error

	// ReorderBooks applies one drag move to the owner's manual order and
	// persists dense 0..n-1 indices. Returns the new ordered id list.
	ReorderBooks(ctx context.Context, ownerID, draggedID, targetID uuid.UUID) ([]uuid.UUID, error)
}
