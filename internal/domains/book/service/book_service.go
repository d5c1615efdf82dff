package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"shelftrack-backend/internal/domains/book/model"
	"shelftrack-backend/internal/domains/book/repository"
	"shelftrack-backend/pkg/cache"
)

const listCacheTTL = 5 * time.Minute

// BookService implements ServiceInterface.
type BookService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewService(repo repository.RepositoryInterface, c cache.Cache) ServiceInterface {
	return &BookService{repo: repo, cache: c}
}

// fetchAggregate returns the owner's full book list with nested copies,
// cache-aside. Cache failures degrade to a database read, never to an
// error.
func (s *BookService) fetchAggregate(ctx context.Context, ownerID uuid.UUID) ([]model.Book, error) {
	key := model.ListCacheKey(ownerID)

	var cached []model.Book
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("book list cache read failed")
	}
	if found {
		return cached, nil
	}

	books, err := s.repo.ListBooks(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, books, listCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("book list cache write failed")
	}
	return books, nil
}

func (s *BookService) invalidate(ctx context.Context, ownerID uuid.UUID) {
	if err := s.cache.Delete(ctx, model.ListCacheKey(ownerID)); err != nil {
		log.Warn().Err(err).Msg("book list cache invalidation failed")
	}
}

// ListBooks applies the derived view (listed-only filter, title filter,
// sort) on top of the cached aggregate.
func (s *BookService) ListBooks(ctx context.Context, ownerID uuid.UUID, req model.ListBooksRequest) ([]model.Book, error) {
	books, err := s.fetchAggregate(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	order := req.Sort
	if order == "" {
		order = model.SortManual
	}
	return model.ApplyView(books, req.ListedOnly, req.Query, order), nil
}

func (s *BookService) GetBook(ctx context.Context, ownerID, bookID uuid.UUID) (*model.Book, error) {
	return s.repo.GetBookByID(ctx, ownerID, bookID)
}

func (s *BookService) CreateBook(ctx context.Context, ownerID uuid.UUID, req model.CreateBookRequest) (*model.Book, error) {
	book, err := s.repo.CreateBook(ctx, ownerID, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, ownerID)
	return book, nil
}

func (s *BookService) UpdateBook(ctx context.Context, ownerID, bookID uuid.UUID, req model.UpdateBookRequest) (*model.Book, error) {
	if req.IsEmpty() {
		return nil, model.ErrEmptyUpdate
	}

	book, err := s.repo.UpdateBookFields(ctx, ownerID, bookID, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, ownerID)
	return book, nil
}

func (s *BookService) DeleteBook(ctx context.Context, ownerID, bookID uuid.UUID) error {
	if err := s.repo.DeleteBook(ctx, ownerID, bookID); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID)
	return nil
}

// ReorderBooks loads the current manual order, applies the array move and
// persists dense indices. Reapplying an order that is already current
// rewrites identical indices - a no-op relative to stored state.
func (s *BookService) ReorderBooks(ctx context.Context, ownerID, draggedID, targetID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.repo.ListBookIDs(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	reordered := model.Move(ids, draggedID, targetID)
	if err := s.repo.ReorderBooks(ctx, ownerID, model.DenseIndexes(reordered)); err != nil {
		// The caller refetches the authoritative list; no compensating
		// per-item rollback.
		s.invalidate(ctx, ownerID)
		return nil, err
	}

	s.invalidate(ctx, ownerID)
	return reordered, nil
}
