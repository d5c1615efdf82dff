package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	bookmodel "shelftrack-backend/internal/domains/book/model"
	bookrepo "shelftrack-backend/internal/domains/book/repository"
	"shelftrack-backend/internal/domains/copy/model"
	"shelftrack-backend/internal/domains/copy/repository"
	"shelftrack-backend/pkg/cache"
)

// CopyService implements ServiceInterface. It leans on the book repository
// for ownership checks and invalidates the owner's aggregate cache after
// every write, since copies are nested into the book list.
type CopyService struct {
	repo     repository.RepositoryInterface
	bookRepo bookrepo.RepositoryInterface
	cache    cache.Cache
}

func NewService(repo repository.RepositoryInterface, bookRepo bookrepo.RepositoryInterface, c cache.Cache) ServiceInterface {
	return &CopyService{repo: repo, bookRepo: bookRepo, cache: c}
}

// checkBookOwner verifies the book exists and belongs to ownerID.
func (s *CopyService) checkBookOwner(ctx context.Context, ownerID, bookID uuid.UUID) error {
	owner, err := s.bookRepo.GetOwner(ctx, bookID)
	if err != nil {
		if err == bookmodel.ErrBookNotFound {
			return model.ErrBookNotFound
		}
		return err
	}
	if owner != ownerID {
		return model.ErrNotOwner
	}
	return nil
}

func (s *CopyService) invalidate(ctx context.Context, ownerID uuid.UUID) {
	if err := s.cache.Delete(ctx, bookmodel.ListCacheKey(ownerID)); err != nil {
		log.Warn().Err(err).Msg("book list cache invalidation failed")
	}
}

func (s *CopyService) UpsertCopy(ctx context.Context, ownerID, bookID uuid.UUID, req model.UpsertCopyRequest) (*model.CopyResponse, error) {
	if err := s.checkBookOwner(ctx, ownerID, bookID); err != nil {
		return nil, err
	}

	row := model.CopyRow{
		ID:               uuid.New(),
		BookID:           bookID,
		Condition:        req.Condition,
		PurchasePrice:    req.PurchasePrice,
		MarketPrice:      req.MarketPrice,
		AcquiredDate:     req.PurchaseDate,
		PurchaseLocation: req.PurchaseLocation,
		Notes:            req.Notes,
		IsListed:         req.IsListed,
	}

	// An explicit id means edit-by-replacement; otherwise this is a new
	// copy and the repository assigns max+1 within the book.
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, model.ErrInvalidCopyID
		}
		row.ID = id
	}

	sortIndexProvided := req.SortIndex != nil
	if sortIndexProvided {
		row.SortIndex = *req.SortIndex
	}

	created, err := s.repo.UpsertCopy(ctx, row, sortIndexProvided)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, ownerID)
	resp := model.ToCopyResponse(*created)
	return &resp, nil
}

// ToggleListed rebuilds the full copy value with only isListed changed and
// upserts it wholesale; it does not issue a narrower patch.
func (s *CopyService) ToggleListed(ctx context.Context, ownerID, copyID uuid.UUID, listed bool) (*model.CopyResponse, error) {
	current, err := s.repo.GetCopy(ctx, copyID)
	if err != nil {
		return nil, err
	}
	if err := s.checkBookOwner(ctx, ownerID, current.BookID); err != nil {
		return nil, err
	}

	current.IsListed = listed
	updated, err := s.repo.UpsertCopy(ctx, current.ToRow(), true)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, ownerID)
	resp := model.ToCopyResponse(*updated)
	return &resp, nil
}

func (s *CopyService) DeleteCopy(ctx context.Context, ownerID, copyID uuid.UUID) error {
	current, err := s.repo.GetCopy(ctx, copyID)
	if err != nil {
		return err
	}
	if err := s.checkBookOwner(ctx, ownerID, current.BookID); err != nil {
		return err
	}

	if err := s.repo.DeleteCopy(ctx, copyID); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID)
	return nil
}

func (s *CopyService) ReorderCopies(ctx context.Context, ownerID, bookID, draggedID, targetID uuid.UUID) ([]uuid.UUID, error) {
	if err := s.checkBookOwner(ctx, ownerID, bookID); err != nil {
		return nil, err
	}

	ids, err := s.repo.ListCopyIDs(ctx, bookID)
	if err != nil {
		return nil, err
	}

	reordered := bookmodel.Move(ids, draggedID, targetID)
	if err := s.repo.ReorderCopies(ctx, bookID, reordered); err != nil {
		s.invalidate(ctx, ownerID)
		return nil, err
	}

	s.invalidate(ctx, ownerID)
	return reordered, nil
}

func (s *CopyService) GetValuation(ctx context.Context, ownerID, copyID uuid.UUID) (*model.CopyResponse, error) {
	current, err := s.repo.GetCopy(ctx, copyID)
	if err != nil {
		return nil, err
	}
	if err := s.checkBookOwner(ctx, ownerID, current.BookID); err != nil {
		return nil, err
	}

	resp := model.ToCopyResponse(*current)
	return &resp, nil
}
