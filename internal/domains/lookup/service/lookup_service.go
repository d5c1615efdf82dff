package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	bookmodel "shelftrack-backend/internal/domains/book/model"
	bookrepo "shelftrack-backend/internal/domains/book/repository"
	copyrepo "shelftrack-backend/internal/domains/copy/repository"
	"shelftrack-backend/internal/domains/lookup/gateway"
	"shelftrack-backend/internal/domains/lookup/model"
	"shelftrack-backend/internal/shared/utils"
	"shelftrack-backend/pkg/cache"
)

// ServiceInterface resolves ISBNs with duplicate detection against the
// local collection.
type ServiceInterface interface {
	Lookup(ctx context.Context, ownerID uuid.UUID, req model.LookupRequest) (*model.LookupResponse, error)
}

type LookupService struct {
	provider gateway.Provider
	bookRepo bookrepo.RepositoryInterface
	copyRepo copyrepo.RepositoryInterface
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewService(provider gateway.Provider, bookRepo bookrepo.RepositoryInterface, copyRepo copyrepo.RepositoryInterface, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &LookupService{
		provider: provider,
		bookRepo: bookRepo,
		copyRepo: copyRepo,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func metadataCacheKey(isbn string) string {
	return fmt.Sprintf("lookup:isbn:%s", isbn)
}

// Lookup checks the local collection first - a hyphen-insensitive ISBN hit
// skips the external request entirely and routes the caller into the
// add-copy flow. On a miss it queries the provider, then re-checks local
// state against the possibly-corrected ISBN the provider returned (ISBN-10
// vs ISBN-13) before deciding duplicate vs confirm-new-book.
func (s *LookupService) Lookup(ctx context.Context, ownerID uuid.UUID, req model.LookupRequest) (*model.LookupResponse, error) {
	normalized := utils.NormalizeISBN(req.ISBN)

	existing, err := s.bookRepo.FindByISBN(ctx, ownerID, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.duplicateResponse(ctx, existing, nil)
	}

	meta, err := s.fetchMetadata(ctx, normalized, req.CountryCode)
	if err != nil {
		return nil, err
	}

	returnedISBN := utils.NormalizeISBN(meta.ISBN)
	if returnedISBN != normalized {
		existing, err = s.bookRepo.FindByISBN(ctx, ownerID, returnedISBN)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return s.duplicateResponse(ctx, existing, meta)
		}
	}

	return &model.LookupResponse{Metadata: meta}, nil
}

// duplicateResponse tells the caller how many copies they already hold, so
// the add-copy prompt can say so up front.
func (s *LookupService) duplicateResponse(ctx context.Context, existing *bookmodel.Book, meta *model.BookMetadata) (*model.LookupResponse, error) {
	count, err := s.copyRepo.CountByBook(ctx, existing.ID)
	if err != nil {
		return nil, err
	}
	return &model.LookupResponse{Duplicate: true, CopyCount: count, Book: existing, Metadata: meta}, nil
}

// fetchMetadata is cache-aside around the provider.
func (s *LookupService) fetchMetadata(ctx context.Context, isbn, countryCode string) (*model.BookMetadata, error) {
	key := metadataCacheKey(isbn)

	var cached model.BookMetadata
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("lookup cache read failed")
	}
	if found {
		return &cached, nil
	}

	meta, err := s.provider.LookupByISBN(ctx, isbn, countryCode)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, meta, s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("lookup cache write failed")
	}
	return meta, nil
}
