package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"shelftrack-backend/internal/domains/pricing/gateway"
	"shelftrack-backend/internal/domains/pricing/model"
	"shelftrack-backend/internal/shared/utils"
	"shelftrack-backend/pkg/cache"
)

// ServiceInterface produces market-price estimates.
type ServiceInterface interface {
	Estimate(ctx context.Context, req model.EstimateRequest) (*model.EstimateResponse, error)
}

type PricingService struct {
	estimator gateway.Estimator
	cache     cache.Cache
	cacheTTL  time.Duration
}

func NewService(estimator gateway.Estimator, c cache.Cache, cacheTTL time.Duration) ServiceInterface {
	return &PricingService{estimator: estimator, cache: c, cacheTTL: cacheTTL}
}

// estimateCacheKey keys by identity and condition; the same book in the
// same grade gets the cached price.
func estimateCacheKey(req model.EstimateRequest) string {
	id := utils.NormalizeISBN(req.ISBN)
	if id == "" || id == "N/A" {
		id = req.Title
	}
	return fmt.Sprintf("pricing:estimate:%s:%s", id, req.Condition)
}

func (s *PricingService) Estimate(ctx context.Context, req model.EstimateRequest) (*model.EstimateResponse, error) {
	key := estimateCacheKey(req)

	var cached model.EstimateResponse
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("pricing cache read failed")
	}
	if found {
		return &cached, nil
	}

	price, err := s.estimator.Estimate(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := &model.EstimateResponse{
		Estimate: price,
		Currency: "USD",
		Source:   s.estimator.Name(),
	}

	if err := s.cache.Set(ctx, key, resp, s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("pricing cache write failed")
	}
	return resp, nil
}
