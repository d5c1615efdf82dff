package gateway

import (
	"context"

	"github.com/shopspring/decimal"

	"shelftrack-backend/internal/domains/pricing/model"
)

// Estimator is the contract for an external market-price estimation
// service.
type Estimator interface {
	// Name returns the estimator identifier (e.g. "openai").
	Name() string

	// Estimate returns a single non-negative price for the described copy.
	// Returns model.ErrEstimatorDown when the service is unreachable or
	// misconfigured and model.ErrUnusableEstimate when the reply carries
	// no usable number.
	Estimate(ctx context.Context, req model.EstimateRequest) (decimal.Decimal, error)
}
