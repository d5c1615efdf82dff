package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	copymodel "shelftrack-backend/internal/domains/copy/model"
)

// Estimation errors.
var (
	ErrEstimatorDown     = errors.New("price estimation service unavailable")
	ErrUnusableEstimate  = errors.New("estimator returned no usable price")
	ErrEstimatorDisabled = errors.New("price estimation is not configured")
)

// EstimateRequest asks for a market-price estimate for one copy.
type EstimateRequest struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	ISBN      string   `json:"isbn"`
	Condition string   `json:"condition"`
}

func (r EstimateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Condition,
			validation.Required,
			validation.By(func(value interface{}) error {
				s, _ := value.(string)
				if !copymodel.IsValidCondition(s) {
					return validation.NewError("validation_condition", "unknown condition")
				}
				return nil
			}),
		),
	)
}

// EstimateResponse carries a single non-negative price estimate.
type EstimateResponse struct {
	Estimate decimal.Decimal `json:"estimate"`
	Currency string          `json:"currency"`
	Source   string          `json:"source"`
}
