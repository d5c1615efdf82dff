package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// UpsertCopyRequest creates or fully replaces a copy. The listed-flag
// toggle goes through the same payload with only isListed changed; there is
// no narrower patch.
type UpsertCopyRequest struct {
	ID               string           `json:"id,omitempty"`
	Condition        string           `json:"condition"`
	PurchasePrice    *decimal.Decimal `json:"purchasePrice,omitempty"`
	MarketPrice      *decimal.Decimal `json:"marketPrice,omitempty"`
	PurchaseDate     *string          `json:"purchaseDate,omitempty"`
	PurchaseLocation string           `json:"purchaseLocation"`
	Notes            string           `json:"notes"`
	IsListed         bool             `json:"isListed"`
	SortIndex        *int             `json:"sortIndex,omitempty"`
}

func (r UpsertCopyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Condition,
			validation.Required,
			validation.By(conditionRule),
		),
		validation.Field(&r.PurchasePrice, validation.By(nonNegativePriceRule)),
		validation.Field(&r.MarketPrice, validation.By(nonNegativePriceRule)),
		validation.Field(&r.PurchaseDate, validation.By(isoDateRule)),
	)
}

func conditionRule(value interface{}) error {
	s, _ := value.(string)
	if !IsValidCondition(s) {
		return validation.NewError("validation_condition", "must be one of: Brand New, Like New, Very Good, Good, Acceptable")
	}
	return nil
}

func nonNegativePriceRule(value interface{}) error {
	d, ok := value.(*decimal.Decimal)
	if !ok || d == nil {
		return nil
	}
	if d.IsNegative() {
		return validation.NewError("validation_price", "must not be negative")
	}
	return nil
}

func isoDateRule(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *s); err != nil {
		return validation.NewError("validation_date", "must be a date in YYYY-MM-DD format")
	}
	return nil
}

// ReorderCopiesRequest carries one drag-and-drop move within a book.
type ReorderCopiesRequest struct {
	DraggedID string `json:"draggedId"`
	TargetID  string `json:"targetId"`
}

func (r ReorderCopiesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DraggedID, validation.Required),
		validation.Field(&r.TargetID, validation.Required),
	)
}

// CopyResponse is a copy plus its derived valuation.
type CopyResponse struct {
	Copy
	Valuation Valuation `json:"valuation"`
}

func ToCopyResponse(c Copy) CopyResponse {
	return CopyResponse{
		Copy:      c,
		Valuation: ComputeValuation(c.PurchasePrice, c.MarketPrice),
	}
}
