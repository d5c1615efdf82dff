package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Condition grades a physical copy.
type Condition string

const (
	ConditionBrandNew   Condition = "Brand New"
	ConditionLikeNew    Condition = "Like New"
	ConditionVeryGood   Condition = "Very Good"
	ConditionGood       Condition = "Good"
	ConditionAcceptable Condition = "Acceptable"
)

// Conditions lists every valid grade, best first.
var Conditions = []Condition{
	ConditionBrandNew,
	ConditionLikeNew,
	ConditionVeryGood,
	ConditionGood,
	ConditionAcceptable,
}

func IsValidCondition(c string) bool {
	for _, v := range Conditions {
		if string(v) == c {
			return true
		}
	}
	return false
}

// Copy is one physical copy of a book: condition, pricing and listing
// status. Application shape - camelCase JSON, typed date, decimal prices.
type Copy struct {
	ID               uuid.UUID        `json:"id"`
	BookID           uuid.UUID        `json:"bookId"`
	Condition        Condition        `json:"condition"`
	PurchasePrice    *decimal.Decimal `json:"purchasePrice,omitempty"`
	MarketPrice      *decimal.Decimal `json:"marketPrice,omitempty"`
	PurchaseDate     *time.Time       `json:"purchaseDate,omitempty"`
	PurchaseLocation string           `json:"purchaseLocation"`
	Notes            string           `json:"notes"`
	IsListed         bool             `json:"isListed"`
	SortIndex        int              `json:"sortIndex"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// CopyRow is the persisted shape: flat, snake_case, scalar date encoding.
type CopyRow struct {
	ID               uuid.UUID        `db:"id" json:"id"`
	BookID           uuid.UUID        `db:"book_id" json:"book_id"`
	Condition        string           `db:"condition" json:"condition"`
	PurchasePrice    *decimal.Decimal `db:"purchase_price" json:"purchase_price,omitempty"`
	MarketPrice      *decimal.Decimal `db:"market_price" json:"market_price,omitempty"`
	AcquiredDate     *string          `db:"acquired_date" json:"acquired_date,omitempty"`
	PurchaseLocation string           `db:"purchase_location" json:"purchase_location"`
	Notes            string           `db:"notes" json:"notes"`
	IsListed         bool             `db:"is_listed" json:"is_listed"`
	SortIndex        int              `db:"sort_index" json:"sort_index"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updated_at"`
}
