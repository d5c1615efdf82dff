package model

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Valuation is the derived financial view of a copy.
type Valuation struct {
	Profit *decimal.Decimal `json:"profit,omitempty"`
	Margin *decimal.Decimal `json:"margin,omitempty"`
	ROI    *decimal.Decimal `json:"roi,omitempty"`
}

// ComputeValuation derives profit, margin and ROI from purchase and market
// price. Rules:
//   - both prices present: profit = market - purchase
//   - margin = profit/market*100, 0 when market is 0
//   - roi = profit/purchase*100, absent when purchase is 0
//   - either price absent: every derived field is absent
//
// Percentages are rounded to two decimal places.
func ComputeValuation(purchase, market *decimal.Decimal) Valuation {
	if purchase == nil || market == nil {
		return Valuation{}
	}

	profit := market.Sub(*purchase)

	var margin decimal.Decimal
	if market.IsZero() {
		margin = decimal.Zero
	} else {
		margin = profit.Div(*market).Mul(hundred).Round(2)
	}

	v := Valuation{Profit: &profit, Margin: &margin}

	if !purchase.IsZero() {
		roi := profit.Div(*purchase).Mul(hundred).Round(2)
		v.ROI = &roi
	}

	return v
}
