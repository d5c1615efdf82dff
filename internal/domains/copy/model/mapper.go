package model

import (
	"time"
)

// acquiredDateLayout is the scalar encoding of purchase dates in the copies
// table.
const acquiredDateLayout = "2006-01-02"

// CopyFromRow translates the persisted row shape into the application
// shape. Total function: a malformed acquired_date is treated as absent,
// malformed values must be rejected upstream at the validation boundary.
func CopyFromRow(row CopyRow) Copy {
	c := Copy{
		ID:               row.ID,
		BookID:           row.BookID,
		Condition:        Condition(row.Condition),
		PurchasePrice:    row.PurchasePrice,
		MarketPrice:      row.MarketPrice,
		PurchaseLocation: row.PurchaseLocation,
		Notes:            row.Notes,
		IsListed:         row.IsListed,
		SortIndex:        row.SortIndex,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}

	if row.AcquiredDate != nil {
		if t, err := time.Parse(acquiredDateLayout, *row.AcquiredDate); err == nil {
			c.PurchaseDate = &t
		}
	}

	return c
}

// ToRow is the inverse of CopyFromRow. The purchase date serializes to an
// ISO date string; a nil date stays nil so the column is written as NULL.
func (c Copy) ToRow() CopyRow {
	row := CopyRow{
		ID:               c.ID,
		BookID:           c.BookID,
		Condition:        string(c.Condition),
		PurchasePrice:    c.PurchasePrice,
		MarketPrice:      c.MarketPrice,
		PurchaseLocation: c.PurchaseLocation,
		Notes:            c.Notes,
		IsListed:         c.IsListed,
		SortIndex:        c.SortIndex,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}

	if c.PurchaseDate != nil {
		s := c.PurchaseDate.Format(acquiredDateLayout)
		row.AcquiredDate = &s
	}

	return row
}
