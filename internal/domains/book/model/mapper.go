package model

import (
	"sort"
	"strings"

	copymodel "shelftrack-backend/internal/domains/copy/model"
)

// authorSeparator joins the authors slice into the single persisted column.
// A comma inside an author name is not escapable; the split on read is
// lossy for such names. Known edge case, accepted.
const authorSeparator = ", "

// SplitAuthors splits the persisted authors string, trims each entry and
// drops blanks, preserving the remaining order.
func SplitAuthors(s string) []string {
	parts := strings.Split(s, ",")
	authors := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			authors = append(authors, trimmed)
		}
	}
	return authors
}

// JoinAuthors is the inverse of SplitAuthors. Blank entries are filtered
// defensively even though the validation layer requires at least one author.
func JoinAuthors(authors []string) string {
	kept := make([]string, 0, len(authors))
	for _, a := range authors {
		if trimmed := strings.TrimSpace(a); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, authorSeparator)
}

// BookFromRow translates the persisted row shape into the application
// shape. Nested copy rows, when present, are mapped and sorted by
// sortIndex ascending. Total function: never fails on well-typed input.
func BookFromRow(row BookRow) Book {
	b := Book{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Title:           row.Title,
		Authors:         SplitAuthors(row.Authors),
		PublicationYear: row.PublicationYear,
		Publisher:       row.Publisher,
		Binding:         Binding(row.Binding),
		ISBN:            row.ISBN,
		CoverURL:        row.CoverImageURL,
		SortIndex:       row.SortIndex,
		Copies:          make([]copymodel.Copy, 0, len(row.Copies)),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	for _, cr := range row.Copies {
		b.Copies = append(b.Copies, copymodel.CopyFromRow(cr))
	}
	sort.SliceStable(b.Copies, func(i, j int) bool {
		return b.Copies[i].SortIndex < b.Copies[j].SortIndex
	})

	return b
}

// ToRow is the inverse of BookFromRow. Copies do not travel back into the
// row shape; they live in their own table.
func (b Book) ToRow() BookRow {
	return BookRow{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		Title:           b.Title,
		Authors:         JoinAuthors(b.Authors),
		PublicationYear: b.PublicationYear,
		Publisher:       b.Publisher,
		Binding:         string(b.Binding),
		ISBN:            b.ISBN,
		CoverImageURL:   b.CoverURL,
		SortIndex:       b.SortIndex,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
