package model

import (
	"sort"
	"strings"

	copymodel "shelftrack-backend/internal/domains/copy/model"
)

// SortOrder selects how a derived book view is ordered.
type SortOrder string

const (
	SortManual    SortOrder = "manual"
	SortTitleAsc  SortOrder = "title_asc"
	SortTitleDesc SortOrder = "title_desc"
	SortYearDesc  SortOrder = "year_desc"
	SortYearAsc   SortOrder = "year_asc"
)

func IsValidSortOrder(s string) bool {
	switch SortOrder(s) {
	case SortManual, SortTitleAsc, SortTitleDesc, SortYearDesc, SortYearAsc:
		return true
	}
	return false
}

// FilterListed keeps only copies flagged as listed for sale, then drops
// books left with zero copies. Pure: the input slice is not mutated.
func FilterListed(books []Book) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		listed := make([]copymodel.Copy, 0, len(b.Copies))
		for _, c := range b.Copies {
			if c.IsListed {
				listed = append(listed, c)
			}
		}
		if len(listed) == 0 {
			continue
		}
		b.Copies = listed
		out = append(out, b)
	}
	return out
}

// FilterTitle keeps books whose title contains q, case-insensitively.
// An empty q keeps everything.
func FilterTitle(books []Book, q string) []Book {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return books
	}
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) {
			out = append(out, b)
		}
	}
	return out
}

// SortBooks orders a view. Manual keeps the stored sortIndex order that the
// fetch already applied. A missing year counts as 0, which pushes
// unknown-year books to one extreme.
func SortBooks(books []Book, order SortOrder) []Book {
	out := make([]Book, len(books))
	copy(out, books)

	year := func(b Book) int {
		if b.PublicationYear == nil {
			return 0
		}
		return *b.PublicationYear
	}

	switch order {
	case SortTitleAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortTitleDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) > strings.ToLower(out[j].Title)
		})
	case SortYearDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return year(out[i]) > year(out[j])
		})
	case SortYearAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return year(out[i]) < year(out[j])
		})
	default:
		// manual: stored order
	}

	return out
}

// ApplyView composes the derived view: listed-only filter, then title
// filter, then sort. Filters do not depend on the sort order, so filtering
// commutes with sorting.
func ApplyView(books []Book, listedOnly bool, q string, order SortOrder) []Book {
	view := books
	if listedOnly {
		view = FilterListed(view)
	}
	view = FilterTitle(view, q)
	return SortBooks(view, order)
}
