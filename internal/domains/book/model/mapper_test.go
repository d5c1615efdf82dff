package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	copymodel "shelftrack-backend/internal/domains/copy/model"
)

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single author", "Ursula K. Le Guin", []string{"Ursula K. Le Guin"}},
		{"two authors", "Terry Pratchett, Neil Gaiman", []string{"Terry Pratchett", "Neil Gaiman"}},
		{"extra whitespace", "  A ,  B  ", []string{"A", "B"}},
		{"blank entries dropped", "A,,B, ,C", []string{"A", "B", "C"}},
		{"empty string", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAuthors(tt.input))
		})
	}
}

func TestJoinAuthors(t *testing.T) {
	assert.Equal(t, "A, B", JoinAuthors([]string{"A", "B"}))
	assert.Equal(t, "A", JoinAuthors([]string{" A ", "", "  "}))
	assert.Equal(t, "", JoinAuthors(nil))
}

func TestAuthorsRoundTrip(t *testing.T) {
	authors := []string{"Terry Pratchett", "Neil Gaiman"}
	assert.Equal(t, authors, SplitAuthors(JoinAuthors(authors)))
}

func TestAuthorsEmbeddedCommaIsLossy(t *testing.T) {
	// A comma inside a single author name cannot survive the delimited
	// column encoding; it splits into two entries on the way back.
	got := SplitAuthors(JoinAuthors([]string{"Sammartino, Jr."}))
	assert.Equal(t, []string{"Sammartino", "Jr."}, got)
}

func TestBookFromRowRoundTrip(t *testing.T) {
	year := 1990
	now := time.Now().UTC().Truncate(time.Second)
	row := BookRow{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		Title:           "Good Omens",
		Authors:         "Terry Pratchett, Neil Gaiman",
		PublicationYear: &year,
		Publisher:       "Gollancz",
		Binding:         "Hardcover",
		ISBN:            "978-0-575-04800-5",
		CoverImageURL:   "https://covers.example/1.jpg",
		SortIndex:       3,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	book := BookFromRow(row)
	require.Equal(t, []string{"Terry Pratchett", "Neil Gaiman"}, book.Authors)
	assert.Equal(t, BindingHardcover, book.Binding)
	assert.Equal(t, row.ISBN, book.ISBN)
	assert.Equal(t, row.CoverImageURL, book.CoverURL)

	back := book.ToRow()
	assert.Equal(t, row.Authors, back.Authors)
	assert.Equal(t, row.Binding, back.Binding)
	assert.Equal(t, row.SortIndex, back.SortIndex)
}

func TestBookFromRowSortsCopies(t *testing.T) {
	row := BookRow{
		ID:    uuid.New(),
		Title: "Dune",
		Copies: []copymodel.CopyRow{
			{ID: uuid.New(), Condition: "Good", SortIndex: 2},
			{ID: uuid.New(), Condition: "Like New", SortIndex: 0},
			{ID: uuid.New(), Condition: "Acceptable", SortIndex: 1},
		},
	}

	book := BookFromRow(row)
	require.Len(t, book.Copies, 3)
	assert.Equal(t, 0, book.Copies[0].SortIndex)
	assert.Equal(t, 1, book.Copies[1].SortIndex)
	assert.Equal(t, 2, book.Copies[2].SortIndex)
}
