package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreateRequest() CreateBookRequest {
	return CreateBookRequest{
		Title:   "Good Omens",
		Authors: []string{"Terry Pratchett", "Neil Gaiman"},
		Binding: "Hardcover",
		ISBN:    "978-0-575-04800-5",
	}
}

func TestCreateBookRequestValidation(t *testing.T) {
	assert.NoError(t, validCreateRequest().Validate())

	noTitle := validCreateRequest()
	noTitle.Title = ""
	assert.Error(t, noTitle.Validate())

	blankAuthors := validCreateRequest()
	blankAuthors.Authors = []string{"  ", ""}
	assert.Error(t, blankAuthors.Validate())

	badBinding := validCreateRequest()
	badBinding.Binding = "Stapled"
	assert.Error(t, badBinding.Validate())

	badYear := validCreateRequest()
	badYear.PublicationYear = intPtr(99999)
	assert.Error(t, badYear.Validate())
}

func TestISBNRule(t *testing.T) {
	valid := []string{"978-0-575-04800-5", "9780575048005", "0575048005", "N/A", "n/a", "978 0575 048005"}
	for _, s := range valid {
		assert.NoError(t, ISBNRule(s), s)
	}

	invalid := []string{"12345", "97805750480051234", "not-an-isbn", ""}
	for _, s := range invalid {
		assert.Error(t, ISBNRule(s), s)
	}
}

func TestUpdateBookRequestValidation(t *testing.T) {
	empty := UpdateBookRequest{}
	assert.True(t, empty.IsEmpty())
	assert.NoError(t, empty.Validate())

	title := "Dune"
	update := UpdateBookRequest{Title: &title}
	assert.False(t, update.IsEmpty())
	assert.NoError(t, update.Validate())

	blank := ""
	bad := UpdateBookRequest{Title: &blank}
	assert.Error(t, bad.Validate())

	badISBN := "abc"
	assert.Error(t, UpdateBookRequest{ISBN: &badISBN}.Validate())
}

func TestListBooksRequestValidation(t *testing.T) {
	assert.NoError(t, ListBooksRequest{}.Validate())
	assert.NoError(t, ListBooksRequest{Sort: SortYearAsc}.Validate())
	assert.Error(t, ListBooksRequest{Sort: "random"}.Validate())
}
