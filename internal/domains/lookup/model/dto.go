package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	bookmodel "shelftrack-backend/internal/domains/book/model"
	"shelftrack-backend/internal/shared/utils"
)

// Common lookup errors.
var (
	ErrNoMatch      = errors.New("no matching metadata found")
	ErrProviderDown = errors.New("metadata provider unavailable")
)

// BookMetadata is the enriched book information returned by an external
// metadata source, already shaped for a create-book confirmation.
type BookMetadata struct {
	Title           string            `json:"title"`
	Authors         []string          `json:"authors"`
	PublicationYear *int              `json:"publicationYear,omitempty"`
	Publisher       string            `json:"publisher,omitempty"`
	Binding         bookmodel.Binding `json:"binding"`
	// ISBN is possibly corrected: the 13-digit form is preferred when the
	// source exposes several identifiers.
	ISBN     string `json:"isbn"`
	CoverURL string `json:"coverUrl,omitempty"`
	Source   string `json:"source"`
}

// LookupRequest resolves an ISBN, typically decoded from an EAN-13
// barcode, against the metadata provider.
type LookupRequest struct {
	ISBN        string `json:"isbn"`
	CountryCode string `json:"countryCode,omitempty"`
}

func (r LookupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ISBN, validation.Required, validation.By(isbnDigitsRule)),
		validation.Field(&r.CountryCode, validation.Length(0, 2)),
	)
}

// isbnDigitsRule is stricter than the book field rule: an external lookup
// needs real digits, never the "N/A" literal.
func isbnDigitsRule(value interface{}) error {
	s, _ := value.(string)
	if err := bookmodel.ISBNRule(s); err != nil {
		return err
	}
	if utils.NormalizeISBN(s) == bookmodel.ISBNNotApplicable {
		return validation.NewError("validation_isbn", "cannot look up a book without an ISBN")
	}
	return nil
}

// LookupResponse is either a duplicate hit against the local collection or
// fresh metadata to confirm as a new book.
type LookupResponse struct {
	// Duplicate means the ISBN already exists locally; the client should
	// open the add-copy flow against Book instead of creating a new one.
	Duplicate bool `json:"duplicate"`
	// CopyCount is how many copies of the duplicate the owner already has,
	// shown before the add-copy flow. Zero when Duplicate is false.
	CopyCount int             `json:"copyCount,omitempty"`
	Book      *bookmodel.Book `json:"book,omitempty"`
	Metadata  *BookMetadata   `json:"metadata,omitempty"`
}
