package model

import (
	"time"

	"github.com/google/uuid"

	copymodel "shelftrack-backend/internal/domains/copy/model"
)

// Binding is the physical format of a book.
type Binding string

const (
	BindingHardcover      Binding = "Hardcover"
	BindingPaperback      Binding = "Paperback"
	BindingTradePaperback Binding = "Trade Paperback" // UK-B
	BindingMassMarket     Binding = "Mass Market"     // UK-A
	BindingUKC            Binding = "UK-C"
	BindingOversize       Binding = "Oversize/Softcover"
	BindingSpecialty      Binding = "Specialty"
	BindingOther          Binding = "Other"
)

var Bindings = []Binding{
	BindingHardcover,
	BindingPaperback,
	BindingTradePaperback,
	BindingMassMarket,
	BindingUKC,
	BindingOversize,
	BindingSpecialty,
	BindingOther,
}

func IsValidBinding(b string) bool {
	for _, v := range Bindings {
		if string(v) == b {
			return true
		}
	}
	return false
}

// ISBNNotApplicable is the literal stored for books without an ISBN.
const ISBNNotApplicable = "N/A"

// Book is the application shape: camelCase JSON, array-valued authors,
// nested copies sorted by sortIndex.
type Book struct {
	ID              uuid.UUID            `json:"id"`
	OwnerID         uuid.UUID            `json:"ownerId"`
	Title           string               `json:"title"`
	Authors         []string             `json:"authors"`
	PublicationYear *int                 `json:"publicationYear,omitempty"`
	Publisher       string               `json:"publisher"`
	Binding         Binding              `json:"binding"`
	ISBN            string               `json:"isbn"`
	CoverURL        string               `json:"coverUrl"`
	SortIndex       int                  `json:"sortIndex"`
	Copies          []copymodel.Copy     `json:"copies"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// BookRow is the persisted shape: flat, snake_case, authors as a single
// delimited string. Copies ride along only when the query nests them.
type BookRow struct {
	ID              uuid.UUID           `db:"id" json:"id"`
	OwnerID         uuid.UUID           `db:"owner_id" json:"owner_id"`
	Title           string              `db:"title" json:"title"`
	Authors         string              `db:"authors" json:"authors"`
	PublicationYear *int                `db:"publication_year" json:"publication_year,omitempty"`
	Publisher       string              `db:"publisher" json:"publisher"`
	Binding         string              `db:"binding" json:"binding"`
	ISBN            string              `db:"isbn" json:"isbn"`
	CoverImageURL   string              `db:"cover_image_url" json:"cover_image_url"`
	SortIndex       int                 `db:"sort_index" json:"sort_index"`
	CreatedAt       time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at" json:"updated_at"`
	Copies          []copymodel.CopyRow `db:"-" json:"copies,omitempty"`
}
