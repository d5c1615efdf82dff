package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"shelftrack-backend/internal/shared/utils"
)

// CreateBookRequest adds a book from manual entry or a confirmed lookup
// result. The sort index is assigned server-side (previous max + 1).
type CreateBookRequest struct {
	Title           string   `json:"title"`
	Authors         []string `json:"authors"`
	PublicationYear *int     `json:"publicationYear,omitempty"`
	Publisher       string   `json:"publisher"`
	Binding         string   `json:"binding"`
	ISBN            string   `json:"isbn"`
	CoverURL        string   `json:"coverUrl"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 512)),
		validation.Field(&r.Authors, validation.Required, validation.By(authorsRule)),
		validation.Field(&r.Binding, validation.Required, validation.By(bindingRule)),
		validation.Field(&r.ISBN, validation.Required, validation.By(ISBNRule)),
		validation.Field(&r.PublicationYear, validation.By(yearRule)),
	)
}

// UpdateBookRequest applies only the provided fields; a nil field leaves
// the stored column untouched.
type UpdateBookRequest struct {
	Title           *string   `json:"title,omitempty"`
	Authors         *[]string `json:"authors,omitempty"`
	PublicationYear *int      `json:"publicationYear,omitempty"`
	Publisher       *string   `json:"publisher,omitempty"`
	Binding         *string   `json:"binding,omitempty"`
	ISBN            *string   `json:"isbn,omitempty"`
	CoverURL        *string   `json:"coverUrl,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.By(optionalNonEmptyRule)),
		validation.Field(&r.Authors, validation.By(optionalAuthorsRule)),
		validation.Field(&r.Binding, validation.By(optionalBindingRule)),
		validation.Field(&r.ISBN, validation.By(optionalISBNRule)),
		validation.Field(&r.PublicationYear, validation.By(yearRule)),
	)
}

// IsEmpty reports whether the update carries no fields at all.
func (r UpdateBookRequest) IsEmpty() bool {
	return r.Title == nil && r.Authors == nil && r.PublicationYear == nil &&
		r.Publisher == nil && r.Binding == nil && r.ISBN == nil && r.CoverURL == nil
}

// ListBooksRequest selects the derived view.
type ListBooksRequest struct {
	ListedOnly bool      `form:"listedOnly"`
	Query      string    `form:"q"`
	Sort       SortOrder `form:"sort"`
}

func (r ListBooksRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Sort, validation.By(func(value interface{}) error {
			s, _ := value.(SortOrder)
			if s == "" {
				return nil
			}
			if !IsValidSortOrder(string(s)) {
				return validation.NewError("validation_sort", "must be one of: manual, title_asc, title_desc, year_desc, year_asc")
			}
			return nil
		})),
	)
}

// ReorderBooksRequest carries one drag-and-drop move in the book list.
type ReorderBooksRequest struct {
	DraggedID string `json:"draggedId"`
	TargetID  string `json:"targetId"`
}

func (r ReorderBooksRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DraggedID, validation.Required),
		validation.Field(&r.TargetID, validation.Required),
	)
}

// ---- shared field rules ----

// ISBNRule accepts 10 or 13 digits, or the literal "N/A".
func ISBNRule(value interface{}) error {
	s, _ := value.(string)
	normalized := utils.NormalizeISBN(s)
	if normalized == ISBNNotApplicable {
		return nil
	}
	if !utils.IsDigits(normalized) || (len(normalized) != 10 && len(normalized) != 13) {
		return validation.NewError("validation_isbn", "must be 10 or 13 digits, or N/A")
	}
	return nil
}

func bindingRule(value interface{}) error {
	s, _ := value.(string)
	if !IsValidBinding(s) {
		return validation.NewError("validation_binding", "unknown binding")
	}
	return nil
}

func authorsRule(value interface{}) error {
	authors, _ := value.([]string)
	for _, a := range authors {
		if len(a) > 256 {
			return validation.NewError("validation_authors", "author name too long")
		}
	}
	if len(JoinAuthors(authors)) == 0 {
		return validation.NewError("validation_authors", "at least one non-blank author is required")
	}
	return nil
}

func yearRule(value interface{}) error {
	y, ok := value.(*int)
	if !ok || y == nil {
		return nil
	}
	if *y < 0 || *y > 3000 {
		return validation.NewError("validation_year", "publication year out of range")
	}
	return nil
}

func optionalNonEmptyRule(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	if *s == "" {
		return validation.NewError("validation_required", "must not be blank")
	}
	return nil
}

func optionalAuthorsRule(value interface{}) error {
	a, ok := value.(*[]string)
	if !ok || a == nil {
		return nil
	}
	return authorsRule(*a)
}

func optionalBindingRule(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	return bindingRule(*s)
}

func optionalISBNRule(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	return ISBNRule(*s)
}
