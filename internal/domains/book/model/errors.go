package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"shelftrack-backend/internal/shared/response"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrNotOwner     = errors.New("book does not belong to the current user")
	ErrEmptyUpdate  = errors.New("update carries no fields")
)

var bookErrorMap = map[error]struct {
	Status  int
	Title   string
	Message string
}{
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Title:   "Book not found",
		Message: "The specified book does not exist",
	},
	ErrNotOwner: {
		Status:  http.StatusForbidden,
		Title:   "Forbidden",
		Message: "The specified book belongs to another user",
	},
	ErrEmptyUpdate: {
		Status:  http.StatusBadRequest,
		Title:   "Empty update",
		Message: "At least one field must be provided",
	},
}

// HandleBookError translates known domain errors to HTTP responses.
// Returns true when a response has been written.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for known, cfg := range bookErrorMap {
		if errors.Is(err, known) {
			response.ErrorResponse(c, cfg.Status, cfg.Title, cfg.Message)
			return true
		}
	}

	// Unknown failure: surface the backend's raw message.
	log.Error().Err(err).Msg("book operation failed")
	response.InternalServerError(c, err.Error())
	return true
}
