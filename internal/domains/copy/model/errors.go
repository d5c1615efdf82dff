package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"shelftrack-backend/internal/shared/response"
)

var (
	ErrCopyNotFound  = errors.New("copy not found")
	ErrInvalidCopyID = errors.New("invalid copy id")
	ErrBookNotFound  = errors.New("book not found")
	ErrNotOwner      = errors.New("book does not belong to the current user")
)

var copyErrorMap = map[error]struct {
	Status  int
	Title   string
	Message string
}{
	ErrCopyNotFound: {
		Status:  http.StatusNotFound,
		Title:   "Copy not found",
		Message: "The specified copy does not exist",
	},
	ErrInvalidCopyID: {
		Status:  http.StatusBadRequest,
		Title:   "Invalid copy id",
		Message: "The copy id must be a valid UUID",
	},
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
}

// HandleCopyError translates known domain errors to HTTP responses.
// Returns true when a response has been written.
func HandleCopyError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for known, cfg := range copyErrorMap {
		if errors.Is(err, known) {
			response.ErrorResponse(c, cfg.Status, cfg.Title, cfg.Message)
			return true
		}
	}

	// Unknown failure: surface the backend's raw message.
	log.Error().Err(err).Msg("copy operation failed")
	response.InternalServerError(c, err.Error())
	return true
}
